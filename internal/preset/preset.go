package preset

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gopkg.in/yaml.v3"

	"vehicle3d/internal/vehicle"
)

// --- preset file types ---

// Def is the on-disk vehicle preset. JSON and YAML are both accepted, keyed
// off the file extension.
type Def struct {
	Name                 string     `json:"name" yaml:"name"`
	MaxEngineForce       float32    `json:"maxEngineForce" yaml:"maxEngineForce"`
	BrakingForce         float32    `json:"brakingForce" yaml:"brakingForce"`
	DownforceCoefficient float32    `json:"downforceCoefficient,omitempty" yaml:"downforceCoefficient,omitempty"`
	MaxWheelAngleDeg     float32    `json:"maxWheelAngleDeg,omitempty" yaml:"maxWheelAngleDeg,omitempty"`
	Wheels               []WheelDef `json:"wheels" yaml:"wheels"`
}

type WheelDef struct {
	ConnectionPoint    [3]float32 `json:"connectionPoint" yaml:"connectionPoint"`
	Direction          [3]float32 `json:"direction,omitempty" yaml:"direction,omitempty"`
	Axle               [3]float32 `json:"axle,omitempty" yaml:"axle,omitempty"`
	RestLength         float32    `json:"restLength" yaml:"restLength"`
	Radius             float32    `json:"radius" yaml:"radius"`
	Stiffness          float32    `json:"stiffness" yaml:"stiffness"`
	DampingCompression float32    `json:"dampingCompression" yaml:"dampingCompression"`
	DampingRelaxation  float32    `json:"dampingRelaxation" yaml:"dampingRelaxation"`
	RollInfluence      float32    `json:"rollInfluence,omitempty" yaml:"rollInfluence,omitempty"`
	Friction           float32    `json:"friction,omitempty" yaml:"friction,omitempty"`
	Front              bool       `json:"front,omitempty" yaml:"front,omitempty"`
	Drive              bool       `json:"drive,omitempty" yaml:"drive,omitempty"`
}

// Load reads a preset from a .json, .yaml or .yml file. Geometry validation
// happens later, in vehicle.New.
func Load(path string) (*Def, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("preset: read %s: %w", path, err)
	}

	var def Def
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(data, &def)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &def)
	default:
		return nil, fmt.Errorf("preset: unsupported extension %q", filepath.Ext(path))
	}
	if err != nil {
		return nil, fmt.Errorf("preset: parse %s: %w", path, err)
	}

	log.Printf("Preset: loaded %q (%d wheels)", def.Name, len(def.Wheels))
	return &def, nil
}

// Save writes a preset next to the scene files, format keyed off the extension.
func Save(path string, def *Def) error {
	var data []byte
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		data, err = json.MarshalIndent(def, "", "  ")
	case ".yaml", ".yml":
		data, err = yaml.Marshal(def)
	default:
		return fmt.Errorf("preset: unsupported extension %q", filepath.Ext(path))
	}
	if err != nil {
		return fmt.Errorf("preset: marshal: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// Rig converts the preset into rig construction arguments, filling the usual
// defaults: suspension points straight down, axle across the hull, friction 1.
func (d *Def) Rig() ([]vehicle.WheelConfig, vehicle.Tunables) {
	configs := make([]vehicle.WheelConfig, 0, len(d.Wheels))
	for _, w := range d.Wheels {
		cfg := vehicle.WheelConfig{
			ConnectionPointLocal: vec3(w.ConnectionPoint),
			DirectionLocal:       vec3(w.Direction),
			AxleLocal:            vec3(w.Axle),
			SuspensionRestLength: w.RestLength,
			Radius:               w.Radius,
			Stiffness:            w.Stiffness,
			DampingCompression:   w.DampingCompression,
			DampingRelaxation:    w.DampingRelaxation,
			RollInfluence:        w.RollInfluence,
			FrictionCoefficient:  w.Friction,
			IsFrontWheel:         w.Front,
			IsDriveWheel:         w.Drive,
		}
		if cfg.DirectionLocal == (rl.Vector3{}) {
			cfg.DirectionLocal = rl.Vector3{X: 0, Y: -1, Z: 0}
		}
		if cfg.AxleLocal == (rl.Vector3{}) {
			cfg.AxleLocal = rl.Vector3{X: -1, Y: 0, Z: 0}
		}
		if cfg.FrictionCoefficient == 0 {
			cfg.FrictionCoefficient = 1
		}
		configs = append(configs, cfg)
	}

	tun := vehicle.Tunables{
		MaxEngineForce:       d.MaxEngineForce,
		BrakingForce:         d.BrakingForce,
		DownforceCoefficient: d.DownforceCoefficient,
		MaxWheelAngle:        d.MaxWheelAngleDeg * rl.Deg2rad,
	}
	return configs, tun
}

// Default is a rear-drive buggy: front wheels steer, rear wheels drive.
func Default() *Def {
	wheel := func(x, z float32, front bool) WheelDef {
		return WheelDef{
			ConnectionPoint:    [3]float32{x, -0.1, z},
			RestLength:         0.45,
			Radius:             0.3,
			Stiffness:          24000,
			DampingCompression: 1800,
			DampingRelaxation:  2400,
			RollInfluence:      0.1,
			Friction:           1.2,
			Front:              front,
			Drive:              !front,
		}
	}
	return &Def{
		Name:                 "buggy",
		MaxEngineForce:       4200,
		BrakingForce:         900,
		DownforceCoefficient: 3.0,
		MaxWheelAngleDeg:     22.5,
		Wheels: []WheelDef{
			wheel(-0.85, 1.35, true),
			wheel(0.85, 1.35, true),
			wheel(-0.85, -1.35, false),
			wheel(0.85, -1.35, false),
		},
	}
}

func vec3(v [3]float32) rl.Vector3 {
	return rl.Vector3{X: v[0], Y: v[1], Z: v[2]}
}
