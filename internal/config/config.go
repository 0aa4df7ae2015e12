package config

// #region imports
import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// #endregion imports

// #region defaults
// Default returns the baseline configuration before any file overlays.
func Default() *RunConfig {
	return &RunConfig{
		Simulator: SimulatorConfig{
			Type:            "Sim-v0",
			ForwardStepSize: 0.25,
			TurnAngle:       10.0,
			MaxEpisodeSteps: 500,
			AllowSliding:    true,
			RGBSensor:       SensorConfig{Height: 480, Width: 640, HFOV: 90},
			DepthSensor:     SensorConfig{Height: 480, Width: 640, HFOV: 90},
			Physics: PhysicsParams{
				TimeStep:    1.0 / 60.0,
				ControlFreq: 10,
			},
		},
		Dataset: DatasetConfig{Split: "val"},
		Video:   VideoConfig{Dir: "videos/", FPS: 10},
		Eval:    EvalConfig{LogDir: "logs/", MapHeight: 200},
	}
}

// #endregion defaults

// #region load
// Load reads one or more YAML files over the defaults, in order. A later file
// overrides whatever keys it sets; keys it omits keep their previous values.
func Load(paths ...string) (*RunConfig, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("load config: no config paths given")
	}
	cfg := Default()
	for _, p := range paths {
		raw, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("load config %s: %w", p, err)
		}
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", p, err)
		}
	}
	return cfg, nil
}

// #endregion load
