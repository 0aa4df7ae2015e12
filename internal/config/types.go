package config

// #region simulator
// SensorConfig describes one on-agent camera sensor.
type SensorConfig struct {
	Height   int       `yaml:"height"`
	Width    int       `yaml:"width"`
	HFOV     float64   `yaml:"hfov"`
	Position []float64 `yaml:"position"`
}

// PhysicsParams holds the rigid-body integration settings forwarded to the
// simulator service when physics is enabled.
type PhysicsParams struct {
	TimeStep    float64 `yaml:"time_step"`
	ControlFreq float64 `yaml:"control_freq"`
	ConfigFile  string  `yaml:"config_file"`
}

// SimulatorConfig is the active runtime section the simulator service is
// configured from. Physics overrides are merged into it in place.
type SimulatorConfig struct {
	Type            string        `yaml:"type"`
	SceneDataset    string        `yaml:"scene_dataset"`
	ForwardStepSize float64       `yaml:"forward_step_size"`
	TurnAngle       float64       `yaml:"turn_angle"`
	MaxEpisodeSteps int           `yaml:"max_episode_steps"`
	GPUDeviceID     int           `yaml:"gpu_device_id"`
	AllowSliding    bool          `yaml:"allow_sliding"`
	RGBSensor       SensorConfig  `yaml:"rgb_sensor"`
	DepthSensor     SensorConfig  `yaml:"depth_sensor"`
	Physics         PhysicsParams `yaml:"physics"`
}

// #endregion simulator

// #region physics-overrides
// SensorOverrides is the overridable subset of SensorConfig. nil fields keep
// the base value.
type SensorOverrides struct {
	Height   *int      `yaml:"height"`
	Width    *int      `yaml:"width"`
	HFOV     *float64  `yaml:"hfov"`
	Position []float64 `yaml:"position"`
}

// PhysicsParamOverrides is the overridable subset of PhysicsParams.
type PhysicsParamOverrides struct {
	TimeStep    *float64 `yaml:"time_step"`
	ControlFreq *float64 `yaml:"control_freq"`
	ConfigFile  *string  `yaml:"config_file"`
}

// PhysicsSimulatorConfig carries the overrides applied to Simulator when a
// physics-enabled run is requested. It is read-only during the overlay.
type PhysicsSimulatorConfig struct {
	Type            *string                `yaml:"type"`
	ForwardStepSize *float64               `yaml:"forward_step_size"`
	TurnAngle       *float64               `yaml:"turn_angle"`
	MaxEpisodeSteps *int                   `yaml:"max_episode_steps"`
	AllowSliding    *bool                  `yaml:"allow_sliding"`
	RGBSensor       *SensorOverrides       `yaml:"rgb_sensor"`
	DepthSensor     *SensorOverrides       `yaml:"depth_sensor"`
	Physics         *PhysicsParamOverrides `yaml:"physics"`
}

// #endregion physics-overrides

// #region run-config
// DatasetConfig points the service at an episode dataset split.
type DatasetConfig struct {
	Path  string `yaml:"path"`
	Split string `yaml:"split"`
}

// VideoConfig controls where recorded episode videos land.
type VideoConfig struct {
	Dir string `yaml:"dir"`
	FPS int    `yaml:"fps"`
}

// EvalConfig holds evaluation-loop defaults overridable per run.
type EvalConfig struct {
	LogDir    string `yaml:"log_dir"`
	MapHeight int    `yaml:"map_height"`
}

// RunConfig is the full configuration of one evaluation run, loaded once at
// construction and held by the evaluator thereafter.
type RunConfig struct {
	Simulator        SimulatorConfig        `yaml:"simulator"`
	PhysicsSimulator PhysicsSimulatorConfig `yaml:"physics_simulator"`
	Dataset          DatasetConfig          `yaml:"dataset"`
	Video            VideoConfig            `yaml:"video"`
	Eval             EvalConfig             `yaml:"eval"`
}

// #endregion run-config
