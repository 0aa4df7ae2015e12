package config

// #region overlay
// OverwriteSimulatorConfig copies every set override from the
// physics_simulator section into the simulator section, in place. Scalar
// overrides replace the base value wholesale; nested sections (sensors,
// physics params) merge field by field, one level deep, so base fields
// without an override survive. The physics_simulator section itself is never
// touched.
//
// The merge is pure: whether the service can actually load its physics
// modules is a separate probe (simclient.Client.CheckPhysics), so callers
// can merge into a copy and commit only on success.
func OverwriteSimulatorConfig(cfg *RunConfig) {
	p := &cfg.PhysicsSimulator
	sim := &cfg.Simulator

	if p.Type != nil {
		sim.Type = *p.Type
	}
	if p.ForwardStepSize != nil {
		sim.ForwardStepSize = *p.ForwardStepSize
	}
	if p.TurnAngle != nil {
		sim.TurnAngle = *p.TurnAngle
	}
	if p.MaxEpisodeSteps != nil {
		sim.MaxEpisodeSteps = *p.MaxEpisodeSteps
	}
	if p.AllowSliding != nil {
		sim.AllowSliding = *p.AllowSliding
	}
	if p.RGBSensor != nil {
		mergeSensor(&sim.RGBSensor, p.RGBSensor)
	}
	if p.DepthSensor != nil {
		mergeSensor(&sim.DepthSensor, p.DepthSensor)
	}
	if p.Physics != nil {
		mergePhysics(&sim.Physics, p.Physics)
	}
}

// #endregion overlay

// #region section-merges
func mergeSensor(base *SensorConfig, o *SensorOverrides) {
	if o.Height != nil {
		base.Height = *o.Height
	}
	if o.Width != nil {
		base.Width = *o.Width
	}
	if o.HFOV != nil {
		base.HFOV = *o.HFOV
	}
	if o.Position != nil {
		base.Position = o.Position
	}
}

func mergePhysics(base *PhysicsParams, o *PhysicsParamOverrides) {
	if o.TimeStep != nil {
		base.TimeStep = *o.TimeStep
	}
	if o.ControlFreq != nil {
		base.ControlFreq = *o.ControlFreq
	}
	if o.ConfigFile != nil {
		base.ConfigFile = *o.ConfigFile
	}
}

// #endregion section-merges
