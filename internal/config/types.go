package config

import "time"

// LoopConfig configures the fixed-timestep driver.
type LoopConfig struct {
	UpdatesPerSecond int `yaml:"updates_per_second"`
}

// RunConfig configures the host runner used by `gameloop run`.
type RunConfig struct {
	MaxTicks        int           `yaml:"max_ticks"`
	FrameDelay      time.Duration `yaml:"frame_delay"`
	Simulated       bool          `yaml:"simulated"`
	SpiralThreshold int           `yaml:"spiral_threshold"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Config represents a gameloop.yaml file.
type Config struct {
	Loop LoopConfig `yaml:"loop"`
	Run  RunConfig  `yaml:"run"`
	Log  LogConfig  `yaml:"log"`
}
