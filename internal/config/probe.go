package config

import "time"

type ProbeConfig struct {
	BaseConfig
	Probe ProbeSettings `envconfig:"PROBE"`
}

type ProbeSettings struct {
	Iterations    int           `envconfig:"ITERATIONS" default:"3" validate:"min=1,max=100"`
	Rate          float64       `envconfig:"RATE" default:"5" validate:"gt=0"`
	FastThreshold time.Duration `envconfig:"FAST_THRESHOLD" default:"200ms" validate:"gt=0"`
	SlowThreshold time.Duration `envconfig:"SLOW_THRESHOLD" default:"1s" validate:"gtfield=FastThreshold"`
}

func LoadProbe() (*ProbeConfig, error) {
	var cfg ProbeConfig
	if err := process(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
