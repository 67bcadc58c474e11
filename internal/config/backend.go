package config

import (
	"time"
)

type BackendConfig struct {
	BaseConfig
	Backend BackendSettings `envconfig:"BACKEND"`
}

// BackendSettings points at the hosted auth/API backend the demo app talks to.
type BackendSettings struct {
	URL         string        `envconfig:"URL" validate:"omitempty,url"`
	AnonKey     string        `envconfig:"ANON_KEY"`
	Timeout     time.Duration `envconfig:"TIMEOUT" default:"10s" validate:"gt=0"`
	SignInPath  string        `envconfig:"SIGN_IN_PATH" default:"/auth/v1/token?grant_type=password"`
	SignOutPath string        `envconfig:"SIGN_OUT_PATH" default:"/auth/v1/logout"`
}

func (s BackendSettings) Configured() bool {
	return s.URL != ""
}

func LoadBackend() (*BackendConfig, error) {
	var cfg BackendConfig
	if err := process(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
