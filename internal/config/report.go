package config

type ReportConfig struct {
	BaseConfig
	Report ReportSettings `envconfig:"REPORT"`
}

type ReportSettings struct {
	Title      string `envconfig:"TITLE" default:"Demo Readiness Test Report" validate:"required"`
	OutputPath string `envconfig:"OUTPUT_PATH"`
}

func LoadReport() (*ReportConfig, error) {
	var cfg ReportConfig
	if err := process(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
