package config

import (
	"time"

	"demoready/internal/core/domain/readiness"
)

type ChecksConfig struct {
	BaseConfig
	Required    RequiredConfig    `envconfig:"CHECKS"`
	App         AppConfig         `envconfig:"APP"`
	Demo        DemoConfig        `envconfig:"DEMO"`
	Realtime    RealtimeConfig    `envconfig:"REALTIME"`
	Performance PerformanceConfig `envconfig:"PERFORMANCE"`
	Voice       VoiceConfig       `envconfig:"VOICE"`
	DNS         DNSConfig         `envconfig:"DNS"`
	Output      OutputConfig      `envconfig:"READINESS"`
}

type RequiredConfig struct {
	Env     []string `envconfig:"REQUIRED_ENV" default:"BACKEND_URL,BACKEND_ANON_KEY,POSTGRES_HOST,POSTGRES_PASSWORD,TRANSCRIPTION_API_KEY" validate:"dive,required"`
	Files   []string `envconfig:"REQUIRED_FILES" default:"package.json,.env.local" validate:"dive,required"`
	Dirs    []string `envconfig:"REQUIRED_DIRS" default:"app,components,lib" validate:"dive,required"`
	WorkDir string   `envconfig:"WORK_DIR" default:"."`
}

// AppConfig describes the demo web app whose API routes are probed.
type AppConfig struct {
	URL       string   `envconfig:"URL" default:"http://localhost:3000" validate:"required,url"`
	Endpoints []string `envconfig:"ENDPOINTS" default:"/,/api/health" validate:"dive,required"`
}

type DemoConfig struct {
	Email       string   `envconfig:"EMAIL" validate:"omitempty,email"`
	Password    string   `envconfig:"PASSWORD"`
	Roles       []string `envconfig:"ROLES" default:"admin,server" validate:"min=1,dive,required"`
	UsersTable  string   `envconfig:"USERS_TABLE" default:"users" validate:"required"`
	RoleColumn  string   `envconfig:"ROLE_COLUMN" default:"role" validate:"required"`
	TablesTable string   `envconfig:"TABLES_TABLE" default:"tables" validate:"required"`
}

type RealtimeConfig struct {
	Channel string        `envconfig:"CHANNEL" default:"demo_readiness" validate:"required"`
	Timeout time.Duration `envconfig:"TIMEOUT" default:"5s" validate:"gt=0"`
}

type PerformanceConfig struct {
	Threshold time.Duration `envconfig:"THRESHOLD" default:"1s" validate:"gt=0"`
}

type VoiceConfig struct {
	APIKeyEnv string   `envconfig:"API_KEY_ENV" default:"TRANSCRIPTION_API_KEY" validate:"required"`
	Files     []string `envconfig:"FILES" default:"components/voice/VoiceRecorder.tsx,lib/voice/transcribe.ts" validate:"dive,required"`
}

// DNSConfig controls the resolution pre-flight done before endpoint probes.
// An empty Resolver means the servers from /etc/resolv.conf.
type DNSConfig struct {
	Resolver string        `envconfig:"RESOLVER"`
	Timeout  time.Duration `envconfig:"QUERY_TIMEOUT" default:"2s" validate:"gt=0"`
}

type OutputConfig struct {
	Format readiness.Format `envconfig:"OUTPUT_FORMAT" default:"text" validate:"oneof=text json yaml"`
}

func LoadChecks() (*ChecksConfig, error) {
	var cfg ChecksConfig
	if err := process(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
