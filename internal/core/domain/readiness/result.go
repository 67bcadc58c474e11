package readiness

import "time"

type Status string

const (
	StatusPass    Status = "pass"
	StatusWarning Status = "warning"
	StatusFail    Status = "fail"
)

type Overall string

const (
	OverallReady   Overall = "ready"
	OverallWarning Overall = "warning"
	OverallFailed  Overall = "failed"
)

const (
	CheckEnvironment  = "environment_variables"
	CheckDatabase     = "database_connection"
	CheckDemoData     = "demo_data"
	CheckAuth         = "auth_system"
	CheckAPIEndpoints = "api_endpoints"
	CheckFileSystem   = "file_system"
	CheckVoice        = "voice_system"
	CheckRealtime     = "realtime"
	CheckPerformance  = "performance"
)

// CheckNames lists the checks in the order the coordinator runs them.
var CheckNames = []string{
	CheckEnvironment,
	CheckDatabase,
	CheckDemoData,
	CheckAuth,
	CheckAPIEndpoints,
	CheckFileSystem,
	CheckVoice,
	CheckRealtime,
	CheckPerformance,
}

type CheckResult struct {
	Status   Status         `json:"status" yaml:"status"`
	Message  string         `json:"message" yaml:"message"`
	Details  map[string]any `json:"details,omitempty" yaml:"details,omitempty"`
	Critical bool           `json:"critical" yaml:"critical"`
	Latency  time.Duration  `json:"latency" yaml:"latency"`
}

type NamedResult struct {
	Name   string
	Result CheckResult
}

func Pass(message string, critical bool) CheckResult {
	return CheckResult{Status: StatusPass, Message: message, Critical: critical}
}

func Warning(message string, critical bool) CheckResult {
	return CheckResult{Status: StatusWarning, Message: message, Critical: critical}
}

func Fail(message string, critical bool) CheckResult {
	return CheckResult{Status: StatusFail, Message: message, Critical: critical}
}

// WithDetails returns a copy of r carrying details.
func (r CheckResult) WithDetails(details map[string]any) CheckResult {
	r.Details = details
	return r
}

func (r CheckResult) IsCriticalFailure() bool {
	return r.Status == StatusFail && r.Critical
}
