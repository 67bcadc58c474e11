package health

import "time"

type Status string

const (
	StatusPass Status = "pass"
	StatusFail Status = "fail"
	StatusWarn Status = "warn"
)

type LivenessResponse struct {
	Status    Status    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version,omitempty"`
	Uptime    string    `json:"uptime"`
}

type ReadinessResponse struct {
	Status             Status                   `json:"status"`
	Version            string                   `json:"version"`
	ReadyForDemo       bool                     `json:"readyForDemo"`
	FallbacksAvailable bool                     `json:"fallbacksAvailable"`
	Notes              []string                 `json:"notes,omitempty"`
	Output             string                   `json:"output,omitempty"`
	Checks             map[string][]CheckDetail `json:"checks,omitempty"`
}

type CheckDetail struct {
	ComponentId   string         `json:"componentId,omitempty"`
	ComponentType string         `json:"componentType,omitempty"`
	Status        Status         `json:"status"`
	Critical      bool           `json:"critical"`
	ObservedValue float64        `json:"observedValue"`
	ObservedUnit  string         `json:"observedUnit"`
	Time          time.Time      `json:"time"`
	Output        string         `json:"output,omitempty"`
	Details       map[string]any `json:"details,omitempty"`
}
