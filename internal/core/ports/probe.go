package ports

import "context"

// ProbeStep is one remote operation the performance probe times.
type ProbeStep interface {
	Name() string
	Run(ctx context.Context) error
}
