package realtime

import (
	"context"
	"fmt"
	"time"

	"github.com/lib/pq"

	"demoready/internal/core/ports"
	"demoready/internal/platform/logger"
)

const (
	minReconnectInterval = 100 * time.Millisecond
	maxReconnectInterval = time.Second
)

// Subscriber opens Postgres LISTEN subscriptions on a dedicated connection.
type Subscriber struct {
	dsn    string
	logger logger.Logger
}

// Compile-time interface check
var _ ports.Subscriber = (*Subscriber)(nil)

func NewSubscriber(dsn string, log logger.Logger) *Subscriber {
	return &Subscriber{dsn: dsn, logger: log}
}

// Subscribe returns once the server has acknowledged LISTEN on channel. The
// first failed connection attempt ends the call; the listener is never left
// reconnecting in the background.
func (s *Subscriber) Subscribe(ctx context.Context, channel string) (ports.Subscription, error) {
	failures := make(chan error, 1)
	listener := pq.NewListener(s.dsn, minReconnectInterval, maxReconnectInterval,
		func(event pq.ListenerEventType, err error) {
			if event == pq.ListenerEventConnectionAttemptFailed && err != nil {
				select {
				case failures <- err:
				default:
				}
			}
		})

	listened := make(chan error, 1)
	go func() {
		listened <- listener.Listen(channel)
	}()

	select {
	case err := <-listened:
		if err != nil {
			s.close(listener)
			return nil, fmt.Errorf("failed to listen on %s: %w", channel, err)
		}
		s.logger.Debug("Realtime subscription confirmed", logger.String("channel", channel))
		return listener, nil
	case err := <-failures:
		s.close(listener)
		return nil, fmt.Errorf("failed to connect realtime listener: %w", err)
	case <-ctx.Done():
		s.close(listener)
		return nil, ctx.Err()
	}
}

func (s *Subscriber) close(listener *pq.Listener) {
	if err := listener.Close(); err != nil {
		s.logger.Debug("Failed to close realtime listener", logger.Error(err))
	}
}
