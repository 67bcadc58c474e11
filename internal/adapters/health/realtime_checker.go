package health

import (
	"context"
	"errors"
	"fmt"
	"time"

	"demoready/internal/core/domain/readiness"
	"demoready/internal/core/ports"
	"demoready/internal/platform/health"
	"demoready/internal/platform/logger"
)

type RealtimeChecker struct {
	subscriber ports.Subscriber
	channel    string
	timeout    time.Duration
}

// Compile-time interface check
var _ health.Checker = (*RealtimeChecker)(nil)

func NewRealtimeChecker(subscriber ports.Subscriber, channel string, timeout time.Duration) *RealtimeChecker {
	return &RealtimeChecker{subscriber: subscriber, channel: channel, timeout: timeout}
}

func (c *RealtimeChecker) Name() string {
	return readiness.CheckRealtime
}

func (c *RealtimeChecker) Check(ctx context.Context) readiness.CheckResult {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	details := map[string]any{"channel": c.channel}

	subscription, err := c.subscriber.Subscribe(ctx, c.channel)
	if err != nil {
		details["error"] = err.Error()
		if errors.Is(err, context.DeadlineExceeded) {
			return readiness.Warning(fmt.Sprintf("Realtime subscription timed out after %s", c.timeout), false).
				WithDetails(details)
		}
		return readiness.Warning("Realtime subscription failed: "+err.Error(), false).WithDetails(details)
	}

	if err := subscription.Close(); err != nil {
		logger.FromContext(ctx).Debug("Failed to close realtime subscription", logger.Error(err))
	}

	return readiness.Pass("Realtime subscription confirmed", false).WithDetails(details)
}
