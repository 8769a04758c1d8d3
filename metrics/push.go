package metrics

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus/push"
)

// Push sends the current state of Registry to the pushgateway at url once.
// Metrics are grouped by job and by the host the run happened on.
func Push(ctx context.Context, url, job string, timeout time.Duration) error {
	host, err := os.Hostname()
	if err != nil {
		host = "unknown"
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	pusher := push.New(url, job).Gatherer(Registry).Grouping("instance", host)
	if err := pusher.PushContext(ctx); err != nil {
		return fmt.Errorf("push metrics to %v: %w", url, err)
	}
	return nil
}
