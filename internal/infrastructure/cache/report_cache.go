package cache

import (
	"context"
	"time"
)

// ReportCache is a small TTL cache for rendered report payloads.
// Completed orders are the only input to every report, so Invalidate is
// wholesale: fulfillment clears the entire report namespace.
type ReportCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Invalidate(ctx context.Context) error
	Close() error
}
