package settings

import (
	"context"
	"strings"
	"time"

	"github.com/elir12131/agroflow/internal/domain/shared"
)

// Setting is a single business configuration value, stored as a string
type Setting struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}

// Well-known setting keys
const (
	KeyBusinessName = "business_name"
)

// NewSetting creates a setting after validating its key
func NewSetting(key, value string) (*Setting, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, shared.NewDomainError("INVALID_KEY", "Setting key is required")
	}
	return &Setting{
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now(),
	}, nil
}

// SettingRepository stores settings by key. Set is an upsert.
type SettingRepository interface {
	Get(ctx context.Context, key string) (*Setting, error)
	Set(ctx context.Context, setting *Setting) error
}
