package settings

import (
	"context"
	"time"

	"github.com/elir12131/agroflow/internal/domain/settings"
)

// UpdateSettingRequest represents a request to set a setting value
type UpdateSettingRequest struct {
	Value string `json:"value" binding:"required"`
}

// SettingResponse represents a setting in API responses
type SettingResponse struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SettingsService reads and writes business configuration values
type SettingsService struct {
	settingRepo settings.SettingRepository
}

// NewSettingsService creates a new SettingsService
func NewSettingsService(settingRepo settings.SettingRepository) *SettingsService {
	return &SettingsService{settingRepo: settingRepo}
}

// Get returns a setting by key
func (s *SettingsService) Get(ctx context.Context, key string) (*SettingResponse, error) {
	setting, err := s.settingRepo.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	return toResponse(setting), nil
}

// Set creates or replaces a setting value
func (s *SettingsService) Set(ctx context.Context, key string, req UpdateSettingRequest) (*SettingResponse, error) {
	setting, err := settings.NewSetting(key, req.Value)
	if err != nil {
		return nil, err
	}
	if err := s.settingRepo.Set(ctx, setting); err != nil {
		return nil, err
	}
	return toResponse(setting), nil
}

func toResponse(setting *settings.Setting) *SettingResponse {
	return &SettingResponse{
		Key:       setting.Key,
		Value:     setting.Value,
		UpdatedAt: setting.UpdatedAt,
	}
}
