package models

import (
	"time"

	"github.com/elir12131/agroflow/internal/domain/settings"
)

// SettingModel is the persistence model for a Setting key-value pair.
type SettingModel struct {
	Key       string    `gorm:"type:varchar(100);primary_key"`
	Value     string    `gorm:"type:text;not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (SettingModel) TableName() string {
	return "settings"
}

// ToDomain converts the persistence model to a domain Setting.
func (m *SettingModel) ToDomain() *settings.Setting {
	return &settings.Setting{
		Key:       m.Key,
		Value:     m.Value,
		UpdatedAt: m.UpdatedAt,
	}
}

// SettingModelFromDomain creates a new persistence model from a domain Setting.
func SettingModelFromDomain(s *settings.Setting) *SettingModel {
	return &SettingModel{
		Key:       s.Key,
		Value:     s.Value,
		UpdatedAt: s.UpdatedAt,
	}
}
