package field

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// EditableField holds the columns shared by every editable field type. Types
// embed it rather than extend it.
type EditableField struct {
	ID                 uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	FormID             uuid.UUID `json:"form_id" gorm:"type:uuid;not null;index"`
	Name               string    `json:"name" gorm:"type:varchar(255);not null"`
	Title              string    `json:"title" gorm:"type:varchar(255)"`
	Required           bool      `json:"required" gorm:"not null;default:false"`
	Placeholder        string    `json:"placeholder" gorm:"type:varchar(255)"`
	Sort               int       `json:"sort" gorm:"not null;default:0"`
	ExtraClass         string    `json:"extra_class" gorm:"type:text"`
	Default            string    `json:"default" gorm:"column:default_value;type:text"`
	RightTitle         string    `json:"right_title" gorm:"type:varchar(255)"`
	CustomErrorMessage string    `json:"custom_error_message" gorm:"type:varchar(255)"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// BaseSettings are the generic settings an administrator may submit for any
// field type. Types decide which of them they honour.
type BaseSettings struct {
	Name               string `mapstructure:"name"`
	Title              string `mapstructure:"title"`
	Sort               int    `mapstructure:"sort"`
	CustomErrorMessage string `mapstructure:"custom_error_message"`
	ExtraClass         string `mapstructure:"extra_class"`
	Default            string `mapstructure:"default"`
	RightTitle         string `mapstructure:"right_title"`
	Required           bool   `mapstructure:"required"`
	Placeholder        string `mapstructure:"placeholder"`
}

func (f *EditableField) Base() *EditableField {
	return f
}

// ApplyBase copies the generic settings onto the field. An empty name keeps
// the current one since names are generated once and referenced by
// submissions.
func (f *EditableField) ApplyBase(s BaseSettings) {
	if s.Name != "" {
		f.Name = s.Name
	}
	f.Title = strings.TrimSpace(s.Title)
	f.Sort = s.Sort
	f.CustomErrorMessage = s.CustomErrorMessage
	f.ExtraClass = s.ExtraClass
	f.Default = s.Default
	f.RightTitle = s.RightTitle
	f.Required = s.Required
	f.Placeholder = s.Placeholder
}

// PrepareWrite assigns the identity of a new field: an ID, and a name built
// from namePrefix when none was given.
func (f *EditableField) PrepareWrite(namePrefix string) {
	now := time.Now()
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
		f.CreatedAt = now
	}
	if f.CreatedAt.IsZero() {
		f.CreatedAt = now
	}
	f.UpdatedAt = now
	if strings.TrimSpace(f.Name) == "" {
		f.Name = fmt.Sprintf("%s_%s", namePrefix, strings.ReplaceAll(f.ID.String(), "-", "")[:12])
	}
}

// Settings returns the generic settings currently held by the field.
func (f *EditableField) Settings() BaseSettings {
	return BaseSettings{
		Name:               f.Name,
		Title:              f.Title,
		Sort:               f.Sort,
		CustomErrorMessage: f.CustomErrorMessage,
		ExtraClass:         f.ExtraClass,
		Default:            f.Default,
		RightTitle:         f.RightTitle,
		Required:           f.Required,
		Placeholder:        f.Placeholder,
	}
}
