package form

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var segmentCleaner = regexp.MustCompile(`[^a-z0-9-]+`)

// Form is the user defined form that owns editable fields.
type Form struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Title      string    `json:"title" gorm:"type:varchar(255);not null"`
	URLSegment string    `json:"url_segment" gorm:"type:varchar(255);not null;uniqueIndex"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (f *Form) TableName() string {
	return "user_defined_forms"
}

func (f *Form) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	now := time.Now()
	f.CreatedAt = now
	f.UpdatedAt = now
	return nil
}

func (f *Form) BeforeUpdate(tx *gorm.DB) error {
	f.UpdatedAt = time.Now()
	return nil
}

// FormatURLSegment lowercases s and collapses anything outside [a-z0-9-]
// into single dashes.
func FormatURLSegment(s string) string {
	s = segmentCleaner.ReplaceAllString(strings.ToLower(strings.TrimSpace(s)), "-")
	return strings.Trim(s, "-")
}
