package field

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DisplayRule conditionally shows or hides a field based on another field's
// value.
type DisplayRule struct {
	ID               uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	ParentID         uuid.UUID `json:"parent_id" gorm:"type:uuid;not null;index"`
	ConditionFieldID uuid.UUID `json:"condition_field_id" gorm:"type:uuid"`
	ConditionOption  string    `json:"condition_option" gorm:"type:varchar(64)"`
	FieldValue       string    `json:"field_value" gorm:"type:text"`
	CreatedAt        time.Time `json:"created_at"`
}

func (r *DisplayRule) TableName() string {
	return "editable_custom_rules"
}

func (r *DisplayRule) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	r.CreatedAt = time.Now()
	return nil
}

//go:generate mockery --name=DisplayRuleRepository --dir=. --output=./mocks --filename=display_rule_repository_mock.go --case=underscore --with-expecter
type DisplayRuleRepository interface {
	Create(ctx context.Context, rule *DisplayRule) error
	ListByField(ctx context.Context, fieldID uuid.UUID) ([]*DisplayRule, error)
	DeleteByField(ctx context.Context, fieldID uuid.UUID) error
}
