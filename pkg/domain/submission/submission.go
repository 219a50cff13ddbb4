package submission

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// SubmittedForm is one submission of a user defined form. Unverified lists
// the fields whose value could not be produced, e.g. a verification field
// without a recorded response for the session.
type SubmittedForm struct {
	ID         uuid.UUID             `json:"id" gorm:"type:uuid;primaryKey"`
	FormID     uuid.UUID             `json:"form_id" gorm:"type:uuid;not null;index"`
	SessionID  string                `json:"-" gorm:"type:varchar(64)"`
	Values     []*SubmittedFormField `json:"values" gorm:"foreignKey:SubmittedFormID;constraint:OnDelete:CASCADE"`
	Unverified pq.StringArray        `json:"unverified,omitempty" gorm:"type:text[]"`
	CreatedAt  time.Time             `json:"created_at"`
}

func (s *SubmittedForm) TableName() string {
	return "submitted_forms"
}

func (s *SubmittedForm) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	s.CreatedAt = time.Now()
	return nil
}

// SubmittedFormField is the recorded answer of a single field.
type SubmittedFormField struct {
	ID              uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	SubmittedFormID uuid.UUID `json:"-" gorm:"type:uuid;not null;index"`
	Name            string    `json:"name" gorm:"type:varchar(255);not null"`
	Title           string    `json:"title" gorm:"type:varchar(255)"`
	Value           string    `json:"value" gorm:"type:text"`
}

func (s *SubmittedFormField) TableName() string {
	return "submitted_form_fields"
}

func (s *SubmittedFormField) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

//go:generate mockery --name=Repository --dir=. --output=./mocks --filename=submission_repository_mock.go --case=underscore --with-expecter
type Repository interface {
	Create(ctx context.Context, s *SubmittedForm) error
	ListByForm(ctx context.Context, formID uuid.UUID) ([]*SubmittedForm, error)
}
