package field

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockery --name=Repository --dir=. --output=./mocks --filename=field_repository_mock.go --case=underscore --with-expecter
type Repository interface {
	Save(ctx context.Context, f Editable) error
	Get(ctx context.Context, id uuid.UUID) (Editable, error)
	ListByForm(ctx context.Context, formID uuid.UUID) ([]Editable, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
