package form

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockery --name=Repository --dir=. --output=./mocks --filename=form_repository_mock.go --case=underscore --with-expecter
type Repository interface {
	Save(ctx context.Context, form *Form) error
	Get(ctx context.Context, id uuid.UUID) (*Form, error)
	GetByURLSegment(ctx context.Context, segment string) (*Form, error)
}
