package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/NeuralTrust/FormGuard/pkg/domain"
	"github.com/NeuralTrust/FormGuard/pkg/domain/form"
	"github.com/NeuralTrust/FormGuard/pkg/infra/cache"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const formCacheTTL = 30 * time.Second

type formRepository struct {
	db        *gorm.DB
	bySegment *cache.TTLMap[*form.Form]
}

// NewFormRepository returns a form repository. Lookups by URL segment, which
// every public request performs, are served from a short lived local cache.
func NewFormRepository(db *gorm.DB) form.Repository {
	return &formRepository{
		db:        db,
		bySegment: cache.NewTTLMap[*form.Form](formCacheTTL),
	}
}

func (r *formRepository) Save(ctx context.Context, f *form.Form) error {
	f.URLSegment = form.FormatURLSegment(f.URLSegment)
	if f.URLSegment == "" {
		return domain.ErrURLSegmentRequired
	}

	var err error
	if f.ID == uuid.Nil {
		err = r.db.WithContext(ctx).Create(f).Error
	} else {
		err = r.db.WithContext(ctx).Save(f).Error
	}
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: %s", domain.ErrURLSegmentTaken, f.URLSegment)
		}
		return fmt.Errorf("failed to save form: %w", err)
	}

	id := f.ID
	r.bySegment.DeleteFunc(func(cached *form.Form) bool { return cached.ID == id })
	return nil
}

func (r *formRepository) Get(ctx context.Context, id uuid.UUID) (*form.Form, error) {
	var entity form.Form
	if err := r.db.WithContext(ctx).First(&entity, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("form", id)
		}
		return nil, err
	}
	return &entity, nil
}

func (r *formRepository) GetByURLSegment(ctx context.Context, segment string) (*form.Form, error) {
	segment = form.FormatURLSegment(segment)
	if cached, ok := r.bySegment.Get(segment); ok {
		copied := *cached
		return &copied, nil
	}

	var entity form.Form
	if err := r.db.WithContext(ctx).First(&entity, "url_segment = ?", segment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundByKeyError("form", segment)
		}
		return nil, err
	}
	cached := entity
	r.bySegment.Set(segment, &cached)
	return &entity, nil
}
