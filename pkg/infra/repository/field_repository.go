package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/NeuralTrust/FormGuard/pkg/domain"
	"github.com/NeuralTrust/FormGuard/pkg/domain/field"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// fieldRepository stores every registered field type in its own table. The
// registry tells it which tables exist.
type fieldRepository struct {
	db       *gorm.DB
	registry *field.Registry
}

func NewFieldRepository(db *gorm.DB, registry *field.Registry) field.Repository {
	return &fieldRepository{
		db:       db,
		registry: registry,
	}
}

func (r *fieldRepository) Save(ctx context.Context, f field.Editable) error {
	if f.Base().ID == uuid.Nil {
		return fmt.Errorf("field of type %s has no id, OnBeforeWrite must run first", f.FieldType())
	}
	if err := r.db.WithContext(ctx).Save(f).Error; err != nil {
		return fmt.Errorf("failed to save %s field: %w", f.FieldType(), err)
	}
	return nil
}

func (r *fieldRepository) Get(ctx context.Context, id uuid.UUID) (field.Editable, error) {
	for _, fieldType := range r.registry.Types() {
		entity, err := r.registry.New(fieldType)
		if err != nil {
			return nil, err
		}
		err = r.db.WithContext(ctx).First(entity, "id = ?", id).Error
		if err == nil {
			return entity, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to load %s field: %w", fieldType, err)
		}
	}
	return nil, domain.NewNotFoundError("field", id)
}

// ListByForm returns the fields of a form across every type, ordered by sort.
func (r *fieldRepository) ListByForm(ctx context.Context, formID uuid.UUID) ([]field.Editable, error) {
	var out []field.Editable
	for _, fieldType := range r.registry.Types() {
		fields, err := r.listType(ctx, fieldType, formID)
		if err != nil {
			return nil, err
		}
		out = append(out, fields...)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Base().Sort < out[j].Base().Sort
	})
	return out, nil
}

func (r *fieldRepository) listType(ctx context.Context, fieldType string, formID uuid.UUID) ([]field.Editable, error) {
	model, err := r.registry.New(fieldType)
	if err != nil {
		return nil, err
	}
	rows, err := r.db.WithContext(ctx).Model(model).Where("form_id = ?", formID).Order("sort").Rows()
	if err != nil {
		return nil, fmt.Errorf("failed to list %s fields: %w", fieldType, err)
	}
	defer rows.Close()

	var out []field.Editable
	for rows.Next() {
		entity, err := r.registry.New(fieldType)
		if err != nil {
			return nil, err
		}
		if err := r.db.ScanRows(rows, entity); err != nil {
			return nil, fmt.Errorf("failed to scan %s field: %w", fieldType, err)
		}
		out = append(out, entity)
	}
	return out, rows.Err()
}

// Delete removes the field and its display rules.
func (r *fieldRepository) Delete(ctx context.Context, id uuid.UUID) error {
	entity, err := r.Get(ctx, id)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("parent_id = ?", id).Delete(&field.DisplayRule{}).Error; err != nil {
			return err
		}
		return tx.Delete(entity).Error
	})
}
