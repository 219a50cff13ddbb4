package repository

import (
	"context"

	"github.com/NeuralTrust/FormGuard/pkg/domain/field"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type displayRuleRepository struct {
	db *gorm.DB
}

func NewDisplayRuleRepository(db *gorm.DB) field.DisplayRuleRepository {
	return &displayRuleRepository{
		db: db,
	}
}

func (r *displayRuleRepository) Create(ctx context.Context, rule *field.DisplayRule) error {
	return r.db.WithContext(ctx).Create(rule).Error
}

func (r *displayRuleRepository) ListByField(ctx context.Context, fieldID uuid.UUID) ([]*field.DisplayRule, error) {
	var rules []*field.DisplayRule
	if err := r.db.WithContext(ctx).Where("parent_id = ?", fieldID).Order("created_at").Find(&rules).Error; err != nil {
		return nil, err
	}
	return rules, nil
}

func (r *displayRuleRepository) DeleteByField(ctx context.Context, fieldID uuid.UUID) error {
	return r.db.WithContext(ctx).Where("parent_id = ?", fieldID).Delete(&field.DisplayRule{}).Error
}
