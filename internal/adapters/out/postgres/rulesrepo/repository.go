package rulesrepo

import (
	"context"
	"errors"
	"strconv"

	"paneltrack/internal/core/domain/model/rules"
	"paneltrack/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRuleSetRepository implements RuleSetRepository using GORM.
type GormRuleSetRepository struct {
	db *gorm.DB
}

// NewGormRuleSetRepository creates a new GORM rule set repository.
func NewGormRuleSetRepository(db *gorm.DB) *GormRuleSetRepository {
	return &GormRuleSetRepository{db: db}
}

// Add persists a new rule set version.
func (r *GormRuleSetRepository) Add(ctx context.Context, ruleSet rules.ClosureRuleSet) error {
	if err := ruleSet.Validate(); err != nil {
		return err
	}

	dto := fromDomain(ruleSet)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetCurrent retrieves the rule set with the highest version.
func (r *GormRuleSetRepository) GetCurrent(ctx context.Context) (rules.ClosureRuleSet, error) {
	var dto RuleSetDTO
	err := r.db.WithContext(ctx).Order("version DESC").First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return rules.ClosureRuleSet{}, errs.NewObjectNotFoundError("ruleSet", "current")
		}
		return rules.ClosureRuleSet{}, err
	}

	return toDomain(dto)
}

// GetByVersion retrieves a specific rule set version.
func (r *GormRuleSetRepository) GetByVersion(ctx context.Context, version int) (rules.ClosureRuleSet, error) {
	if version <= 0 {
		return rules.ClosureRuleSet{}, errs.NewVersionIsInvalidError("version")
	}

	var dto RuleSetDTO
	err := r.db.WithContext(ctx).First(&dto, "version = ?", version).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return rules.ClosureRuleSet{}, errs.NewObjectNotFoundError("ruleSet", strconv.Itoa(version))
		}
		return rules.ClosureRuleSet{}, err
	}

	return toDomain(dto)
}
