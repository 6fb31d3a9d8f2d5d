package repository

import (
	"github.com/lshigami/fizzbuzz-game/internal/model"
	"gorm.io/gorm"
)

type RuleRepository interface {
	Create(rule *model.Rule) error
	FindAll() ([]model.Rule, error)
	FindActive() ([]model.Rule, error)
	FindByID(id uint) (*model.Rule, error)
	Update(rule *model.Rule) error
	Delete(id uint) error
	ExistsByDivisor(divisor int, excludeID *uint) (bool, error)
	CountActive() (int64, error)
}

type ruleRepository struct {
	db *gorm.DB
}

func NewRuleRepository(db *gorm.DB) RuleRepository {
	return &ruleRepository{db: db}
}

func (r *ruleRepository) Create(rule *model.Rule) error {
	return r.db.Create(rule).Error
}

func (r *ruleRepository) FindAll() ([]model.Rule, error) {
	var rules []model.Rule
	if err := r.db.Order("divisor ASC").Find(&rules).Error; err != nil {
		return nil, err
	}
	return rules, nil
}

func (r *ruleRepository) FindActive() ([]model.Rule, error) {
	var rules []model.Rule
	if err := r.db.Where("is_active = ?", true).Order("divisor ASC").Find(&rules).Error; err != nil {
		return nil, err
	}
	return rules, nil
}

func (r *ruleRepository) FindByID(id uint) (*model.Rule, error) {
	var rule model.Rule
	if err := r.db.First(&rule, id).Error; err != nil {
		return nil, err
	}
	return &rule, nil
}

func (r *ruleRepository) Update(rule *model.Rule) error {
	// Save writes all fields, including IsActive=false which Updates would skip.
	return r.db.Save(rule).Error
}

func (r *ruleRepository) Delete(id uint) error {
	return r.db.Delete(&model.Rule{}, id).Error
}

func (r *ruleRepository) ExistsByDivisor(divisor int, excludeID *uint) (bool, error) {
	var count int64
	query := r.db.Model(&model.Rule{}).Where("divisor = ?", divisor)
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *ruleRepository) CountActive() (int64, error) {
	var count int64
	err := r.db.Model(&model.Rule{}).Where("is_active = ?", true).Count(&count).Error
	return count, err
}
