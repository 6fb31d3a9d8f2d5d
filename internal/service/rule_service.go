package service

import (
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/lshigami/fizzbuzz-game/internal/dto"
	"github.com/lshigami/fizzbuzz-game/internal/model"
	"github.com/lshigami/fizzbuzz-game/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// RuleService manages the rule set behind the game. It owns the two rule
// invariants: divisors are unique across all rules, and a delete may never
// remove the last active rule. Deactivating the last active rule through an
// update is deliberately not blocked; only delete is.
type RuleService interface {
	GetAllRules() ([]dto.RuleResponseDTO, error)
	GetActiveRules() ([]dto.RuleResponseDTO, error)
	ActiveRules() ([]model.Rule, error)
	GetRuleByID(id uint) (*dto.RuleResponseDTO, error)
	CreateRule(req dto.RuleCreateDTO) (*dto.RuleResponseDTO, error)
	UpdateRule(id uint, req dto.RuleUpdateDTO) (*dto.RuleResponseDTO, error)
	DeleteRule(id uint) error
}

type ruleService struct {
	ruleRepo repository.RuleRepository
}

func NewRuleService(ruleRepo repository.RuleRepository) RuleService {
	return &ruleService{ruleRepo: ruleRepo}
}

func (s *ruleService) GetAllRules() ([]dto.RuleResponseDTO, error) {
	rules, err := s.ruleRepo.FindAll()
	if err != nil {
		log.Error().Err(err).Msg("Failed to fetch rules from repository")
		return nil, fmt.Errorf("error fetching rules: %w", err)
	}
	return toRuleDTOs(rules), nil
}

func (s *ruleService) GetActiveRules() ([]dto.RuleResponseDTO, error) {
	rules, err := s.ActiveRules()
	if err != nil {
		return nil, err
	}
	return toRuleDTOs(rules), nil
}

// ActiveRules returns the active rule models ordered by divisor, for the
// game engine to apply.
func (s *ruleService) ActiveRules() ([]model.Rule, error) {
	rules, err := s.ruleRepo.FindActive()
	if err != nil {
		log.Error().Err(err).Msg("Failed to fetch active rules from repository")
		return nil, fmt.Errorf("error fetching active rules: %w", err)
	}
	return rules, nil
}

func (s *ruleService) GetRuleByID(id uint) (*dto.RuleResponseDTO, error) {
	rule, err := s.ruleRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRuleNotFound
		}
		log.Error().Err(err).Uint("ruleID", id).Msg("Failed to fetch rule from repository")
		return nil, fmt.Errorf("error fetching rule %d: %w", id, err)
	}
	return toRuleDTO(rule), nil
}

func (s *ruleService) CreateRule(req dto.RuleCreateDTO) (*dto.RuleResponseDTO, error) {
	exists, err := s.ruleRepo.ExistsByDivisor(req.Divisor, nil)
	if err != nil {
		log.Error().Err(err).Msg("Failed to check divisor uniqueness")
		return nil, fmt.Errorf("error checking divisor uniqueness: %w", err)
	}
	if exists {
		return nil, &ConflictError{Divisor: req.Divisor}
	}

	rule := model.Rule{
		Divisor:         req.Divisor,
		ReplacementText: req.ReplacementText,
		IsActive:        req.IsActive,
	}
	if err := s.ruleRepo.Create(&rule); err != nil {
		log.Error().Err(err).Int("divisor", req.Divisor).Msg("Failed to create rule")
		return nil, fmt.Errorf("error creating rule: %w", err)
	}
	return toRuleDTO(&rule), nil
}

func (s *ruleService) UpdateRule(id uint, req dto.RuleUpdateDTO) (*dto.RuleResponseDTO, error) {
	rule, err := s.ruleRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRuleNotFound
		}
		log.Error().Err(err).Uint("ruleID", id).Msg("Failed to fetch rule for update")
		return nil, fmt.Errorf("error fetching rule %d: %w", id, err)
	}

	if req.Divisor != nil && *req.Divisor != rule.Divisor {
		exists, err := s.ruleRepo.ExistsByDivisor(*req.Divisor, &id)
		if err != nil {
			log.Error().Err(err).Msg("Failed to check divisor uniqueness")
			return nil, fmt.Errorf("error checking divisor uniqueness: %w", err)
		}
		if exists {
			return nil, &ConflictError{Divisor: *req.Divisor}
		}
	}

	if req.Divisor != nil {
		rule.Divisor = *req.Divisor
	}
	if req.ReplacementText != nil && *req.ReplacementText != "" {
		rule.ReplacementText = *req.ReplacementText
	}
	if req.IsActive != nil {
		rule.IsActive = *req.IsActive
	}

	if err := s.ruleRepo.Update(rule); err != nil {
		log.Error().Err(err).Uint("ruleID", id).Msg("Failed to update rule")
		return nil, fmt.Errorf("error updating rule %d: %w", id, err)
	}
	return toRuleDTO(rule), nil
}

func (s *ruleService) DeleteRule(id uint) error {
	rule, err := s.ruleRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRuleNotFound
		}
		log.Error().Err(err).Uint("ruleID", id).Msg("Failed to fetch rule for delete")
		return fmt.Errorf("error fetching rule %d: %w", id, err)
	}

	if rule.IsActive {
		activeCount, err := s.ruleRepo.CountActive()
		if err != nil {
			log.Error().Err(err).Msg("Failed to count active rules")
			return fmt.Errorf("error counting active rules: %w", err)
		}
		if activeCount <= 1 {
			return ErrLastActiveRule
		}
	}

	if err := s.ruleRepo.Delete(id); err != nil {
		log.Error().Err(err).Uint("ruleID", id).Msg("Failed to delete rule")
		return fmt.Errorf("error deleting rule %d: %w", id, err)
	}
	return nil
}

func toRuleDTO(rule *model.Rule) *dto.RuleResponseDTO {
	var resp dto.RuleResponseDTO
	copier.Copy(&resp, rule)
	return &resp
}

func toRuleDTOs(rules []model.Rule) []dto.RuleResponseDTO {
	dtos := make([]dto.RuleResponseDTO, 0, len(rules))
	copier.Copy(&dtos, &rules)
	return dtos
}
