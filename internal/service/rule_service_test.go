package service

import (
	"fmt"
	"testing"

	"github.com/lshigami/fizzbuzz-game/internal/dto"
	"github.com/lshigami/fizzbuzz-game/internal/model"
	"github.com/lshigami/fizzbuzz-game/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Rule{}))
	return db
}

func newRuleService(t *testing.T) RuleService {
	t.Helper()
	return NewRuleService(repository.NewRuleRepository(newTestDB(t)))
}

func ptr[T any](v T) *T { return &v }

func mustCreate(t *testing.T, svc RuleService, divisor int, text string, active bool) *dto.RuleResponseDTO {
	t.Helper()
	rule, err := svc.CreateRule(dto.RuleCreateDTO{Divisor: divisor, ReplacementText: text, IsActive: active})
	require.NoError(t, err)
	return rule
}

func TestCreateRule(t *testing.T) {
	svc := newRuleService(t)

	rule := mustCreate(t, svc, 3, "Fizz", true)
	assert.NotZero(t, rule.ID)
	assert.Equal(t, 3, rule.Divisor)
	assert.Equal(t, "Fizz", rule.ReplacementText)
	assert.True(t, rule.IsActive)
	assert.False(t, rule.CreatedAt.IsZero())
	assert.False(t, rule.UpdatedAt.IsZero())
}

func TestCreateRule_DuplicateDivisor(t *testing.T) {
	svc := newRuleService(t)
	mustCreate(t, svc, 3, "Fizz", true)

	// Uniqueness holds regardless of active status.
	_, err := svc.CreateRule(dto.RuleCreateDTO{Divisor: 3, ReplacementText: "Whizz", IsActive: false})
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, 3, conflict.Divisor)
	assert.Contains(t, conflict.Error(), "3")
}

func TestGetAllRules_OrderedByDivisor(t *testing.T) {
	svc := newRuleService(t)
	mustCreate(t, svc, 7, "Bang", true)
	mustCreate(t, svc, 3, "Fizz", false)
	mustCreate(t, svc, 5, "Buzz", true)

	rules, err := svc.GetAllRules()
	require.NoError(t, err)
	require.Len(t, rules, 3)
	assert.Equal(t, []int{3, 5, 7}, []int{rules[0].Divisor, rules[1].Divisor, rules[2].Divisor})
}

func TestGetActiveRules_ExcludesInactive(t *testing.T) {
	svc := newRuleService(t)
	mustCreate(t, svc, 3, "Fizz", true)
	mustCreate(t, svc, 5, "Buzz", false)

	rules, err := svc.GetActiveRules()
	require.NoError(t, err)
	require.Len(t, rules, 1)
	assert.Equal(t, 3, rules[0].Divisor)
}

func TestGetRuleByID_NotFound(t *testing.T) {
	svc := newRuleService(t)
	_, err := svc.GetRuleByID(42)
	assert.ErrorIs(t, err, ErrRuleNotFound)
}

func TestUpdateRule_PartialFields(t *testing.T) {
	svc := newRuleService(t)
	created := mustCreate(t, svc, 3, "Fizz", true)

	updated, err := svc.UpdateRule(created.ID, dto.RuleUpdateDTO{ReplacementText: ptr("Whizz")})
	require.NoError(t, err)
	assert.Equal(t, "Whizz", updated.ReplacementText)
	assert.Equal(t, 3, updated.Divisor)
	assert.True(t, updated.IsActive)
}

func TestUpdateRule_EmptyReplacementTextIgnored(t *testing.T) {
	svc := newRuleService(t)
	created := mustCreate(t, svc, 3, "Fizz", true)

	updated, err := svc.UpdateRule(created.ID, dto.RuleUpdateDTO{ReplacementText: ptr(""), IsActive: ptr(false)})
	require.NoError(t, err)
	assert.Equal(t, "Fizz", updated.ReplacementText)
	assert.False(t, updated.IsActive)
}

func TestUpdateRule_DivisorConflict(t *testing.T) {
	svc := newRuleService(t)
	mustCreate(t, svc, 3, "Fizz", true)
	other := mustCreate(t, svc, 5, "Buzz", true)

	_, err := svc.UpdateRule(other.ID, dto.RuleUpdateDTO{Divisor: ptr(3)})
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, 3, conflict.Divisor)
}

func TestUpdateRule_SameDivisorNoConflict(t *testing.T) {
	svc := newRuleService(t)
	created := mustCreate(t, svc, 3, "Fizz", true)

	updated, err := svc.UpdateRule(created.ID, dto.RuleUpdateDTO{Divisor: ptr(3), ReplacementText: ptr("Whizz")})
	require.NoError(t, err)
	assert.Equal(t, "Whizz", updated.ReplacementText)
}

func TestUpdateRule_NotFound(t *testing.T) {
	svc := newRuleService(t)
	_, err := svc.UpdateRule(42, dto.RuleUpdateDTO{IsActive: ptr(false)})
	assert.ErrorIs(t, err, ErrRuleNotFound)
}

func TestUpdateRule_DeactivatingLastActiveRuleAllowed(t *testing.T) {
	// Only delete protects the last active rule; deactivation via update is allowed.
	svc := newRuleService(t)
	created := mustCreate(t, svc, 3, "Fizz", true)

	updated, err := svc.UpdateRule(created.ID, dto.RuleUpdateDTO{IsActive: ptr(false)})
	require.NoError(t, err)
	assert.False(t, updated.IsActive)
}

func TestDeleteRule_LastActiveRejected(t *testing.T) {
	svc := newRuleService(t)
	created := mustCreate(t, svc, 3, "Fizz", true)
	mustCreate(t, svc, 5, "Buzz", false)

	err := svc.DeleteRule(created.ID)
	assert.ErrorIs(t, err, ErrLastActiveRule)

	// Still there.
	_, err = svc.GetRuleByID(created.ID)
	assert.NoError(t, err)
}

func TestDeleteRule_NonLastActive(t *testing.T) {
	svc := newRuleService(t)
	first := mustCreate(t, svc, 3, "Fizz", true)
	mustCreate(t, svc, 5, "Buzz", true)

	require.NoError(t, svc.DeleteRule(first.ID))
	_, err := svc.GetRuleByID(first.ID)
	assert.ErrorIs(t, err, ErrRuleNotFound)
}

func TestDeleteRule_InactiveRule(t *testing.T) {
	svc := newRuleService(t)
	mustCreate(t, svc, 3, "Fizz", true)
	inactive := mustCreate(t, svc, 5, "Buzz", false)

	assert.NoError(t, svc.DeleteRule(inactive.ID))
}

func TestDeleteRule_NotFound(t *testing.T) {
	svc := newRuleService(t)
	assert.ErrorIs(t, svc.DeleteRule(42), ErrRuleNotFound)
}

func TestDeleteRule_DivisorReusableAfterDelete(t *testing.T) {
	svc := newRuleService(t)
	mustCreate(t, svc, 3, "Fizz", true)
	victim := mustCreate(t, svc, 5, "Buzz", true)

	require.NoError(t, svc.DeleteRule(victim.ID))
	recreated, err := svc.CreateRule(dto.RuleCreateDTO{Divisor: 5, ReplacementText: "Buzz", IsActive: true})
	require.NoError(t, err)
	assert.Equal(t, 5, recreated.Divisor)
}
