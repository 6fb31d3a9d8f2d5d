package service

import (
	"strconv"
	"testing"

	"github.com/lshigami/fizzbuzz-game/internal/model"
	"github.com/stretchr/testify/assert"
)

func classicRules() []model.Rule {
	return []model.Rule{
		{ID: 1, Divisor: 3, ReplacementText: "Fizz", IsActive: true},
		{ID: 2, Divisor: 5, ReplacementText: "Buzz", IsActive: true},
	}
}

func TestApplyRules_Classic(t *testing.T) {
	rules := classicRules()

	tests := []struct {
		number   int
		expected string
	}{
		{3, "Fizz"},
		{5, "Buzz"},
		{15, "FizzBuzz"},
		{30, "FizzBuzz"},
		{7, "7"},
		{1, "1"},
		{100, "Buzz"},
		{99, "Fizz"},
	}

	for _, tt := range tests {
		t.Run(strconv.Itoa(tt.number), func(t *testing.T) {
			assert.Equal(t, tt.expected, ApplyRules(tt.number, rules))
		})
	}
}

func TestApplyRules_OrderIndependent(t *testing.T) {
	// Same rules supplied in reverse order: output still follows ascending divisors.
	reversed := []model.Rule{
		{ID: 2, Divisor: 5, ReplacementText: "Buzz", IsActive: true},
		{ID: 1, Divisor: 3, ReplacementText: "Fizz", IsActive: true},
	}
	assert.Equal(t, "FizzBuzz", ApplyRules(15, reversed))
}

func TestApplyRules_IgnoresInactiveRules(t *testing.T) {
	rules := []model.Rule{
		{ID: 1, Divisor: 3, ReplacementText: "Fizz", IsActive: true},
		{ID: 2, Divisor: 5, ReplacementText: "Buzz", IsActive: false},
	}
	assert.Equal(t, "Fizz", ApplyRules(15, rules))
	assert.Equal(t, "5", ApplyRules(5, rules))
}

func TestApplyRules_EmptyRuleSet(t *testing.T) {
	for _, n := range []int{1, 7, 15, 42, 100} {
		assert.Equal(t, strconv.Itoa(n), ApplyRules(n, nil))
	}
}

func TestApplyRules_SkipsZeroDivisorRule(t *testing.T) {
	// The API rejects zero divisors, but a row edited directly in the
	// database must not take the engine down.
	rules := []model.Rule{
		{ID: 1, Divisor: 0, ReplacementText: "Boom", IsActive: true},
		{ID: 2, Divisor: 3, ReplacementText: "Fizz", IsActive: true},
	}
	assert.Equal(t, "Fizz", ApplyRules(15, rules))
	assert.Equal(t, "7", ApplyRules(7, rules))
}

func TestApplyRules_ThreeMatchingRules(t *testing.T) {
	rules := []model.Rule{
		{ID: 3, Divisor: 7, ReplacementText: "Bang", IsActive: true},
		{ID: 1, Divisor: 3, ReplacementText: "Fizz", IsActive: true},
		{ID: 2, Divisor: 5, ReplacementText: "Buzz", IsActive: true},
	}
	assert.Equal(t, "FizzBuzzBang", ApplyRules(105, rules))
}
