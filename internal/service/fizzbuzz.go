package service

import (
	"sort"
	"strconv"
	"strings"

	"github.com/lshigami/fizzbuzz-game/internal/model"
)

// ApplyRules computes the expected answer for number: the concatenation of
// the replacement texts of every active rule whose divisor divides number,
// in ascending divisor order. When no rule matches, the answer is the
// decimal form of number. Input ordering of rules does not matter.
func ApplyRules(number int, rules []model.Rule) string {
	active := make([]model.Rule, 0, len(rules))
	for _, r := range rules {
		// A zero divisor can only come from a row edited outside the API;
		// it cannot match anything and would panic the modulo below.
		if r.IsActive && r.Divisor != 0 {
			active = append(active, r)
		}
	}
	sort.Slice(active, func(i, j int) bool { return active[i].Divisor < active[j].Divisor })

	var sb strings.Builder
	matched := false
	for _, r := range active {
		if number%r.Divisor == 0 {
			sb.WriteString(r.ReplacementText)
			matched = true
		}
	}
	if !matched {
		return strconv.Itoa(number)
	}
	return sb.String()
}
