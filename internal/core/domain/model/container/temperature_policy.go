package container

import (
	"errors"
	"fmt"
	"math"

	"shipping/internal/pkg/errs"
)

const (
	// MaxRefrigeratedCelsius is the warmest temperature a refrigerated container may hold.
	MaxRefrigeratedCelsius = 4.0
	// MinHeatedCelsius is the coldest temperature a heated refrigerated container may hold.
	MinHeatedCelsius = -20.0
)

// ErrTemperatureOutOfRange is carried by every rejected temperature write.
var ErrTemperatureOutOfRange = errors.New("temperature out of range")

// TemperatureRule is a single bound on a Celsius value.
type TemperatureRule struct {
	name     string
	limit    float64
	violates func(celsius, limit float64) bool
	relation string
}

// MaxCelsius rejects values strictly above limit.
func MaxCelsius(limit float64) TemperatureRule {
	return TemperatureRule{
		name:     "max_celsius",
		limit:    limit,
		violates: func(celsius, limit float64) bool { return celsius > limit },
		relation: "exceeds maximum",
	}
}

// MinCelsius rejects values strictly below limit.
func MinCelsius(limit float64) TemperatureRule {
	return TemperatureRule{
		name:     "min_celsius",
		limit:    limit,
		violates: func(celsius, limit float64) bool { return celsius < limit },
		relation: "is below minimum",
	}
}

func (r TemperatureRule) Name() string {
	return r.name
}

func (r TemperatureRule) Limit() float64 {
	return r.limit
}

// Check returns an error wrapping ErrTemperatureOutOfRange when celsius breaks the rule.
func (r TemperatureRule) Check(celsius float64) error {
	if r.violates(celsius, r.limit) {
		return errs.NewValueIsInvalidErrorWithCause(
			"celsius",
			fmt.Errorf("%w: %g %s %g", ErrTemperatureOutOfRange, celsius, r.relation, r.limit),
		)
	}
	return nil
}

// TemperaturePolicy is an ordered chain of rules. Rules added by Extend run
// before the rules they extend, so the most specific bound is reported first.
type TemperaturePolicy struct {
	rules []TemperatureRule
}

func NewTemperaturePolicy(rules ...TemperatureRule) TemperaturePolicy {
	return TemperaturePolicy{rules: append([]TemperatureRule(nil), rules...)}
}

// RefrigeratedPolicy allows anything up to MaxRefrigeratedCelsius.
func RefrigeratedPolicy() TemperaturePolicy {
	return NewTemperaturePolicy(MaxCelsius(MaxRefrigeratedCelsius))
}

// HeatedRefrigeratedPolicy adds MinHeatedCelsius in front of RefrigeratedPolicy.
func HeatedRefrigeratedPolicy() TemperaturePolicy {
	return RefrigeratedPolicy().Extend(MinCelsius(MinHeatedCelsius))
}

// Extend returns a new policy that evaluates rule first and then p's rules.
func (p TemperaturePolicy) Extend(rule TemperatureRule) TemperaturePolicy {
	rules := make([]TemperatureRule, 0, len(p.rules)+1)
	rules = append(rules, rule)
	rules = append(rules, p.rules...)
	return TemperaturePolicy{rules: rules}
}

// Check rejects non-finite values, then evaluates the rules in order and
// returns the first violation.
func (p TemperaturePolicy) Check(celsius float64) error {
	if math.IsNaN(celsius) || math.IsInf(celsius, 0) {
		return errs.NewValueIsInvalidErrorWithCause(
			"celsius",
			fmt.Errorf("%w: %g is not a finite temperature", ErrTemperatureOutOfRange, celsius),
		)
	}

	for _, rule := range p.rules {
		if err := rule.Check(celsius); err != nil {
			return err
		}
	}

	return nil
}

// Rules returns the rule names in evaluation order.
func (p TemperaturePolicy) Rules() []string {
	names := make([]string, len(p.rules))
	for i, rule := range p.rules {
		names[i] = rule.name
	}
	return names
}

// Bounds returns the tightest lower and upper limit of the policy; an absent
// bound is reported as an infinity.
func (p TemperaturePolicy) Bounds() (float64, float64) {
	lower, upper := math.Inf(-1), math.Inf(1)
	for _, rule := range p.rules {
		switch rule.name {
		case "min_celsius":
			lower = max(lower, rule.limit)
		case "max_celsius":
			upper = min(upper, rule.limit)
		}
	}
	return lower, upper
}
