package capacity

import (
	"fmt"
	"math"
	"strings"
)

var inf = math.Inf(1)

// CheckKind identifies a design limit evaluated on a trial footing
type CheckKind string

const (
	Bearing       CheckKind = "bearing"
	OneWayShear   CheckKind = "one-way shear"
	OneWayShearL  CheckKind = "one-way shear (length)"
	OneWayShearW  CheckKind = "one-way shear (width)"
	PunchingShear CheckKind = "punching shear"
	Flexure       CheckKind = "flexure"
)

// Check holds the outcome of a single design limit
type Check struct {
	Kind     CheckKind
	Demand   float64 // lb, psf or in-lb depending on kind
	Capacity float64 // same unit as Demand
	Passed   bool
}

// Ratio returns demand over capacity; a non-positive capacity is reported as +Inf
func (c Check) Ratio() float64 {
	if c.Capacity <= 0 {
		if c.Demand <= 0 {
			return 0
		}
		return inf
	}
	return c.Demand / c.Capacity
}

func (c Check) String() string {
	status := "OK"
	if !c.Passed {
		status = "NG"
	}
	return fmt.Sprintf("%s: demand %.0f, capacity %.0f (%s)", c.Kind, c.Demand, c.Capacity, status)
}

// NewCheck builds a check that passes when demand does not exceed capacity.
// A negative or zero capacity against positive demand always fails.
func NewCheck(kind CheckKind, demand, capacity float64) Check {
	passed := demand <= capacity
	if capacity <= 0 && demand > 0 {
		passed = false
	}
	return Check{Kind: kind, Demand: demand, Capacity: capacity, Passed: passed}
}

// CheckResult is the per-trial outcome of every applicable check
type CheckResult struct {
	Checks []Check
}

// Add appends a check to the result
func (r *CheckResult) Add(c Check) {
	r.Checks = append(r.Checks, c)
}

// Passed reports whether every check passed
func (r CheckResult) Passed() bool {
	for _, c := range r.Checks {
		if !c.Passed {
			return false
		}
	}
	return true
}

// Governing returns the most restrictive check (highest demand/capacity ratio)
func (r CheckResult) Governing() (Check, bool) {
	if len(r.Checks) == 0 {
		return Check{}, false
	}
	gov := r.Checks[0]
	for _, c := range r.Checks[1:] {
		if c.Ratio() > gov.Ratio() {
			gov = c
		}
	}
	return gov, true
}

// Find returns the check of the given kind
func (r CheckResult) Find(kind CheckKind) (Check, bool) {
	for _, c := range r.Checks {
		if c.Kind == kind {
			return c, true
		}
	}
	return Check{}, false
}

// Failed lists the kinds of all failing checks
func (r CheckResult) Failed() []CheckKind {
	var kinds []CheckKind
	for _, c := range r.Checks {
		if !c.Passed {
			kinds = append(kinds, c.Kind)
		}
	}
	return kinds
}

func (r CheckResult) String() string {
	parts := make([]string, 0, len(r.Checks))
	for _, c := range r.Checks {
		parts = append(parts, c.String())
	}
	return strings.Join(parts, "; ")
}
