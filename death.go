package glib

import "strings"

// DeathCondition is one criterion under which a particle is marked dead.
type DeathCondition uint8

const (
	DieStrictTTL     DeathCondition = iota // time-to-live <= 0
	DieAlphaBelow25                        // tint alpha <= 25
	DieAlphaBelow50                        // tint alpha <= 50
	DieAlphaBelow75                        // tint alpha <= 75
	DieAlphaBelow100                       // tint alpha <= 100
	DieAlphaBelow125                       // tint alpha <= 125
	DieAlphaBelow150                       // tint alpha <= 150
	DieAlphaBelow175                       // tint alpha <= 175

	deathConditionCount
)

var deathConditionNames = [deathConditionCount]string{
	"ttl", "alpha25", "alpha50", "alpha75", "alpha100", "alpha125", "alpha150", "alpha175",
}

func alphaAtMost(threshold uint8) func(*Particle) bool {
	return func(p *Particle) bool { return p.Tint.A <= threshold }
}

// deathPredicates maps each condition to its test against particle state.
var deathPredicates = [deathConditionCount]func(*Particle) bool{
	DieStrictTTL:     func(p *Particle) bool { return p.TTL <= 0 },
	DieAlphaBelow25:  alphaAtMost(25),
	DieAlphaBelow50:  alphaAtMost(50),
	DieAlphaBelow75:  alphaAtMost(75),
	DieAlphaBelow100: alphaAtMost(100),
	DieAlphaBelow125: alphaAtMost(125),
	DieAlphaBelow150: alphaAtMost(150),
	DieAlphaBelow175: alphaAtMost(175),
}

// String returns the config name of the condition.
func (c DeathCondition) String() string {
	if c >= deathConditionCount {
		return "unknown"
	}
	return deathConditionNames[c]
}

// ParseDeathCondition maps a config name back to its condition.
func ParseDeathCondition(name string) (DeathCondition, bool) {
	for i, n := range deathConditionNames {
		if n == name {
			return DeathCondition(i), true
		}
	}
	return 0, false
}

// DeathConditions is a combinable set of death conditions. The zero value is
// the empty set; a particle with an empty set never dies on its own.
type DeathConditions struct {
	set [deathConditionCount]bool
}

// DefaultDeathConditions is the set a reset particle carries.
var DefaultDeathConditions = NewDeathConditions(DieStrictTTL)

// NewDeathConditions returns a set holding the given conditions.
func NewDeathConditions(conds ...DeathCondition) DeathConditions {
	var d DeathConditions
	for _, c := range conds {
		d = d.With(c)
	}
	return d
}

// With returns a copy of d that also holds c.
func (d DeathConditions) With(c DeathCondition) DeathConditions {
	if c < deathConditionCount {
		d.set[c] = true
	}
	return d
}

// Without returns a copy of d that no longer holds c.
func (d DeathConditions) Without(c DeathCondition) DeathConditions {
	if c < deathConditionCount {
		d.set[c] = false
	}
	return d
}

// Has reports whether c is in the set.
func (d DeathConditions) Has(c DeathCondition) bool {
	return c < deathConditionCount && d.set[c]
}

// Empty reports whether the set holds no conditions.
func (d DeathConditions) Empty() bool {
	for _, on := range d.set {
		if on {
			return false
		}
	}
	return true
}

// Conditions lists the held conditions in declaration order.
func (d DeathConditions) Conditions() []DeathCondition {
	var out []DeathCondition
	for i, on := range d.set {
		if on {
			out = append(out, DeathCondition(i))
		}
	}
	return out
}

// Met reports whether any held condition is satisfied by p.
func (d DeathConditions) Met(p *Particle) bool {
	for i, on := range d.set {
		if on && deathPredicates[i](p) {
			return true
		}
	}
	return false
}

func (d DeathConditions) String() string {
	conds := d.Conditions()
	names := make([]string, len(conds))
	for i, c := range conds {
		names[i] = c.String()
	}
	return "{" + strings.Join(names, ",") + "}"
}
