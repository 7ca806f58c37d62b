package glib

import (
	"testing"
	"time"
)

func TestDeathConditionsSet(t *testing.T) {
	var d DeathConditions
	if !d.Empty() {
		t.Fatal("zero value should be empty")
	}
	d = d.With(DieAlphaBelow50).With(DieStrictTTL)
	if !d.Has(DieAlphaBelow50) || !d.Has(DieStrictTTL) || d.Has(DieAlphaBelow25) {
		t.Errorf("Has mismatch for %v", d)
	}
	got := d.Conditions()
	if len(got) != 2 || got[0] != DieStrictTTL || got[1] != DieAlphaBelow50 {
		t.Errorf("Conditions() = %v", got)
	}
	d = d.Without(DieStrictTTL)
	if d.Has(DieStrictTTL) {
		t.Error("Without did not remove")
	}
	if d.String() != "{alpha50}" {
		t.Errorf("String() = %q", d.String())
	}
	if d.With(deathConditionCount).Has(deathConditionCount) {
		t.Error("out-of-range condition should be ignored")
	}
}

func TestDefaultDeathConditions(t *testing.T) {
	if DefaultDeathConditions != NewDeathConditions(DieStrictTTL) {
		t.Errorf("default = %v, want {ttl}", DefaultDeathConditions)
	}
}

func TestParseDeathCondition(t *testing.T) {
	for c := DeathCondition(0); c < deathConditionCount; c++ {
		got, ok := ParseDeathCondition(c.String())
		if !ok || got != c {
			t.Errorf("round trip of %v = %v, %v", c, got, ok)
		}
	}
	if _, ok := ParseDeathCondition("alpha10"); ok {
		t.Error("unknown name should fail")
	}
	if DeathCondition(200).String() != "unknown" {
		t.Error("out-of-range String should be unknown")
	}
}

func TestDeathConditionsMet(t *testing.T) {
	thresholds := []struct {
		cond  DeathCondition
		alpha uint8
	}{
		{DieAlphaBelow25, 25},
		{DieAlphaBelow50, 50},
		{DieAlphaBelow75, 75},
		{DieAlphaBelow100, 100},
		{DieAlphaBelow125, 125},
		{DieAlphaBelow150, 150},
		{DieAlphaBelow175, 175},
	}
	for _, tt := range thresholds {
		t.Run(tt.cond.String(), func(t *testing.T) {
			d := NewDeathConditions(tt.cond)
			p := &Particle{TTL: time.Second}
			p.Tint.A = tt.alpha + 1
			if d.Met(p) {
				t.Errorf("alpha %d should not meet %v", p.Tint.A, tt.cond)
			}
			p.Tint.A = tt.alpha
			if !d.Met(p) {
				t.Errorf("alpha %d should meet %v", p.Tint.A, tt.cond)
			}
		})
	}

	ttl := NewDeathConditions(DieStrictTTL)
	for _, tc := range []struct {
		ttl  time.Duration
		dead bool
	}{{time.Millisecond, false}, {0, true}, {-time.Millisecond, true}} {
		p := &Particle{TTL: tc.ttl, Tint: ColorWhite}
		if got := ttl.Met(p); got != tc.dead {
			t.Errorf("TTL %v: Met = %v, want %v", tc.ttl, got, tc.dead)
		}
	}

	// Combined: either condition suffices.
	both := NewDeathConditions(DieStrictTTL, DieAlphaBelow100)
	if !both.Met(&Particle{TTL: time.Second, Tint: Color{A: 90}}) {
		t.Error("alpha alone should satisfy a combined set")
	}
	if !both.Met(&Particle{TTL: 0, Tint: ColorWhite}) {
		t.Error("TTL alone should satisfy a combined set")
	}
	if (DeathConditions{}).Met(&Particle{TTL: -time.Hour}) {
		t.Error("empty set should never be met")
	}
}
