package glib

import (
	_ "embed"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Effect kinds.
const (
	KindRandom = "random"
	KindBurst  = "burst"
)

// Config holds a pool size and a set of named effect definitions.
type Config struct {
	Pool    PoolConfig              `yaml:"pool"`
	Effects map[string]EffectConfig `yaml:"effects"`
}

// EffectConfig defines one effect: its generator and the engine that drives
// it. Fields not used by the chosen Kind are ignored.
type EffectConfig struct {
	Kind    string   `yaml:"kind"`  // "random" or "burst"
	Count   int      `yaml:"count"` // particles per burst
	Cadence int      `yaml:"cadence"`
	Offset  Vec2     `yaml:"offset"`
	Deaths  []string `yaml:"deaths"` // death condition names, default ["ttl"]
	Blend   string   `yaml:"blend"`

	// random
	MinTTL       time.Duration `yaml:"min_ttl"`
	MaxTTL       time.Duration `yaml:"max_ttl"`
	MinDecay     float64       `yaml:"min_decay"`
	UniformDecay bool          `yaml:"uniform_decay"`

	// burst
	Speed Range         `yaml:"speed"`
	Ease  string        `yaml:"ease"`
	Spin  float64       `yaml:"spin"`
	TTL   time.Duration `yaml:"ttl"`
	Tint  *Color        `yaml:"tint"`
	Decay float64       `yaml:"decay"`
}

// LoadConfig reads a YAML file and merges it over the embedded defaults. An
// empty path returns the defaults alone.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return ParseConfig(nil)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("glib: reading config file: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig merges YAML data over the embedded defaults and validates the
// result. Effects named in data replace the default of the same name.
func ParseConfig(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("glib: parsing embedded defaults: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("glib: parsing config: %w", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every effect definition.
func (c *Config) Validate() error {
	if c.Pool.Capacity < 0 || c.Pool.LowWaterMark < 0 {
		return invalidArg("pool capacity and low water mark must be >= 0")
	}
	for _, name := range c.EffectNames() {
		if err := c.Effects[name].Validate(); err != nil {
			return fmt.Errorf("glib: effect %q: %w", name, err)
		}
	}
	return nil
}

// EffectNames returns the effect names in sorted order.
func (c *Config) EffectNames() []string {
	names := make([]string, 0, len(c.Effects))
	for name := range c.Effects {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewPool returns an uninitialized pool sized by c.Pool.
func (c *Config) NewPool() *Pool {
	return NewPool(c.Pool)
}

// Effect builds the named effect's engine.
func (c *Config) Effect(name string, pool *Pool, textures []*ebiten.Image) (*Engine, error) {
	ec, ok := c.Effects[name]
	if !ok {
		return nil, invalidArg("unknown effect %q", name)
	}
	e, err := ec.NewEngine(pool, textures)
	if err != nil {
		return nil, fmt.Errorf("glib: effect %q: %w", name, err)
	}
	e.Name = name
	return e, nil
}

// Validate checks the fields used by the effect's kind.
func (ec EffectConfig) Validate() error {
	if ec.Count < 0 {
		return invalidArg("count %d must be >= 0", ec.Count)
	}
	if ec.Cadence < 0 {
		return invalidArg("cadence %d must be >= 1", ec.Cadence)
	}
	if _, err := ec.deathConditions(); err != nil {
		return err
	}
	if _, ok := ParseBlendMode(ec.Blend); !ok {
		return invalidArg("unknown blend %q", ec.Blend)
	}
	switch ec.Kind {
	case KindRandom:
		if ec.MinTTL != 0 || ec.MaxTTL != 0 {
			if err := checkTTL(ec.MinTTL); err != nil {
				return err
			}
			if err := checkTTL(ec.MaxTTL); err != nil {
				return err
			}
			if ec.MinTTL > ec.MaxTTL {
				return invalidArg("min_ttl %v exceeds max_ttl %v", ec.MinTTL, ec.MaxTTL)
			}
		}
		if ec.MinDecay != 0 && !(ec.MinDecay > 0 && ec.MinDecay <= 1) {
			return invalidArg("min_decay %v must be in (0, 1]", ec.MinDecay)
		}
	case KindBurst:
		if err := checkTTL(ec.TTL); err != nil {
			return err
		}
		if _, ok := EaseFunc(ec.Ease); !ok {
			return invalidArg("unknown ease %q", ec.Ease)
		}
		if ec.Decay < 0 {
			return invalidArg("decay %v must be > 0", ec.Decay)
		}
	default:
		return invalidArg("unknown kind %q", ec.Kind)
	}
	return nil
}

func (ec EffectConfig) deathConditions() (DeathConditions, error) {
	if len(ec.Deaths) == 0 {
		return DefaultDeathConditions, nil
	}
	var d DeathConditions
	for _, name := range ec.Deaths {
		c, ok := ParseDeathCondition(name)
		if !ok {
			return d, invalidArg("unknown death condition %q", name)
		}
		d = d.With(c)
	}
	return d, nil
}

// NewGenerator builds the effect's generator.
func (ec EffectConfig) NewGenerator(pool *Pool, textures []*ebiten.Image) (Generator, error) {
	if err := ec.Validate(); err != nil {
		return nil, err
	}
	deaths, _ := ec.deathConditions()
	blend, _ := ParseBlendMode(ec.Blend)

	switch ec.Kind {
	case KindBurst:
		g, err := NewBurstGenerator(pool, textures, ec.Count, ec.Speed, ec.TTL)
		if err != nil {
			return nil, err
		}
		g.Ease, _ = EaseFunc(ec.Ease)
		g.Spin = ec.Spin
		g.Deaths = deaths
		g.Blend = blend
		if ec.Tint != nil {
			g.Tint = *ec.Tint
		}
		if ec.Decay > 0 {
			if err := g.SetColorDecay(ec.Decay); err != nil {
				return nil, err
			}
		}
		return g, nil
	default:
		g, err := NewRandomGenerator(pool, textures, ec.Count)
		if err != nil {
			return nil, err
		}
		if ec.MinTTL != 0 {
			if err := g.SetTimeToLive(ec.MinTTL, ec.MaxTTL); err != nil {
				return nil, err
			}
		}
		if ec.MinDecay != 0 {
			if err := g.SetMinColorDecay(ec.MinDecay); err != nil {
				return nil, err
			}
		}
		g.UniformDecay = ec.UniformDecay
		g.Deaths = deaths
		g.Blend = blend
		return g, nil
	}
}

// NewEngine builds the effect's generator and an engine around it.
func (ec EffectConfig) NewEngine(pool *Pool, textures []*ebiten.Image) (*Engine, error) {
	g, err := ec.NewGenerator(pool, textures)
	if err != nil {
		return nil, err
	}
	e, err := NewEngine(pool, g)
	if err != nil {
		return nil, err
	}
	if ec.Cadence > 0 {
		if err := e.SetCadence(ec.Cadence); err != nil {
			return nil, err
		}
	}
	e.Offset = ec.Offset
	return e, nil
}
