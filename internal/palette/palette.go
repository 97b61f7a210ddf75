// Package palette derives tints and shades from a base color by moving its
// HSL lightness toward an adaptive ceiling or floor.
package palette

import (
	"errors"
	"fmt"
	"math"

	"tintshade/internal/color"
)

// ErrInvalidPolicy is returned when policy bounds are inconsistent.
var ErrInvalidPolicy = errors.New("invalid palette policy")

// Policy holds the tuned constants of the lightness schedule.
//
// The tint ceiling is min(CeilingMax, max(CeilingMin, l + (CeilingMax-l)*Blend)),
// the shade floor is max(FloorMin, min(FloorMax, l - (l-FloorMin)*Blend)).
// Every generated lightness stays at least MinStep away from the base.
type Policy struct {
	CeilingMin float64 `yaml:"ceilingMin" json:"ceilingMin"`
	CeilingMax float64 `yaml:"ceilingMax" json:"ceilingMax"`
	FloorMin   float64 `yaml:"floorMin" json:"floorMin"`
	FloorMax   float64 `yaml:"floorMax" json:"floorMax"`
	Blend      float64 `yaml:"blend" json:"blend"`
	MinStep    float64 `yaml:"minStep" json:"minStep"`
}

// DefaultPolicy returns the standard constants.
func DefaultPolicy() Policy {
	return Policy{
		CeilingMin: 90,
		CeilingMax: 98,
		FloorMin:   2,
		FloorMax:   10,
		Blend:      0.8,
		MinStep:    0.5,
	}
}

// Validate checks that the bounds are ordered and inside [0, 100].
func (p Policy) Validate() error {
	switch {
	case p.FloorMin < 0 || p.CeilingMax > 100:
		return fmt.Errorf("%w: bounds must lie within [0, 100]", ErrInvalidPolicy)
	case p.FloorMin > p.FloorMax:
		return fmt.Errorf("%w: floorMin %.2f exceeds floorMax %.2f", ErrInvalidPolicy, p.FloorMin, p.FloorMax)
	case p.CeilingMin > p.CeilingMax:
		return fmt.Errorf("%w: ceilingMin %.2f exceeds ceilingMax %.2f", ErrInvalidPolicy, p.CeilingMin, p.CeilingMax)
	case p.FloorMax >= p.CeilingMin:
		return fmt.Errorf("%w: floor range must stay below ceiling range", ErrInvalidPolicy)
	case p.Blend < 0 || p.Blend > 1:
		return fmt.Errorf("%w: blend %.2f outside [0, 1]", ErrInvalidPolicy, p.Blend)
	case p.MinStep < 0:
		return fmt.Errorf("%w: minStep must not be negative", ErrInvalidPolicy)
	}
	return nil
}

// Ceiling is the adaptive maximum lightness for base lightness l.
func (p Policy) Ceiling(l float64) float64 {
	return math.Min(p.CeilingMax, math.Max(p.CeilingMin, l+(p.CeilingMax-l)*p.Blend))
}

// Floor is the adaptive minimum lightness for base lightness l.
func (p Policy) Floor(l float64) float64 {
	return math.Max(p.FloorMin, math.Min(p.FloorMax, l-(l-p.FloorMin)*p.Blend))
}

// TintLightness returns the lightness targets for count tints of base
// lightness l, closest to the base first. It is empty when count <= 0 or
// l is already at or above the ceiling.
func (p Policy) TintLightness(l float64, count int) []float64 {
	if count <= 0 {
		return nil
	}
	ceiling := p.Ceiling(l)
	if l >= ceiling {
		return nil
	}
	span := ceiling - l
	out := make([]float64, 0, count)
	for i := 1; i <= count; i++ {
		progress := float64(i) / float64(count+1)
		target := l + span*progress
		out = append(out, math.Max(l+p.MinStep, math.Min(p.CeilingMax, target)))
	}
	return out
}

// ShadeLightness mirrors TintLightness toward the floor.
func (p Policy) ShadeLightness(l float64, count int) []float64 {
	if count <= 0 {
		return nil
	}
	floor := p.Floor(l)
	if l <= floor {
		return nil
	}
	span := l - floor
	out := make([]float64, 0, count)
	for i := 1; i <= count; i++ {
		progress := float64(i) / float64(count+1)
		target := l - span*progress
		out = append(out, math.Max(p.FloorMin, math.Min(l-p.MinStep, target)))
	}
	return out
}

// Generator produces variants under a fixed Policy. It holds no mutable
// state and is safe for concurrent use.
type Generator struct {
	policy Policy
}

// New returns a Generator for policy.
func New(policy Policy) *Generator {
	return &Generator{policy: policy}
}

// Policy returns the generator's policy.
func (g *Generator) Policy() Policy {
	return g.policy
}

// Tints returns count lighter variants of hex, closest to the base first.
// A malformed hex is reported with an error matching color.ErrInvalidColorFormat.
func (g *Generator) Tints(hex string, count int) ([]string, error) {
	if count <= 0 {
		return []string{}, nil
	}
	base, err := color.HexToHSL(hex)
	if err != nil {
		return nil, fmt.Errorf("generate tints: %w", err)
	}
	return render(base, g.policy.TintLightness(base.L, count)), nil
}

// Shades returns count darker variants of hex, closest to the base first.
func (g *Generator) Shades(hex string, count int) ([]string, error) {
	if count <= 0 {
		return []string{}, nil
	}
	base, err := color.HexToHSL(hex)
	if err != nil {
		return nil, fmt.Errorf("generate shades: %w", err)
	}
	return render(base, g.policy.ShadeLightness(base.L, count)), nil
}

func render(base color.HSL, lightness []float64) []string {
	out := make([]string, 0, len(lightness))
	for _, l := range lightness {
		out = append(out, color.HSLToHex(color.HSL{H: base.H, S: base.S, L: l}))
	}
	return out
}

var defaultGenerator = New(DefaultPolicy())

// GenerateTints uses DefaultPolicy.
func GenerateTints(hex string, count int) ([]string, error) {
	return defaultGenerator.Tints(hex, count)
}

// GenerateShades uses DefaultPolicy.
func GenerateShades(hex string, count int) ([]string, error) {
	return defaultGenerator.Shades(hex, count)
}
