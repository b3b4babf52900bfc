package tween

import (
	"fmt"
	"math"
	"sort"
)

// EasingFunc maps normalized time t in [0,1] to progress in [0,1].
type EasingFunc func(t float64) float64

// Linear progresses at a constant rate.
func Linear(t float64) float64 {
	return t
}

// EaseInOutQuad accelerates until halfway, then decelerates.
func EaseInOutQuad(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return 1 - math.Pow(-2*t+2, 2)/2
}

// EaseInOutQuint is a sharper variant of EaseInOutQuad.
func EaseInOutQuint(t float64) float64 {
	if t < 0.5 {
		return 16 * t * t * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 5)/2
}

// Easing names accepted by EasingByName.
const (
	NameLinear         = "linear"
	NameEaseInOutQuad  = "easeInOutQuad"
	NameEaseInOutQuint = "easeInOutQuint"
)

var easings = map[string]EasingFunc{
	NameLinear:         Linear,
	NameEaseInOutQuad:  EaseInOutQuad,
	NameEaseInOutQuint: EaseInOutQuint,
}

// EasingByName looks up an easing function by its configuration name.
func EasingByName(name string) (EasingFunc, error) {
	f, ok := easings[name]
	if !ok {
		return nil, fmt.Errorf("tween: unknown easing %q", name)
	}
	return f, nil
}

// EasingNames returns all known easing names, sorted.
func EasingNames() []string {
	names := make([]string, 0, len(easings))
	for name := range easings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
