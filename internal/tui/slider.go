package tui

import (
	"fmt"
	"strings"
)

// slider is one adjustable parameter with a visual bar.
type slider struct {
	label   string
	value   float64
	min     float64
	max     float64
	step    float64
	unit    string
	width   int
	focused bool
}

func newSlider(label string, value, min, max, step float64, unit string) slider {
	return slider{label: label, value: value, min: min, max: max, step: step, unit: unit, width: 24}
}

func (s *slider) increment() {
	if v := s.value + s.step; v <= s.max {
		s.value = v
	}
}

func (s *slider) decrement() {
	if v := s.value - s.step; v >= s.min {
		s.value = v
	}
}

func (s *slider) render() string {
	ratio := 0.0
	if s.max > s.min {
		ratio = (s.value - s.min) / (s.max - s.min)
	}
	filled := int(ratio * float64(s.width))
	if filled > s.width {
		filled = s.width
	}

	bar := sliderFilledStyle.Render(strings.Repeat("█", filled)) +
		sliderEmptyStyle.Render(strings.Repeat("░", s.width-filled))

	label := labelStyle
	if s.focused {
		label = focusedLabelStyle
	}

	return fmt.Sprintf("%s %s %s",
		label.Width(18).Render(s.label),
		bar,
		valueStyle.Render(fmt.Sprintf("%6.1f%s", s.value, s.unit)))
}
