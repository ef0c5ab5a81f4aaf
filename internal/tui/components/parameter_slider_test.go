package components

import (
	"strings"
	"testing"
)

func TestParameterSliderClamping(t *testing.T) {
	s := NewParameterSlider("Return", 7, 0, 15, 0.5)

	s.SetValue(20)
	if s.Value != 15 {
		t.Errorf("expected clamp to max 15, got %f", s.Value)
	}
	s.SetValue(-3)
	if s.Value != 0 {
		t.Errorf("expected clamp to min 0, got %f", s.Value)
	}
}

func TestParameterSliderStepping(t *testing.T) {
	s := NewParameterSlider("Return", 7, 0, 15, 0.5)

	s.Increment()
	if s.Value != 7.5 {
		t.Errorf("expected 7.5 after increment, got %f", s.Value)
	}
	s.Decrement()
	s.Decrement()
	if s.Value != 6.5 {
		t.Errorf("expected 6.5 after two decrements, got %f", s.Value)
	}

	s.SetValue(15)
	s.Increment()
	if s.Value != 15 {
		t.Errorf("increment past max should stay at 15, got %f", s.Value)
	}
}

func TestParameterSliderPercentage(t *testing.T) {
	s := NewParameterSlider("Years", 20, 10, 30, 1)
	if got := s.Percentage(); got != 0.5 {
		t.Errorf("expected 0.5, got %f", got)
	}

	flat := NewParameterSlider("Flat", 5, 5, 5, 1)
	if got := flat.Percentage(); got != 0 {
		t.Errorf("degenerate range should report 0, got %f", got)
	}
}

func TestParameterSliderRender(t *testing.T) {
	s := NewParameterSlider("Savings", 50000, 0, 500000, 5000).
		WithUnit(" $").WithFormat("%.0f")

	out := s.Render()
	if !strings.Contains(out, "Savings:") {
		t.Error("render missing label")
	}
	if !strings.Contains(out, "50000 $") {
		t.Error("render missing formatted value")
	}
	if !strings.Contains(out, "●") {
		t.Error("render missing slider thumb")
	}
}
