package tui

import "github.com/goalsim/goalsim/internal/domain"

// Message types for the Bubble Tea update cycle.

// SimulationCompleteMsg signals a background simulation has finished.
type SimulationCompleteMsg struct {
	Result *domain.SimulationResult
	Err    error
}
