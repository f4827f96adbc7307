// Package scoring computes the ATS-style breakdown of a resume as a list of components.
package scoring

import (
	"go.uber.org/zap"

	"github.com/spigell/resume-analyzer/internal/sections"
	"github.com/spigell/resume-analyzer/internal/skills"
)

// MaxTotal caps the sum of all component scores.
const MaxTotal = 100

// Component represents a single ATS scoring step.
type Component interface {
	Name() string
	Max() int
	Disable(reason string)
	IsEnabled() bool

	Score(in Input) int
}

// Input aggregates everything components may look at.
type Input struct {
	Analysis skills.Analysis
	Sections sections.Map
}

// Result is the score of a single component.
type Result struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
	Max   int    `json:"max"`
}

// Breakdown is the outcome of running all components.
type Breakdown struct {
	Total      int      `json:"total"`
	Components []Result `json:"components"`
}

// Lookup returns the score of the named component.
func (b Breakdown) Lookup(name string) (int, bool) {
	for _, c := range b.Components {
		if c.Name == name {
			return c.Score, true
		}
	}
	return 0, false
}

// Status represents runtime information about a component.
type Status struct {
	Name    string
	Enabled bool
	Reason  string
	Max     int
}

// DisableByName marks a component with the provided name as disabled while keeping it in the list.
func DisableByName(steps []Component, name, reason string) bool {
	found := false
	for _, step := range steps {
		if step.Name() == name {
			step.Disable(reason)
			found = true
		}
	}
	return found
}

// Run executes the enabled components sequentially.
func Run(in Input, steps []Component, logger *zap.Logger) Breakdown {
	if logger == nil {
		logger = zap.NewNop()
	}

	var b Breakdown
	sum := 0
	for _, step := range steps {
		if !step.IsEnabled() {
			logger.Debug("component disabled", zap.String("name", step.Name()))
			continue
		}

		score := step.Score(in)
		sum += score
		b.Components = append(b.Components, Result{Name: step.Name(), Score: score, Max: step.Max()})

		logger.Debug("component scored",
			zap.String("name", step.Name()),
			zap.Int("score", score),
			zap.Int("max", step.Max()),
		)
	}

	b.Total = min(sum, MaxTotal)
	return b
}

// Describe returns status entries for the provided components.
func Describe(steps []Component) []Status {
	statuses := make([]Status, 0, len(steps))
	for _, step := range steps {
		s := Status{Name: step.Name(), Enabled: step.IsEnabled(), Max: step.Max()}
		if r, ok := step.(interface{ Reason() string }); ok {
			s.Reason = r.Reason()
		}
		statuses = append(statuses, s)
	}
	return statuses
}
