package benchmark

import (
	"fmt"

	"github.com/pixelmend/go-inpaint/inpaint"
)

// Scenario describes one benchmark configuration: an image resolution, a
// selection inside it, and how many times to run.
type Scenario struct {
	Name       string            `json:"name"`
	Width      int               `json:"width"`
	Height     int               `json:"height"`
	Selection  inpaint.Selection `json:"selection"`
	Iterations int               `json:"iterations"`
	WarmupRuns int               `json:"warmup_runs"`
}

// ScenarioBuilder helps build benchmark scenarios with a fluent API.
type ScenarioBuilder struct {
	scenario Scenario
}

// NewScenarioBuilder creates a new scenario builder.
func NewScenarioBuilder(name string) *ScenarioBuilder {
	return &ScenarioBuilder{
		scenario: Scenario{
			Name:       name,
			Iterations: 20,
			WarmupRuns: 3,
		},
	}
}

// WithResolution sets the image resolution.
func (sb *ScenarioBuilder) WithResolution(width, height int) *ScenarioBuilder {
	sb.scenario.Width = width
	sb.scenario.Height = height
	return sb
}

// WithSelection sets the rectangle to inpaint.
func (sb *ScenarioBuilder) WithSelection(sel inpaint.Selection) *ScenarioBuilder {
	sb.scenario.Selection = sel
	return sb
}

// WithAutoDetect uses the heuristic watermark selection for the scenario's
// resolution. Call after WithResolution.
func (sb *ScenarioBuilder) WithAutoDetect() *ScenarioBuilder {
	sb.scenario.Selection = inpaint.AutoDetect(sb.scenario.Width, sb.scenario.Height)
	return sb
}

// WithIterations sets the number of timed iterations.
func (sb *ScenarioBuilder) WithIterations(iterations int) *ScenarioBuilder {
	sb.scenario.Iterations = iterations
	return sb
}

// WithWarmupRuns sets the number of untimed warmup runs.
func (sb *ScenarioBuilder) WithWarmupRuns(warmups int) *ScenarioBuilder {
	sb.scenario.WarmupRuns = warmups
	return sb
}

// Build returns the configured scenario.
func (sb *ScenarioBuilder) Build() Scenario {
	return sb.scenario
}

// ScenarioSet represents a collection of related benchmark scenarios.
type ScenarioSet struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Scenarios   []Scenario `json:"scenarios"`
}

// GetComprehensiveScenarios returns auto-detect scenarios across common
// photo resolutions.
func GetComprehensiveScenarios() *ScenarioSet {
	resolutions := []struct{ w, h int }{
		{400, 300},
		{800, 600},
		{1280, 720},
		{1920, 1080},
		{3840, 2160},
	}

	scenarios := make([]Scenario, 0, len(resolutions))
	for _, res := range resolutions {
		scenarios = append(scenarios,
			NewScenarioBuilder(fmt.Sprintf("autodetect_%dx%d", res.w, res.h)).
				WithResolution(res.w, res.h).
				WithAutoDetect().
				WithIterations(20).
				WithWarmupRuns(3).
				Build())
	}

	return &ScenarioSet{
		Name:        "Comprehensive Performance Test",
		Description: "Auto-detected watermark selection across common photo resolutions",
		Scenarios:   scenarios,
	}
}

// GetQuickScenarios returns a smaller set for quick testing.
func GetQuickScenarios() *ScenarioSet {
	return &ScenarioSet{
		Name:        "Quick Performance Test",
		Description: "Single mid-size resolution with the heuristic selection",
		Scenarios: []Scenario{
			NewScenarioBuilder("quick_800x600").
				WithResolution(800, 600).
				WithAutoDetect().
				WithIterations(5).
				WithWarmupRuns(1).
				Build(),
		},
	}
}

// GetSelectionSizeScenarios compares selection sizes at a fixed resolution.
func GetSelectionSizeScenarios() *ScenarioSet {
	sizes := []struct{ w, h int }{
		{60, 20},
		{180, 60},
		{360, 120},
	}

	scenarios := make([]Scenario, 0, len(sizes))
	for _, size := range sizes {
		scenarios = append(scenarios,
			NewScenarioBuilder(fmt.Sprintf("selection_%dx%d", size.w, size.h)).
				WithResolution(1280, 720).
				WithSelection(inpaint.Selection{X: 100, Y: 100, Width: size.w, Height: size.h}).
				WithIterations(20).
				WithWarmupRuns(3).
				Build())
	}

	return &ScenarioSet{
		Name:        "Selection Size Comparison",
		Description: "Compares fill cost as the selection grows at 1280x720",
		Scenarios:   scenarios,
	}
}
