package benchmark

import (
	"context"
	"encoding/json"
	"errors"
	"image"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pixelmend/go-inpaint/inpaint"
)

// mockBackend counts calls and optionally fails.
type mockBackend struct {
	calls int
	err   error
}

func (m *mockBackend) Inpaint(ctx context.Context, img *image.RGBA, region image.Rectangle) error {
	m.calls++
	return m.err
}

func TestRunScenarioCountsIterations(t *testing.T) {
	backend := &mockBackend{}
	suite := NewSuite(backend)

	scenario := NewScenarioBuilder("test").
		WithResolution(64, 48).
		WithSelection(inpaint.Selection{X: 10, Y: 10, Width: 20, Height: 10}).
		WithIterations(4).
		WithWarmupRuns(2).
		Build()

	metrics, err := suite.RunScenario(context.Background(), scenario)
	require.NoError(t, err)

	assert.Equal(t, 6, backend.calls, "warmups plus iterations")
	assert.Equal(t, 4, metrics.Iterations)
	assert.Zero(t, metrics.ErrorCount)
	assert.Positive(t, metrics.ImagesPerSecond)
	assert.Positive(t, metrics.MegapixelsPerS)
	assert.GreaterOrEqual(t, metrics.MaxDuration, metrics.MinDuration)
}

func TestRunScenarioRecordsErrors(t *testing.T) {
	backend := &mockBackend{err: errors.New("boom")}
	suite := NewSuite(backend)

	scenario := NewScenarioBuilder("failing").
		WithResolution(32, 32).
		WithSelection(inpaint.Selection{Width: 8, Height: 8}).
		WithIterations(3).
		WithWarmupRuns(0).
		Build()

	metrics, err := suite.RunScenario(context.Background(), scenario)
	require.NoError(t, err, "iteration errors are counted, not fatal")
	assert.Equal(t, 3, metrics.ErrorCount)
	assert.Zero(t, metrics.ImagesPerSecond)
}

// sleepyBackend fails every other call; successes take a fixed, measurable
// amount of work time.
type sleepyBackend struct {
	calls int
	delay time.Duration
}

func (s *sleepyBackend) Inpaint(ctx context.Context, img *image.RGBA, region image.Rectangle) error {
	s.calls++
	if s.calls%2 == 0 {
		return errors.New("boom")
	}
	time.Sleep(s.delay)
	return nil
}

func TestRunScenarioMeanAgreesWithIterationTimings(t *testing.T) {
	backend := &sleepyBackend{delay: 2 * time.Millisecond}
	suite := NewSuite(backend)

	scenario := NewScenarioBuilder("mixed").
		WithResolution(64, 48).
		WithSelection(inpaint.Selection{X: 10, Y: 10, Width: 20, Height: 10}).
		WithIterations(6).
		WithWarmupRuns(0).
		Build()

	metrics, err := suite.RunScenario(context.Background(), scenario)
	require.NoError(t, err)
	require.Equal(t, 3, metrics.ErrorCount)

	// The mean is computed from the same per-iteration timer as min/max,
	// so the three must be consistent and unaffected by the instant
	// failures or the per-iteration image copies.
	assert.GreaterOrEqual(t, metrics.MeanDuration, metrics.MinDuration)
	assert.LessOrEqual(t, metrics.MeanDuration, metrics.MaxDuration)
	assert.GreaterOrEqual(t, metrics.MeanDuration, backend.delay,
		"the mean reflects the successful iterations' own duration")
	assert.LessOrEqual(t, metrics.MeanDuration*3, metrics.TotalDuration,
		"wall-clock total covers at least the summed iteration time")
}

func TestRunScenarioRejectsInvalidScenario(t *testing.T) {
	suite := NewSuite(&mockBackend{})
	_, err := suite.RunScenario(context.Background(), Scenario{Name: "empty"})
	assert.Error(t, err)
}

func TestSuiteRunAndExport(t *testing.T) {
	suite := NewSuite(&mockBackend{})
	suite.AddScenarioSet(&ScenarioSet{
		Scenarios: []Scenario{
			NewScenarioBuilder("a").WithResolution(32, 32).
				WithSelection(inpaint.Selection{Width: 8, Height: 8}).
				WithIterations(2).WithWarmupRuns(0).Build(),
			NewScenarioBuilder("b").WithResolution(32, 32).
				WithSelection(inpaint.Selection{Width: 8, Height: 8}).
				WithIterations(2).WithWarmupRuns(0).Build(),
		},
	})

	results, err := suite.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 2)

	path := filepath.Join(t.TempDir(), "results.json")
	require.NoError(t, suite.ExportJSON(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var decoded []PerformanceMetrics
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Len(t, decoded, 2)
	assert.Equal(t, "a", decoded[0].Scenario.Name)
}

func TestPredefinedScenarioSets(t *testing.T) {
	comprehensive := GetComprehensiveScenarios()
	assert.NotEmpty(t, comprehensive.Scenarios)
	for _, s := range comprehensive.Scenarios {
		assert.False(t, s.Selection.Empty(), "scenario %s needs a usable selection", s.Name)
	}

	quick := GetQuickScenarios()
	assert.Len(t, quick.Scenarios, 1)

	sizes := GetSelectionSizeScenarios()
	assert.Len(t, sizes.Scenarios, 3)
}
