package dataprocessing

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praiseOjay/capstone-project/pkg/contracts/domain"
)

func visRow(id int64, date time.Time, fitness float64) domain.VisualizationRow {
	d := date
	return domain.VisualizationRow{
		ParticipantID: id,
		Date:          &d,
		FitnessLevel:  float64Ptr(fitness),
	}
}

func TestAddParticipantMetrics_TwoObservations(t *testing.T) {
	preparer := NewVisualizationPreparer(slog.Default(), DefaultPreparerConfig())
	rows := []domain.VisualizationRow{
		visRow(1, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), 5),
		visRow(1, time.Date(2024, 1, 11, 0, 0, 0, 0, time.UTC), 7),
	}
	rows[0].CaloriesBurned = float64Ptr(200)
	rows[1].CaloriesBurned = float64Ptr(300)

	require.NoError(t, preparer.addParticipantMetrics(context.Background(), rows))

	for i := range rows {
		row := rows[i]
		require.NotNil(t, row.FitnessChange, "row %d", i)
		assert.Equal(t, 2.0, *row.FitnessChange)
		assert.InDelta(t, 40.0, *row.FitnessChangePct, 1e-9)
		assert.InDelta(t, 2.0, *row.FitnessTrend, 1e-9)
		assert.Equal(t, 5.0, *row.InitialFitness)
		assert.Equal(t, 7.0, *row.CurrentFitness)
		assert.Equal(t, int64(2), *row.TotalWorkouts)
		assert.Equal(t, int64(10), *row.TotalDays)
		assert.InDelta(t, 1.4, *row.WorkoutsPerWeek, 1e-9)
		assert.InDelta(t, 20.0, *row.ConsistencyScore, 1e-9)
		assert.Equal(t, 500.0, *row.TotalCalories)
	}
}

func TestAddParticipantMetrics_SortsByDate(t *testing.T) {
	preparer := NewVisualizationPreparer(slog.Default(), DefaultPreparerConfig())
	// Rows arrive newest first; initial and current fitness must still
	// follow chronological order
	rows := []domain.VisualizationRow{
		visRow(7, time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC), 9),
		visRow(7, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), 3),
		visRow(7, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), 6),
	}

	require.NoError(t, preparer.addParticipantMetrics(context.Background(), rows))

	require.NotNil(t, rows[0].InitialFitness)
	assert.Equal(t, 3.0, *rows[0].InitialFitness)
	assert.Equal(t, 9.0, *rows[0].CurrentFitness)
	assert.Equal(t, 6.0, *rows[0].FitnessChange)
	assert.InDelta(t, 200.0, *rows[0].FitnessChangePct, 1e-9)
}

func TestAddParticipantMetrics_SkipsSingleObservation(t *testing.T) {
	preparer := NewVisualizationPreparer(slog.Default(), DefaultPreparerConfig())
	rows := []domain.VisualizationRow{
		visRow(1, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), 5),
		visRow(2, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), 4),
		visRow(2, time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC), 6),
	}

	require.NoError(t, preparer.addParticipantMetrics(context.Background(), rows))

	// Participant 1 has a single observation and keeps absent metrics
	assert.Nil(t, rows[0].FitnessChange)
	assert.Nil(t, rows[0].TotalWorkouts)

	// Participant 2 still gets metrics; one skipped participant never
	// aborts the batch
	require.NotNil(t, rows[1].FitnessChange)
	assert.Equal(t, 2.0, *rows[1].FitnessChange)
}

func TestAddParticipantMetrics_SkipsMissingFitness(t *testing.T) {
	preparer := NewVisualizationPreparer(slog.Default(), DefaultPreparerConfig())
	rows := []domain.VisualizationRow{
		visRow(1, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), 5),
		{ParticipantID: 1, Date: timePtr(time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC))},
	}

	require.NoError(t, preparer.addParticipantMetrics(context.Background(), rows))

	assert.Nil(t, rows[0].FitnessChange)
	assert.Nil(t, rows[1].FitnessChange)
}

func TestAddParticipantMetrics_ZeroInitialFitness(t *testing.T) {
	preparer := NewVisualizationPreparer(slog.Default(), DefaultPreparerConfig())
	rows := []domain.VisualizationRow{
		visRow(1, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), 0),
		visRow(1, time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC), 4),
	}

	require.NoError(t, preparer.addParticipantMetrics(context.Background(), rows))

	// Percentage change is defined as zero when the baseline is zero
	require.NotNil(t, rows[0].FitnessChangePct)
	assert.Equal(t, 0.0, *rows[0].FitnessChangePct)
	assert.Equal(t, 4.0, *rows[0].FitnessChange)
}

func TestAddParticipantMetrics_SameDayObservations(t *testing.T) {
	preparer := NewVisualizationPreparer(slog.Default(), DefaultPreparerConfig())
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	rows := []domain.VisualizationRow{
		visRow(1, day, 5),
		visRow(1, day, 7),
	}

	require.NoError(t, preparer.addParticipantMetrics(context.Background(), rows))

	// Zero-day span: frequency metrics fall back to zero instead of Inf
	require.NotNil(t, rows[0].WorkoutsPerWeek)
	assert.Equal(t, 0.0, *rows[0].WorkoutsPerWeek)
	assert.Equal(t, 0.0, *rows[0].ConsistencyScore)
	assert.Equal(t, int64(0), *rows[0].TotalDays)
}

func TestSortByDate_NilDatesLast(t *testing.T) {
	d1 := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	rows := []domain.VisualizationRow{
		{ParticipantID: 1, Date: &d1},
		{ParticipantID: 1},
		{ParticipantID: 1, Date: &d2},
	}

	ordered := sortByDate(rows, []int{0, 1, 2})
	assert.Equal(t, []int{2, 0, 1}, ordered)
}

func timePtr(t time.Time) *time.Time { return &t }
