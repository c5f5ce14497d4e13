package dataprocessing

import (
	"context"
	"log/slog"

	"github.com/praiseOjay/capstone-project/pkg/contracts/domain"
)

// PreparerConfig holds tuning options for the visualization preparer
type PreparerConfig struct {
	SampleSize      int   // Max participants included in rolling-window computation
	SampleSeed      int64 // Seed for the reproducible participant sample
	RollingWindow   int   // Trailing observation window for the rolling average
	MinObservations int   // Minimum observations for a participant to get a rolling average
}

// DefaultPreparerConfig returns the standard preparer configuration
func DefaultPreparerConfig() PreparerConfig {
	return PreparerConfig{
		SampleSize:      1000,
		SampleSeed:      42,
		RollingWindow:   30,
		MinObservations: 5,
	}
}

// VisualizationPreparer produces the consolidated dataset the dashboard
// reads: the cleaned rows with participant-level trend metrics broadcast
// onto them and windowed rolling features for a bounded sample of
// participants.
type VisualizationPreparer struct {
	logger *slog.Logger
	config PreparerConfig
}

// NewVisualizationPreparer creates a new preparer with the given
// configuration
func NewVisualizationPreparer(logger *slog.Logger, config PreparerConfig) *VisualizationPreparer {
	if logger == nil {
		logger = slog.Default()
	}
	if config.SampleSize <= 0 {
		config.SampleSize = 1000
	}
	if config.RollingWindow <= 0 {
		config.RollingWindow = 30
	}
	if config.MinObservations <= 0 {
		config.MinObservations = 5
	}
	return &VisualizationPreparer{logger: logger, config: config}
}

// Prepare builds the visualization dataset from the cleaned records
func (p *VisualizationPreparer) Prepare(ctx context.Context, ds *domain.ActivityDataset) (*domain.VisualizationDataset, error) {
	p.logger.InfoContext(ctx, "preparing data for dashboard visualizations",
		slog.Int("records", len(ds.Records)))

	rows := buildVisualizationRows(ds.Records)

	if err := p.addParticipantMetrics(ctx, rows); err != nil {
		return nil, err
	}
	p.addWeeklyMetrics(ctx, rows)

	return &domain.VisualizationDataset{Rows: rows}, nil
}

// buildVisualizationRows copies the cleaned records into visualization
// rows; the metric columns start absent
func buildVisualizationRows(records []domain.ActivityRecord) []domain.VisualizationRow {
	rows := make([]domain.VisualizationRow, 0, len(records))
	for i := range records {
		rec := &records[i]
		rows = append(rows, domain.VisualizationRow{
			ParticipantID:          rec.ParticipantID,
			Date:                   rec.Date,
			Age:                    rec.Age,
			Gender:                 rec.Gender,
			HeightCm:               rec.HeightCm,
			WeightKg:               rec.WeightKg,
			ActivityType:           rec.ActivityType,
			DurationMinutes:        rec.DurationMinutes,
			Intensity:              rec.Intensity,
			CaloriesBurned:         rec.CaloriesBurned,
			AvgHeartRate:           rec.AvgHeartRate,
			DailySteps:             rec.DailySteps,
			RestingHeartRate:       rec.RestingHeartRate,
			BloodPressureSystolic:  rec.BloodPressureSystolic,
			BloodPressureDiastolic: rec.BloodPressureDiastolic,
			HydrationLevel:         rec.HydrationLevel,
			StressLevel:            rec.StressLevel,
			HoursSleep:             rec.HoursSleep,
			BMI:                    rec.BMI,
			HealthCondition:        rec.HealthCondition,
			SmokingStatus:          rec.SmokingStatus,
			BMICategory:            rec.BMICategory,
			AgeGroup:               rec.AgeGroup,
			DayOfWeek:              rec.DayOfWeek,
			Month:                  rec.Month,
			Year:                   rec.Year,
			WeekOfYear:             rec.WeekOfYear,
			Season:                 rec.Season,
			IsWeekend:              rec.IsWeekend,
			FitnessLevel:           rec.FitnessLevel,
			FitnessCategory:        rec.FitnessCategory,
		})
	}
	return rows
}

// groupByParticipant maps each participant id to the row indices holding
// that participant's records, in original row order
func groupByParticipant(rows []domain.VisualizationRow) map[int64][]int {
	groups := make(map[int64][]int)
	for i := range rows {
		id := rows[i].ParticipantID
		groups[id] = append(groups[id], i)
	}
	return groups
}
