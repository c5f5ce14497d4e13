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

func rawTable(columns []string, rows ...[]string) *domain.RawTable {
	return &domain.RawTable{Columns: columns, Rows: rows}
}

func TestCleaner_Clean_RemovesDuplicates(t *testing.T) {
	cleaner := NewCleaner(slog.Default())
	raw := rawTable(
		[]string{"participant_id", "age"},
		[]string{"1", "25"},
		[]string{"1", "25"},
		[]string{"2", "30"},
	)

	ds, err := cleaner.Clean(context.Background(), raw)
	require.NoError(t, err)

	assert.Equal(t, 1, ds.DuplicatesRemoved)
	require.Len(t, ds.Records, 2)
	assert.Equal(t, int64(1), ds.Records[0].ParticipantID)
	assert.Equal(t, int64(2), ds.Records[1].ParticipantID)
}

func TestCleaner_Clean_DoesNotMutateInput(t *testing.T) {
	cleaner := NewCleaner(slog.Default())
	raw := rawTable(
		[]string{"participant_id", "gender"},
		[]string{"1", "male"},
		[]string{"1", "male"},
	)

	_, err := cleaner.Clean(context.Background(), raw)
	require.NoError(t, err)

	require.Len(t, raw.Rows, 2)
	assert.Equal(t, "male", raw.Rows[0][1])
}

func TestCleaner_Clean_StandardizesGender(t *testing.T) {
	cleaner := NewCleaner(slog.Default())
	raw := rawTable(
		[]string{"participant_id", "gender"},
		[]string{"1", "male"},
		[]string{"2", "Female"},
		[]string{"3", "MALE"},
		[]string{"4", "nonbinary"},
	)

	ds, err := cleaner.Clean(context.Background(), raw)
	require.NoError(t, err)
	require.Len(t, ds.Records, 4)

	assert.Equal(t, "M", *ds.Records[0].Gender)
	assert.Equal(t, "F", *ds.Records[1].Gender)
	assert.Equal(t, "M", *ds.Records[2].Gender)
	// Unmapped values pass through unchanged
	assert.Equal(t, "nonbinary", *ds.Records[3].Gender)
}

func TestCleaner_Clean_StandardizesHealthAndSmoking(t *testing.T) {
	cleaner := NewCleaner(slog.Default())
	raw := rawTable(
		[]string{"participant_id", "health_condition", "smoking_status"},
		[]string{"1", "None", "non-smoker"},
		[]string{"2", "none", "Former Smoker"},
		[]string{"3", "Asthma", "current smoker"},
		[]string{"4", "", ""},
	)

	ds, err := cleaner.Clean(context.Background(), raw)
	require.NoError(t, err)
	require.Len(t, ds.Records, 4)

	assert.Equal(t, NoConditionSentinel, ds.Records[0].HealthCondition)
	assert.Equal(t, NoConditionSentinel, ds.Records[1].HealthCondition)
	assert.Equal(t, "Asthma", ds.Records[2].HealthCondition)
	assert.Equal(t, NoConditionSentinel, ds.Records[3].HealthCondition)

	assert.Equal(t, "Never", ds.Records[0].SmokingStatus)
	assert.Equal(t, "Former", ds.Records[1].SmokingStatus)
	assert.Equal(t, "Current", ds.Records[2].SmokingStatus)
	assert.Equal(t, "Never", ds.Records[3].SmokingStatus)
}

func TestCleaner_Clean_ParsesMixedDateFormats(t *testing.T) {
	cleaner := NewCleaner(slog.Default())
	raw := rawTable(
		[]string{"participant_id", "date"},
		[]string{"1", "2024-01-15"},
		[]string{"2", "01/16/2024"},
		[]string{"3", "17-01-2024"},
		[]string{"4", "25/01/2024"},
		[]string{"5", "not a date"},
	)

	ds, err := cleaner.Clean(context.Background(), raw)
	require.NoError(t, err)
	require.Len(t, ds.Records, 5)

	wantDates := []time.Time{
		time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 17, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 25, 0, 0, 0, 0, time.UTC),
	}
	for i, want := range wantDates {
		require.NotNil(t, ds.Records[i].Date, "record %d", i)
		assert.True(t, want.Equal(*ds.Records[i].Date), "record %d: got %v", i, ds.Records[i].Date)
	}

	// Unparseable dates stay missing instead of dropping the row
	assert.Nil(t, ds.Records[4].Date)
	assert.Equal(t, "Unknown", ds.Records[4].Season)
	assert.False(t, ds.Records[4].IsWeekend)
}

func TestCleaner_Clean_AmbiguousDatesPreferMonthFirst(t *testing.T) {
	cleaner := NewCleaner(slog.Default())
	raw := rawTable(
		[]string{"participant_id", "date"},
		[]string{"1", "01-02-2024"},
	)

	ds, err := cleaner.Clean(context.Background(), raw)
	require.NoError(t, err)
	require.NotNil(t, ds.Records[0].Date)
	assert.True(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC).Equal(*ds.Records[0].Date))
}

func TestCleaner_Clean_RecalculatesBMI(t *testing.T) {
	cleaner := NewCleaner(slog.Default())
	raw := rawTable(
		[]string{"participant_id", "weight_kg", "height_cm", "bmi"},
		[]string{"1", "75.5", "180", "99.9"},
	)

	ds, err := cleaner.Clean(context.Background(), raw)
	require.NoError(t, err)
	require.Len(t, ds.Records, 1)

	// The source bmi value is never trusted
	require.NotNil(t, ds.Records[0].BMI)
	assert.Equal(t, 23.3, *ds.Records[0].BMI)
	assert.Equal(t, "Normal", ds.Records[0].BMICategory)
}

func TestCleaner_Clean_BMINilForZeroHeight(t *testing.T) {
	cleaner := NewCleaner(slog.Default())
	raw := rawTable(
		[]string{"participant_id", "weight_kg", "height_cm"},
		[]string{"1", "75.5", "0"},
		[]string{"2", "80", "175"},
	)

	ds, err := cleaner.Clean(context.Background(), raw)
	require.NoError(t, err)

	assert.Nil(t, ds.Records[0].BMI)
	assert.Equal(t, "Unknown", ds.Records[0].BMICategory)
	require.NotNil(t, ds.Records[1].BMI)
	assert.Equal(t, 26.1, *ds.Records[1].BMI)
}

func TestCleaner_Clean_ImputesMedianAndMean(t *testing.T) {
	cleaner := NewCleaner(slog.Default())
	raw := rawTable(
		[]string{"participant_id", "weight_kg", "calories_burned"},
		[]string{"1", "70", "100"},
		[]string{"2", "80", "300"},
		[]string{"3", "N/A", "null"},
	)

	ds, err := cleaner.Clean(context.Background(), raw)
	require.NoError(t, err)
	require.Len(t, ds.Records, 3)

	// weight fills with the column median, calories with the mean
	require.NotNil(t, ds.Records[2].WeightKg)
	assert.Equal(t, 75.0, *ds.Records[2].WeightKg)
	require.NotNil(t, ds.Records[2].CaloriesBurned)
	assert.Equal(t, 200.0, *ds.Records[2].CaloriesBurned)
}

func TestCleaner_Clean_ImputesIntensityWithMode(t *testing.T) {
	cleaner := NewCleaner(slog.Default())
	raw := rawTable(
		[]string{"participant_id", "intensity"},
		[]string{"1", "high"},
		[]string{"2", "High"},
		[]string{"3", "low"},
		[]string{"4", "-"},
	)

	ds, err := cleaner.Clean(context.Background(), raw)
	require.NoError(t, err)

	assert.Equal(t, "High", ds.Records[0].Intensity)
	assert.Equal(t, "High", ds.Records[1].Intensity)
	assert.Equal(t, "Low", ds.Records[2].Intensity)
	assert.Equal(t, "High", ds.Records[3].Intensity)
}

func TestCleaner_Clean_ImputesSleepByAgeBucket(t *testing.T) {
	cleaner := NewCleaner(slog.Default())
	raw := rawTable(
		[]string{"participant_id", "age", "hours_sleep"},
		[]string{"1", "20", "6"},
		[]string{"2", "30", "8"},
		[]string{"3", "25", ""},
		[]string{"4", "70", "5"},
	)

	ds, err := cleaner.Clean(context.Background(), raw)
	require.NoError(t, err)

	// Row 3 falls in the same age bucket as rows 1 and 2
	require.NotNil(t, ds.Records[2].HoursSleep)
	assert.Equal(t, 7.0, *ds.Records[2].HoursSleep)
	require.NotNil(t, ds.Records[3].HoursSleep)
	assert.Equal(t, 5.0, *ds.Records[3].HoursSleep)
}

func TestCleaner_Clean_TrimsWhitespace(t *testing.T) {
	cleaner := NewCleaner(slog.Default())
	raw := rawTable(
		[]string{"participant_id", "activity_type"},
		[]string{" 1 ", "  Running  "},
	)

	ds, err := cleaner.Clean(context.Background(), raw)
	require.NoError(t, err)

	assert.Equal(t, int64(1), ds.Records[0].ParticipantID)
	require.NotNil(t, ds.Records[0].ActivityType)
	assert.Equal(t, "Running", *ds.Records[0].ActivityType)
}

func TestCleaner_Clean_NonNumericCellsTreatedAsMissing(t *testing.T) {
	cleaner := NewCleaner(slog.Default())
	raw := rawTable(
		[]string{"participant_id", "age"},
		[]string{"1", "twenty"},
		[]string{"2", "31"},
		[]string{"3", "33"},
	)

	ds, err := cleaner.Clean(context.Background(), raw)
	require.NoError(t, err)

	// Unparseable age falls back to the column median
	require.NotNil(t, ds.Records[0].Age)
	assert.Equal(t, int64(32), *ds.Records[0].Age)
}

func TestCleaner_Clean_ShrinkOnly(t *testing.T) {
	cleaner := NewCleaner(slog.Default())
	raw := rawTable(
		[]string{"participant_id", "date", "age"},
		[]string{"1", "2024-01-15", "25"},
		[]string{"1", "2024-01-15", "25"},
		[]string{"2", "garbage", "bad"},
		[]string{"3", "", ""},
	)

	ds, err := cleaner.Clean(context.Background(), raw)
	require.NoError(t, err)

	// Rows are never dropped except exact duplicates
	assert.Len(t, ds.Records, 3)
	assert.Equal(t, 1, ds.DuplicatesRemoved)
}

func TestCleaner_Clean_StableWhenAlreadyClean(t *testing.T) {
	cleaner := NewCleaner(slog.Default())
	raw := rawTable(
		[]string{"participant_id", "date", "gender", "intensity", "health_condition", "smoking_status", "weight_kg", "height_cm"},
		[]string{"1", "2024-01-15", "M", "High", "No Condition", "Never", "75.5", "180.0"},
	)

	ds, err := cleaner.Clean(context.Background(), raw)
	require.NoError(t, err)
	require.Len(t, ds.Records, 1)

	rec := ds.Records[0]
	assert.Equal(t, "M", *rec.Gender)
	assert.Equal(t, "High", rec.Intensity)
	assert.Equal(t, NoConditionSentinel, rec.HealthCondition)
	assert.Equal(t, "Never", rec.SmokingStatus)
	assert.Equal(t, 75.5, *rec.WeightKg)
	assert.Equal(t, 180.0, *rec.HeightCm)
	assert.Equal(t, 23.3, *rec.BMI)
}
