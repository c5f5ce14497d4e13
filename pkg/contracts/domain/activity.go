package domain

import (
	"time"
)

// RawTable is an untyped tabular dataset as read from a raw source file.
// Every cell is a string; an empty string marks a missing value once the
// null sentinels have been normalized.
type RawTable struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// ColumnIndex returns the position of the named column, or -1 if absent.
func (t *RawTable) ColumnIndex(name string) int {
	for i, col := range t.Columns {
		if col == name {
			return i
		}
	}
	return -1
}

// NullCells counts empty cells across the whole table.
func (t *RawTable) NullCells() int {
	count := 0
	for _, row := range t.Rows {
		for _, cell := range row {
			if cell == "" {
				count++
			}
		}
	}
	return count
}

// DuplicateRows counts rows that are exact duplicates of an earlier row.
func (t *RawTable) DuplicateRows() int {
	seen := make(map[string]struct{}, len(t.Rows))
	count := 0
	for _, row := range t.Rows {
		key := rowKey(row)
		if _, ok := seen[key]; ok {
			count++
			continue
		}
		seen[key] = struct{}{}
	}
	return count
}

func rowKey(row []string) string {
	key := ""
	for _, cell := range row {
		key += cell + "\x1f"
	}
	return key
}

// ActivityRecord is one logged activity event for one participant on one
// date. Pointer fields are nullable: they start nil when the source value
// is missing or unparseable, and the cleaning stages fill most of them.
// After cleaning, only date, gender, activity_type and the date-derived
// fields may still be nil.
type ActivityRecord struct {
	ParticipantID int64      `json:"participant_id"`
	Date          *time.Time `json:"date,omitempty"`

	// Demographics
	Age      *int64   `json:"age,omitempty"`
	Gender   *string  `json:"gender,omitempty"`
	HeightCm *float64 `json:"height_cm,omitempty"`
	WeightKg *float64 `json:"weight_kg,omitempty"`

	// Activity
	ActivityType    *string  `json:"activity_type,omitempty"`
	DurationMinutes *int64   `json:"duration_minutes,omitempty"`
	Intensity       string   `json:"intensity"`
	CaloriesBurned  *float64 `json:"calories_burned,omitempty"`
	AvgHeartRate    *int64   `json:"avg_heart_rate,omitempty"`
	DailySteps      *int64   `json:"daily_steps,omitempty"`

	// Physiology
	RestingHeartRate       *float64 `json:"resting_heart_rate,omitempty"`
	BloodPressureSystolic  *float64 `json:"blood_pressure_systolic,omitempty"`
	BloodPressureDiastolic *float64 `json:"blood_pressure_diastolic,omitempty"`
	HydrationLevel         *float64 `json:"hydration_level,omitempty"`
	StressLevel            *int64   `json:"stress_level,omitempty"`
	HoursSleep             *float64 `json:"hours_sleep,omitempty"`
	BMI                    *float64 `json:"bmi,omitempty"`

	// Health
	HealthCondition string `json:"health_condition"`
	SmokingStatus   string `json:"smoking_status"`

	// Calculated fields added by enrichment
	BMICategory     string   `json:"bmi_category"`
	AgeGroup        string   `json:"age_group"`
	DayOfWeek       *string  `json:"day_of_week,omitempty"`
	Month           *string  `json:"month,omitempty"`
	Year            *int64   `json:"year,omitempty"`
	WeekOfYear      *int64   `json:"week_of_year,omitempty"`
	Season          string   `json:"season"`
	IsWeekend       bool     `json:"is_weekend"`
	FitnessLevel    *float64 `json:"fitness_level,omitempty"`
	FitnessCategory string   `json:"fitness_category"`
}

// ActivityDataset is a cleaned, enriched table of activity records.
type ActivityDataset struct {
	Records           []ActivityRecord `json:"records"`
	DuplicatesRemoved int              `json:"duplicates_removed"`
}

// ActivityColumns is the canonical column order of the cleaned table,
// matching the raw source header followed by the calculated fields.
var ActivityColumns = []string{
	"participant_id",
	"date",
	"age",
	"gender",
	"height_cm",
	"weight_kg",
	"activity_type",
	"duration_minutes",
	"intensity",
	"calories_burned",
	"avg_heart_rate",
	"daily_steps",
	"resting_heart_rate",
	"blood_pressure_systolic",
	"blood_pressure_diastolic",
	"hydration_level",
	"stress_level",
	"hours_sleep",
	"bmi",
	"health_condition",
	"smoking_status",
	"bmi_category",
	"age_group",
	"day_of_week",
	"month",
	"year",
	"week_of_year",
	"season",
	"is_weekend",
	"fitness_level",
	"fitness_category",
}
