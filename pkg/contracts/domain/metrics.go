package domain

import (
	"time"
)

// ParticipantMetrics holds per-participant trend and consistency
// statistics computed over that participant's records in date order.
type ParticipantMetrics struct {
	ParticipantID    int64   `json:"participant_id"`
	FitnessTrend     float64 `json:"fitness_trend"`
	FitnessChange    float64 `json:"fitness_change"`
	FitnessChangePct float64 `json:"fitness_change_pct"`
	WorkoutsPerWeek  float64 `json:"workouts_per_week"`
	ConsistencyScore float64 `json:"consistency_score"`
	TotalWorkouts    int64   `json:"total_workouts"`
	InitialFitness   float64 `json:"initial_fitness"`
	CurrentFitness   float64 `json:"current_fitness"`
	TotalDays        int64   `json:"total_days"`
	TotalCalories    float64 `json:"total_calories"`
}

// VisualizationRow is one row of the consolidated dataset consumed by the
// dashboard: a cleaned activity record with the participant metrics
// broadcast onto it and the rolling fitness average where computed.
// The parquet schema keeps date as a real timestamp and every categorical
// field as a plain UTF8 string so generic filtering and grouping work
// without type-specific handling.
type VisualizationRow struct {
	ParticipantID int64      `parquet:"participant_id" json:"participant_id"`
	Date          *time.Time `parquet:"date,optional" json:"date,omitempty"`

	Age      *int64   `parquet:"age,optional" json:"age,omitempty"`
	Gender   *string  `parquet:"gender,optional" json:"gender,omitempty"`
	HeightCm *float64 `parquet:"height_cm,optional" json:"height_cm,omitempty"`
	WeightKg *float64 `parquet:"weight_kg,optional" json:"weight_kg,omitempty"`

	ActivityType    *string  `parquet:"activity_type,optional" json:"activity_type,omitempty"`
	DurationMinutes *int64   `parquet:"duration_minutes,optional" json:"duration_minutes,omitempty"`
	Intensity       string   `parquet:"intensity" json:"intensity"`
	CaloriesBurned  *float64 `parquet:"calories_burned,optional" json:"calories_burned,omitempty"`
	AvgHeartRate    *int64   `parquet:"avg_heart_rate,optional" json:"avg_heart_rate,omitempty"`
	DailySteps      *int64   `parquet:"daily_steps,optional" json:"daily_steps,omitempty"`

	RestingHeartRate       *float64 `parquet:"resting_heart_rate,optional" json:"resting_heart_rate,omitempty"`
	BloodPressureSystolic  *float64 `parquet:"blood_pressure_systolic,optional" json:"blood_pressure_systolic,omitempty"`
	BloodPressureDiastolic *float64 `parquet:"blood_pressure_diastolic,optional" json:"blood_pressure_diastolic,omitempty"`
	HydrationLevel         *float64 `parquet:"hydration_level,optional" json:"hydration_level,omitempty"`
	StressLevel            *int64   `parquet:"stress_level,optional" json:"stress_level,omitempty"`
	HoursSleep             *float64 `parquet:"hours_sleep,optional" json:"hours_sleep,omitempty"`
	BMI                    *float64 `parquet:"bmi,optional" json:"bmi,omitempty"`

	HealthCondition string `parquet:"health_condition" json:"health_condition"`
	SmokingStatus   string `parquet:"smoking_status" json:"smoking_status"`

	BMICategory     string   `parquet:"bmi_category" json:"bmi_category"`
	AgeGroup        string   `parquet:"age_group" json:"age_group"`
	DayOfWeek       *string  `parquet:"day_of_week,optional" json:"day_of_week,omitempty"`
	Month           *string  `parquet:"month,optional" json:"month,omitempty"`
	Year            *int64   `parquet:"year,optional" json:"year,omitempty"`
	WeekOfYear      *int64   `parquet:"week_of_year,optional" json:"week_of_year,omitempty"`
	Season          string   `parquet:"season" json:"season"`
	IsWeekend       bool     `parquet:"is_weekend" json:"is_weekend"`
	FitnessLevel    *float64 `parquet:"fitness_level,optional" json:"fitness_level,omitempty"`
	FitnessCategory string   `parquet:"fitness_category" json:"fitness_category"`

	FitnessTrend     *float64 `parquet:"fitness_trend,optional" json:"fitness_trend,omitempty"`
	FitnessChange    *float64 `parquet:"fitness_change,optional" json:"fitness_change,omitempty"`
	FitnessChangePct *float64 `parquet:"fitness_change_pct,optional" json:"fitness_change_pct,omitempty"`
	WorkoutsPerWeek  *float64 `parquet:"workouts_per_week,optional" json:"workouts_per_week,omitempty"`
	ConsistencyScore *float64 `parquet:"consistency_score,optional" json:"consistency_score,omitempty"`
	TotalWorkouts    *int64   `parquet:"total_workouts,optional" json:"total_workouts,omitempty"`
	InitialFitness   *float64 `parquet:"initial_fitness,optional" json:"initial_fitness,omitempty"`
	CurrentFitness   *float64 `parquet:"current_fitness,optional" json:"current_fitness,omitempty"`
	TotalDays        *int64   `parquet:"total_days,optional" json:"total_days,omitempty"`
	TotalCalories    *float64 `parquet:"total_calories,optional" json:"total_calories,omitempty"`

	FitnessLevel30dAvg *float64 `parquet:"fitness_level_30d_avg,optional" json:"fitness_level_30d_avg,omitempty"`
}

// VisualizationDataset is the dashboard-facing table.
type VisualizationDataset struct {
	Rows []VisualizationRow `json:"rows"`
}

// VisualizationColumns extends ActivityColumns with the participant and
// weekly metric columns in merge order.
var VisualizationColumns = append(append([]string{}, ActivityColumns...),
	"fitness_trend",
	"fitness_change",
	"fitness_change_pct",
	"workouts_per_week",
	"consistency_score",
	"total_workouts",
	"initial_fitness",
	"current_fitness",
	"total_days",
	"total_calories",
	"fitness_level_30d_avg",
)
