package exporter

import (
	"github.com/praiseOjay/capstone-project/pkg/contracts/domain"
)

// FlattenActivity renders the cleaned dataset as CSV headers and rows in
// canonical column order
func FlattenActivity(ds *domain.ActivityDataset) ([]string, [][]string) {
	rows := make([][]string, 0, len(ds.Records))
	for i := range ds.Records {
		rows = append(rows, activityValues(&ds.Records[i]))
	}
	return domain.ActivityColumns, rows
}

// FlattenVisualization renders the visualization dataset as CSV headers
// and rows in canonical column order
func FlattenVisualization(vd *domain.VisualizationDataset) ([]string, [][]string) {
	rows := make([][]string, 0, len(vd.Rows))
	for i := range vd.Rows {
		rows = append(rows, visualizationValues(&vd.Rows[i]))
	}
	return domain.VisualizationColumns, rows
}

func activityValues(rec *domain.ActivityRecord) []string {
	return []string{
		formatInt(rec.ParticipantID),
		formatOptDate(rec.Date),
		formatOptInt(rec.Age),
		formatOptString(rec.Gender),
		formatOptFloat1(rec.HeightCm),
		formatOptFloat1(rec.WeightKg),
		formatOptString(rec.ActivityType),
		formatOptInt(rec.DurationMinutes),
		rec.Intensity,
		formatOptFloat1(rec.CaloriesBurned),
		formatOptInt(rec.AvgHeartRate),
		formatOptInt(rec.DailySteps),
		formatOptFloat1(rec.RestingHeartRate),
		formatOptFloat1(rec.BloodPressureSystolic),
		formatOptFloat1(rec.BloodPressureDiastolic),
		formatOptFloat1(rec.HydrationLevel),
		formatOptInt(rec.StressLevel),
		formatOptFloat1(rec.HoursSleep),
		formatOptFloat1(rec.BMI),
		rec.HealthCondition,
		rec.SmokingStatus,
		rec.BMICategory,
		rec.AgeGroup,
		formatOptString(rec.DayOfWeek),
		formatOptString(rec.Month),
		formatOptInt(rec.Year),
		formatOptInt(rec.WeekOfYear),
		rec.Season,
		formatBool(rec.IsWeekend),
		formatOptFloat1(rec.FitnessLevel),
		rec.FitnessCategory,
	}
}

func visualizationValues(row *domain.VisualizationRow) []string {
	return []string{
		formatInt(row.ParticipantID),
		formatOptDate(row.Date),
		formatOptInt(row.Age),
		formatOptString(row.Gender),
		formatOptFloat1(row.HeightCm),
		formatOptFloat1(row.WeightKg),
		formatOptString(row.ActivityType),
		formatOptInt(row.DurationMinutes),
		row.Intensity,
		formatOptFloat1(row.CaloriesBurned),
		formatOptInt(row.AvgHeartRate),
		formatOptInt(row.DailySteps),
		formatOptFloat1(row.RestingHeartRate),
		formatOptFloat1(row.BloodPressureSystolic),
		formatOptFloat1(row.BloodPressureDiastolic),
		formatOptFloat1(row.HydrationLevel),
		formatOptInt(row.StressLevel),
		formatOptFloat1(row.HoursSleep),
		formatOptFloat1(row.BMI),
		row.HealthCondition,
		row.SmokingStatus,
		row.BMICategory,
		row.AgeGroup,
		formatOptString(row.DayOfWeek),
		formatOptString(row.Month),
		formatOptInt(row.Year),
		formatOptInt(row.WeekOfYear),
		row.Season,
		formatBool(row.IsWeekend),
		formatOptFloat1(row.FitnessLevel),
		row.FitnessCategory,
		formatOptFloat(row.FitnessTrend),
		formatOptFloat(row.FitnessChange),
		formatOptFloat(row.FitnessChangePct),
		formatOptFloat(row.WorkoutsPerWeek),
		formatOptFloat(row.ConsistencyScore),
		formatOptInt(row.TotalWorkouts),
		formatOptFloat(row.InitialFitness),
		formatOptFloat(row.CurrentFitness),
		formatOptInt(row.TotalDays),
		formatOptFloat(row.TotalCalories),
		formatOptFloat(row.FitnessLevel30dAvg),
	}
}
