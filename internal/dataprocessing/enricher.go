package dataprocessing

import (
	"context"
	"log/slog"
	"time"

	"github.com/praiseOjay/capstone-project/pkg/contracts/domain"
)

// intensityWeights is the numeric weighting of workout intensity used by
// the fitness score; missing or unknown intensity weighs 1
var intensityWeights = map[string]float64{
	"Low":    1,
	"Medium": 2,
	"High":   3,
}

// Enricher adds calculated categorical and numeric fields to cleaned
// records. It only adds fields; existing values are never removed or
// changed, except that age is clipped into [0,100].
type Enricher struct {
	logger *slog.Logger
}

// NewEnricher creates a new Enricher
func NewEnricher(logger *slog.Logger) *Enricher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Enricher{logger: logger}
}

// Enrich computes the calculated fields for every record
func (e *Enricher) Enrich(ctx context.Context, records []domain.ActivityRecord) []domain.ActivityRecord {
	for i := range records {
		rec := &records[i]

		if rec.Age != nil {
			rec.Age = int64Ptr(clipInt(*rec.Age, 0, 100))
		}

		rec.BMICategory = bmiCategory(rec.BMI)
		rec.AgeGroup = ageGroup(rec.Age)
		e.addDateFields(rec)
		e.addFitnessScore(rec)
	}

	e.logger.InfoContext(ctx, "enrichment complete",
		slog.Int("records", len(records)))

	return records
}

// bmiCategory buckets BMI into the standard WHO-style categories
func bmiCategory(bmi *float64) string {
	switch {
	case bmi == nil:
		return "Unknown"
	case *bmi < 18.5:
		return "Underweight"
	case *bmi < 25:
		return "Normal"
	case *bmi < 30:
		return "Overweight"
	default:
		return "Obese"
	}
}

// ageGroup buckets age with right-closed bins (0,18] (18,35] (35,50]
// (50,65] (65,100]; ages outside every bin are Unknown
func ageGroup(age *int64) string {
	if age == nil {
		return "Unknown"
	}
	a := *age
	switch {
	case a > 0 && a <= 18:
		return "Under 18"
	case a > 18 && a <= 35:
		return "18-34"
	case a > 35 && a <= 50:
		return "35-49"
	case a > 50 && a <= 65:
		return "50-64"
	case a > 65 && a <= 100:
		return "65+"
	default:
		return "Unknown"
	}
}

// addDateFields derives the calendar fields from the activity date.
// Records without a parseable date keep missing calendar fields, an
// Unknown season and a false weekend flag.
func (e *Enricher) addDateFields(rec *domain.ActivityRecord) {
	if rec.Date == nil {
		rec.Season = "Unknown"
		rec.IsWeekend = false
		return
	}

	d := *rec.Date
	rec.DayOfWeek = stringPtr(d.Weekday().String())
	rec.Month = stringPtr(d.Month().String())
	rec.Year = int64Ptr(int64(d.Year()))

	_, isoWeek := d.ISOWeek()
	rec.WeekOfYear = int64Ptr(int64(isoWeek))

	rec.Season = season(d.Month())
	rec.IsWeekend = d.Weekday() == time.Saturday || d.Weekday() == time.Sunday
}

// season maps months to meteorological seasons
func season(m time.Month) string {
	switch {
	case m >= time.March && m <= time.May:
		return "Spring"
	case m >= time.June && m <= time.August:
		return "Summer"
	case m >= time.September && m <= time.November:
		return "Fall"
	case m == time.December || m <= time.February:
		return "Winter"
	default:
		return "Unknown"
	}
}

// addFitnessScore computes the heuristic fitness level on a 0-10 scale
// from heart rate, duration and intensity, and its category. The formula
// is a fixed contract with the dashboard; its numeric output must not
// change.
func (e *Enricher) addFitnessScore(rec *domain.ActivityRecord) {
	if rec.AvgHeartRate == nil || rec.DurationMinutes == nil {
		rec.FitnessCategory = "Unknown"
		return
	}

	weight, ok := intensityWeights[rec.Intensity]
	if !ok {
		weight = 1
	}

	score := (float64(*rec.DurationMinutes) / 30) * weight *
		(1 - (float64(*rec.AvgHeartRate)-70)/130)
	score = round1(clipFloat(score, 0, 10))

	rec.FitnessLevel = float64Ptr(score)
	rec.FitnessCategory = fitnessCategory(score)
}

// fitnessCategory buckets the fitness score
func fitnessCategory(score float64) string {
	switch {
	case score < 3:
		return "Low"
	case score < 6:
		return "Moderate"
	case score < 8:
		return "Good"
	default:
		return "Excellent"
	}
}
