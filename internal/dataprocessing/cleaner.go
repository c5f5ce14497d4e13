package dataprocessing

import (
	"context"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/praiseOjay/capstone-project/pkg/contracts/domain"
)

// Column names of the raw fitness dataset
const (
	colParticipantID          = "participant_id"
	colDate                   = "date"
	colAge                    = "age"
	colGender                 = "gender"
	colHeightCm               = "height_cm"
	colWeightKg               = "weight_kg"
	colActivityType           = "activity_type"
	colDurationMinutes        = "duration_minutes"
	colIntensity              = "intensity"
	colCaloriesBurned         = "calories_burned"
	colAvgHeartRate           = "avg_heart_rate"
	colDailySteps             = "daily_steps"
	colRestingHeartRate       = "resting_heart_rate"
	colBloodPressureSystolic  = "blood_pressure_systolic"
	colBloodPressureDiastolic = "blood_pressure_diastolic"
	colHydrationLevel         = "hydration_level"
	colStressLevel            = "stress_level"
	colHoursSleep             = "hours_sleep"
	colBMI                    = "bmi"
	colHealthCondition        = "health_condition"
	colSmokingStatus          = "smoking_status"
)

// NoConditionSentinel is the canonical "no data" value for health_condition
const NoConditionSentinel = "No Condition"

// nullSentinels are the string spellings of missing values in the raw
// source, replaced with a true missing marker before any other stage runs
var nullSentinels = map[string]struct{}{
	"N/A":  {},
	"NA":   {},
	"null": {},
	"None": {},
	"n/a":  {},
	"-":    {},
	"":     {},
	"nan":  {},
}

// Categorical standardization tables. Keys are lower-cased; values not
// matching any entry pass through unchanged.
var (
	genderMap = map[string]string{
		"male":   "M",
		"m":      "M",
		"female": "F",
		"f":      "F",
	}
	intensityMap = map[string]string{
		"low":    "Low",
		"l":      "Low",
		"medium": "Medium",
		"med":    "Medium",
		"m":      "Medium",
		"high":   "High",
		"h":      "High",
	}
	smokingMap = map[string]string{
		"non-smoker":     "Never",
		"nonsmoker":      "Never",
		"former smoker":  "Former",
		"current smoker": "Current",
	}
	healthConditionMap = map[string]string{
		"none": NoConditionSentinel,
	}
)

// generalDateFormats approximate a lenient month-first mixed parse; the
// fallback list retries anything left over with day-first layouts only,
// since every other layout already failed in the first pass. Month-first
// before day-first is the tie-breaker for ambiguous numeric dates, so
// the two lists must not be rearranged.
var (
	generalDateFormats = []string{
		"2006-01-02",
		"01/02/2006",
		"01-02-2006",
		"2006/01/02",
		"2 January 2006",
	}
	fallbackDateFormats = []string{
		"02-01-2006",
		"02/01/2006",
	}
)

// workingRecord is the in-progress typed form of one raw row. Numeric
// cells parse to optional floats so the imputation stages can distinguish
// missing from zero; integer casting happens last, in convertDataTypes.
type workingRecord struct {
	participantID *float64
	rawDate       string
	date          *time.Time

	age             *float64
	gender          *string
	heightCm        *float64
	weightKg        *float64
	activityType    *string
	durationMinutes *float64
	intensity       *string
	caloriesBurned  *float64
	avgHeartRate    *float64
	dailySteps      *float64

	restingHeartRate       *float64
	bloodPressureSystolic  *float64
	bloodPressureDiastolic *float64
	hydrationLevel         *float64
	stressLevel            *float64
	hoursSleep             *float64
	bmi                    *float64

	healthCondition *string
	smokingStatus   *string
}

// workingTable pairs the typed rows with the set of columns the raw
// source actually carried; stages only touch columns that exist, the way
// the pipeline behaves when fed partial extracts.
type workingTable struct {
	recs    []workingRecord
	present map[string]bool
}

func (t *workingTable) has(col string) bool {
	return t.present[col]
}

// Cleaner normalizes a raw fitness table into a canonical clean dataset:
// null handling, deduplication, format standardization, categorical
// mapping, date parsing, imputation, type coercion, BMI recomputation and
// enrichment with calculated fields. It is a total function over any raw
// table; unknown or missing columns are tolerated.
type Cleaner struct {
	logger   *slog.Logger
	enricher *Enricher
}

// NewCleaner creates a new Cleaner
func NewCleaner(logger *slog.Logger) *Cleaner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Cleaner{
		logger:   logger,
		enricher: NewEnricher(logger),
	}
}

// Clean runs the ordered cleaning stages over the raw table and returns
// the cleaned, enriched dataset. Stage order matters: later stages depend
// on the normalization done by earlier ones. Cleaning is all-or-nothing;
// there is no partial-result recovery.
func (c *Cleaner) Clean(ctx context.Context, raw *domain.RawTable) (*domain.ActivityDataset, error) {
	table := copyTable(raw)

	c.handleStringNulls(table)
	removed := c.removeDuplicates(ctx, table)
	c.standardizeFormatting(table)
	c.standardizeCategoricalValues(table)

	work := c.toWorkingTable(table)
	c.standardizeDates(ctx, work)
	c.handleMissingValues(work)
	records := c.convertDataTypes(work)
	c.recalculateBMI(work, records)

	records = c.enricher.Enrich(ctx, records)

	c.logger.InfoContext(ctx, "cleaning complete",
		slog.Int("input_rows", len(raw.Rows)),
		slog.Int("output_rows", len(records)),
		slog.Int("duplicates_removed", removed))

	return &domain.ActivityDataset{
		Records:           records,
		DuplicatesRemoved: removed,
	}, nil
}

// copyTable clones the raw table so cleaning never mutates the input
func copyTable(raw *domain.RawTable) *domain.RawTable {
	columns := make([]string, len(raw.Columns))
	copy(columns, raw.Columns)

	rows := make([][]string, len(raw.Rows))
	for i, row := range raw.Rows {
		rows[i] = make([]string, len(row))
		copy(rows[i], row)
	}
	return &domain.RawTable{Columns: columns, Rows: rows}
}

// handleStringNulls replaces string spellings of null with a true
// missing marker (the empty cell)
func (c *Cleaner) handleStringNulls(table *domain.RawTable) {
	for _, row := range table.Rows {
		for i, cell := range row {
			if _, isNull := nullSentinels[cell]; isNull {
				row[i] = ""
			}
		}
	}
}

// removeDuplicates drops rows that are exact duplicates across all
// columns, keeping the first occurrence, and returns the removed count
func (c *Cleaner) removeDuplicates(ctx context.Context, table *domain.RawTable) int {
	seen := make(map[string]struct{}, len(table.Rows))
	kept := table.Rows[:0]
	removed := 0

	for _, row := range table.Rows {
		key := strings.Join(row, "\x1f")
		if _, dup := seen[key]; dup {
			removed++
			continue
		}
		seen[key] = struct{}{}
		kept = append(kept, row)
	}
	table.Rows = kept

	c.logger.InfoContext(ctx, "removed duplicate records", slog.Int("count", removed))
	return removed
}

// standardizeFormatting strips leading and trailing whitespace from
// every cell
func (c *Cleaner) standardizeFormatting(table *domain.RawTable) {
	for _, row := range table.Rows {
		for i, cell := range row {
			row[i] = strings.TrimSpace(cell)
		}
	}
}

// standardizeCategoricalValues applies the fixed case-insensitive
// mapping tables to the categorical columns
func (c *Cleaner) standardizeCategoricalValues(table *domain.RawTable) {
	applyMapping := func(col string, mapping map[string]string) {
		idx := table.ColumnIndex(col)
		if idx < 0 {
			return
		}
		for _, row := range table.Rows {
			if row[idx] == "" {
				continue
			}
			if canonical, ok := mapping[strings.ToLower(row[idx])]; ok {
				row[idx] = canonical
			}
		}
	}

	applyMapping(colGender, genderMap)
	applyMapping(colIntensity, intensityMap)
	applyMapping(colSmokingStatus, smokingMap)
	applyMapping(colHealthCondition, healthConditionMap)
}

// toWorkingTable parses the normalized string grid into typed working
// records; numeric cells that do not parse become missing
func (c *Cleaner) toWorkingTable(table *domain.RawTable) *workingTable {
	present := make(map[string]bool, len(table.Columns))
	for _, col := range table.Columns {
		present[col] = true
	}

	cell := func(row []string, col string) string {
		idx := table.ColumnIndex(col)
		if idx < 0 {
			return ""
		}
		return row[idx]
	}

	recs := make([]workingRecord, 0, len(table.Rows))
	for _, row := range table.Rows {
		recs = append(recs, workingRecord{
			participantID:          parseNumeric(cell(row, colParticipantID)),
			rawDate:                cell(row, colDate),
			age:                    parseNumeric(cell(row, colAge)),
			gender:                 parseText(cell(row, colGender)),
			heightCm:               parseNumeric(cell(row, colHeightCm)),
			weightKg:               parseNumeric(cell(row, colWeightKg)),
			activityType:           parseText(cell(row, colActivityType)),
			durationMinutes:        parseNumeric(cell(row, colDurationMinutes)),
			intensity:              parseText(cell(row, colIntensity)),
			caloriesBurned:         parseNumeric(cell(row, colCaloriesBurned)),
			avgHeartRate:           parseNumeric(cell(row, colAvgHeartRate)),
			dailySteps:             parseNumeric(cell(row, colDailySteps)),
			restingHeartRate:       parseNumeric(cell(row, colRestingHeartRate)),
			bloodPressureSystolic:  parseNumeric(cell(row, colBloodPressureSystolic)),
			bloodPressureDiastolic: parseNumeric(cell(row, colBloodPressureDiastolic)),
			hydrationLevel:         parseNumeric(cell(row, colHydrationLevel)),
			stressLevel:            parseNumeric(cell(row, colStressLevel)),
			hoursSleep:             parseNumeric(cell(row, colHoursSleep)),
			bmi:                    parseNumeric(cell(row, colBMI)),
			healthCondition:        parseText(cell(row, colHealthCondition)),
			smokingStatus:          parseText(cell(row, colSmokingStatus)),
		})
	}

	return &workingTable{recs: recs, present: present}
}

// standardizeDates parses the heterogeneous date strings: a general
// month-first pass, then the explicit fallback formats in order. Rows
// whose date matches no format keep a missing date rather than being
// dropped.
func (c *Cleaner) standardizeDates(ctx context.Context, work *workingTable) {
	if !work.has(colDate) {
		return
	}

	unparsed := 0
	for i := range work.recs {
		rec := &work.recs[i]
		if rec.rawDate == "" {
			continue
		}
		if t, ok := parseDate(rec.rawDate); ok {
			rec.date = &t
		} else {
			unparsed++
		}
	}

	if unparsed > 0 {
		c.logger.WarnContext(ctx, "dates failed to parse and remain missing",
			slog.Int("count", unparsed))
	}
}

// parseDate attempts the general formats then the explicit fallbacks,
// stopping at the first success
func parseDate(s string) (time.Time, bool) {
	for _, layout := range generalDateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	for _, layout := range fallbackDateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// handleMissingValues fills missing values with the column-specific
// strategies: sentinel fills for the health columns, median for
// measurements, mean for calculated fields, age-bucketed median for
// sleep and the modal value for intensity.
func (c *Cleaner) handleMissingValues(work *workingTable) {
	recs := work.recs

	if work.has(colHealthCondition) {
		for i := range recs {
			hc := recs[i].healthCondition
			if hc == nil || *hc == "" || strings.EqualFold(*hc, "none") {
				recs[i].healthCondition = stringPtr(NoConditionSentinel)
			}
		}
	}

	if work.has(colSmokingStatus) {
		for i := range recs {
			if recs[i].smokingStatus == nil {
				recs[i].smokingStatus = stringPtr("Never")
			}
		}
	}

	medianFill := []struct {
		col string
		f   func(*workingRecord) **float64
	}{
		{colWeightKg, func(r *workingRecord) **float64 { return &r.weightKg }},
		{colHeightCm, func(r *workingRecord) **float64 { return &r.heightCm }},
		{colRestingHeartRate, func(r *workingRecord) **float64 { return &r.restingHeartRate }},
		{colBloodPressureSystolic, func(r *workingRecord) **float64 { return &r.bloodPressureSystolic }},
		{colBloodPressureDiastolic, func(r *workingRecord) **float64 { return &r.bloodPressureDiastolic }},
		{colHydrationLevel, func(r *workingRecord) **float64 { return &r.hydrationLevel }},
	}
	for _, col := range medianFill {
		if work.has(col.col) {
			fillWithMedian(recs, col.f)
		}
	}

	meanFill := []struct {
		col string
		f   func(*workingRecord) **float64
	}{
		{colCaloriesBurned, func(r *workingRecord) **float64 { return &r.caloriesBurned }},
		{colAvgHeartRate, func(r *workingRecord) **float64 { return &r.avgHeartRate }},
		{colDailySteps, func(r *workingRecord) **float64 { return &r.dailySteps }},
	}
	for _, col := range meanFill {
		if work.has(col.col) {
			fillWithMean(recs, col.f)
		}
	}

	if work.has(colHoursSleep) && work.has(colAge) {
		c.fillSleepByAgeBucket(recs)
	}
	if work.has(colHoursSleep) {
		fillWithMedian(recs, func(r *workingRecord) **float64 { return &r.hoursSleep })
	}

	if work.has(colIntensity) {
		var values []string
		for i := range recs {
			if recs[i].intensity != nil {
				values = append(values, *recs[i].intensity)
			}
		}
		if modal, ok := mode(values); ok {
			for i := range recs {
				if recs[i].intensity == nil {
					recs[i].intensity = stringPtr(modal)
				}
			}
		}
	}

	if work.has(colDurationMinutes) {
		fillWithMedian(recs, func(r *workingRecord) **float64 { return &r.durationMinutes })
	}
}

// sleep imputation buckets by age: (0,18] (18,35] (35,50] (50,65] (65,100]
var sleepAgeBuckets = []float64{0, 18, 35, 50, 65, 100}

// fillSleepByAgeBucket imputes missing hours_sleep with the median of the
// record's age bucket; records without a bucket are left for the global
// median pass
func (c *Cleaner) fillSleepByAgeBucket(recs []workingRecord) {
	bucketOf := func(age *float64) int {
		if age == nil {
			return -1
		}
		for b := 0; b < len(sleepAgeBuckets)-1; b++ {
			if *age > sleepAgeBuckets[b] && *age <= sleepAgeBuckets[b+1] {
				return b
			}
		}
		return -1
	}

	bucketVals := make(map[int][]float64)
	for i := range recs {
		if b := bucketOf(recs[i].age); b >= 0 && recs[i].hoursSleep != nil {
			bucketVals[b] = append(bucketVals[b], *recs[i].hoursSleep)
		}
	}

	for i := range recs {
		if recs[i].hoursSleep != nil {
			continue
		}
		b := bucketOf(recs[i].age)
		if b < 0 {
			continue
		}
		if med, ok := median(bucketVals[b]); ok {
			recs[i].hoursSleep = float64Ptr(med)
		}
	}
}

// convertDataTypes performs the final type coercion: re-imputes the
// integer columns where numeric parsing introduced new gaps, rounds and
// casts them to integers, and rounds the remaining fractional columns to
// 1 decimal place. Categorical fields stay plain strings.
func (c *Cleaner) convertDataTypes(work *workingTable) []domain.ActivityRecord {
	recs := work.recs

	reimpute := []struct {
		col string
		f   func(*workingRecord) **float64
	}{
		{colAge, func(r *workingRecord) **float64 { return &r.age }},
		{colDurationMinutes, func(r *workingRecord) **float64 { return &r.durationMinutes }},
		{colAvgHeartRate, func(r *workingRecord) **float64 { return &r.avgHeartRate }},
		{colStressLevel, func(r *workingRecord) **float64 { return &r.stressLevel }},
		{colDailySteps, func(r *workingRecord) **float64 { return &r.dailySteps }},
	}
	for _, col := range reimpute {
		if work.has(col.col) {
			fillWithMedian(recs, col.f)
		}
	}

	records := make([]domain.ActivityRecord, 0, len(recs))
	for i := range recs {
		r := &recs[i]
		records = append(records, domain.ActivityRecord{
			ParticipantID:          toID(r.participantID),
			Date:                   r.date,
			Age:                    toInt(r.age),
			Gender:                 r.gender,
			HeightCm:               toRounded(r.heightCm),
			WeightKg:               toRounded(r.weightKg),
			ActivityType:           r.activityType,
			DurationMinutes:        toInt(r.durationMinutes),
			Intensity:              toText(r.intensity),
			CaloriesBurned:         toRounded(r.caloriesBurned),
			AvgHeartRate:           toInt(r.avgHeartRate),
			DailySteps:             toInt(r.dailySteps),
			RestingHeartRate:       toRounded(r.restingHeartRate),
			BloodPressureSystolic:  toRounded(r.bloodPressureSystolic),
			BloodPressureDiastolic: toRounded(r.bloodPressureDiastolic),
			HydrationLevel:         toRounded(r.hydrationLevel),
			StressLevel:            toInt(r.stressLevel),
			HoursSleep:             toRounded(r.hoursSleep),
			BMI:                    toRounded(r.bmi),
			HealthCondition:        toText(r.healthCondition),
			SmokingStatus:          toText(r.smokingStatus),
		})
	}
	return records
}

// recalculateBMI overwrites bmi with the value derived from weight and
// height; the source value is never trusted
func (c *Cleaner) recalculateBMI(work *workingTable, records []domain.ActivityRecord) {
	if !work.has(colWeightKg) || !work.has(colHeightCm) {
		return
	}
	for i := range records {
		rec := &records[i]
		if rec.WeightKg == nil || rec.HeightCm == nil || *rec.HeightCm <= 0 {
			rec.BMI = nil
			continue
		}
		heightM := *rec.HeightCm / 100
		rec.BMI = float64Ptr(round1(*rec.WeightKg / (heightM * heightM)))
	}
}

// fillWithMedian fills missing values of one column with that column's
// median over the present values
func fillWithMedian(recs []workingRecord, f func(*workingRecord) **float64) {
	var vals []float64
	for i := range recs {
		if v := *f(&recs[i]); v != nil {
			vals = append(vals, *v)
		}
	}
	med, ok := median(vals)
	if !ok {
		return
	}
	for i := range recs {
		if slot := f(&recs[i]); *slot == nil {
			*slot = float64Ptr(med)
		}
	}
}

// fillWithMean fills missing values of one column with that column's mean
func fillWithMean(recs []workingRecord, f func(*workingRecord) **float64) {
	var vals []float64
	for i := range recs {
		if v := *f(&recs[i]); v != nil {
			vals = append(vals, *v)
		}
	}
	avg, ok := mean(vals)
	if !ok {
		return
	}
	for i := range recs {
		if slot := f(&recs[i]); *slot == nil {
			*slot = float64Ptr(avg)
		}
	}
}

// parseNumeric interprets a cell as a number, treating non-numeric text
// as missing
func parseNumeric(cell string) *float64 {
	if cell == "" {
		return nil
	}
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// parseText interprets a cell as free text, empty meaning missing
func parseText(cell string) *string {
	if cell == "" {
		return nil
	}
	v := cell
	return &v
}

func toID(v *float64) int64 {
	if v == nil {
		return 0
	}
	return int64(math.Round(*v))
}

func toInt(v *float64) *int64 {
	if v == nil {
		return nil
	}
	return int64Ptr(int64(math.Round(*v)))
}

func toRounded(v *float64) *float64 {
	if v == nil {
		return nil
	}
	return float64Ptr(round1(*v))
}

func toText(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
