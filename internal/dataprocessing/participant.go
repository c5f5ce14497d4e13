package dataprocessing

import (
	"context"
	"log/slog"
	"math"
	"sort"

	"github.com/praiseOjay/capstone-project/pkg/contracts/domain"
)

// addParticipantMetrics computes per-participant trend and consistency
// statistics and broadcasts them onto every row of that participant.
// Each participant's computation returns an optional result: participants
// with fewer than two observations, or whose statistics degenerate, are
// skipped individually and their rows keep absent metric columns. A
// single participant never aborts the batch.
func (p *VisualizationPreparer) addParticipantMetrics(ctx context.Context, rows []domain.VisualizationRow) error {
	groups := groupByParticipant(rows)

	ids := make([]int64, 0, len(groups))
	for id := range groups {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	p.logger.InfoContext(ctx, "calculating participant metrics",
		slog.Int("participants", len(ids)))

	computed := 0
	skipped := 0
	for _, id := range ids {
		metrics, ok := p.computeParticipantMetrics(rows, groups[id])
		if !ok {
			skipped++
			if len(groups[id]) >= 2 {
				p.logger.WarnContext(ctx, "failed to calculate metrics for participant",
					slog.Int64("participant_id", id))
			}
			continue
		}
		for _, idx := range groups[id] {
			attachMetrics(&rows[idx], metrics)
		}
		computed++
	}

	p.logger.InfoContext(ctx, "participant metrics complete",
		slog.Int("computed", computed),
		slog.Int("skipped", skipped))

	return nil
}

// computeParticipantMetrics derives the metrics for one participant's
// rows, sorted chronologically. The boolean result is false when no
// metrics are available for the participant.
func (p *VisualizationPreparer) computeParticipantMetrics(rows []domain.VisualizationRow, idxs []int) (domain.ParticipantMetrics, bool) {
	if len(idxs) < 2 {
		return domain.ParticipantMetrics{}, false
	}

	ordered := sortByDate(rows, idxs)

	// Fitness level per observation, in date order
	fitness := make([]float64, 0, len(ordered))
	for _, idx := range ordered {
		if rows[idx].FitnessLevel == nil {
			return domain.ParticipantMetrics{}, false
		}
		fitness = append(fitness, *rows[idx].FitnessLevel)
	}

	slope, ok := linearSlope(fitness)
	if !ok {
		return domain.ParticipantMetrics{}, false
	}

	initial := fitness[0]
	current := fitness[len(fitness)-1]
	change := current - initial
	changePct := 0.0
	if initial > 0 {
		changePct = change / initial * 100
	}

	daysSpan := dateSpanDays(rows, ordered)
	count := float64(len(ordered))

	workoutsPerWeek := 0.0
	consistency := 0.0
	if daysSpan > 0 {
		workoutsPerWeek = count / (float64(daysSpan) / 7)
		consistency = count / float64(daysSpan) * 100
	}

	totalCalories := 0.0
	for _, idx := range ordered {
		if rows[idx].CaloriesBurned != nil {
			totalCalories += *rows[idx].CaloriesBurned
		}
	}

	m := domain.ParticipantMetrics{
		ParticipantID:    rows[ordered[0]].ParticipantID,
		FitnessTrend:     slope,
		FitnessChange:    change,
		FitnessChangePct: changePct,
		WorkoutsPerWeek:  workoutsPerWeek,
		ConsistencyScore: consistency,
		TotalWorkouts:    int64(len(ordered)),
		InitialFitness:   initial,
		CurrentFitness:   current,
		TotalDays:        daysSpan,
		TotalCalories:    totalCalories,
	}
	if !metricsFinite(&m) {
		return domain.ParticipantMetrics{}, false
	}
	return m, true
}

// sortByDate orders the participant's row indices chronologically; rows
// without a date sort last, keeping their original relative order
func sortByDate(rows []domain.VisualizationRow, idxs []int) []int {
	ordered := make([]int, len(idxs))
	copy(ordered, idxs)
	sort.SliceStable(ordered, func(a, b int) bool {
		da, db := rows[ordered[a]].Date, rows[ordered[b]].Date
		if da == nil {
			return false
		}
		if db == nil {
			return true
		}
		return da.Before(*db)
	})
	return ordered
}

// dateSpanDays returns the whole days between the earliest and latest
// dated observations; 0 when fewer than two rows carry dates
func dateSpanDays(rows []domain.VisualizationRow, idxs []int) int64 {
	var first, last int = -1, -1
	for _, idx := range idxs {
		if rows[idx].Date == nil {
			continue
		}
		if first < 0 || rows[idx].Date.Before(*rows[first].Date) {
			first = idx
		}
		if last < 0 || rows[idx].Date.After(*rows[last].Date) {
			last = idx
		}
	}
	if first < 0 || last < 0 {
		return 0
	}
	return int64(rows[last].Date.Sub(*rows[first].Date).Hours() / 24)
}

// attachMetrics copies the participant metrics onto one row
func attachMetrics(row *domain.VisualizationRow, m domain.ParticipantMetrics) {
	row.FitnessTrend = float64Ptr(m.FitnessTrend)
	row.FitnessChange = float64Ptr(m.FitnessChange)
	row.FitnessChangePct = float64Ptr(m.FitnessChangePct)
	row.WorkoutsPerWeek = float64Ptr(m.WorkoutsPerWeek)
	row.ConsistencyScore = float64Ptr(m.ConsistencyScore)
	row.TotalWorkouts = int64Ptr(m.TotalWorkouts)
	row.InitialFitness = float64Ptr(m.InitialFitness)
	row.CurrentFitness = float64Ptr(m.CurrentFitness)
	row.TotalDays = int64Ptr(m.TotalDays)
	row.TotalCalories = float64Ptr(m.TotalCalories)
}

// metricsFinite guards against non-finite statistics leaking into the
// merged table
func metricsFinite(m *domain.ParticipantMetrics) bool {
	for _, v := range []float64{
		m.FitnessTrend, m.FitnessChange, m.FitnessChangePct,
		m.WorkoutsPerWeek, m.ConsistencyScore,
		m.InitialFitness, m.CurrentFitness, m.TotalCalories,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
