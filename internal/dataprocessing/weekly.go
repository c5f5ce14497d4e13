package dataprocessing

import (
	"context"
	"log/slog"
	"math/rand"
	"sort"

	"github.com/praiseOjay/capstone-project/pkg/contracts/domain"
)

// addWeeklyMetrics adds the calendar-derived week column where missing
// and the trailing rolling fitness average for a bounded, seeded sample
// of participants. The sampling caps compute cost on large inputs; rows
// outside the sample keep an absent rolling average.
func (p *VisualizationPreparer) addWeeklyMetrics(ctx context.Context, rows []domain.VisualizationRow) {
	for i := range rows {
		if rows[i].WeekOfYear == nil && rows[i].Date != nil {
			_, week := rows[i].Date.ISOWeek()
			rows[i].WeekOfYear = int64Ptr(int64(week))
		}
	}

	groups := groupByParticipant(rows)
	sampled := p.sampleParticipants(groups)

	p.logger.InfoContext(ctx, "calculating rolling averages by participant",
		slog.Int("participants", len(groups)),
		slog.Int("sampled", len(sampled)))

	for _, id := range sampled {
		idxs := groups[id]
		if len(idxs) < p.config.MinObservations {
			continue
		}

		ordered := sortByDate(rows, idxs)
		averages := rollingMean(rows, ordered, p.config.RollingWindow)
		for i, idx := range ordered {
			if avg := averages[i]; avg != nil {
				rows[idx].FitnessLevel30dAvg = avg
			}
		}
	}
}

// sampleParticipants draws up to SampleSize distinct participant ids
// with a seeded shuffle so the sample is reproducible across runs
func (p *VisualizationPreparer) sampleParticipants(groups map[int64][]int) []int64 {
	ids := make([]int64, 0, len(groups))
	for id := range groups {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	rng := rand.New(rand.NewSource(p.config.SampleSeed))
	rng.Shuffle(len(ids), func(i, j int) {
		ids[i], ids[j] = ids[j], ids[i]
	})

	if len(ids) > p.config.SampleSize {
		ids = ids[:p.config.SampleSize]
	}
	return ids
}

// rollingMean computes the trailing rolling mean of fitness_level over
// the ordered row indices with a minimum of one observation; windows
// with no present values yield an absent result
func rollingMean(rows []domain.VisualizationRow, ordered []int, window int) []*float64 {
	out := make([]*float64, len(ordered))
	for i := range ordered {
		start := i - window + 1
		if start < 0 {
			start = 0
		}

		sum := 0.0
		count := 0
		for j := start; j <= i; j++ {
			if fl := rows[ordered[j]].FitnessLevel; fl != nil {
				sum += *fl
				count++
			}
		}
		if count > 0 {
			out[i] = float64Ptr(sum / float64(count))
		}
	}
	return out
}
