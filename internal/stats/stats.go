// internal/stats/stats.go
package stats

import (
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/surveillance-tools/panoramix/asterix"
)

// MessageStats tracks process-wide decode counters, generalized from
// idefix/internal/stats's fixed per-category fields (Category020,
// Category021, ...) to a map, so adding a category never touches this
// accumulator.
type MessageStats struct {
	Total      int
	Malformed  int
	byCategory map[asterix.Category]int
	StartTime  time.Time
}

// NewMessageStats creates a new accumulator.
func NewMessageStats() *MessageStats {
	return &MessageStats{
		byCategory: make(map[asterix.Category]int),
		StartTime:  time.Now(),
	}
}

// IncrementCategory counts one successfully decoded message.
func (s *MessageStats) IncrementCategory(cat asterix.Category) {
	s.Total++
	s.byCategory[cat]++
}

// IncrementMalformed counts one frame/block/record that failed to decode
// and was skipped (non-strict mode).
func (s *MessageStats) IncrementMalformed() {
	s.Malformed++
}

// LogStats logs current statistics through logger. final adds per-category
// percentages, matching idefix's "Final Statistics" summary.
func (s *MessageStats) LogStats(logger *slog.Logger, final bool) {
	if s.Total == 0 && s.Malformed == 0 {
		return
	}

	duration := time.Since(s.StartTime)
	var rate float64
	if duration.Seconds() > 0 {
		rate = float64(s.Total) / duration.Seconds()
	}

	cats := make([]asterix.Category, 0, len(s.byCategory))
	for c := range s.byCategory {
		cats = append(cats, c)
	}
	sort.Slice(cats, func(i, j int) bool { return cats[i] < cats[j] })

	args := []any{
		"duration", duration.Round(time.Second).String(),
		"total_messages", s.Total,
		"malformed", s.Malformed,
	}
	for _, cat := range cats {
		count := s.byCategory[cat]
		if final && s.Total > 0 {
			pct := float64(count) / float64(s.Total) * 100
			args = append(args, cat.String(), count, cat.String()+"_pct", fmt.Sprintf("%.1f%%", pct))
		} else {
			args = append(args, cat.String(), count)
		}
	}
	args = append(args, "rate", fmt.Sprintf("%.1f msg/s", rate))

	if final {
		logger.Info("Final Statistics", args...)
	} else {
		logger.Info("Statistics", args...)
	}
}
