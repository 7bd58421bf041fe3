package core

import (
	"sort"

	"github.com/sr-kai/mango-lollipop/pkg/models"
)

// MessageStats holds the aggregate counts precomputed at build time for the
// dashboard and overview documents, and reused by the status command.
type MessageStats struct {
	Total     int
	TxCount   int
	LcCount   int
	ByStage   map[models.Stage]int
	ByChannel map[models.Channel]int
	TagCounts map[string]int
	// AllTags is the sorted distinct tag list. Counts are per occurrence
	// across messages, not deduplicated within a message's tag list.
	AllTags []string
}

// BuildStats aggregates a message collection. Channel counts attribute each
// message to its primary channel only, matching the presentation layer.
func BuildStats(messages []models.Message) MessageStats {
	stats := MessageStats{
		Total:     len(messages),
		ByStage:   make(map[models.Stage]int),
		ByChannel: make(map[models.Channel]int),
		TagCounts: make(map[string]int),
	}

	for _, m := range messages {
		switch m.Classification {
		case models.ClassTransactional:
			stats.TxCount++
		case models.ClassLifecycle:
			stats.LcCount++
		}
		stats.ByStage[m.Stage]++
		if ch := m.PrimaryChannel(); ch != "" {
			stats.ByChannel[ch]++
		}
		for _, tag := range m.Tags {
			stats.TagCounts[tag]++
		}
	}

	stats.AllTags = make([]string, 0, len(stats.TagCounts))
	for tag := range stats.TagCounts {
		stats.AllTags = append(stats.AllTags, tag)
	}
	sort.Strings(stats.AllTags)

	return stats
}

// ImplementationOrder returns the recommended rollout order: the non-empty
// stages in TX, AQ, AC, RV, RT, RF order with 1-based priorities.
type ImplementationStep struct {
	Priority int
	Stage    models.Stage
	Count    int
}

func ImplementationOrder(stats MessageStats) []ImplementationStep {
	var steps []ImplementationStep
	for _, stage := range models.StageOrder {
		if stats.ByStage[stage] == 0 {
			continue
		}
		steps = append(steps, ImplementationStep{
			Priority: len(steps) + 1,
			Stage:    stage,
			Count:    stats.ByStage[stage],
		})
	}
	return steps
}
