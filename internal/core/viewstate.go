package core

import (
	"sort"
	"strings"

	"github.com/sr-kai/mango-lollipop/pkg/models"
)

// ViewFilter selects a classification subset.
type ViewFilter string

const (
	ViewAll           ViewFilter = "all"
	ViewTransactional ViewFilter = "tx"
	ViewLifecycle     ViewFilter = "lc"
)

// ViewState is the serializable UI state of the dashboard table: active
// filters, sort column and direction. The zero value ignores all filters
// and sorts by ID ascending. The embedded dashboard script mirrors this
// structure and VisibleMessages' semantics exactly.
type ViewState struct {
	View     ViewFilter       `json:"view"`
	Stages   []models.Stage   `json:"stages"`
	Channels []models.Channel `json:"channels"`
	Tags     []string         `json:"tags"`
	SortCol  string           `json:"sortCol"`
	SortAsc  bool             `json:"sortAsc"`
}

// DefaultViewState is the initial dashboard state: everything visible,
// sorted by ID ascending.
func DefaultViewState() ViewState {
	return ViewState{View: ViewAll, SortCol: "id", SortAsc: true}
}

// ToggleSort returns the state after a click on the given sort column:
// clicking the active column flips direction, clicking a new column sorts
// it ascending. A double click on the same column is idempotent.
func (s ViewState) ToggleSort(col string) ViewState {
	if s.SortCol == col {
		s.SortAsc = !s.SortAsc
	} else {
		s.SortCol = col
		s.SortAsc = true
	}
	return s
}

// sortKey extracts the comparable value of a sortable column. String
// comparison is case-insensitive.
func sortKey(m models.Message, col string) string {
	switch col {
	case "stage":
		return strings.ToLower(string(m.Stage))
	case "name":
		return strings.ToLower(m.Name)
	case "wait":
		return strings.ToLower(m.Wait)
	default:
		return strings.ToLower(m.ID)
	}
}

// VisibleMessages computes the filtered, sorted view of a message collection
// for a given UI state. Membership within one filter dimension is OR; the
// dimensions combine with AND. An empty dimension does not filter. The input
// slice is not mutated.
func VisibleMessages(messages []models.Message, state ViewState) []models.Message {
	visible := make([]models.Message, 0, len(messages))

	for _, m := range messages {
		switch state.View {
		case ViewTransactional:
			if m.Classification != models.ClassTransactional {
				continue
			}
		case ViewLifecycle:
			if m.Classification != models.ClassLifecycle {
				continue
			}
		}

		if len(state.Stages) > 0 && !containsStage(state.Stages, m.Stage) {
			continue
		}
		if len(state.Channels) > 0 && !anyChannelActive(state.Channels, m) {
			continue
		}
		if len(state.Tags) > 0 && !anyTagActive(state.Tags, m) {
			continue
		}
		visible = append(visible, m)
	}

	sort.SliceStable(visible, func(i, j int) bool {
		a, b := sortKey(visible[i], state.SortCol), sortKey(visible[j], state.SortCol)
		if state.SortAsc {
			return a < b
		}
		return a > b
	})
	return visible
}

func containsStage(stages []models.Stage, s models.Stage) bool {
	for _, stage := range stages {
		if stage == s {
			return true
		}
	}
	return false
}

func anyChannelActive(channels []models.Channel, m models.Message) bool {
	for _, ch := range channels {
		if m.HasChannel(ch) {
			return true
		}
	}
	return false
}

func anyTagActive(tags []string, m models.Message) bool {
	for _, tag := range tags {
		if m.HasTag(tag) {
			return true
		}
	}
	return false
}
