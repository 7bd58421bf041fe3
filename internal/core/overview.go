package core

import (
	"strings"

	"github.com/sr-kai/mango-lollipop/pkg/models"
)

type overviewStep struct {
	Priority int
	Meta     htmlStageMeta
	Count    int
}

type overviewData struct {
	Analysis     models.Analysis
	Stats        MessageStats
	Stages       []stageBadge
	Tags         []tagCount
	Rows         []matrixRow
	Order        []overviewStep
	ChannelList  string
	MessagesJSON string
	AnalysisJSON string
}

// GenerateOverview renders the printable summary document: company profile,
// stage breakdown, condensed message inventory, tag summary, and the
// recommended implementation order.
func GenerateOverview(matrix models.Matrix, analysis models.Analysis) (string, error) {
	stats := BuildStats(matrix.Messages)

	msgJSON, err := toJSON(matrix.Messages)
	if err != nil {
		return "", err
	}
	analysisJSON, err := toJSON(analysis)
	if err != nil {
		return "", err
	}

	steps := ImplementationOrder(stats)
	order := make([]overviewStep, len(steps))
	for i, step := range steps {
		order[i] = overviewStep{Priority: step.Priority, Meta: htmlStageMetas[step.Stage], Count: step.Count}
	}

	channels := make([]string, len(analysis.Channels))
	for i, ch := range analysis.Channels {
		channels[i] = string(ch)
	}

	data := overviewData{
		Analysis:     analysis,
		Stats:        stats,
		Stages:       stageBadges(stats),
		Tags:         tagCounts(stats),
		Rows:         buildMatrixRows(matrix.Messages),
		Order:        order,
		ChannelList:  strings.Join(channels, ", "),
		MessagesJSON: msgJSON,
		AnalysisJSON: analysisJSON,
	}
	return renderHTMLTemplate("overview.html.tmpl", data)
}
