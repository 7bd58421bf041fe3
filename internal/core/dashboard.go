package core

import (
	"github.com/sr-kai/mango-lollipop/pkg/models"
)

// matrixRow is one server-rendered table row plus its hidden detail row.
type matrixRow struct {
	M       models.Message
	Meta    htmlStageMeta
	Channel models.Channel
	Guards  string
	Supps   string
}

func buildMatrixRows(messages []models.Message) []matrixRow {
	rows := make([]matrixRow, 0, len(messages))
	for _, m := range messages {
		meta, ok := htmlStageMetas[m.Stage]
		if !ok {
			meta = htmlStageMeta{Label: string(m.Stage), Color: "#666", BG: "#f0f0f0"}
		}
		rows = append(rows, matrixRow{
			M:       m,
			Meta:    meta,
			Channel: m.PrimaryChannel(),
			Guards:  joinConditions(m.Guards, func(g models.Guard) string { return g.Condition }),
			Supps:   joinConditions(m.Suppressions, func(s models.Suppression) string { return s.Condition }),
		})
	}
	return rows
}

type dashboardData struct {
	Company       models.AnalysisCompany
	Stats         MessageStats
	Stages        []stageBadge
	Channels      []channelCount
	Tags          []tagCount
	Rows          []matrixRow
	MessagesJSON  string
	AnalysisJSON  string
	StageMetaJSON string
}

// GenerateDashboard renders the interactive filterable dashboard document.
// The full message set and analysis are embedded as JSON so the document
// works offline as a single file. The initial table is rendered here with
// the default view; the in-page script re-renders only on interaction,
// applying the same view, filter, and sort rules as VisibleMessages.
func GenerateDashboard(matrix models.Matrix, analysis models.Analysis) (string, error) {
	stats := BuildStats(matrix.Messages)

	msgJSON, err := toJSON(matrix.Messages)
	if err != nil {
		return "", err
	}
	analysisJSON, err := toJSON(analysis)
	if err != nil {
		return "", err
	}
	metaJSON, err := toJSON(htmlStageMetas)
	if err != nil {
		return "", err
	}

	data := dashboardData{
		Company:       analysis.Company,
		Stats:         stats,
		Stages:        stageBadges(stats),
		Channels:      channelCounts(stats),
		Tags:          tagCounts(stats),
		Rows:          buildMatrixRows(VisibleMessages(matrix.Messages, DefaultViewState())),
		MessagesJSON:  msgJSON,
		AnalysisJSON:  analysisJSON,
		StageMetaJSON: metaJSON,
	}
	return renderHTMLTemplate("dashboard.html.tmpl", data)
}
