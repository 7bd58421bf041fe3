package core

import (
	"github.com/sr-kai/mango-lollipop/pkg/models"
)

type viewerLink struct {
	ID      string
	Name    string
	Channel models.Channel
}

type viewerStageGroup struct {
	Meta     htmlStageMeta
	Messages []viewerLink
}

type viewerData struct {
	CompanyName   string
	Total         int
	Groups        []viewerStageGroup
	MessagesJSON  string
	ContentJSON   string
	StageMetaJSON string
	ProductJSON   string
}

// GenerateMessageViewer renders the channel-preview document. Message copy
// arrives as raw markdown keyed by message ID; it is parsed into channel
// fields here so the embedded JSON is already structured and the in-page
// script only routes and renders. Hash routing keeps each message linkable
// from the dashboard detail rows.
func GenerateMessageViewer(matrix models.Matrix, analysis models.Analysis, content map[string]string) (string, error) {
	var groups []viewerStageGroup
	for _, stage := range models.StageOrder {
		var links []viewerLink
		for _, m := range matrix.Messages {
			if m.Stage != stage {
				continue
			}
			links = append(links, viewerLink{ID: m.ID, Name: m.Name, Channel: m.PrimaryChannel()})
		}
		if len(links) == 0 {
			continue
		}
		groups = append(groups, viewerStageGroup{Meta: htmlStageMetas[stage], Messages: links})
	}

	msgJSON, err := toJSON(matrix.Messages)
	if err != nil {
		return "", err
	}
	contentJSON, err := toJSON(ParseAllContent(matrix.Messages, content))
	if err != nil {
		return "", err
	}
	metaJSON, err := toJSON(htmlStageMetas)
	if err != nil {
		return "", err
	}
	productJSON, err := toJSON(escapeHTML(analysis.Company.Name))
	if err != nil {
		return "", err
	}

	data := viewerData{
		CompanyName:   analysis.Company.Name,
		Total:         len(matrix.Messages),
		Groups:        groups,
		MessagesJSON:  msgJSON,
		ContentJSON:   contentJSON,
		StageMetaJSON: metaJSON,
		ProductJSON:   productJSON,
	}
	return renderHTMLTemplate("viewer.html.tmpl", data)
}
