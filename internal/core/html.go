package core

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"text/template"

	"github.com/sr-kai/mango-lollipop/pkg/models"
)

//go:embed templates
var templateFS embed.FS

// htmlStageMeta holds the badge colors used across all three HTML documents.
type htmlStageMeta struct {
	Label string `json:"label"`
	Color string `json:"color"`
	BG    string `json:"bg"`
}

var htmlStageMetas = map[models.Stage]htmlStageMeta{
	models.StageTX: {Label: "Transactional", Color: "#666", BG: "#f0f0f0"},
	models.StageAQ: {Label: "Acquisition", Color: "#28a745", BG: "#d4edda"},
	models.StageAC: {Label: "Activation", Color: "#007bff", BG: "#cce5ff"},
	models.StageRV: {Label: "Revenue", Color: "#ffc107", BG: "#fff3cd"},
	models.StageRT: {Label: "Retention", Color: "#fd7e14", BG: "#ffe5cc"},
	models.StageRF: {Label: "Referral", Color: "#6f42c1", BG: "#e8d5f5"},
}

// escapeHTML escapes the five characters that matter in attribute and text
// positions. Templates are text/template on purpose: documents embed raw
// JSON and script blocks that contextual auto-escaping would mangle, so
// escaping is explicit at each interpolation site.
func escapeHTML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, `"`, "&quot;")
	s = strings.ReplaceAll(s, "'", "&#039;")
	return s
}

// toJSON marshals v for embedding inside a <script type="application/json">
// block, escaping the sequence that could close the surrounding tag.
func toJSON(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("embedding JSON: %w", err)
	}
	return strings.ReplaceAll(string(data), "</", `<\/`), nil
}

var htmlFuncs = template.FuncMap{
	"esc":  func(v any) string { return escapeHTML(fmt.Sprint(v)) },
	"json": toJSON,
	"join": strings.Join,
	"add1": func(i int) int { return i + 1 },
}

// renderHTMLTemplate parses and executes one embedded template file.
func renderHTMLTemplate(name string, data any) (string, error) {
	tmpl, err := template.New(name).Funcs(htmlFuncs).ParseFS(templateFS, "templates/"+name)
	if err != nil {
		return "", fmt.Errorf("parsing template %s: %w", name, err)
	}
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("rendering template %s: %w", name, err)
	}
	return buf.String(), nil
}

// stageBadge is a stage with its display meta, for template iteration.
type stageBadge struct {
	Stage models.Stage
	Meta  htmlStageMeta
	Count int
}

// stageBadges returns the non-empty stages in canonical order with counts.
func stageBadges(stats MessageStats) []stageBadge {
	var badges []stageBadge
	for _, stage := range models.StageOrder {
		if stats.ByStage[stage] == 0 {
			continue
		}
		badges = append(badges, stageBadge{Stage: stage, Meta: htmlStageMetas[stage], Count: stats.ByStage[stage]})
	}
	return badges
}

// channelCount pairs a channel with its message count.
type channelCount struct {
	Channel models.Channel
	Count   int
}

func channelCounts(stats MessageStats) []channelCount {
	var counts []channelCount
	for _, ch := range validChannels {
		if stats.ByChannel[ch] == 0 {
			continue
		}
		counts = append(counts, channelCount{Channel: ch, Count: stats.ByChannel[ch]})
	}
	return counts
}

// tagCount pairs a tag with its occurrence count, in sorted tag order.
type tagCount struct {
	Tag   string
	Count int
}

func tagCounts(stats MessageStats) []tagCount {
	counts := make([]tagCount, 0, len(stats.AllTags))
	for _, tag := range stats.AllTags {
		counts = append(counts, tagCount{Tag: tag, Count: stats.TagCounts[tag]})
	}
	return counts
}
