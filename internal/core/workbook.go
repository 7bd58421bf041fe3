package core

import (
	"fmt"
	"sort"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/sr-kai/mango-lollipop/pkg/models"
)

// emDash is the sentinel rendered for empty joined lists in sheet cells.
const emDash = "—"

// maxColumnWidth caps the auto-fit column width, in characters.
const maxColumnWidth = 60

// workbookSheetOrder is the fixed sheet order of matrix.xlsx.
var workbookSheetOrder = []string{
	"Transactional Messages",
	"Lifecycle Matrix",
	"Event Taxonomy",
	"Tags",
	"Channel Strategy",
}

// sheetData is one logical sheet: a header row plus flat data rows.
type sheetData struct {
	Headers []string
	Rows    [][]any
}

func joinConditions[T any](items []T, condition func(T) string) string {
	if len(items) == 0 {
		return emDash
	}
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = condition(item)
	}
	return strings.Join(parts, "; ")
}

func joinChannels(channels []models.Channel) string {
	parts := make([]string, len(channels))
	for i, ch := range channels {
		parts[i] = string(ch)
	}
	return strings.Join(parts, ", ")
}

func buildTransactionalSheet(messages []models.Message) sheetData {
	sheet := sheetData{
		Headers: []string{"ID", "Name", "Trigger Event", "Trigger Type", "Wait", "Channels", "CTA", "From", "Tags"},
	}
	for _, m := range messages {
		if m.Classification != models.ClassTransactional {
			continue
		}
		sheet.Rows = append(sheet.Rows, []any{
			m.ID, m.Name, m.Trigger.Event, string(m.Trigger.Type), m.Wait,
			joinChannels(m.Channels), m.CTA.Text, m.From, strings.Join(m.Tags, ", "),
		})
	}
	return sheet
}

func buildLifecycleSheet(messages []models.Message) sheetData {
	sheet := sheetData{
		Headers: []string{"ID", "Stage", "Name", "Trigger Event", "Trigger Type", "Wait", "Guards",
			"Suppressions", "Channels", "CTA", "Goal", "Segment", "Tags", "Format", "From"},
	}
	for _, m := range messages {
		if m.Classification != models.ClassLifecycle {
			continue
		}
		sheet.Rows = append(sheet.Rows, []any{
			m.ID, models.StageLabel(m.Stage), m.Name, m.Trigger.Event, string(m.Trigger.Type), m.Wait,
			joinConditions(m.Guards, func(g models.Guard) string { return g.Condition }),
			joinConditions(m.Suppressions, func(s models.Suppression) string { return s.Condition }),
			joinChannels(m.Channels), m.CTA.Text, m.Goal, m.Segment,
			strings.Join(m.Tags, ", "), string(m.Format), m.From,
		})
	}
	return sheet
}

func buildEventTaxonomySheet(events models.EventTaxonomy, messages []models.Message) sheetData {
	sheet := sheetData{Headers: []string{"Category", "Event", "Used By"}}
	for _, category := range models.EventCategories {
		for _, event := range events.Category(category) {
			var ids []string
			for _, m := range messages {
				if m.Trigger.Event == event {
					ids = append(ids, m.ID)
				}
			}
			usedBy := strings.Join(ids, ", ")
			if usedBy == "" {
				usedBy = emDash
			}
			sheet.Rows = append(sheet.Rows, []any{
				strings.ToUpper(category[:1]) + category[1:], event, usedBy,
			})
		}
	}
	return sheet
}

func buildTagsSheet(messages []models.Message, tagDefinitions []string) sheetData {
	seen := make(map[string]struct{})
	for _, tag := range tagDefinitions {
		seen[tag] = struct{}{}
	}
	for _, m := range messages {
		for _, tag := range m.Tags {
			seen[tag] = struct{}{}
		}
	}

	allTags := make([]string, 0, len(seen))
	for tag := range seen {
		allTags = append(allTags, tag)
	}
	sort.Strings(allTags)

	sheet := sheetData{Headers: []string{"Tag", "Message Count", "Used By"}}
	for _, tag := range allTags {
		var ids []string
		for _, m := range messages {
			if m.HasTag(tag) {
				ids = append(ids, m.ID)
			}
		}
		usedBy := strings.Join(ids, ", ")
		if usedBy == "" {
			usedBy = emDash
		}
		sheet.Rows = append(sheet.Rows, []any{tag, len(ids), usedBy})
	}
	return sheet
}

func buildChannelStrategySheet(messages []models.Message) sheetData {
	headers := []string{"Channel", "Total Messages"}
	for _, stage := range models.StageOrder {
		headers = append(headers, models.StageLabel(stage))
	}
	sheet := sheetData{Headers: headers}

	for _, channel := range validChannels {
		var withChannel []models.Message
		for _, m := range messages {
			if m.HasChannel(channel) {
				withChannel = append(withChannel, m)
			}
		}
		// Channels with zero messages are omitted entirely.
		if len(withChannel) == 0 {
			continue
		}

		row := []any{string(channel), len(withChannel)}
		for _, stage := range models.StageOrder {
			count := 0
			for _, m := range withChannel {
				if m.Stage == stage {
					count++
				}
			}
			row = append(row, count)
		}
		sheet.Rows = append(sheet.Rows, row)
	}
	return sheet
}

// writeSheet appends a sheetData to the workbook under the given name and
// applies auto-fit column widths.
func writeSheet(f *excelize.File, name string, sheet sheetData) error {
	if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("creating sheet %s: %w", name, err)
	}

	header := make([]any, len(sheet.Headers))
	for i, h := range sheet.Headers {
		header[i] = h
	}
	if err := f.SetSheetRow(name, "A1", &header); err != nil {
		return fmt.Errorf("writing header row of %s: %w", name, err)
	}
	for i, row := range sheet.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("addressing row %d of %s: %w", i+2, name, err)
		}
		if err := f.SetSheetRow(name, cell, &row); err != nil {
			return fmt.Errorf("writing row %d of %s: %w", i+2, name, err)
		}
	}

	// Auto-fit column widths to the longest rendered value, capped.
	for col, h := range sheet.Headers {
		width := len(h)
		for _, row := range sheet.Rows {
			if col < len(row) {
				if l := len(fmt.Sprintf("%v", row[col])); l > width {
					width = l
				}
			}
		}
		colName, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return fmt.Errorf("addressing column %d of %s: %w", col+1, name, err)
		}
		w := float64(width + 2)
		if w > maxColumnWidth {
			w = maxColumnWidth
		}
		if err := f.SetColWidth(name, colName, colName, w); err != nil {
			return fmt.Errorf("sizing column %s of %s: %w", colName, name, err)
		}
	}
	return nil
}

// GenerateMatrixWorkbook builds the 5-sheet matrix workbook from a validated
// message collection, the event taxonomy, and the flattened tag definition
// list. Input is assumed pre-validated.
func GenerateMatrixWorkbook(messages []models.Message, events models.EventTaxonomy, tags []string) (*excelize.File, error) {
	f := excelize.NewFile()

	sheets := map[string]sheetData{
		"Transactional Messages": buildTransactionalSheet(messages),
		"Lifecycle Matrix":       buildLifecycleSheet(messages),
		"Event Taxonomy":         buildEventTaxonomySheet(events, messages),
		"Tags":                   buildTagsSheet(messages, tags),
		"Channel Strategy":       buildChannelStrategySheet(messages),
	}

	for _, name := range workbookSheetOrder {
		if err := writeSheet(f, name, sheets[name]); err != nil {
			return nil, err
		}
	}

	// Drop the default sheet so only the five matrix sheets remain.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("removing default sheet: %w", err)
	}
	return f, nil
}

// WriteWorkbook serializes the workbook to path. Write failures propagate
// unmodified; there are no silent partial writes.
func WriteWorkbook(f *excelize.File, path string) error {
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("writing workbook %s: %w", path, err)
	}
	return nil
}
