package core

import (
	"fmt"
	"strings"

	"github.com/sr-kai/mango-lollipop/pkg/models"
)

// stageStyle holds the Mermaid subgraph label and palette for a stage.
type stageStyle struct {
	Label  string
	Emoji  string
	Fill   string
	Stroke string
}

var stageStyles = map[models.Stage]stageStyle{
	models.StageTX: {Label: "Transactional", Emoji: "⚪", Fill: "#f0f0f0", Stroke: "#999"},
	models.StageAQ: {Label: "Acquisition", Emoji: "\U0001f7e2", Fill: "#d4edda", Stroke: "#28a745"},
	models.StageAC: {Label: "Activation", Emoji: "\U0001f7e5", Fill: "#cce5ff", Stroke: "#007bff"},
	models.StageRV: {Label: "Revenue", Emoji: "\U0001f7e1", Fill: "#fff3cd", Stroke: "#ffc107"},
	models.StageRT: {Label: "Retention", Emoji: "\U0001f7e0", Fill: "#ffe5cc", Stroke: "#fd7e14"},
	models.StageRF: {Label: "Referral", Emoji: "\U0001f7e3", Fill: "#e8d5f5", Stroke: "#6f42c1"},
}

var channelIcons = map[models.Channel]string{
	models.ChannelEmail: "\U0001f4e7",
	models.ChannelInApp: "\U0001f4f1",
	models.ChannelPush:  "\U0001f514",
	models.ChannelSMS:   "\U0001f4ac",
}

// sanitizeNodeID strips every non-alphanumeric character so an arbitrary
// message ID is safe as a Mermaid node identifier. Collisions between
// distinct IDs that differ only in stripped characters are accepted.
func sanitizeNodeID(id string) string {
	var b strings.Builder
	for _, r := range id {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// sanitizeLabel escapes characters that break Mermaid node labels.
func sanitizeLabel(text string) string {
	text = strings.ReplaceAll(text, `"`, "'")
	return strings.Map(func(r rune) rune {
		switch r {
		case '[', ']', '(', ')', '{', '}':
			return -1
		}
		return r
	}, text)
}

func channelIndicators(channels []models.Channel) string {
	var b strings.Builder
	for _, ch := range channels {
		b.WriteString(channelIcons[ch])
	}
	return b.String()
}

// GenerateJourneyMap renders an ordered message collection as a Mermaid
// "graph TD" diagram: one subgraph per non-empty stage, sequential
// within-stage edges labeled with the destination's wait, a single
// AQ-to-AC bridge edge, a fresh Skip node per suppression, and a decision
// node per guard. Output is deterministic for identical input order.
//
// Messages are assumed to be pre-validated; malformed input produces
// garbage output rather than an error.
func GenerateJourneyMap(messages []models.Message) string {
	lines := []string{"graph TD"}

	grouped := make(map[models.Stage][]models.Message, len(models.StageOrder))
	for _, stage := range models.StageOrder {
		for _, m := range messages {
			if m.Stage == stage {
				grouped[stage] = append(grouped[stage], m)
			}
		}
	}

	// Subgraph per non-empty stage.
	for _, stage := range models.StageOrder {
		stageMessages := grouped[stage]
		if len(stageMessages) == 0 {
			continue
		}
		cfg := stageStyles[stage]
		lines = append(lines, "")
		lines = append(lines, fmt.Sprintf("    subgraph %s[%q]", stage, cfg.Emoji+" "+cfg.Label))
		for _, m := range stageMessages {
			lines = append(lines, fmt.Sprintf("        %s[%s %s: %s]",
				sanitizeNodeID(m.ID), channelIndicators(m.Channels), m.ID, sanitizeLabel(m.Name)))
		}
		lines = append(lines, "    end")
	}

	// Sequential edges within each stage, labeled with the destination wait.
	lines = append(lines, "")
	for _, stage := range models.StageOrder {
		stageMessages := grouped[stage]
		for i := 0; i+1 < len(stageMessages); i++ {
			lines = append(lines, fmt.Sprintf("    %s -->|%s| %s",
				sanitizeNodeID(stageMessages[i].ID),
				stageMessages[i+1].Wait,
				sanitizeNodeID(stageMessages[i+1].ID)))
		}
	}

	// Suppression edges: a fresh Skip node per suppression instance.
	skipCounter := 0
	for _, m := range messages {
		for _, sup := range m.Suppressions {
			skipCounter++
			lines = append(lines, fmt.Sprintf("    %s -.->|suppressed: %s| SKIP%d[Skip]",
				sanitizeNodeID(m.ID), sanitizeLabel(sup.Condition), skipCounter))
		}
	}

	// Bridge the acquisition and activation stages when both exist.
	if aq, ac := grouped[models.StageAQ], grouped[models.StageAC]; len(aq) > 0 && len(ac) > 0 {
		lines = append(lines, fmt.Sprintf("    %s -->|%s| %s",
			sanitizeNodeID(aq[len(aq)-1].ID), ac[0].Wait, sanitizeNodeID(ac[0].ID)))
	}

	// Guard decision diamonds, entry edge only. The guard-failure path is
	// not rendered.
	for _, m := range messages {
		nodeID := sanitizeNodeID(m.ID)
		for _, guard := range m.Guards {
			lines = append(lines, fmt.Sprintf("    G_%s{%s} -->|Yes| %s",
				nodeID, sanitizeLabel(guard.Condition), nodeID))
		}
	}

	// Stage styles.
	lines = append(lines, "")
	for _, stage := range models.StageOrder {
		if len(grouped[stage]) == 0 {
			continue
		}
		cfg := stageStyles[stage]
		lines = append(lines, fmt.Sprintf("    style %s fill:%s,stroke:%s", stage, cfg.Fill, cfg.Stroke))
	}

	return strings.Join(lines, "\n")
}
