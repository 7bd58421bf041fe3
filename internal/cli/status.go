package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/sr-kai/mango-lollipop/internal/core"
	"github.com/sr-kai/mango-lollipop/pkg/models"
)

var (
	statusStages   []string
	statusChannels []string
	statusTags     []string
)

// Style definitions for the status output.
var (
	statusTitleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208"))
	statusSectionStyle = lipgloss.NewStyle().Bold(true)
	statusLabelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	statusFilterStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true)
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show project status",
	Long: `Show the current project's manifest fields and, once a matrix has
been generated, message counts by classification, stage, and channel plus
the most used tags.

Use --stage, --channel, and --tag to narrow the counted messages. Flags
may repeat; a message matches a filter group when it matches any value
in it.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Projects == nil {
			return fmt.Errorf("project store not initialized")
		}

		config, err := Projects.LoadConfig()
		if err != nil {
			fmt.Println("No mango-lollipop.json found. Run `mango init <name>` first.")
			return nil
		}

		fmt.Print(renderStatus(config))
		return nil
	},
}

// renderStatus builds the full status output for a project manifest,
// applying any active --stage/--channel/--tag filters to the matrix
// counts.
func renderStatus(config *models.ProjectConfig) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s\n", statusTitleStyle.Render("Mango Lollipop Project:"), config.Name)

	path := "not set"
	if config.Path != "" {
		path = string(config.Path)
	}
	channels := "not set"
	if len(config.Channels) > 0 {
		parts := make([]string, len(config.Channels))
		for i, ch := range config.Channels {
			parts[i] = string(ch)
		}
		channels = strings.Join(parts, ", ")
	}
	fmt.Fprintf(&b, "   %s %s\n", statusLabelStyle.Render("Path:"), path)
	fmt.Fprintf(&b, "   %s %s\n", statusLabelStyle.Render("Stage:"), config.Stage)
	fmt.Fprintf(&b, "   %s %s\n", statusLabelStyle.Render("Channels:"), channels)

	if config.Matrix == nil || len(config.Matrix.Messages) == 0 {
		b.WriteString("\n   No matrix generated yet. Run `mango generate` to create one.\n")
		return b.String()
	}

	msgs := config.Matrix.Messages
	state := statusViewState()
	if !statusFilterEmpty(state) {
		msgs = core.VisibleMessages(msgs, state)
		fmt.Fprintf(&b, "\n   %s\n",
			statusFilterStyle.Render(fmt.Sprintf("Filtered: %d of %d messages", len(msgs), len(config.Matrix.Messages))))
	}

	stats := core.BuildStats(msgs)

	b.WriteString("\n")
	fmt.Fprintf(&b, "   %s %d messages\n", statusLabelStyle.Render("Transactional:"), stats.TxCount)
	fmt.Fprintf(&b, "   %s %d messages\n", statusLabelStyle.Render("Lifecycle:"), stats.LcCount)

	b.WriteString("\n")
	fmt.Fprintf(&b, "   %s\n", statusSectionStyle.Render("By stage:"))
	for _, stage := range models.StageOrder {
		if count := stats.ByStage[stage]; count > 0 {
			fmt.Fprintf(&b, "     %s: %d messages\n", stage, count)
		}
	}

	// Channel counts attribute every listed channel, not just the
	// primary one, so multichannel messages count once per channel.
	channelUses := make(map[models.Channel]int)
	for _, m := range msgs {
		for _, ch := range m.Channels {
			channelUses[ch]++
		}
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "   %s\n", statusSectionStyle.Render("By channel:"))
	for _, ch := range models.ChannelOrder {
		if count := channelUses[ch]; count > 0 {
			fmt.Fprintf(&b, "     %s: %d uses\n", ch, count)
		}
	}

	if top := topTags(stats, 10); len(top) > 0 {
		b.WriteString("\n")
		fmt.Fprintf(&b, "   %s\n", statusSectionStyle.Render("Top tags:"))
		for _, t := range top {
			fmt.Fprintf(&b, "     %s: %d\n", t.tag, t.count)
		}
	}

	return b.String()
}

func statusViewState() core.ViewState {
	state := core.DefaultViewState()
	for _, s := range statusStages {
		state.Stages = append(state.Stages, models.Stage(strings.ToUpper(s)))
	}
	for _, c := range statusChannels {
		state.Channels = append(state.Channels, models.Channel(c))
	}
	state.Tags = append(state.Tags, statusTags...)
	return state
}

func statusFilterEmpty(state core.ViewState) bool {
	return len(state.Stages) == 0 && len(state.Channels) == 0 && len(state.Tags) == 0
}

type tagUse struct {
	tag   string
	count int
}

// topTags returns the n most used tags, most used first. Ties break
// alphabetically so the output is stable.
func topTags(stats core.MessageStats, n int) []tagUse {
	tags := make([]tagUse, 0, len(stats.TagCounts))
	for tag, count := range stats.TagCounts {
		tags = append(tags, tagUse{tag: tag, count: count})
	}
	sort.Slice(tags, func(i, j int) bool {
		if tags[i].count != tags[j].count {
			return tags[i].count > tags[j].count
		}
		return tags[i].tag < tags[j].tag
	})
	if len(tags) > n {
		tags = tags[:n]
	}
	return tags
}

func init() {
	statusCmd.Flags().StringSliceVar(&statusStages, "stage", nil, "Filter by stage (TX, AQ, AC, RV, RT, RF)")
	statusCmd.Flags().StringSliceVar(&statusChannels, "channel", nil, "Filter by channel (email, sms, in-app, push)")
	statusCmd.Flags().StringSliceVar(&statusTags, "tag", nil, "Filter by tag")
	rootCmd.AddCommand(statusCmd)
}
