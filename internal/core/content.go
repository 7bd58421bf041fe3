package core

import (
	"regexp"
	"strings"

	"github.com/sr-kai/mango-lollipop/pkg/models"
)

// channelSectionNames maps a channel code to its Markdown section header
// as authored in per-message content files ("## Email", "## SMS", ...).
var channelSectionNames = map[models.Channel]string{
	models.ChannelEmail: "Email",
	models.ChannelInApp: "In-App",
	models.ChannelSMS:   "SMS",
	models.ChannelPush:  "Push Notification",
}

// ChannelContent is the parsed channel-specific portion of an authored
// message content file. Any sub-field the file does not provide is empty;
// a parse miss is never an error.
type ChannelContent struct {
	Subject   string `json:"subject,omitempty"`
	Preheader string `json:"preheader,omitempty"`
	Title     string `json:"title,omitempty"`
	BodyText  string `json:"bodyText,omitempty"`
	CTA       string `json:"cta,omitempty"`
	CTAButton string `json:"ctaBtn,omitempty"`
	Body      string `json:"body"`
	Raw       string `json:"raw"`
}

var (
	sectionSplitPattern   = regexp.MustCompile(`(?m)^## `)
	trailingRulePattern   = regexp.MustCompile(`\n---\s*$`)
	subjectPattern        = regexp.MustCompile(`\*\*Subject:\*\*\s*(.+)`)
	preheaderPattern      = regexp.MustCompile(`\*\*Preheader:\*\*\s*(.+)`)
	titlePattern          = regexp.MustCompile(`\*\*Title:\*\*\s*(.+)`)
	bodyLabelPattern      = regexp.MustCompile(`\*\*Body:\*\*\s*(.+)`)
	ctaLabelPattern       = regexp.MustCompile(`\*\*CTA:\*\*\s*(.+)`)
	ctaButtonPattern      = regexp.MustCompile(`\*\*\[(.+?)\]\*\*`)
	frontmatterDelimiters = regexp.MustCompile(`(?s)^---\n(.*?)\n---\n(.*)$`)
)

// ParseChannelContent extracts the channel-specific section of an authored
// Markdown content file and scrapes its labeled sub-fields. The matching
// rules are a frozen contract: section headers match by channel display name
// prefix, sub-fields by bold-label line patterns. Content that matches
// nothing falls through to the body verbatim; loosely authored files in the
// wild rely on this lax behavior.
//
// Returns nil when raw is empty, which presentation layers render as a
// "not yet generated" placeholder.
func ParseChannelContent(raw string, channel models.Channel) *ChannelContent {
	if raw == "" {
		return nil
	}

	sectionName, ok := channelSectionNames[channel]
	if !ok {
		sectionName = string(channel)
	}

	body := raw
	for _, section := range sectionSplitPattern.Split(raw, -1) {
		if strings.HasPrefix(section, sectionName) {
			body = strings.TrimSpace(section[len(sectionName):])
			break
		}
	}

	body = strings.TrimSpace(trailingRulePattern.ReplaceAllString(body, ""))

	content := &ChannelContent{Raw: body}

	extract := func(pattern *regexp.Regexp, dst *string) {
		m := pattern.FindStringSubmatch(body)
		if m == nil {
			return
		}
		*dst = strings.TrimSpace(m[1])
		body = strings.Replace(body, m[0], "", 1)
	}
	extract(subjectPattern, &content.Subject)
	extract(preheaderPattern, &content.Preheader)
	extract(titlePattern, &content.Title)
	extract(bodyLabelPattern, &content.BodyText)
	extract(ctaLabelPattern, &content.CTA)

	if m := ctaButtonPattern.FindStringSubmatch(body); m != nil {
		content.CTAButton = strings.TrimSpace(m[1])
	}

	content.Body = strings.TrimSpace(body)
	return content
}

// StripFrontmatter removes a leading YAML frontmatter block fenced by ---
// lines. Files without frontmatter are returned unchanged. The frontmatter
// body itself is returned for callers that want its metadata.
func StripFrontmatter(raw string) (meta string, body string) {
	if m := frontmatterDelimiters.FindStringSubmatch(raw); m != nil {
		return m[1], strings.TrimSpace(m[2])
	}
	return "", raw
}

// ParseAllContent parses the channel-specific content for every message,
// keyed by message ID, using each message's primary channel. Messages with
// no authored content are absent from the result.
func ParseAllContent(messages []models.Message, content map[string]string) map[string]*ChannelContent {
	parsed := make(map[string]*ChannelContent, len(content))
	for _, m := range messages {
		raw, ok := content[m.ID]
		if !ok {
			continue
		}
		channel := m.PrimaryChannel()
		if channel == "" {
			channel = models.ChannelEmail
		}
		if c := ParseChannelContent(raw, channel); c != nil {
			parsed[m.ID] = c
		}
	}
	return parsed
}
