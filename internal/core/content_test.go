package core

import (
	"strings"
	"testing"

	"github.com/sr-kai/mango-lollipop/pkg/models"
)

const sampleContent = `# AQ-1: Welcome Email

## Email

**Subject:** Welcome to Acme, {{first_name}}!
**Preheader:** Your account is ready

Hi {{first_name}},

Thanks for signing up.

**[Get Started]**

---

## In-App

**Title:** Welcome aboard
**Body:** Take the product tour to get oriented.
**CTA:** Start tour
`

func TestParseChannelContent_EmailSection(t *testing.T) {
	c := ParseChannelContent(sampleContent, models.ChannelEmail)
	if c == nil {
		t.Fatal("expected parsed content")
	}
	if c.Subject != "Welcome to Acme, {{first_name}}!" {
		t.Errorf("subject = %q", c.Subject)
	}
	if c.Preheader != "Your account is ready" {
		t.Errorf("preheader = %q", c.Preheader)
	}
	if c.CTAButton != "Get Started" {
		t.Errorf("cta button = %q", c.CTAButton)
	}
	if !strings.Contains(c.Body, "Thanks for signing up.") {
		t.Errorf("body missing copy: %q", c.Body)
	}
	if strings.Contains(c.Body, "**Subject:**") {
		t.Errorf("extracted label left in body: %q", c.Body)
	}
	if strings.Contains(c.Body, "In-App") {
		t.Errorf("email body leaked the in-app section: %q", c.Body)
	}
}

func TestParseChannelContent_InAppSection(t *testing.T) {
	c := ParseChannelContent(sampleContent, models.ChannelInApp)
	if c == nil {
		t.Fatal("expected parsed content")
	}
	if c.Title != "Welcome aboard" {
		t.Errorf("title = %q", c.Title)
	}
	if c.BodyText != "Take the product tour to get oriented." {
		t.Errorf("body text = %q", c.BodyText)
	}
	if c.CTA != "Start tour" {
		t.Errorf("cta = %q", c.CTA)
	}
}

func TestParseChannelContent_MissingSectionFallsThrough(t *testing.T) {
	// No matching "## SMS" header: whole document becomes the body. Lax by
	// contract, not tightened.
	c := ParseChannelContent("Just a loose note with no headers", models.ChannelSMS)
	if c == nil {
		t.Fatal("expected parsed content")
	}
	if c.Body != "Just a loose note with no headers" {
		t.Errorf("body = %q", c.Body)
	}
	if c.Subject != "" || c.Title != "" {
		t.Errorf("unexpected sub-fields: %+v", c)
	}
}

func TestParseChannelContent_EmptyIsNil(t *testing.T) {
	if c := ParseChannelContent("", models.ChannelEmail); c != nil {
		t.Errorf("expected nil for empty content, got %+v", c)
	}
}

func TestStripFrontmatter(t *testing.T) {
	raw := "---\nid: AQ-1\nstage: AQ\n---\n# Body starts here\n"
	meta, body := StripFrontmatter(raw)
	if !strings.Contains(meta, "id: AQ-1") {
		t.Errorf("meta = %q", meta)
	}
	if body != "# Body starts here" {
		t.Errorf("body = %q", body)
	}

	// No frontmatter: unchanged.
	meta, body = StripFrontmatter("# Plain document")
	if meta != "" || body != "# Plain document" {
		t.Errorf("plain doc handling: meta=%q body=%q", meta, body)
	}
}

func TestParseAllContent(t *testing.T) {
	msgs := []models.Message{
		{ID: "AQ-1", Channels: []models.Channel{models.ChannelEmail}},
		{ID: "AQ-2", Channels: []models.Channel{models.ChannelInApp}},
	}
	parsed := ParseAllContent(msgs, map[string]string{"AQ-1": sampleContent})

	if len(parsed) != 1 {
		t.Fatalf("parsed %d entries, want 1", len(parsed))
	}
	if parsed["AQ-1"].Subject == "" {
		t.Error("AQ-1 content not parsed for its primary channel")
	}
	if _, ok := parsed["AQ-2"]; ok {
		t.Error("AQ-2 has no authored content and should be absent")
	}
}
