// Package core contains the business logic for Mango Lollipop: schema
// validation, journey map generation, workbook and HTML document building,
// message content parsing, and project initialization.
package core

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/sr-kai/mango-lollipop/pkg/models"
)

// validChannels is the fixed channel enumeration, in display order.
var validChannels = []models.Channel{
	models.ChannelEmail,
	models.ChannelSMS,
	models.ChannelInApp,
	models.ChannelPush,
}

// iso8601DurationPattern matches P[nY][nM][nD][T[nH][nM][nS]] or PnW.
// A bare "P" is rejected separately since the grammar makes every component
// optional.
var iso8601DurationPattern = regexp.MustCompile(
	`^P(?:(\d+)Y)?(?:(\d+)M)?(?:(\d+)D)?(?:T(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?)?$|^P(\d+)W$`)

// IsValidChannel reports whether v is one of the four channel codes.
func IsValidChannel(v any) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	for _, ch := range validChannels {
		if s == string(ch) {
			return true
		}
	}
	return false
}

// IsValidStage reports whether v is one of the five AARRR stage codes.
// The transactional sentinel TX is deliberately excluded here; use the
// full set in ValidateMessage for message stages.
func IsValidStage(v any) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	switch models.Stage(s) {
	case models.StageAQ, models.StageAC, models.StageRV, models.StageRT, models.StageRF:
		return true
	}
	return false
}

// IsValidWaitDuration reports whether v is a string matching the ISO 8601
// duration grammar. "P0D" is valid (zero wait); "P" alone is not.
func IsValidWaitDuration(v any) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	if s == "P" || s == "PT" {
		return false
	}
	return iso8601DurationPattern.MatchString(s)
}

// channelList renders the allowed channel set for error messages.
func channelList() string {
	parts := make([]string, len(validChannels))
	for i, ch := range validChannels {
		parts[i] = string(ch)
	}
	return strings.Join(parts, ", ")
}

// stringify renders an arbitrary decoded JSON value the way error messages
// expect: strings verbatim, nil as "<nil>", everything else via fmt.
func stringify(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	if v == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%v", v)
}

// nonEmptyString reports whether v is a string with at least one character.
func nonEmptyString(v any) bool {
	s, ok := v.(string)
	return ok && len(s) > 0
}

// isArray reports whether v decoded from JSON as an array.
func isArray(v any) bool {
	_, ok := v.([]any)
	return ok
}

// asObject returns v as a JSON object, or nil if it is not a non-null object.
func asObject(v any) map[string]any {
	m, ok := v.(map[string]any)
	if !ok {
		return nil
	}
	return m
}

// asNumber returns v as a float64 if it decoded as a JSON number.
func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	}
	return 0, false
}

// ValidateMessage checks an untyped decoded JSON value against the Message
// schema. It never panics and never short-circuits: every violation found is
// reported, and callers decide whether "not valid" is fatal.
//
// Note: the stage enum and classification enum are checked independently; a
// message with stage "TX" and classification "lifecycle" passes validation.
func ValidateMessage(candidate any) models.ValidationResult {
	m := asObject(candidate)
	if m == nil {
		return models.ValidationResult{Valid: false, Errors: []string{"Message must be a non-null object"}}
	}

	var errs []string

	for _, field := range []string{"id", "name", "subject", "body", "from", "segment", "goal", "wait"} {
		if !nonEmptyString(m[field]) {
			errs = append(errs, fmt.Sprintf("Missing or empty required field: %s", field))
		}
	}

	if s, ok := m["stage"].(string); !ok || !isValidMessageStage(s) {
		errs = append(errs, fmt.Sprintf("Invalid stage: %q. Must be one of: AQ, AC, RV, RT, RF, TX", stringify(m["stage"])))
	}

	if m["classification"] != string(models.ClassTransactional) && m["classification"] != string(models.ClassLifecycle) {
		errs = append(errs, fmt.Sprintf("Invalid classification: %q. Must be \"transactional\" or \"lifecycle\"", stringify(m["classification"])))
	}

	if s, ok := m["wait"].(string); ok && !IsValidWaitDuration(s) {
		errs = append(errs, fmt.Sprintf("Invalid wait duration: %q. Must be ISO 8601 duration (e.g. \"P0D\", \"PT5M\", \"P2D\")", s))
	}

	if m["format"] != string(models.FormatPlain) && m["format"] != string(models.FormatRich) {
		errs = append(errs, fmt.Sprintf("Invalid format: %q. Must be \"plain\" or \"rich\"", stringify(m["format"])))
	}

	if channels, ok := m["channels"].([]any); !ok || len(channels) == 0 {
		errs = append(errs, "Must have at least one channel")
	} else {
		for _, ch := range channels {
			if !IsValidChannel(ch) {
				errs = append(errs, fmt.Sprintf("Invalid channel: %q. Must be one of: %s", stringify(ch), channelList()))
			}
		}
	}

	if !isArray(m["tags"]) {
		errs = append(errs, "tags must be an array")
	}
	if !isArray(m["guards"]) {
		errs = append(errs, "guards must be an array")
	}
	if !isArray(m["suppressions"]) {
		errs = append(errs, "suppressions must be an array")
	}

	if trigger := asObject(m["trigger"]); trigger == nil {
		errs = append(errs, "trigger must be a non-null object")
	} else {
		if !nonEmptyString(trigger["event"]) {
			errs = append(errs, "trigger.event is required")
		}
		switch trigger["type"] {
		case string(models.TriggerEvent), string(models.TriggerScheduled), string(models.TriggerBehavioral):
		default:
			errs = append(errs, fmt.Sprintf("Invalid trigger.type: %q. Must be \"event\", \"scheduled\", or \"behavioral\"", stringify(trigger["type"])))
		}
	}

	if cta := asObject(m["cta"]); cta == nil {
		errs = append(errs, "cta must be a non-null object")
	} else if !nonEmptyString(cta["text"]) {
		errs = append(errs, "cta.text is required")
	}

	return models.ValidationResult{Valid: len(errs) == 0, Errors: errs}
}

func isValidMessageStage(s string) bool {
	switch models.Stage(s) {
	case models.StageTX, models.StageAQ, models.StageAC, models.StageRV, models.StageRT, models.StageRF:
		return true
	}
	return false
}

// ValidateAnalysis checks an untyped decoded JSON value against the Analysis
// schema. Structural errors in a nested object stop only that sub-tree;
// sibling sections are still checked. The existing sub-record is validated
// only when path is "existing".
func ValidateAnalysis(candidate any) models.ValidationResult {
	a := asObject(candidate)
	if a == nil {
		return models.ValidationResult{Valid: false, Errors: []string{"Analysis must be a non-null object"}}
	}

	var errs []string

	if a["path"] != string(models.PathFresh) && a["path"] != string(models.PathExisting) {
		errs = append(errs, fmt.Sprintf("Invalid path: %q. Must be \"fresh\" or \"existing\"", stringify(a["path"])))
	}

	if company := asObject(a["company"]); company == nil {
		errs = append(errs, "company is required")
	} else {
		for _, field := range []string{"name", "product_type", "target_audience", "key_value_prop", "aha_moment", "pricing_model"} {
			if !nonEmptyString(company[field]) {
				errs = append(errs, fmt.Sprintf("Missing or empty company.%s", field))
			}
		}
		if features, ok := company["key_features"].([]any); !ok || len(features) == 0 {
			errs = append(errs, "company.key_features must be a non-empty array")
		}
	}

	if channels, ok := a["channels"].([]any); !ok || len(channels) == 0 {
		errs = append(errs, "Must have at least one channel")
	} else {
		for _, ch := range channels {
			if !IsValidChannel(ch) {
				errs = append(errs, fmt.Sprintf("Invalid channel: %q. Must be one of: %s", stringify(ch), channelList()))
			}
		}
	}

	if voice := asObject(a["voice"]); voice == nil {
		errs = append(errs, "voice profile is required")
	} else {
		if !nonEmptyString(voice["tone"]) {
			errs = append(errs, "voice.tone is required")
		}
		if n, ok := asNumber(voice["formality"]); !ok || n < 1 || n > 5 {
			errs = append(errs, "voice.formality must be a number between 1 and 5")
		}
		switch voice["emoji_usage"] {
		case string(models.EmojiNone), string(models.EmojiLight), string(models.EmojiHeavy):
		default:
			errs = append(errs, fmt.Sprintf("Invalid voice.emoji_usage: %q. Must be \"none\", \"light\", or \"heavy\"", stringify(voice["emoji_usage"])))
		}
		if !isArray(voice["sample_phrases"]) {
			errs = append(errs, "voice.sample_phrases must be an array")
		}
		if !isArray(voice["sender_personas"]) {
			errs = append(errs, "voice.sender_personas must be an array")
		}
	}

	if events := asObject(a["events"]); events == nil {
		errs = append(errs, "events taxonomy is required")
	} else {
		for _, cat := range models.EventCategories {
			if !isArray(events[cat]) {
				errs = append(errs, fmt.Sprintf("events.%s must be an array", cat))
			}
		}
	}

	if asObject(a["tags"]) == nil {
		errs = append(errs, "tags is required")
	}

	if !isArray(a["recommendations"]) {
		errs = append(errs, "recommendations must be an array")
	}

	if a["path"] == string(models.PathExisting) {
		if existing := asObject(a["existing"]); existing == nil {
			errs = append(errs, `existing messaging data is required when path is "existing"`)
		} else {
			if _, ok := asNumber(existing["messages_count"]); !ok {
				errs = append(errs, "existing.messages_count must be a number")
			}
			if !isArray(existing["stages_covered"]) {
				errs = append(errs, "existing.stages_covered must be an array")
			}
			if !isArray(existing["stages_missing"]) {
				errs = append(errs, "existing.stages_missing must be an array")
			}
			if _, ok := existing["primary_goal"].(string); !ok {
				errs = append(errs, "existing.primary_goal is required")
			}
		}
	}

	return models.ValidationResult{Valid: len(errs) == 0, Errors: errs}
}
