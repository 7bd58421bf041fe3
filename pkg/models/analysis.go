package models

// AnalysisPath indicates whether the project starts from scratch or audits
// an existing messaging setup.
type AnalysisPath string

const (
	PathFresh    AnalysisPath = "fresh"
	PathExisting AnalysisPath = "existing"
)

// EmojiUsage describes how heavily a brand voice uses emoji.
type EmojiUsage string

const (
	EmojiNone  EmojiUsage = "none"
	EmojiLight EmojiUsage = "light"
	EmojiHeavy EmojiUsage = "heavy"
)

// SenderPersona is a named sender identity with its intended use cases.
type SenderPersona struct {
	Name   string   `json:"name"`
	Role   string   `json:"role"`
	UseFor []string `json:"use_for"`
}

// VoiceProfile captures the brand voice parameters used when writing copy.
// Formality ranges from 1 (casual) to 5 (formal).
type VoiceProfile struct {
	Tone           string          `json:"tone"`
	Formality      int             `json:"formality"`
	EmojiUsage     EmojiUsage      `json:"emoji_usage"`
	SignatureStyle string          `json:"signature_style"`
	SamplePhrases  []string        `json:"sample_phrases"`
	SenderPersonas []SenderPersona `json:"sender_personas"`
}

// EventTaxonomy groups product events into the five fixed categories used
// for trigger mapping.
type EventTaxonomy struct {
	Identity   []string `json:"identity"`
	Activation []string `json:"activation"`
	Engagement []string `json:"engagement"`
	Conversion []string `json:"conversion"`
	Retention  []string `json:"retention"`
}

// Category returns the event list for a category name, or nil for unknown
// names. Category names follow the JSON keys.
func (e EventTaxonomy) Category(name string) []string {
	switch name {
	case "identity":
		return e.Identity
	case "activation":
		return e.Activation
	case "engagement":
		return e.Engagement
	case "conversion":
		return e.Conversion
	case "retention":
		return e.Retention
	}
	return nil
}

// EventCategories is the fixed category order for taxonomy reporting.
var EventCategories = []string{"identity", "activation", "engagement", "conversion", "retention"}

// AnalysisCompany is the company profile section of an analysis.
type AnalysisCompany struct {
	Name           string   `json:"name"`
	ProductType    string   `json:"product_type"`
	TargetAudience string   `json:"target_audience"`
	KeyValueProp   string   `json:"key_value_prop"`
	AhaMoment      string   `json:"aha_moment"`
	KeyFeatures    []string `json:"key_features"`
	PricingModel   string   `json:"pricing_model"`
}

// AnalysisTags holds the tag definition lists by category.
type AnalysisTags struct {
	Sources  []string `json:"sources"`
	Plans    []string `json:"plans"`
	Segments []string `json:"segments"`
	Features []string `json:"features"`
}

// ExistingPerformance summarizes observed performance of an existing setup.
type ExistingPerformance struct {
	OpenRateAvg  string   `json:"open_rate_avg"`
	ClickRateAvg string   `json:"click_rate_avg"`
	ProblemAreas []string `json:"problem_areas"`
}

// ExistingMessaging describes an audited pre-existing messaging system.
// Present on an Analysis only when Path is "existing".
type ExistingMessaging struct {
	MessagesCount int                 `json:"messages_count"`
	StagesCovered []Stage             `json:"stages_covered"`
	StagesMissing []Stage             `json:"stages_missing"`
	ChannelsUsed  []Channel           `json:"channels_used"`
	Performance   ExistingPerformance `json:"performance"`
	PrimaryGoal   string              `json:"primary_goal"`
	Messages      []any               `json:"messages"`
}

// Analysis is the per-project output of the external analyze workflow,
// persisted as analysis.json.
type Analysis struct {
	Path            AnalysisPath       `json:"path"`
	Company         AnalysisCompany    `json:"company"`
	Channels        []Channel          `json:"channels"`
	Voice           VoiceProfile       `json:"voice"`
	Events          EventTaxonomy      `json:"events"`
	Tags            AnalysisTags       `json:"tags"`
	Existing        *ExistingMessaging `json:"existing,omitempty"`
	Recommendations []string           `json:"recommendations"`
}

// FlattenTags returns the full tag definition list for reporting: sources
// verbatim, and the other categories namespaced with plan:/segment:/feature:
// prefixes.
func (a Analysis) FlattenTags() []string {
	tags := make([]string, 0, len(a.Tags.Sources)+len(a.Tags.Plans)+len(a.Tags.Segments)+len(a.Tags.Features))
	tags = append(tags, a.Tags.Sources...)
	for _, p := range a.Tags.Plans {
		tags = append(tags, "plan:"+p)
	}
	for _, s := range a.Tags.Segments {
		tags = append(tags, "segment:"+s)
	}
	for _, f := range a.Tags.Features {
		tags = append(tags, "feature:"+f)
	}
	return tags
}

// ValidationResult is the uniform outcome of schema validation. Errors
// accumulate across all checks; Valid is true iff Errors is empty.
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}
