package models

// Channel represents a delivery channel for a message.
type Channel string

const (
	ChannelEmail Channel = "email"
	ChannelSMS   Channel = "sms"
	ChannelInApp Channel = "in-app"
	ChannelPush  Channel = "push"
)

// ChannelOrder is the canonical display order for channels.
var ChannelOrder = []Channel{ChannelEmail, ChannelSMS, ChannelInApp, ChannelPush}

// Stage represents an AARRR lifecycle stage, or the transactional sentinel TX.
type Stage string

const (
	StageTX Stage = "TX"
	StageAQ Stage = "AQ"
	StageAC Stage = "AC"
	StageRV Stage = "RV"
	StageRT Stage = "RT"
	StageRF Stage = "RF"
)

// StageOrder is the canonical display and grouping order for stages.
var StageOrder = []Stage{StageTX, StageAQ, StageAC, StageRV, StageRT, StageRF}

// Classification partitions messages into transactional and lifecycle sets.
type Classification string

const (
	ClassTransactional Classification = "transactional"
	ClassLifecycle     Classification = "lifecycle"
)

// TriggerType describes what kind of condition fires a message.
type TriggerType string

const (
	TriggerEvent      TriggerType = "event"
	TriggerScheduled  TriggerType = "scheduled"
	TriggerBehavioral TriggerType = "behavioral"
)

// Format describes the rendering format of a message body.
type Format string

const (
	FormatPlain Format = "plain"
	FormatRich  Format = "rich"
)

// Trigger describes the condition that fires a message. Schedule is only
// meaningful when Type is "scheduled".
type Trigger struct {
	Event    string      `json:"event"`
	Type     TriggerType `json:"type"`
	Schedule string      `json:"schedule,omitempty"`
}

// Guard is a predicate that must hold for a message to fire. All guards on a
// message combine with logical AND.
type Guard struct {
	Condition  string `json:"condition"`
	Expression string `json:"expression"`
}

// Suppression is a predicate that, if it holds, prevents a message from
// firing. Suppressions combine with logical OR.
type Suppression struct {
	Condition  string `json:"condition"`
	Expression string `json:"expression"`
}

// CTA is a message's call to action.
type CTA struct {
	Text string `json:"text"`
	URL  string `json:"url,omitempty"`
}

// Message is one lifecycle or transactional communication unit. Messages are
// produced once by the external content-generation workflow and are immutable
// input to this tool; builders only derive read-only views from them.
type Message struct {
	ID             string         `json:"id"`
	Stage          Stage          `json:"stage"`
	Name           string         `json:"name"`
	Classification Classification `json:"classification"`
	Trigger        Trigger        `json:"trigger"`
	Wait           string         `json:"wait"`
	Guards         []Guard        `json:"guards"`
	Suppressions   []Suppression  `json:"suppressions"`
	Subject        string         `json:"subject"`
	Preheader      string         `json:"preheader,omitempty"`
	Body           string         `json:"body"`
	CTA            CTA            `json:"cta"`
	Channels       []Channel      `json:"channels"`
	Format         Format         `json:"format"`
	From           string         `json:"from"`
	Segment        string         `json:"segment"`
	Tags           []string       `json:"tags"`
	Goal           string         `json:"goal"`
	Comments       string         `json:"comments"`
}

// PrimaryChannel returns the first channel of the message, or "" if none.
// Presentation layers treat the first entry as the canonical channel.
func (m Message) PrimaryChannel() Channel {
	if len(m.Channels) == 0 {
		return ""
	}
	return m.Channels[0]
}

// HasChannel reports whether the message lists the given channel.
func (m Message) HasChannel(ch Channel) bool {
	for _, c := range m.Channels {
		if c == ch {
			return true
		}
	}
	return false
}

// HasTag reports whether the message carries the given tag.
func (m Message) HasTag(tag string) bool {
	for _, t := range m.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Matrix is the on-disk shape of matrix.json.
type Matrix struct {
	Messages []Message `json:"messages"`
}

// StageLabel returns the human display name for a stage. Unknown stages are
// returned as-is.
func StageLabel(s Stage) string {
	switch s {
	case StageTX:
		return "Transactional"
	case StageAQ:
		return "Acquisition"
	case StageAC:
		return "Activation"
	case StageRV:
		return "Revenue"
	case StageRT:
		return "Retention"
	case StageRF:
		return "Referral"
	}
	return string(s)
}
