package domain

import "time"

// Aggregate is the per-code analytics document. It is created on the first
// click, so a link that was never visited has none.
type Aggregate struct {
	ShortCode    string       `bson:"short_id" json:"short_id"`
	Clicks       int64        `bson:"clicks" json:"clicks"`
	Fingerprints []string     `bson:"finger_print" json:"finger_print"`
	ClickDetails []ClickEvent `bson:"click_details" json:"click_details"`
}

type ClickEvent struct {
	UserAgent   string    `bson:"user_agent" json:"user_agent"`
	IP          string    `bson:"ip" json:"ip"`
	Timestamp   time.Time `bson:"timestamp" json:"timestamp"`
	Location    *string   `bson:"location" json:"location"`
	Attribution `bson:",inline"`
}

// Attribution is the campaign triple taken from utm_* query parameters.
// A nil field means the parameter was absent.
type Attribution struct {
	Source   *string `bson:"utm_source" json:"utm_source"`
	Medium   *string `bson:"utm_medium" json:"utm_medium"`
	Campaign *string `bson:"utm_campaign" json:"utm_campaign"`
}

// Filters selects click events by attribution. Nil fields are not applied.
type Filters struct {
	Source   *string
	Medium   *string
	Campaign *string
}

func (f Filters) Empty() bool {
	return f.Source == nil && f.Medium == nil && f.Campaign == nil
}

// Match reports whether every non-nil filter equals the event's value.
// Events missing a requested attribute never match.
func (f Filters) Match(e ClickEvent) bool {
	if !matchField(f.Source, e.Source) {
		return false
	}
	if !matchField(f.Medium, e.Medium) {
		return false
	}
	return matchField(f.Campaign, e.Campaign)
}

func matchField(want, got *string) bool {
	if want == nil {
		return true
	}
	return got != nil && *got == *want
}

// Click is a redirect observed at the HTTP edge, queued for recording.
type Click struct {
	ShortCode   string
	ClientIP    string
	UserAgent   string
	Attribution Attribution
	ReceivedAt  time.Time
}

type RecordOutcome int

const (
	OutcomeCreated RecordOutcome = iota
	OutcomeCounted
	OutcomeDuplicate
)

func (o RecordOutcome) String() string {
	switch o {
	case OutcomeCreated:
		return "created"
	case OutcomeCounted:
		return "counted"
	case OutcomeDuplicate:
		return "duplicate"
	default:
		return "unknown"
	}
}
