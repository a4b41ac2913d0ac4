package models

import "time"

// Platform tags used by the dashboard's per-platform distribution.
const (
	PlatformInstagram = "Instagram"
	PlatformTwitter   = "Twitter"
	PlatformNews      = "News"
	PlatformDeepfake  = "Deepfake"
)

// ThreatRecord is the shape shared by every detected threat variant. Each
// record references exactly one VIP identity by name (a non-owning
// back-reference) and carries a detection timestamp no later than ingestion.
// Records are immutable snapshots, replaced wholesale on refetch.
type ThreatRecord interface {
	RecordID() string
	TargetVIP() string
	PlatformTag() string
	RiskLabel() string
	FlagReason() string
	DetectionTime() time.Time
	Severity() Severity
}

// FakePost is an impersonation post detected on a social platform.
type FakePost struct {
	ID          string    `json:"id"`
	TargetVIPID string    `json:"target_vip"`
	Platform    string    `json:"platform"`
	FakeAccount string    `json:"fake_account"`
	PostCaption string    `json:"post_caption"`
	MediaURL    string    `json:"media_url,omitempty"`
	Likes       int       `json:"likes"`
	Comments    int       `json:"comments"`
	Shares      int       `json:"shares"`
	RiskLevel   string    `json:"risk_level"`
	Reason      string    `json:"reason"`
	DetectedAt  time.Time `json:"detected_at"`
	SourceURL   string    `json:"source_url,omitempty"`
}

func (p *FakePost) RecordID() string         { return p.ID }
func (p *FakePost) TargetVIP() string        { return p.TargetVIPID }
func (p *FakePost) PlatformTag() string      { return p.Platform }
func (p *FakePost) RiskLabel() string        { return p.RiskLevel }
func (p *FakePost) FlagReason() string       { return p.Reason }
func (p *FakePost) DetectionTime() time.Time { return p.DetectedAt }
func (p *FakePost) Severity() Severity       { return ClassifyRisk(p.RiskLevel) }

// Deepfake is synthetic media impersonating a VIP.
type Deepfake struct {
	ID          string    `json:"id"`
	TargetVIPID string    `json:"target_vip"`
	Platform    string    `json:"platform"`
	MediaType   string    `json:"media_type"`
	FakeChannel string    `json:"fake_channel"`
	Duration    string    `json:"duration,omitempty"`
	Description string    `json:"description,omitempty"`
	MediaURL    string    `json:"media_url,omitempty"`
	Views       int       `json:"views"`
	Likes       int       `json:"likes"`
	Dislikes    int       `json:"dislikes"`
	RiskLevel   string    `json:"risk_level"`
	Reason      string    `json:"reason"`
	DetectedAt  time.Time `json:"detected_at"`
	SourceURL   string    `json:"source_url,omitempty"`
}

func (d *Deepfake) RecordID() string         { return d.ID }
func (d *Deepfake) TargetVIP() string        { return d.TargetVIPID }
func (d *Deepfake) PlatformTag() string      { return d.Platform }
func (d *Deepfake) RiskLabel() string        { return d.RiskLevel }
func (d *Deepfake) FlagReason() string       { return d.Reason }
func (d *Deepfake) DetectionTime() time.Time { return d.DetectedAt }
func (d *Deepfake) Severity() Severity       { return ClassifyRisk(d.RiskLevel) }

// HackedTweet is a post published from a compromised account.
type HackedTweet struct {
	ID           string    `json:"id"`
	TargetVIPID  string    `json:"target_vip"`
	Platform     string    `json:"platform"`
	FakeAccount  string    `json:"fake_account"`
	TweetContent string    `json:"tweet_content"`
	Retweets     int       `json:"retweets"`
	Likes        int       `json:"likes"`
	Replies      int       `json:"replies"`
	RiskLevel    string    `json:"risk_level"`
	Reason       string    `json:"reason"`
	DetectedAt   time.Time `json:"detected_at"`
	SourceURL    string    `json:"source_url,omitempty"`
}

func (t *HackedTweet) RecordID() string         { return t.ID }
func (t *HackedTweet) TargetVIP() string        { return t.TargetVIPID }
func (t *HackedTweet) PlatformTag() string      { return t.Platform }
func (t *HackedTweet) RiskLabel() string        { return t.RiskLevel }
func (t *HackedTweet) FlagReason() string       { return t.Reason }
func (t *HackedTweet) DetectionTime() time.Time { return t.DetectedAt }
func (t *HackedTweet) Severity() Severity       { return ClassifyRisk(t.RiskLevel) }

// NewsMention is a suspicious press mention of a VIP. PublishedAt is when the
// outlet ran the story; DetectedAt is when monitoring picked it up.
type NewsMention struct {
	ID             string    `json:"id"`
	TargetVIPID    string    `json:"target_vip"`
	Headline       string    `json:"headline"`
	ContentSnippet string    `json:"content_snippet"`
	Source         string    `json:"source"`
	PublishedAt    time.Time `json:"published_at"`
	RiskLevel      string    `json:"risk_level"`
	Reason         string    `json:"reason"`
	DetectedAt     time.Time `json:"detected_at"`
	SourceURL      string    `json:"source_url,omitempty"`
}

func (n *NewsMention) RecordID() string         { return n.ID }
func (n *NewsMention) TargetVIP() string        { return n.TargetVIPID }
func (n *NewsMention) PlatformTag() string      { return PlatformNews }
func (n *NewsMention) RiskLabel() string        { return n.RiskLevel }
func (n *NewsMention) FlagReason() string       { return n.Reason }
func (n *NewsMention) DetectionTime() time.Time { return n.DetectedAt }
func (n *NewsMention) Severity() Severity       { return ClassifyRisk(n.RiskLevel) }

// CollectThreatRecords flattens the per-category sets into one record set,
// keeping source order within and across categories.
func CollectThreatRecords(
	fakePosts []FakePost,
	deepfakes []Deepfake,
	hackedTweets []HackedTweet,
	newsMentions []NewsMention,
) []ThreatRecord {
	records := make([]ThreatRecord, 0, len(fakePosts)+len(deepfakes)+len(hackedTweets)+len(newsMentions))
	for i := range fakePosts {
		records = append(records, &fakePosts[i])
	}
	for i := range deepfakes {
		records = append(records, &deepfakes[i])
	}
	for i := range hackedTweets {
		records = append(records, &hackedTweets[i])
	}
	for i := range newsMentions {
		records = append(records, &newsMentions[i])
	}
	return records
}

// Interface conformance is part of the model contract; a new variant that
// misses a method fails to compile here rather than at a call site.
var (
	_ ThreatRecord = (*FakePost)(nil)
	_ ThreatRecord = (*Deepfake)(nil)
	_ ThreatRecord = (*HackedTweet)(nil)
	_ ThreatRecord = (*NewsMention)(nil)
)
