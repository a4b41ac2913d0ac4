package models

// Stats is the dashboard summary: simple tallies over the full record set,
// recomputed wholesale on every refresh.
type Stats struct {
	TotalThreats         int                  `json:"total_threats"`
	FakePosts            int                  `json:"fake_posts"`
	Deepfakes            int                  `json:"deepfakes"`
	HackedTweets         int                  `json:"hacked_tweets"`
	NewsMentions         int                  `json:"news_mentions"`
	RiskDistribution     RiskDistribution     `json:"risk_distribution"`
	PlatformDistribution PlatformDistribution `json:"platform_distribution"`
}

// RiskDistribution counts records per classified severity.
type RiskDistribution struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

// PlatformDistribution counts records per originating platform tag.
type PlatformDistribution struct {
	Instagram int `json:"instagram"`
	Twitter   int `json:"twitter"`
	News      int `json:"news"`
	Deepfake  int `json:"deepfake"`
}
