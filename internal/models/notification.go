package models

import "time"

// NotificationType is the categorical discriminator for a feed entry. It is
// assigned at projection time from the known record variant, never inferred
// from payload shape.
type NotificationType string

const (
	NotificationFakePost    NotificationType = "fake_post"
	NotificationDeepfake    NotificationType = "deepfake"
	NotificationHackedTweet NotificationType = "hacked_tweet"
	NotificationNewsMention NotificationType = "news_mention"
)

// Notification is the read-only projection of a threat record into the
// common shape used by the alert feed. Notifications are derived at fetch
// time, never persisted, and superseded wholesale on each refresh cycle.
type Notification struct {
	ID        string               `json:"id"`
	Type      NotificationType     `json:"type"`
	Title     string               `json:"title"`
	Message   string               `json:"message"`
	RiskLevel string               `json:"risk_level"`
	Timestamp time.Time            `json:"timestamp"`
	Details   *NotificationDetails `json:"details,omitempty"`
}

// NotificationDetails carries category-specific context for secondary
// display under a feed entry.
type NotificationDetails struct {
	TargetVIP string `json:"target_vip,omitempty"`
	Platform  string `json:"platform,omitempty"`
	Reason    string `json:"reason,omitempty"`
}

// Severity classifies the notification's carried risk level.
func (n *Notification) Severity() Severity {
	return ClassifyRisk(n.RiskLevel)
}
