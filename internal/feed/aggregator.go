// Package feed builds the unified notification feed from heterogeneous
// threat records and keeps it refreshed on a fixed interval.
package feed

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cerberus-watch/cerberus/internal/models"
)

// BuildFeed projects every threat record into a Notification and orders the
// result by timestamp descending, most recent first. The sort is stable, so
// records sharing a timestamp keep their source order. N records in, N
// notifications out; nothing is dropped or duplicated.
func BuildFeed(records []models.ThreatRecord) []models.Notification {
	feed := make([]models.Notification, 0, len(records))
	for _, record := range records {
		feed = append(feed, Project(record))
	}

	sort.SliceStable(feed, func(i, j int) bool {
		return feed[i].Timestamp.After(feed[j].Timestamp)
	})

	return feed
}

// Project maps a single threat record to its feed notification using the
// fixed per-variant template. Dispatch is on the concrete variant: the type
// tag is assigned here, never sniffed from payload shape. An unhandled
// variant is a programming error.
func Project(record models.ThreatRecord) models.Notification {
	n := models.Notification{
		RiskLevel: record.RiskLabel(),
		Timestamp: record.DetectionTime(),
		Details: &models.NotificationDetails{
			TargetVIP: record.TargetVIP(),
			Platform:  record.PlatformTag(),
			Reason:    record.FlagReason(),
		},
	}

	switch r := record.(type) {
	case *models.FakePost:
		n.ID = "fake_post_" + r.ID
		n.Type = models.NotificationFakePost
		n.Title = "High Risk: Fake Post Detected"
		n.Message = fmt.Sprintf("Fake post targeting %s", targetOrUnknown(r.TargetVIPID))
	case *models.Deepfake:
		n.ID = "deepfake_" + r.ID
		n.Type = models.NotificationDeepfake
		n.Title = "Critical: Deepfake Detected"
		n.Message = fmt.Sprintf("Deepfake media targeting %s", targetOrUnknown(r.TargetVIPID))
		// Deepfakes are always surfaced as high risk in the feed.
		n.RiskLevel = models.SeverityHigh.String()
	case *models.HackedTweet:
		n.ID = "hacked_tweet_" + r.ID
		n.Type = models.NotificationHackedTweet
		n.Title = "Alert: Hacked Account Activity"
		n.Message = fmt.Sprintf("Suspicious post from a compromised account targeting %s", targetOrUnknown(r.TargetVIPID))
	case *models.NewsMention:
		n.ID = "news_mention_" + r.ID
		n.Type = models.NotificationNewsMention
		n.Title = "News Mention Flagged"
		n.Message = fmt.Sprintf("Suspicious news coverage mentioning %s", targetOrUnknown(r.TargetVIPID))
	default:
		panic(fmt.Sprintf("feed: unknown threat record variant %T", record))
	}

	return n
}

// FilterAll is the pass-through filter level.
const FilterAll = "all"

// Filter returns the notifications whose risk level classifies to the given
// level. Level matching is case-insensitive; FilterAll (or an empty level)
// passes everything through. The source feed is never mutated and the result
// is always a fresh slice.
func Filter(feed []models.Notification, level string) []models.Notification {
	level = strings.ToLower(strings.TrimSpace(level))
	if level == "" || level == FilterAll {
		out := make([]models.Notification, len(feed))
		copy(out, feed)
		return out
	}

	want := models.ClassifyRisk(level)
	out := make([]models.Notification, 0, len(feed))
	for _, n := range feed {
		if n.Severity() == want {
			out = append(out, n)
		}
	}
	return out
}

func targetOrUnknown(name string) string {
	if name == "" {
		return "Unknown VIP"
	}
	return name
}
