package feed

import (
	"testing"
	"time"

	"github.com/cerberus-watch/cerberus/internal/models"
)

func mixedRecords(base time.Time) []models.ThreatRecord {
	return []models.ThreatRecord{
		&models.FakePost{ID: "fp-1", TargetVIPID: "Jane Doe", Platform: models.PlatformInstagram,
			RiskLevel: "High", Reason: "impersonation", DetectedAt: base.Add(1 * time.Hour)},
		&models.Deepfake{ID: "df-1", TargetVIPID: "Jane Doe", Platform: models.PlatformDeepfake,
			RiskLevel: "Medium", Reason: "synthetic video", DetectedAt: base.Add(3 * time.Hour)},
		&models.HackedTweet{ID: "ht-1", TargetVIPID: "John Smith", Platform: models.PlatformTwitter,
			RiskLevel: "Low", Reason: "takeover", DetectedAt: base.Add(2 * time.Hour)},
		&models.NewsMention{ID: "nm-1", TargetVIPID: "John Smith",
			RiskLevel: "Medium", Reason: "smear piece", DetectedAt: base},
	}
}

func TestBuildFeedPreservesCount(t *testing.T) {
	base := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	records := mixedRecords(base)

	feed := BuildFeed(records)
	if len(feed) != len(records) {
		t.Fatalf("BuildFeed returned %d notifications for %d records", len(feed), len(records))
	}

	seen := make(map[string]bool)
	for _, n := range feed {
		if seen[n.ID] {
			t.Errorf("duplicate notification id %q", n.ID)
		}
		seen[n.ID] = true
	}
}

func TestBuildFeedOrdersByTimestampDescending(t *testing.T) {
	base := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	feed := BuildFeed(mixedRecords(base))

	for i := 1; i < len(feed); i++ {
		if feed[i].Timestamp.After(feed[i-1].Timestamp) {
			t.Errorf("feed out of order at %d: %v after %v", i, feed[i].Timestamp, feed[i-1].Timestamp)
		}
	}

	if feed[0].ID != "deepfake_df-1" {
		t.Errorf("most recent notification = %q, want deepfake_df-1", feed[0].ID)
	}
}

func TestBuildFeedStableOnTies(t *testing.T) {
	ts := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	records := []models.ThreatRecord{
		&models.FakePost{ID: "a", RiskLevel: "High", DetectedAt: ts},
		&models.FakePost{ID: "b", RiskLevel: "High", DetectedAt: ts},
		&models.FakePost{ID: "c", RiskLevel: "High", DetectedAt: ts},
	}

	feed := BuildFeed(records)
	want := []string{"fake_post_a", "fake_post_b", "fake_post_c"}
	for i, id := range want {
		if feed[i].ID != id {
			t.Errorf("tie order broken: feed[%d].ID = %q, want %q", i, feed[i].ID, id)
		}
	}
}

func TestProjectVariantTemplates(t *testing.T) {
	detected := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		record    models.ThreatRecord
		wantType  models.NotificationType
		wantTitle string
		wantMsg   string
		wantRisk  string
	}{
		{
			name: "fake post",
			record: &models.FakePost{ID: "1", TargetVIPID: "Jane Doe",
				Platform: models.PlatformInstagram, RiskLevel: "Medium", DetectedAt: detected},
			wantType:  models.NotificationFakePost,
			wantTitle: "High Risk: Fake Post Detected",
			wantMsg:   "Fake post targeting Jane Doe",
			wantRisk:  "Medium",
		},
		{
			name: "deepfake forces high risk",
			record: &models.Deepfake{ID: "2", TargetVIPID: "Jane Doe",
				RiskLevel: "Low", DetectedAt: detected},
			wantType:  models.NotificationDeepfake,
			wantTitle: "Critical: Deepfake Detected",
			wantMsg:   "Deepfake media targeting Jane Doe",
			wantRisk:  "High",
		},
		{
			name: "hacked tweet",
			record: &models.HackedTweet{ID: "3", TargetVIPID: "John Smith",
				RiskLevel: "High", DetectedAt: detected},
			wantType:  models.NotificationHackedTweet,
			wantTitle: "Alert: Hacked Account Activity",
			wantMsg:   "Suspicious post from a compromised account targeting John Smith",
			wantRisk:  "High",
		},
		{
			name: "news mention",
			record: &models.NewsMention{ID: "4", TargetVIPID: "John Smith",
				RiskLevel: "Low", DetectedAt: detected},
			wantType:  models.NotificationNewsMention,
			wantTitle: "News Mention Flagged",
			wantMsg:   "Suspicious news coverage mentioning John Smith",
			wantRisk:  "Low",
		},
		{
			name:      "missing target falls back to unknown",
			record:    &models.FakePost{ID: "5", RiskLevel: "High", DetectedAt: detected},
			wantType:  models.NotificationFakePost,
			wantTitle: "High Risk: Fake Post Detected",
			wantMsg:   "Fake post targeting Unknown VIP",
			wantRisk:  "High",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := Project(tt.record)
			if n.Type != tt.wantType {
				t.Errorf("Type = %q, want %q", n.Type, tt.wantType)
			}
			if n.Title != tt.wantTitle {
				t.Errorf("Title = %q, want %q", n.Title, tt.wantTitle)
			}
			if n.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", n.Message, tt.wantMsg)
			}
			if n.RiskLevel != tt.wantRisk {
				t.Errorf("RiskLevel = %q, want %q", n.RiskLevel, tt.wantRisk)
			}
			if !n.Timestamp.Equal(detected) {
				t.Errorf("Timestamp = %v, want %v", n.Timestamp, detected)
			}
			if n.Details == nil {
				t.Fatal("Details missing")
			}
		})
	}
}

func TestFilterBySeverity(t *testing.T) {
	base := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	feed := BuildFeed(mixedRecords(base))

	high := Filter(feed, "high")
	for _, n := range high {
		if n.Severity() != models.SeverityHigh {
			t.Errorf("high filter returned %q with risk %q", n.ID, n.RiskLevel)
		}
	}
	// fake post (High) + deepfake (forced High)
	if len(high) != 2 {
		t.Errorf("high filter returned %d notifications, want 2", len(high))
	}

	low := Filter(feed, "Low")
	if len(low) != 1 || low[0].Type != models.NotificationHackedTweet {
		t.Errorf("low filter returned %+v, want the hacked tweet only", low)
	}
}

func TestFilterAllIsIdempotentPassThrough(t *testing.T) {
	base := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	feed := BuildFeed(mixedRecords(base))

	once := Filter(feed, FilterAll)
	twice := Filter(once, FilterAll)

	if len(once) != len(feed) || len(twice) != len(feed) {
		t.Fatalf("all filter changed length: %d -> %d -> %d", len(feed), len(once), len(twice))
	}
	for i := range feed {
		if once[i].ID != feed[i].ID || twice[i].ID != feed[i].ID {
			t.Errorf("all filter reordered entry %d", i)
		}
	}

	// Result is a fresh slice, not the source.
	once[0].ID = "mutated"
	if feed[0].ID == "mutated" {
		t.Error("filter result aliases the source feed")
	}
}

func TestFilterDoesNotMutateSource(t *testing.T) {
	base := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	feed := BuildFeed(mixedRecords(base))
	before := len(feed)

	_ = Filter(feed, "high")
	_ = Filter(feed, "medium")

	if len(feed) != before {
		t.Errorf("source feed length changed: %d -> %d", before, len(feed))
	}
}
