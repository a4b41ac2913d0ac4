package access

import (
	"testing"

	"github.com/cerberus-watch/cerberus/internal/models"
)

func TestVisibleAreas(t *testing.T) {
	tests := []struct {
		name     string
		role     models.Role
		expected []Area
	}{
		{
			name:     "Admin sees all areas",
			role:     models.RoleAdmin,
			expected: AllAreas(),
		},
		{
			name:     "Threat Detector",
			role:     models.RoleThreatDetector,
			expected: []Area{AreaDashboard, AreaFakePosts, AreaDeepfakes, AreaNotifications},
		},
		{
			name:     "Risk Analyst",
			role:     models.RoleRiskAnalyst,
			expected: []Area{AreaDashboard, AreaVIPProfiles, AreaNotifications},
		},
		{
			name:     "Database Auditor",
			role:     models.RoleDatabaseAuditor,
			expected: []Area{AreaDashboard, AreaVIPProfiles, AreaNotifications},
		},
		{
			name:     "Unknown role fails open to all areas",
			role:     models.Role("Intern"),
			expected: AllAreas(),
		},
		{
			name:     "Empty role fails open to all areas",
			role:     models.Role(""),
			expected: AllAreas(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := VisibleAreas(tt.role)
			if len(got) != len(tt.expected) {
				t.Fatalf("VisibleAreas(%q) returned %d areas, want %d: %v",
					tt.role, len(got), len(tt.expected), got)
			}
			for i, area := range tt.expected {
				if got[i] != area {
					t.Errorf("VisibleAreas(%q)[%d] = %q, want %q", tt.role, i, got[i], area)
				}
			}
		})
	}
}

func TestVisibleAreasReturnsCopy(t *testing.T) {
	first := VisibleAreas(models.RoleRiskAnalyst)
	first[0] = AreaDeepfakes

	second := VisibleAreas(models.RoleRiskAnalyst)
	if second[0] != AreaDashboard {
		t.Error("mutating a returned slice leaked into the policy table")
	}
}

func TestCanSee(t *testing.T) {
	if !CanSee(models.RoleAdmin, AreaHackedTweets) {
		t.Error("Admin should see hacked tweets")
	}
	if CanSee(models.RoleRiskAnalyst, AreaFakePosts) {
		t.Error("Risk Analyst should not see fake posts")
	}
	if !CanSee(models.Role("unknown"), AreaInstagramSearch) {
		t.Error("unknown role should fail open")
	}
}
