// Package access maps authenticated roles to the dashboard areas they can
// see. The mapping is advisory, used for navigation and display only; it is
// not a security boundary, and route-level authorization stays with the HTTP
// layer.
package access

import "github.com/cerberus-watch/cerberus/internal/models"

// Area is one of the fixed dashboard menu areas.
type Area string

const (
	AreaDashboard       Area = "dashboard"
	AreaVIPProfiles     Area = "vip_profiles"
	AreaInstagramSearch Area = "instagram_search"
	AreaFakePosts       Area = "fake_posts"
	AreaDeepfakes       Area = "deepfakes"
	AreaHackedTweets    Area = "hacked_tweets"
	AreaNewsMentions    Area = "news_mentions"
	AreaNotifications   Area = "notifications"
)

// AllAreas lists every dashboard area in menu order.
func AllAreas() []Area {
	return []Area{
		AreaDashboard,
		AreaVIPProfiles,
		AreaInstagramSearch,
		AreaFakePosts,
		AreaDeepfakes,
		AreaHackedTweets,
		AreaNewsMentions,
		AreaNotifications,
	}
}

var roleAreas = map[models.Role][]Area{
	models.RoleThreatDetector: {
		AreaDashboard,
		AreaFakePosts,
		AreaDeepfakes,
		AreaNotifications,
	},
	models.RoleRiskAnalyst: {
		AreaDashboard,
		AreaVIPProfiles,
		AreaNotifications,
	},
	models.RoleDatabaseAuditor: {
		AreaDashboard,
		AreaVIPProfiles,
		AreaNotifications,
	},
}

// VisibleAreas returns the areas the given role may see. Admin sees
// everything, and so does any role outside the known set. The policy is a
// display convenience, not an enforcement point. Pure and deterministic;
// computed from the role alone.
func VisibleAreas(role models.Role) []Area {
	areas, ok := roleAreas[role]
	if !ok {
		return AllAreas()
	}
	out := make([]Area, len(areas))
	copy(out, areas)
	return out
}

// CanSee reports whether the role's visible areas include the given area.
func CanSee(role models.Role, area Area) bool {
	for _, a := range VisibleAreas(role) {
		if a == area {
			return true
		}
	}
	return false
}
