// Package stats derives the dashboard summary from the full record set.
package stats

import "github.com/cerberus-watch/cerberus/internal/models"

// Summarize tallies the full record set into dashboard statistics. All
// counts are simple tallies with no weighting, recomputed wholesale on every
// call. Risk labels are tallied through the classifier, so unknown labels
// land in the medium bucket instead of disappearing. The platform
// distribution follows the fixed category-to-platform mapping: fake posts
// surface on Instagram, hacked tweets on Twitter, news mentions in press,
// and deepfakes in their own bucket.
func Summarize(
	fakePosts []models.FakePost,
	deepfakes []models.Deepfake,
	hackedTweets []models.HackedTweet,
	newsMentions []models.NewsMention,
) models.Stats {
	s := models.Stats{
		FakePosts:    len(fakePosts),
		Deepfakes:    len(deepfakes),
		HackedTweets: len(hackedTweets),
		NewsMentions: len(newsMentions),
		PlatformDistribution: models.PlatformDistribution{
			Instagram: len(fakePosts),
			Twitter:   len(hackedTweets),
			News:      len(newsMentions),
			Deepfake:  len(deepfakes),
		},
	}
	s.TotalThreats = s.FakePosts + s.Deepfakes + s.HackedTweets + s.NewsMentions

	for i := range fakePosts {
		tally(&s.RiskDistribution, fakePosts[i].Severity())
	}
	for i := range deepfakes {
		tally(&s.RiskDistribution, deepfakes[i].Severity())
	}
	for i := range hackedTweets {
		tally(&s.RiskDistribution, hackedTweets[i].Severity())
	}
	for i := range newsMentions {
		tally(&s.RiskDistribution, newsMentions[i].Severity())
	}

	return s
}

func tally(dist *models.RiskDistribution, severity models.Severity) {
	switch severity {
	case models.SeverityHigh:
		dist.High++
	case models.SeverityLow:
		dist.Low++
	default:
		dist.Medium++
	}
}
