package pipeline

import (
	"strconv"
	"strings"

	"github.com/leadwerk/outreach-cli/internal/model"
)

// Score weights. Each rule fires independently; the total is additive.
const (
	scoreNoWebsite   = 40 // no presence at all
	scoreWeakSite    = 10 // builder page, good upgrade target
	scoreFewReviews  = 20 // review count known and below the threshold
	scoreNoMapsURL   = 10 // no maps/profile listing
	reviewsThreshold = 20
)

// Score assigns a lead-priority score from presence and review signals.
// Non-numeric or missing review counts contribute nothing. Never negative.
func Score(lead model.LeadRecord) int {
	score := 0
	if lead.Presence == model.PresenceNone {
		score += scoreNoWebsite
	}
	if lead.Presence == model.PresenceWeak {
		score += scoreWeakSite
	}
	if n, err := strconv.ParseFloat(strings.TrimSpace(lead.ReviewsCount), 64); err == nil && n < reviewsThreshold {
		score += scoreFewReviews
	}
	if strings.TrimSpace(lead.MapsURL) == "" {
		score += scoreNoMapsURL
	}
	return score
}
