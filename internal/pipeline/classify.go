package pipeline

import (
	"strings"

	"github.com/leadwerk/outreach-cli/internal/model"
)

// socialDomains are sites that never count as a business's own web presence:
// social networks, messenger links, and review/booking aggregators.
var socialDomains = []string{
	"facebook.com", "instagram.com", "twitter.com", "x.com", "tiktok.com",
	"google.com", "g.page", "linktr.ee", "linktree.com", "wa.me", "web.whatsapp.com",
	"yelp.com", "tripadvisor.com", "booking.com",
}

// builderDomains are free site-builder hosts counted as a weak presence.
var builderDomains = []string{
	"wixsite.com", "jimdosite.com", "google.site", "sites.google.com", "webnode.page",
}

// Classify judges the web presence behind a URL. Empty URLs and social or
// aggregator domains are PresenceNone, free builder subdomains are
// PresenceWeak, everything else is PresenceGenuine. The social list is
// checked first, so a domain matching both lists classifies as none.
// Pure and deterministic; no network access.
func Classify(rawURL string) model.Presence {
	if strings.TrimSpace(rawURL) == "" {
		return model.PresenceNone
	}
	d := DomainFromURL(rawURL)
	for _, sd := range socialDomains {
		if strings.HasSuffix(d, sd) {
			return model.PresenceNone
		}
	}
	for _, bd := range builderDomains {
		if strings.HasSuffix(d, bd) {
			return model.PresenceWeak
		}
	}
	return model.PresenceGenuine
}
