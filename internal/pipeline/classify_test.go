package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leadwerk/outreach-cli/internal/model"
)

func TestClassifySocialIsNone(t *testing.T) {
	urls := []string{
		"https://facebook.com/cafemueller",
		"https://www.facebook.com/cafemueller",
		"https://m.facebook.com/cafemueller",
		"http://instagram.com/somebiz",
		"https://yelp.com/biz/x",
		"https://www.tripadvisor.com/Restaurant_Review",
		"https://booking.com/hotel/de/x",
		"https://wa.me/491711234567",
		"https://linktr.ee/somebiz",
	}
	for _, u := range urls {
		assert.Equal(t, model.PresenceNone, Classify(u), "Classify(%q)", u)
	}
}

func TestClassifyBuilderIsWeak(t *testing.T) {
	urls := []string{
		"https://somebiz.wixsite.com/home",
		"https://cafe.jimdosite.com",
		"https://somebiz.webnode.page",
	}
	for _, u := range urls {
		assert.Equal(t, model.PresenceWeak, Classify(u), "Classify(%q)", u)
	}
}

func TestClassifyNonePrecedesWeak(t *testing.T) {
	// sites.google.com is on the builder list, but its registrable domain is
	// google.com, which is on the social/aggregator list. The social check
	// runs first, so the result is none.
	assert.Equal(t, model.PresenceNone, Classify("https://sites.google.com/view/somebiz"))
}

func TestClassifyGenuine(t *testing.T) {
	assert.Equal(t, model.PresenceGenuine, Classify("https://cafe-mueller.de"))
	assert.Equal(t, model.PresenceGenuine, Classify("http://www.baeckerei-schmidt.de/kontakt"))
	assert.Equal(t, model.PresenceGenuine, Classify("example.com"))
}

func TestClassifyEmptyIsNone(t *testing.T) {
	assert.Equal(t, model.PresenceNone, Classify(""))
	assert.Equal(t, model.PresenceNone, Classify("   "))
}

func TestClassifyInvalidURLFallsBackToRawString(t *testing.T) {
	// Unresolvable input must not panic or error; the raw lowercased string
	// is used as the domain, which matches no list and counts as genuine.
	assert.Equal(t, model.PresenceGenuine, Classify("not a url at all"))
}

func TestDomainFromURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"https://www.cafe-mueller.de/kontakt", "cafe-mueller.de"},
		{"http://shop.example.co.uk", "example.co.uk"},
		{"example.com/page", "example.com"},
		{"HTTPS://EXAMPLE.COM", "example.com"},
		{"https://host.example.com:8080/x", "example.com"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DomainFromURL(tt.in), "DomainFromURL(%q)", tt.in)
	}
}
