package model

import "time"

// Presence classifies the quality of a business's web presence.
type Presence string

const (
	PresenceNone    Presence = "N" // no usable site (blank, social or directory page)
	PresenceWeak    Presence = "L" // free site-builder page
	PresenceGenuine Presence = "Y" // own registrable domain
)

// LeadStatus tracks a lead through the outreach funnel.
type LeadStatus string

const (
	LeadStatusFound     LeadStatus = "found"
	LeadStatusGenerated LeadStatus = "generated"
	LeadStatusContacted LeadStatus = "contacted"
)

// LeadRecord is one prospective business considered for outreach.
type LeadRecord struct {
	ID            string     `json:"id,omitempty"`
	Slug          string     `json:"slug,omitempty"` // filesystem/URL-safe identity derived from Name
	Name          string     `json:"name"`
	Category      string     `json:"category,omitempty"`
	Street        string     `json:"street,omitempty"`
	City          string     `json:"city,omitempty"`
	PostalCode    string     `json:"postal_code,omitempty"`
	Country       string     `json:"country,omitempty"`
	Phone         string     `json:"phone,omitempty"`
	Email         string     `json:"email,omitempty"`
	ContactPerson string     `json:"contact_person,omitempty"`
	Website       string     `json:"website,omitempty"`
	MapsURL       string     `json:"maps_url,omitempty"`
	ReviewsCount  string     `json:"reviews_count,omitempty"` // raw signal; may be non-numeric
	Presence      Presence   `json:"presence,omitempty"`
	Score         int        `json:"score"`
	Status        LeadStatus `json:"status,omitempty"`
	Notes         string     `json:"notes,omitempty"`
	Source        string     `json:"source,omitempty"`
	Interested    bool       `json:"interested,omitempty"`
	OfferDir      string     `json:"offer_dir,omitempty"` // bundle directory once generated
	DocxPath      string     `json:"docx_path,omitempty"`
	CheckedAt     time.Time  `json:"checked_at,omitempty"`
	Row           Row        `json:"row,omitempty"` // raw provider row the record was built from
}
