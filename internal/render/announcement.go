// Package render turns raw report text into typed presentation
// segments, fills advertisement slots from the active announcement
// set, and exports reports as HTML or PDF.
package render

import "time"

// Announcement is a paid placement managed by an administrative
// collaborator. Position assigns it to one of the four report slots;
// the validity window decides whether it is in the active set.
type Announcement struct {
	ID           string    `json:"id"`
	ImageURL     string    `json:"image_url"`
	WebsiteURL   string    `json:"website_url,omitempty"`
	FacebookURL  string    `json:"facebook_url,omitempty"`
	InstagramURL string    `json:"instagram_url,omitempty"`
	Position     int       `json:"position"`
	ValidFrom    time.Time `json:"valid_from"`
	ValidTo      time.Time `json:"valid_to"`
}

// ActiveOn reports whether day falls inside the validity window.
// Comparison is by calendar date, both bounds inclusive.
func (a Announcement) ActiveOn(day time.Time) bool {
	d := dateOnly(day)
	return !d.Before(dateOnly(a.ValidFrom)) && !d.After(dateOnly(a.ValidTo))
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
