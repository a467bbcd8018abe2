// Package profile projects a fetched profile record onto display strings.
package profile

import (
	"fmt"
	"time"

	"github.com/vilaca/profile-detective/internal/domain"
)

// NotAvailable is shown in place of any missing text field.
const NotAvailable = "N/A"

// Card holds every value a front end needs to draw a profile.
type Card struct {
	DisplayName string `json:"display_name"`
	Login       string `json:"login"`
	AvatarURL   string `json:"avatar_url,omitempty"`
	AvatarAlt   string `json:"avatar_alt"`
	Joined      string `json:"joined"`
	Repos       int    `json:"public_repos"`
	Followers   int    `json:"followers"`
	Following   int    `json:"following"`
	Location    string `json:"location"`
	Twitter     string `json:"twitter"`
	Company     string `json:"company"`
	Blog        string `json:"blog"`
	ProfileURL  string `json:"profile_url,omitempty"`
}

// HasProfileLink reports whether the "View Profile" action should be shown.
func (c Card) HasProfileLink() bool {
	return c.ProfileURL != ""
}

// NewCard builds the card for p. Dates are shown in loc; nil means time.Local.
// Empty strings count as missing, matching how GitHub reports unset fields.
func NewCard(p *domain.ProfileRecord, loc *time.Location) Card {
	if p == nil {
		p = &domain.ProfileRecord{}
	}

	login := orNA(domain.Str(p.Login))
	name := firstNonEmpty(domain.Str(p.Name), domain.Str(p.Login), NotAvailable)

	twitter := NotAvailable
	if handle := domain.Str(p.TwitterUsername); handle != "" {
		twitter = "@" + handle
	}

	return Card{
		DisplayName: name,
		Login:       "@" + login,
		AvatarURL:   domain.Str(p.AvatarURL),
		AvatarAlt:   name + "'s avatar",
		Joined:      FormatJoined(domain.Str(p.CreatedAt), loc),
		Repos:       domain.Int(p.PublicRepos),
		Followers:   domain.Int(p.Followers),
		Following:   domain.Int(p.Following),
		Location:    orNA(domain.Str(p.Location)),
		Twitter:     twitter,
		Company:     orNA(domain.Str(p.Company)),
		Blog:        orNA(domain.Str(p.Blog)),
		ProfileURL:  domain.Str(p.HTMLURL),
	}
}

// FormatJoined renders an RFC 3339 timestamp as numeric M/D/YYYY in loc.
// Missing or unparseable input yields NotAvailable.
func FormatJoined(raw string, loc *time.Location) string {
	if raw == "" {
		return NotAvailable
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return NotAvailable
	}
	if loc == nil {
		loc = time.Local
	}
	t = t.In(loc)
	return fmt.Sprintf("%d/%d/%d", int(t.Month()), t.Day(), t.Year())
}

func orNA(s string) string {
	if s == "" {
		return NotAvailable
	}
	return s
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
