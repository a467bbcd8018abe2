package profile

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vilaca/profile-detective/internal/domain"
)

func strp(s string) *string { return &s }
func intp(n int) *int       { return &n }

func TestNewCard_FullProfile(t *testing.T) {
	p := &domain.ProfileRecord{
		Name:            strp("The Octocat"),
		Login:           strp("octocat"),
		AvatarURL:       strp("https://avatars.githubusercontent.com/u/583231?v=4"),
		CreatedAt:       strp("2011-01-25T18:44:36Z"),
		Location:        strp("San Francisco"),
		PublicRepos:     intp(8),
		Followers:       intp(21000),
		Following:       intp(9),
		TwitterUsername: strp("github"),
		Company:         strp("@github"),
		Blog:            strp("https://github.blog"),
		HTMLURL:         strp("https://github.com/octocat"),
	}

	card := NewCard(p, time.UTC)

	assert.Equal(t, "The Octocat", card.DisplayName)
	assert.Equal(t, "@octocat", card.Login)
	assert.Equal(t, "The Octocat's avatar", card.AvatarAlt)
	assert.Equal(t, "1/25/2011", card.Joined)
	assert.Equal(t, 8, card.Repos)
	assert.Equal(t, 21000, card.Followers)
	assert.Equal(t, 9, card.Following)
	assert.Equal(t, "San Francisco", card.Location)
	assert.Equal(t, "@github", card.Twitter)
	assert.Equal(t, "@github", card.Company)
	assert.Equal(t, "https://github.blog", card.Blog)
	assert.True(t, card.HasProfileLink())
}

func TestNewCard_MissingFieldsFallBack(t *testing.T) {
	p := &domain.ProfileRecord{
		Login: strp("ghost"),
		Blog:  strp(""),
	}

	card := NewCard(p, time.UTC)

	assert.Equal(t, "ghost", card.DisplayName)
	assert.Equal(t, "@ghost", card.Login)
	assert.Equal(t, NotAvailable, card.Joined)
	assert.Equal(t, NotAvailable, card.Location)
	assert.Equal(t, NotAvailable, card.Company)
	assert.Equal(t, NotAvailable, card.Blog)
	assert.Equal(t, NotAvailable, card.Twitter)
	assert.Zero(t, card.Repos)
	assert.Zero(t, card.Followers)
	assert.Zero(t, card.Following)
	assert.False(t, card.HasProfileLink())
}

func TestNewCard_EmptyRecord(t *testing.T) {
	for _, p := range []*domain.ProfileRecord{nil, {}} {
		card := NewCard(p, time.UTC)

		assert.Equal(t, NotAvailable, card.DisplayName)
		assert.Equal(t, "@N/A", card.Login)
		assert.Equal(t, "N/A's avatar", card.AvatarAlt)
		assert.Empty(t, card.AvatarURL)
	}
}

func TestNewCard_EmptyNameFallsBackToLogin(t *testing.T) {
	card := NewCard(&domain.ProfileRecord{Name: strp(""), Login: strp("octocat")}, time.UTC)

	assert.Equal(t, "octocat", card.DisplayName)
}

func TestFormatJoined(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)

	tests := []struct {
		name string
		raw  string
		loc  *time.Location
		want string
	}{
		{name: "utc", raw: "2011-01-25T18:44:36Z", loc: time.UTC, want: "1/25/2011"},
		{name: "no zero padding", raw: "2020-03-05T00:00:00Z", loc: time.UTC, want: "3/5/2020"},
		{name: "shifts into location", raw: "2011-01-25T18:44:36Z", loc: tokyo, want: "1/26/2011"},
		{name: "missing", raw: "", loc: time.UTC, want: NotAvailable},
		{name: "garbage", raw: "yesterday", loc: time.UTC, want: NotAvailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatJoined(tt.raw, tt.loc))
		})
	}
}

func TestNewCard_TextFieldsAreNotTrimmed(t *testing.T) {
	p := &domain.ProfileRecord{
		Location:        strp(" Lisbon "),
		Company:         strp(" "),
		Blog:            strp("blog.example.com "),
		TwitterUsername: strp(" handle"),
	}

	card := NewCard(p, time.UTC)

	assert.Equal(t, " Lisbon ", card.Location)
	assert.Equal(t, " ", card.Company)
	assert.Equal(t, "blog.example.com ", card.Blog)
	assert.Equal(t, "@ handle", card.Twitter)
}
