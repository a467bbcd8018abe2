package domain

// ProfileRecord represents a GitHub user account as returned by the users API.
// Every field is optional: GitHub may omit a field or send it as null.
type ProfileRecord struct {
	Name            *string `json:"name"`
	Login           *string `json:"login"`
	AvatarURL       *string `json:"avatar_url"`
	CreatedAt       *string `json:"created_at"` // RFC 3339, parsed at render time
	Location        *string `json:"location"`
	PublicRepos     *int    `json:"public_repos"`
	Followers       *int    `json:"followers"`
	Following       *int    `json:"following"`
	TwitterUsername *string `json:"twitter_username"`
	Company         *string `json:"company"`
	Blog            *string `json:"blog"`
	HTMLURL         *string `json:"html_url"`
}

// Str returns the value of an optional string field, or "" when absent.
func Str(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Int returns the value of an optional count field, or 0 when absent.
func Int(n *int) int {
	if n == nil {
		return 0
	}
	return *n
}
