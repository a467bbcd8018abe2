package dashboard

import (
	"encoding/json"
	"html/template"
	"io"

	"github.com/vilaca/profile-detective/internal/domain"
	"github.com/vilaca/profile-detective/internal/profile"
)

// Renderer handles rendering responses to HTTP clients.
type Renderer interface {
	RenderIndex(w io.Writer, view PageView) error
	RenderHealth(w io.Writer) error
	RenderLookupJSON(w io.Writer, resp LookupResponse) error
}

// PageView is everything the search page needs: the text to keep in the input
// box, the lookup state, and the card when the state holds a profile.
type PageView struct {
	Query string
	State domain.SearchState
	Card  *profile.Card
}

// LookupResponse is the JSON body of the lookup API.
type LookupResponse struct {
	Query   string                `json:"query"`
	Status  domain.Status         `json:"status"`
	Error   string                `json:"error,omitempty"`
	Profile *domain.ProfileRecord `json:"profile,omitempty"`
	Card    *profile.Card         `json:"card,omitempty"`
}

// HTMLRenderer implements Renderer for HTML responses.
type HTMLRenderer struct {
	index *template.Template
}

// NewHTMLRenderer creates a new HTML renderer. The page template is parsed once.
func NewHTMLRenderer() *HTMLRenderer {
	funcs := template.FuncMap{
		"head": func() template.HTML { return htmlHead(appTitle, "") },
		"themeScript": func() template.HTML {
			return template.HTML(themeScript)
		},
	}
	return &HTMLRenderer{
		index: template.Must(template.New("index").Funcs(funcs).Parse(indexTemplate)),
	}
}

func (r *HTMLRenderer) RenderIndex(w io.Writer, view PageView) error {
	data := struct {
		PageView
		Loading bool
		Error   string
	}{PageView: view, Loading: view.State.IsLoading()}
	data.Error, _ = view.State.ErrorMessage()

	return r.index.Execute(w, data)
}

func (r *HTMLRenderer) RenderHealth(w io.Writer) error {
	_, err := w.Write([]byte(`{"status":"ok"}`))
	return err
}

func (r *HTMLRenderer) RenderLookupJSON(w io.Writer, resp LookupResponse) error {
	return json.NewEncoder(w).Encode(resp)
}

const indexTemplate = `{{head}}
<body>
	<div class="container github-search-container">
		<div style="text-align: right;"><button class="theme-toggle" onclick="toggleTheme()">🌙 Dark Mode</button></div>
		<h1 class="title">GitHub Profile Detective</h1>
		<form class="search-box" method="get" action="/">
			<input type="text" name="username" class="search-input" placeholder="Enter Github Username...." value="{{.Query}}" autofocus>
			<button type="submit" class="search-button"{{if .Loading}} disabled{{end}}>{{if .Loading}}Searching...{{else}}Search{{end}}</button>
		</form>

		<div id="status-line">
		{{- if .Loading}}
			<p class="message">Fetching profile...</p>
		{{- end}}
		{{- with .Error}}
			<p class="message error">{{.}}</p>
		{{- end}}
		</div>

		{{- with .Card}}
		<div class="profile-card">
			<div class="profile-header">
				{{- if .AvatarURL}}
				<img src="{{.AvatarURL}}" alt="{{.AvatarAlt}}" class="avatar">
				{{- end}}
				<div class="info">
					<h2 class="profile-name">{{.DisplayName}}</h2>
					<p class="profile-login">{{.Login}}</p>
				</div>
				<span class="joined-date">Joined: {{.Joined}}</span>
			</div>

			<div class="stats-box">
				<div class="stat-item">
					<span class="stat-label">Repositories</span>
					<span class="stat-value" data-stat="repos">{{.Repos}}</span>
				</div>
				<div class="stat-item">
					<span class="stat-label">Followers</span>
					<span class="stat-value" data-stat="followers">{{.Followers}}</span>
				</div>
				<div class="stat-item">
					<span class="stat-label">Following</span>
					<span class="stat-value" data-stat="following">{{.Following}}</span>
				</div>
			</div>

			<div class="links-section">
				<div class="link-item" data-field="location">📍 <span>{{.Location}}</span></div>
				<div class="link-item" data-field="twitter">🐦 <span>{{.Twitter}}</span></div>
				<div class="link-item" data-field="company">🏢 <span>{{.Company}}</span></div>
				<div class="link-item" data-field="blog">🔗 <span>{{.Blog}}</span></div>
			</div>

			{{- if .HasProfileLink}}
			<a href="{{.ProfileURL}}" target="_blank" rel="noopener noreferrer" class="view-profile-button">View Profile</a>
			{{- end}}
		</div>
		{{- end}}
	</div>
	{{themeScript}}
</body>
</html>`
