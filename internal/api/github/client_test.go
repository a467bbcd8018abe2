package github

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/vilaca/profile-detective/internal/api"
	"github.com/vilaca/profile-detective/internal/domain"
)

// mockHTTPClient is a test double for HTTPClient.
type mockHTTPClient struct {
	doFunc func(req *http.Request) (*http.Response, error)
}

func (m *mockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	return m.doFunc(req)
}

func respond(status int, body string) func(req *http.Request) (*http.Response, error) {
	return func(req *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: status,
			Body:       io.NopCloser(bytes.NewBufferString(body)),
		}, nil
	}
}

// TestGetUser tests retrieving a full profile from GitHub.
// Follows AAA (Arrange, Act, Assert) pattern.
func TestGetUser(t *testing.T) {
	// Arrange
	responseBody := `{
		"login": "octocat",
		"name": "The Octocat",
		"avatar_url": "https://avatars.githubusercontent.com/u/583231?v=4",
		"created_at": "2011-01-25T18:44:36Z",
		"public_repos": 8,
		"followers": 21000,
		"following": 9,
		"html_url": "https://github.com/octocat"
	}`

	var gotReq *http.Request
	mockHTTP := &mockHTTPClient{
		doFunc: func(req *http.Request) (*http.Response, error) {
			gotReq = req
			return respond(http.StatusOK, responseBody)(req)
		},
	}

	client := NewClient(api.ClientConfig{BaseURL: "https://api.github.com"}, mockHTTP)

	// Act
	user, err := client.GetUser(context.Background(), "octocat")

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if gotReq.URL.String() != "https://api.github.com/users/octocat" {
		t.Errorf("unexpected request URL %q", gotReq.URL.String())
	}
	if gotReq.Method != http.MethodGet {
		t.Errorf("expected GET, got %s", gotReq.Method)
	}
	if gotReq.Header.Get("Authorization") != "" {
		t.Error("expected no Authorization header")
	}
	if gotReq.Header.Get("User-Agent") != defaultUserAgent {
		t.Errorf("expected default user agent, got %q", gotReq.Header.Get("User-Agent"))
	}

	if domain.Str(user.Login) != "octocat" {
		t.Errorf("expected login 'octocat', got '%s'", domain.Str(user.Login))
	}
	if domain.Int(user.Followers) != 21000 {
		t.Errorf("expected 21000 followers, got %d", domain.Int(user.Followers))
	}
	if user.Location != nil {
		t.Errorf("expected absent location, got %q", *user.Location)
	}
}

// TestGetUser_NullFields tests that explicit nulls decode as absent fields.
func TestGetUser_NullFields(t *testing.T) {
	// Arrange
	mockHTTP := &mockHTTPClient{doFunc: respond(http.StatusOK, `{"login":"ghost","name":null,"blog":null,"followers":null}`)}
	client := NewClient(api.ClientConfig{}, mockHTTP)

	// Act
	user, err := client.GetUser(context.Background(), "ghost")

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if user.Name != nil || user.Blog != nil || user.Followers != nil {
		t.Errorf("expected null fields to be nil, got %+v", user)
	}
}

// TestGetUser_EscapesUsername tests that the username cannot alter the request path.
func TestGetUser_EscapesUsername(t *testing.T) {
	// Arrange
	var gotPath string
	mockHTTP := &mockHTTPClient{
		doFunc: func(req *http.Request) (*http.Response, error) {
			gotPath = req.URL.EscapedPath()
			return respond(http.StatusOK, `{}`)(req)
		},
	}
	client := NewClient(api.ClientConfig{BaseURL: "https://api.github.com/"}, mockHTTP)

	// Act
	_, err := client.GetUser(context.Background(), "../orgs/x")

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if gotPath != "/users/..%2Forgs%2Fx" {
		t.Errorf("unexpected escaped path %q", gotPath)
	}
}

// TestGetUser_NotFound tests that a 404 is reported as domain.ErrNotFound.
func TestGetUser_NotFound(t *testing.T) {
	// Arrange
	mockHTTP := &mockHTTPClient{doFunc: respond(http.StatusNotFound, `{"message":"Not Found"}`)}
	client := NewClient(api.ClientConfig{}, mockHTTP)

	// Act
	user, err := client.GetUser(context.Background(), "doesnotexist123456")

	// Assert
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if user != nil {
		t.Error("expected nil user on error")
	}
}

// TestGetUser_TransportErrors tests every failure that is not a 404.
func TestGetUser_TransportErrors(t *testing.T) {
	tests := []struct {
		name   string
		doFunc func(req *http.Request) (*http.Response, error)
	}{
		{
			name: "network failure",
			doFunc: func(req *http.Request) (*http.Response, error) {
				return nil, errors.New("dial tcp: connection refused")
			},
		},
		{name: "server error", doFunc: respond(http.StatusInternalServerError, `oops`)},
		{name: "rate limited", doFunc: respond(http.StatusForbidden, `{"message":"API rate limit exceeded"}`)},
		{name: "malformed JSON", doFunc: respond(http.StatusOK, `{"login":`)},
		{name: "wrong JSON shape", doFunc: respond(http.StatusOK, `[1,2,3]`)},
		{name: "null body", doFunc: respond(http.StatusOK, `null`)},
		{name: "empty body", doFunc: respond(http.StatusOK, ``)},
		{name: "trailing garbage", doFunc: respond(http.StatusOK, `{"login":"octocat"} <html>garbage`)},
		{name: "two objects", doFunc: respond(http.StatusOK, `{"login":"octocat"}{"login":"ghost"}`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			client := NewClient(api.ClientConfig{}, &mockHTTPClient{doFunc: tt.doFunc})

			// Act
			_, err := client.GetUser(context.Background(), "octocat")

			// Assert
			if !errors.Is(err, domain.ErrTransport) {
				t.Errorf("expected ErrTransport, got %v", err)
			}
			if errors.Is(err, domain.ErrNotFound) {
				t.Error("transport failure must not be reported as not found")
			}
		})
	}
}
