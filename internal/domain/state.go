package domain

// Status describes where a lookup is in its fetch lifecycle.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// SearchState is the single value describing the widget at any moment.
// Values are immutable: a transition builds a new state, it never edits one.
// Profile is non-nil only for StatusSuccess and ErrorMessage is non-empty only
// for StatusError; the constructors below are the only way to build a state.
type SearchState struct {
	query        string
	status       Status
	profile      *ProfileRecord
	errorKind    error
	errorMessage string
}

// IdleState returns the state a widget starts in.
func IdleState() SearchState {
	return SearchState{status: StatusIdle}
}

// LoadingState marks a request for query as outstanding.
func LoadingState(query string) SearchState {
	return SearchState{query: query, status: StatusLoading}
}

// SuccessState stores a fetched profile. A nil profile is stored as an empty record.
func SuccessState(query string, profile *ProfileRecord) SearchState {
	if profile == nil {
		profile = &ProfileRecord{}
	}
	return SearchState{query: query, status: StatusSuccess, profile: profile}
}

// ErrorState stores a user-facing failure message. kind is one of
// ErrValidation, ErrNotFound or ErrTransport.
func ErrorState(query string, kind error, message string) SearchState {
	return SearchState{query: query, status: StatusError, errorKind: kind, errorMessage: message}
}

func (s SearchState) Query() string  { return s.query }
func (s SearchState) Status() Status { return s.status }

// Profile returns the fetched record and true when the state is StatusSuccess.
func (s SearchState) Profile() (*ProfileRecord, bool) {
	return s.profile, s.status == StatusSuccess
}

// ErrorMessage returns the failure message and true when the state is StatusError.
func (s SearchState) ErrorMessage() (string, bool) {
	return s.errorMessage, s.status == StatusError
}

// ErrorKind returns the error class of a StatusError state, nil otherwise.
func (s SearchState) ErrorKind() error { return s.errorKind }

func (s SearchState) IsLoading() bool { return s.status == StatusLoading }
