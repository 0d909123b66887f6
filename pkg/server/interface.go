/*
Package server implements msgpack IPC for spell checking.

Clients write msgpack maps to stdin and read one msgpack map per request
from stdout. Every request carries an ID that is echoed back, and an action.

Check a text:

	{"id": "req_001", "a": "check", "t": "the qick brown fx"}

The server answers with mistakes in reading order, each with ranked suggestions:

	{"id": "req_001", "m": [{"n": 1, "w": "qick", "s": [{"w": "quick", "r": 1}]}, {"n": 1, "w": "fx", "s": [{"w": "fox", "r": 1}]}], "c": 2, "t": 85}

Suggest for a single word, with an optional limit (capped at server.max_limit):

	{"id": "req_002", "a": "suggest", "w": "fx", "l": 3}

Check membership, rebuild the dictionary, or read counters:

	{"id": "req_003", "a": "contains", "w": "Fox"}
	{"id": "req_004", "a": "refresh"}
	{"id": "req_005", "a": "refresh", "path": "/usr/share/dict/words"}
	{"id": "req_006", "a": "stats"}

A refresh with a path is refused with code 403 unless server.allow_refresh_path
is set, since it makes the server open any file the client names.
A refresh that fails keeps the previous dictionary. Failures come back as
an ErrorResponse with an HTTP-like code.
*/
package server

// Actions understood by the server.
const (
	ActionCheck    = "check"
	ActionSuggest  = "suggest"
	ActionContains = "contains"
	ActionRefresh  = "refresh"
	ActionStats    = "stats"
)

// Error codes.
const (
	CodeBadRequest    = 400
	CodeForbidden     = 403
	CodeUnknownAction = 404
	CodeTooLarge      = 413
	CodeInternal      = 500
	CodeNoDictionary  = 503
)

// Request is the single request envelope.
type Request struct {
	ID     string `msgpack:"id"`
	Action string `msgpack:"a"`
	Text   string `msgpack:"t,omitempty"`
	Word   string `msgpack:"w,omitempty"`
	Limit  int    `msgpack:"l,omitempty"`
	Path   string `msgpack:"path,omitempty"`
}

// Suggestion is one ranked candidate, rank 1 first.
type Suggestion struct {
	Word string `msgpack:"w"`
	Rank int    `msgpack:"r"`
}

// Mistake is an unknown word with its line and suggestions.
type Mistake struct {
	Line        int          `msgpack:"n"`
	Word        string       `msgpack:"w"`
	Suggestions []Suggestion `msgpack:"s"`
}

// CheckResponse answers a check request. TimeTaken is in microseconds.
type CheckResponse struct {
	ID        string    `msgpack:"id"`
	Mistakes  []Mistake `msgpack:"m"`
	Count     int       `msgpack:"c"`
	TimeTaken int64     `msgpack:"t"`
}

// SuggestResponse answers a suggest request.
type SuggestResponse struct {
	ID          string       `msgpack:"id"`
	Suggestions []Suggestion `msgpack:"s"`
	Count       int          `msgpack:"c"`
	TimeTaken   int64        `msgpack:"t"`
}

// StatusResponse answers contains, refresh and stats requests.
type StatusResponse struct {
	ID     string         `msgpack:"id"`
	Status string         `msgpack:"status"`
	Known  *bool          `msgpack:"k,omitempty"`
	Stats  map[string]int `msgpack:"stats,omitempty"`
}

// ErrorResponse reports a failed request.
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
