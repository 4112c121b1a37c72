package server

import (
	"encoding/json"
	"net/http"
)

// Problem type URIs for RFC 7807 responses.
const (
	ProblemTypeNotFound    = "https://motorscope.dev/problems/not-found"
	ProblemTypeBadRequest  = "https://motorscope.dev/problems/bad-request"
	ProblemTypeInternal    = "https://motorscope.dev/problems/internal-error"
	ProblemTypeRateLimited = "https://motorscope.dev/problems/rate-limited"
)

var problemTypes = map[int]string{
	http.StatusNotFound:            ProblemTypeNotFound,
	http.StatusBadRequest:          ProblemTypeBadRequest,
	http.StatusInternalServerError: ProblemTypeInternal,
	http.StatusTooManyRequests:     ProblemTypeRateLimited,
}

// Problem is an RFC 7807 Problem Details body.
type Problem struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Status   int    `json:"status"`
	Detail   string `json:"detail,omitempty"`
	Instance string `json:"instance,omitempty"`
}

// NewProblem builds a Problem for status. Unknown statuses get about:blank
// as their type, per RFC 7807 section 4.2.
func NewProblem(status int, detail, instance string) Problem {
	typ, ok := problemTypes[status]
	if !ok {
		typ = "about:blank"
	}
	return Problem{
		Type:     typ,
		Title:    http.StatusText(status),
		Status:   status,
		Detail:   detail,
		Instance: instance,
	}
}

// WriteProblem writes p as application/problem+json.
func WriteProblem(w http.ResponseWriter, p Problem) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(p.Status)
	_ = json.NewEncoder(w).Encode(p)
}

// NotFound writes a 404 problem response.
func NotFound(w http.ResponseWriter, detail, instance string) {
	WriteProblem(w, NewProblem(http.StatusNotFound, detail, instance))
}

// BadRequest writes a 400 problem response.
func BadRequest(w http.ResponseWriter, detail, instance string) {
	WriteProblem(w, NewProblem(http.StatusBadRequest, detail, instance))
}

// InternalError writes a 500 problem response.
func InternalError(w http.ResponseWriter, detail, instance string) {
	WriteProblem(w, NewProblem(http.StatusInternalServerError, detail, instance))
}

// RateLimited writes a 429 problem response.
func RateLimited(w http.ResponseWriter, detail, instance string) {
	WriteProblem(w, NewProblem(http.StatusTooManyRequests, detail, instance))
}
