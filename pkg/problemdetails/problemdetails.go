// Package problemdetails builds RFC 7807 error bodies.
package problemdetails

import (
	"encoding/json"
	"net/http"
)

// ContentType is the media type of a problem body.
const ContentType = "application/problem+json"

const (
	TypeNotFound         = "not-found"
	TypeMethodNotAllowed = "method-not-allowed"
)

type ProblemDetail struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Status   int    `json:"status"`
	Detail   string `json:"detail,omitempty"`
	Instance string `json:"instance,omitempty"`
}

// New creates a problem whose type is a relative reference under /problems/.
func New(status int, problemType, title, detail string) *ProblemDetail {
	return &ProblemDetail{
		Type:   "/problems/" + problemType,
		Title:  title,
		Status: status,
		Detail: detail,
	}
}

// WithInstance sets the request path the problem occurred on.
func (p *ProblemDetail) WithInstance(path string) *ProblemDetail {
	p.Instance = path
	return p
}

// Write sends p with its status code.
func Write(w http.ResponseWriter, p *ProblemDetail) {
	w.Header().Set("Content-Type", ContentType)
	w.WriteHeader(p.Status)
	_ = json.NewEncoder(w).Encode(p)
}
