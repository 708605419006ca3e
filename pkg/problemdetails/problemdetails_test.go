package problemdetails

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrite(t *testing.T) {
	rec := httptest.NewRecorder()

	Write(rec, New(http.StatusNotFound, TypeNotFound, "Not Found", "no route").WithInstance("/nope"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, ContentType, rec.Header().Get("Content-Type"))

	var got ProblemDetail
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, ProblemDetail{
		Type:     "/problems/not-found",
		Title:    "Not Found",
		Status:   http.StatusNotFound,
		Detail:   "no route",
		Instance: "/nope",
	}, got)
}
