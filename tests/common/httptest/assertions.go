//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// AssertSuccessResponse checks the status code and, when targetStruct is
// non-nil, decodes the body into it.
func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, targetStruct any) {
	t.Helper()

	if !assert.Equal(t, expectedStatus, w.Code, "unexpected status, body: %s", w.Body.String()) {
		return
	}
	if targetStruct == nil {
		return
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), targetStruct),
		"failed to decode response JSON: %s", w.Body.String())
}

// AssertErrorResponse checks the status code and that the flat error
// envelope contains expectedErrorMsg (empty means any message).
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedErrorMsg string) {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code, "unexpected status, body: %s", w.Body.String())

	var errorResponse struct {
		Error string `json:"error"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &errorResponse),
		"failed to decode error response JSON: %s", w.Body.String())

	if expectedErrorMsg != "" {
		assert.Contains(t, errorResponse.Error, expectedErrorMsg)
	}
}
