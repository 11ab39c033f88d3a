package pollinations

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatValidator(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   []byte
		want   *APIError
	}{
		{name: "ok", status: http.StatusOK, body: []byte("hello")},
		{name: "ok empty body", status: http.StatusOK, body: nil},
		{name: "server error", status: http.StatusInternalServerError, body: []byte("boom"),
			want: &APIError{StatusCode: http.StatusInternalServerError, Message: "boom"}},
		{name: "not found", status: http.StatusNotFound, body: []byte("missing"),
			want: &APIError{StatusCode: http.StatusNotFound, Message: "missing"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ChatValidator{}.Validate(tt.status, tt.body)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.want, apiErr)
		})
	}
}

func TestImageValidator(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   []byte
		want   *APIError
	}{
		{name: "ok", status: http.StatusOK, body: []byte{0x89, 0x50}},
		{name: "ok empty body", status: http.StatusOK, body: nil,
			want: &APIError{StatusCode: http.StatusOK, Message: "Empty response received"}},
		{name: "rate limited", status: http.StatusTooManyRequests, body: []byte("slow down"),
			want: &APIError{StatusCode: http.StatusTooManyRequests, Message: "slow down"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ImageValidator{}.Validate(tt.status, tt.body)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.want, apiErr)
		})
	}
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "api error 404: missing", (&APIError{StatusCode: 404, Message: "missing"}).Error())
	assert.Equal(t, "validation: prompt must be a non-empty string",
		(&ValidationError{Reason: "prompt must be a non-empty string"}).Error())

	var validationErr *ValidationError
	assert.False(t, errors.As(&APIError{StatusCode: 500}, &validationErr))
}
