package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromErrorPassesThroughTypedErrors(t *testing.T) {
	err := New("SOME_CODE", http.StatusConflict, "boom")
	wrapped := fmt.Errorf("outer: %w", err)

	got := FromError(wrapped)

	assert.Equal(t, "SOME_CODE", got.Code)
	assert.Equal(t, http.StatusConflict, got.Status)
}

func TestFromErrorNormalisesUnknownErrors(t *testing.T) {
	got := FromError(fmt.Errorf("plain failure"))

	assert.Equal(t, ErrInternal.Code, got.Code)
	assert.Equal(t, http.StatusInternalServerError, got.Status)
}

func TestDetailMessage(t *testing.T) {
	cases := []struct {
		name     string
		body     string
		fallback string
		want     string
	}{
		{
			name:     "string detail",
			body:     `{"detail": "email already registered"}`,
			fallback: "upload failed",
			want:     "email already registered",
		},
		{
			name:     "object detail",
			body:     `{"detail": {"msg": "invalid csv header"}}`,
			fallback: "upload failed",
			want:     "invalid csv header",
		},
		{
			name:     "list detail",
			body:     `{"detail": [{"msg": "row 3 missing email"}, {"msg": "row 7 duplicate"}]}`,
			fallback: "upload failed",
			want:     "row 3 missing email; row 7 duplicate",
		},
		{
			name:     "empty string falls back",
			body:     `{"detail": "  "}`,
			fallback: "upload failed",
			want:     "upload failed",
		},
		{
			name:     "missing detail falls back",
			body:     `{"error": "nope"}`,
			fallback: "upload failed",
			want:     "upload failed",
		},
		{
			name:     "garbage body falls back",
			body:     `<html>502</html>`,
			fallback: "upload failed",
			want:     "upload failed",
		},
		{
			name:     "list with empty msgs falls back",
			body:     `{"detail": [{"msg": ""}]}`,
			fallback: "upload failed",
			want:     "upload failed",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DetailMessage([]byte(tc.body), tc.fallback))
		})
	}
}
