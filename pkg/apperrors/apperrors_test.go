package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "missing field", err: MissingField("name"), want: http.StatusBadRequest},
		{name: "invalid format", err: InvalidFormat("dob", "bad date"), want: http.StatusBadRequest},
		{name: "invalid value", err: InvalidValue("dob", "in the future"), want: http.StatusBadRequest},
		{name: "conflict", err: Conflict("slot taken"), want: http.StatusBadRequest},
		{name: "invalid credentials", err: InvalidCredentials(), want: http.StatusBadRequest},
		{name: "not found", err: NotFound("patient"), want: http.StatusNotFound},
		{name: "forbidden", err: Forbidden("last admin"), want: http.StatusForbidden},
		{name: "unclassified", err: errors.New("connection refused"), want: http.StatusInternalServerError},
		{name: "nil", err: nil, want: http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, StatusCode(tc.err))
		})
	}
}

func TestReasonOf_Wrapped(t *testing.T) {
	err := fmt.Errorf("creating patient: %w", NotFound("patient"))
	assert.Equal(t, ReasonNotFound, ReasonOf(err))
	assert.True(t, IsReason(err, ReasonNotFound))
	assert.False(t, IsReason(err, ReasonConflict))
}

func TestReasonOf_Unclassified(t *testing.T) {
	assert.Equal(t, Reason(""), ReasonOf(errors.New("boom")))
}

func TestError_Message(t *testing.T) {
	err := InvalidValue("name", "contains disallowed characters")
	assert.Contains(t, err.Error(), "name")
	assert.Contains(t, err.Error(), "contains disallowed characters")
}
