package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/yamanfurkan353-eng/lumina/shared/failure"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "test error message",
	}

	if f.Error() != "test error message" {
		t.Errorf("expected error message to be 'test error message', got %s", f.Error())
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{
			name:    "BadRequestFromString",
			err:     failure.BadRequestFromString("invalid check_in date"),
			code:    http.StatusBadRequest,
			message: "invalid check_in date",
		},
		{
			name:    "Unauthorized",
			err:     failure.Unauthorized("invalid email or password"),
			code:    http.StatusUnauthorized,
			message: "invalid email or password",
		},
		{
			name:    "NotFound",
			err:     failure.NotFound("reservation not found"),
			code:    http.StatusNotFound,
			message: "reservation not found",
		},
		{
			name:    "Conflict",
			err:     failure.Conflict("room is not available for the selected dates"),
			code:    http.StatusConflict,
			message: "room is not available for the selected dates",
		},
		{
			name:    "InvalidState",
			err:     failure.InvalidState("only confirmed reservations can be checked in"),
			code:    http.StatusUnprocessableEntity,
			message: "only confirmed reservations can be checked in",
		},
		{
			name:    "Forbidden",
			err:     failure.Forbidden("access denied"),
			code:    http.StatusForbidden,
			message: "access denied",
		},
		{
			name:    "InternalError",
			err:     failure.InternalError(errors.New("connection refused")),
			code:    http.StatusInternalServerError,
			message: "connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, ok := tt.err.(*failure.Failure)
			if !ok {
				t.Fatalf("expected *failure.Failure, got %T", tt.err)
			}

			if f.Code != tt.code {
				t.Errorf("expected code to be %d, got %d", tt.code, f.Code)
			}

			if f.Message != tt.message {
				t.Errorf("expected message to be %s, got %s", tt.message, f.Message)
			}
		})
	}
}

func TestBadRequestWithNilError(t *testing.T) {
	if err := failure.BadRequest(nil); err != nil {
		t.Errorf("expected nil, got %v", err)
	}

	if err := failure.InternalError(nil); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name:     "failure error",
			err:      failure.Conflict("conflict"),
			expected: http.StatusConflict,
		},
		{
			name:     "wrapped failure error",
			err:      fmt.Errorf("outer: %w", failure.NotFound("room not found")),
			expected: http.StatusNotFound,
		},
		{
			name:     "plain error defaults to internal",
			err:      errors.New("boom"),
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if code := failure.GetCode(tt.err); code != tt.expected {
				t.Errorf("expected code to be %d, got %d", tt.expected, code)
			}
		})
	}
}
