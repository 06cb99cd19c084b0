package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"luxehotel/shared/failure"
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

func TestPredefinedFailures(t *testing.T) {
	tests := []struct {
		name    string
		failure *failure.Failure
		code    int
		message string
	}{
		{
			name:    "InvalidPageParam",
			failure: failure.InvalidPageParam,
			code:    http.StatusBadRequest,
			message: "invalid page parameter",
		},
		{
			name:    "InvalidLimitParam",
			failure: failure.InvalidLimitParam,
			code:    http.StatusBadRequest,
			message: "invalid limit parameter",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.failure.Code != tt.code {
				t.Errorf("expected code to be %d, got %d", tt.code, tt.failure.Code)
			}
			if tt.failure.Message != tt.message {
				t.Errorf("expected message to be %s, got %s", tt.message, tt.failure.Message)
			}
		})
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name     string
		build    func() error
		wantCode int
		wantMsg  string
	}{
		{
			name:     "BadRequest",
			build:    func() error { return failure.BadRequest(errors.New("validation failed")) },
			wantCode: http.StatusBadRequest,
			wantMsg:  "validation failed",
		},
		{
			name:     "BadRequestFromString",
			build:    func() error { return failure.BadRequestFromString("bad input") },
			wantCode: http.StatusBadRequest,
			wantMsg:  "bad input",
		},
		{
			name:     "InternalError",
			build:    func() error { return failure.InternalError(errors.New("boom")) },
			wantCode: http.StatusInternalServerError,
			wantMsg:  "boom",
		},
		{
			name:     "NotFound",
			build:    func() error { return failure.NotFound("booking not found") },
			wantCode: http.StatusNotFound,
			wantMsg:  "booking not found",
		},
		{
			name:     "Conflict",
			build:    func() error { return failure.Conflict("a submission is already in progress") },
			wantCode: http.StatusConflict,
			wantMsg:  "a submission is already in progress",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.build()
			if err == nil {
				t.Fatal("expected an error")
			}

			if err.Error() != tt.wantMsg {
				t.Errorf("expected message %q, got %q", tt.wantMsg, err.Error())
			}

			if code := failure.GetCode(err); code != tt.wantCode {
				t.Errorf("expected code %d, got %d", tt.wantCode, code)
			}
		})
	}
}

func TestNilErrorsReturnNil(t *testing.T) {
	if failure.BadRequest(nil) != nil {
		t.Error("BadRequest(nil) should be nil")
	}
	if failure.InternalError(nil) != nil {
		t.Error("InternalError(nil) should be nil")
	}
}

func TestGetCode(t *testing.T) {
	if code := failure.GetCode(errors.New("plain error")); code != http.StatusInternalServerError {
		t.Errorf("expected %d for non-failure errors, got %d", http.StatusInternalServerError, code)
	}

	wrapped := fmt.Errorf("outer: %w", failure.NotFound("missing"))
	if code := failure.GetCode(wrapped); code != http.StatusNotFound {
		t.Errorf("expected wrapped failure code %d, got %d", http.StatusNotFound, code)
	}
}
