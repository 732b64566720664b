package response_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/maxviazov/fundtable/internal/repository"
	"github.com/maxviazov/fundtable/internal/service"
	"github.com/maxviazov/fundtable/pkg/response"
)

func TestMapError(t *testing.T) {
	cases := []struct {
		name     string
		in       error
		wantCode int
		wantErr  string
	}{
		{"ok", nil, 200, "ok"},
		{"invalid_input", service.NewInvalidInputError([]service.FieldError{{Field: "page_size", Message: "bad"}}), 400, "invalid_input"},
		{"not_found", repository.ErrNotFound, 404, "not_found"},
		{"wrapped not_found", fmt.Errorf("lookup: %w", repository.ErrNotFound), 404, "not_found"},
		{"already_exists", repository.ErrAlreadyExists, 409, "already_exists"},
		{"limit", repository.ErrLimitReached, 429, "too_many_tables"},
		{"timeout", context.DeadlineExceeded, 504, "timeout"},
		{"internal", errors.New("boom"), 500, "internal_error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, payload := response.MapError(tc.in)
			if code != tc.wantCode || payload.Error != tc.wantErr {
				t.Fatalf("unexpected mapping: got (%d,%s) want (%d,%s)", code, payload.Error, tc.wantCode, tc.wantErr)
			}
			if tc.wantErr == "invalid_input" && len(payload.FieldErrors) == 0 {
				t.Fatalf("expected field errors in payload")
			}
		})
	}
}
