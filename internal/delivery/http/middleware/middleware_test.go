package middleware

import (
	"errors"
	"testing"

	"empleos-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

func TestBearerTokenFromHeader(t *testing.T) {
	cases := []struct {
		header string
		want   string
		ok     bool
	}{
		{"Bearer abc.def.ghi", "abc.def.ghi", true},
		{"bearer abc.def.ghi", "abc.def.ghi", true},
		{"  Bearer   abc  ", "abc", true},
		{"", "", false},
		{"Bearer", "", false},
		{"Bearer ", "", false},
		{"Basic dXNlcjpwYXNz", "", false},
		{"abc.def.ghi", "", false},
	}

	for _, tc := range cases {
		got, ok := bearerTokenFromHeader(tc.header)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("bearerTokenFromHeader(%q) = (%q, %v), want (%q, %v)", tc.header, got, ok, tc.want, tc.ok)
		}
	}
}

func TestNormalizeErrorMasksServerErrors(t *testing.T) {
	status, msg, data := normalizeError(NewAppError(fiber.StatusInternalServerError, "pgx: connection refused", nil, errors.New("boom")))
	if status != fiber.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", status, fiber.StatusInternalServerError)
	}
	if msg != response.MessageInternalServerError {
		t.Fatalf("message leaked internals: %q", msg)
	}
	if data != nil {
		t.Fatalf("data should be stripped on 5xx, got %v", data)
	}
}

func TestNormalizeErrorKeepsClientErrors(t *testing.T) {
	fields := map[string]string{"email": "is required"}
	status, msg, data := normalizeError(NewAppError(fiber.StatusBadRequest, "Bad request", fields, nil))
	if status != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want %d", status, fiber.StatusBadRequest)
	}
	if msg != "Bad request" {
		t.Fatalf("message = %q", msg)
	}
	got, ok := data.(map[string]string)
	if !ok || got["email"] != "is required" {
		t.Fatalf("data = %v, want field map", data)
	}
}

func TestNormalizeErrorUnknownError(t *testing.T) {
	status, msg, _ := normalizeError(errors.New("something unexpected"))
	if status != fiber.StatusInternalServerError || msg != response.MessageInternalServerError {
		t.Fatalf("unknown errors must normalize to a masked 500, got (%d, %q)", status, msg)
	}
}
