package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError_ToHTTPError(t *testing.T) {
	e := NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	body := e.ToHTTPError()
	if body["ok"] != false || body["error"] != "Quote not found" || body["code"] != "QUOTE_NOT_FOUND" {
		t.Fatalf("unexpected body: %+v", body)
	}
	if _, ok := body["field"]; ok {
		t.Fatalf("field must be omitted when empty: %+v", body)
	}

	fe := NewFieldError("INVALID_REQUEST", "hostName", "hostName is required", http.StatusBadRequest)
	if got := fe.ToHTTPError()["field"]; got != "hostName" {
		t.Fatalf("expected field hostName, got %v", got)
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("dynamodb unavailable")
	e := NewDomainError("INTERNAL_ERROR", "Internal Server Error", cause, http.StatusInternalServerError)
	if !errors.Is(e, cause) {
		t.Fatalf("expected wrapped cause")
	}
	if e.ToHTTPError()["error"] != "Internal Server Error" {
		t.Fatalf("cause must not leak into the body")
	}
}
