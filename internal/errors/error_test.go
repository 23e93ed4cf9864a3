package errors

import (
	stderrors "errors"
	"strings"
	"testing"
)

func TestNewFromRegistry(t *testing.T) {
	err := New("A002")

	if err.Code != "A002" {
		t.Errorf("Code = %q", err.Code)
	}
	if err.Category != CategoryHydration {
		t.Errorf("Category = %q", err.Category)
	}
	if !strings.Contains(err.Error(), "A002") {
		t.Errorf("Error() = %q, want code prefix", err.Error())
	}
}

func TestNewUnknownCode(t *testing.T) {
	err := New("A999")

	if err.Code != "A999" {
		t.Errorf("Code = %q", err.Code)
	}
	if err.Error() == "" {
		t.Error("Error() is empty for unknown code")
	}
}

func TestWithDetailAndSuggestion(t *testing.T) {
	err := New("A005").
		WithDetail("bad value %d", 42).
		WithSuggestion("use a positive value")

	if !strings.Contains(err.Detail, "42") {
		t.Errorf("Detail = %q", err.Detail)
	}
	if err.Suggestion != "use a positive value" {
		t.Errorf("Suggestion = %q", err.Suggestion)
	}
}

func TestWrapUnwrap(t *testing.T) {
	cause := stderrors.New("io failure")
	err := New("A005").Wrap(cause)

	if !stderrors.Is(err, cause) {
		t.Error("errors.Is does not see the cause")
	}

	var ae *Error
	if !stderrors.As(error(err), &ae) {
		t.Fatal("errors.As failed")
	}
	if ae.Code != "A005" {
		t.Errorf("Code = %q", ae.Code)
	}
}

func TestRegistryCoversEngineCodes(t *testing.T) {
	for _, code := range []string{"A001", "A002", "A003", "A004", "A005"} {
		if _, ok := registry[code]; !ok {
			t.Errorf("code %s missing from registry", code)
		}
	}
}
