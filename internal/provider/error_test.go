package provider

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"
)

func TestKindFromStatus(t *testing.T) {
	tests := []struct {
		status int
		want   Kind
	}{
		{http.StatusUnauthorized, KindUnauthorized},
		{http.StatusForbidden, KindUnauthorized},
		{http.StatusTooManyRequests, KindRateLimited},
		{http.StatusNotFound, KindNotFound},
		{http.StatusRequestTimeout, KindTimeout},
		{http.StatusGatewayTimeout, KindTimeout},
		{http.StatusInternalServerError, KindMalformed},
		{http.StatusBadRequest, KindMalformed},
	}
	for _, tt := range tests {
		if got := KindFromStatus(tt.status); got != tt.want {
			t.Errorf("KindFromStatus(%d) = %s, want %s", tt.status, got, tt.want)
		}
	}
}

func TestClassify(t *testing.T) {
	if got := Classify("openweather", context.DeadlineExceeded); got.Kind != KindTimeout {
		t.Errorf("deadline exceeded classified as %s, want %s", got.Kind, KindTimeout)
	}
	if got := Classify("openweather", errors.New("connection reset")); got.Kind != KindMalformed {
		t.Errorf("transport error classified as %s, want %s", got.Kind, KindMalformed)
	}

	// An already-typed error passes through unchanged.
	orig := FromStatus("unsplash", http.StatusTooManyRequests, "slow down")
	wrapped := fmt.Errorf("search: %w", orig)
	if got := Classify("unsplash", wrapped); got != orig {
		t.Error("Classify rebuilt an already-typed provider error")
	}
}

func TestErrorString(t *testing.T) {
	err := FromStatus("gemini", http.StatusUnauthorized, "bad key")
	for _, want := range []string{"gemini", "unauthorized", "401"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Error() = %q, missing %q", err.Error(), want)
		}
	}
}
