package popcensus

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/footyrecords/club-history/internal/domain/nation"
	"github.com/footyrecords/club-history/internal/usecase"
)

func TestEstimateProClubs_DecodesEnvelope(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/estimates/pro-clubs" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("membership"); got != "full" {
			t.Errorf("expected membership=full, got=%q", got)
		}
		if got := r.URL.Query().Get("api_key"); got != "test-key" {
			t.Errorf("expected api key forwarded, got=%q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"pro_clubs":42}}`))
	}))
	defer server.Close()

	client := NewClient(ClientConfig{
		BaseURL: server.URL,
		APIKey:  "test-key",
	})

	got, err := client.EstimateProClubs(context.Background(), usecase.EstimateInput{
		ClubCount:   120,
		LeagueCount: 3,
		Membership:  nation.MembershipFull,
		MaxTier:     3,
		Population:  270_000_000,
		AreaKM2:     1_904_569,
	})
	if err != nil {
		t.Fatalf("estimate: %v", err)
	}
	if got != 42 {
		t.Fatalf("expected estimate=42, got=%d", got)
	}
}

func TestEstimateProClubs_RetriesTransientStatus(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"pro_clubs":7}}`))
	}))
	defer server.Close()

	client := NewClient(ClientConfig{
		BaseURL:    server.URL,
		APIKey:     "test-key",
		MaxRetries: 2,
	})

	got, err := client.EstimateProClubs(context.Background(), usecase.EstimateInput{ClubCount: 10})
	if err != nil {
		t.Fatalf("estimate: %v", err)
	}
	if got != 7 {
		t.Fatalf("expected estimate=7, got=%d", got)
	}
	if calls.Load() != 2 {
		t.Fatalf("expected 2 provider calls, got=%d", calls.Load())
	}
}

func TestEstimateProClubs_NonRetryableStatusFailsFast(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewClient(ClientConfig{
		BaseURL:    server.URL,
		APIKey:     "bad-key",
		MaxRetries: 3,
	})

	if _, err := client.EstimateProClubs(context.Background(), usecase.EstimateInput{ClubCount: 10}); err == nil {
		t.Fatal("expected error for unauthorized status")
	}
	if calls.Load() != 1 {
		t.Fatalf("expected one provider call, got=%d", calls.Load())
	}
}

func TestSanitizeSensitiveText_RedactsKey(t *testing.T) {
	t.Parallel()

	got := sanitizeSensitiveText("dial failed for https://host/path?api_key=secret123", "secret123")
	if want := "dial failed for https://host/path?api_key=REDACTED"; got != want {
		t.Fatalf("expected %q, got=%q", want, got)
	}
}
