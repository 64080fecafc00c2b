package cache

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestMemoryExpiry(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	store := NewMemory()
	store.now = func() time.Time { return now }

	store.Set(context.Background(), "k", []byte("v"), 30*time.Second)
	if val, ok := store.Get(context.Background(), "k"); !ok || string(val) != "v" {
		t.Fatalf("expected fresh entry, got %q ok=%v", val, ok)
	}

	now = now.Add(31 * time.Second)
	if _, ok := store.Get(context.Background(), "k"); ok {
		t.Fatal("expected expired entry to miss")
	}
}

func TestMemoryIgnoresNonPositiveTTL(t *testing.T) {
	store := NewMemory()
	store.Set(context.Background(), "k", []byte("v"), 0)
	if _, ok := store.Get(context.Background(), "k"); ok {
		t.Fatal("zero ttl must not be stored")
	}
}

func TestTransportServesFromCache(t *testing.T) {
	calls := 0
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[]}`))
	}))
	defer upstream.Close()

	var hits, misses int
	transport := NewTransport(NewMemory(), time.Minute, nil, nil)
	transport.Observe = func(hit bool) {
		if hit {
			hits++
		} else {
			misses++
		}
	}
	client := &http.Client{Transport: transport}

	for i := 0; i < 3; i++ {
		resp, err := client.Get(upstream.URL + "/schedule")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		if string(body) != `{"data":[]}` {
			t.Fatalf("unexpected body %s", body)
		}
		if resp.Header.Get("Content-Type") != "application/json" {
			t.Fatalf("content type lost on replay")
		}
	}

	if calls != 1 {
		t.Fatalf("expected single upstream call, got %d", calls)
	}
	if misses != 1 || hits != 2 {
		t.Fatalf("expected 1 miss / 2 hits, got %d/%d", misses, hits)
	}
}

func TestTransportSkipsNon200(t *testing.T) {
	calls := 0
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer upstream.Close()

	client := &http.Client{Transport: NewTransport(NewMemory(), time.Minute, nil, nil)}
	for i := 0; i < 2; i++ {
		resp, err := client.Get(upstream.URL)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		resp.Body.Close()
	}
	if calls != 2 {
		t.Fatalf("error responses must not be cached, calls=%d", calls)
	}
}

func TestTransportTTLRules(t *testing.T) {
	transport := NewTransport(NewMemory(), time.Minute, []Rule{
		{Match: "/feed/live", TTL: 10 * time.Second},
		{Match: "scoreboard", TTL: 2 * time.Minute},
	}, nil)

	liveReq := httptest.NewRequest(http.MethodGet, "http://x/api/v1/game/1/feed/live", nil)
	if got := transport.ttlFor(liveReq); got != 10*time.Second {
		t.Fatalf("unexpected live ttl %v", got)
	}
	sbReq := httptest.NewRequest(http.MethodGet, "http://x/nfl/scoreboard?dates=20250615", nil)
	if got := transport.ttlFor(sbReq); got != 2*time.Minute {
		t.Fatalf("unexpected scoreboard ttl %v", got)
	}
	otherReq := httptest.NewRequest(http.MethodGet, "http://x/schedule", nil)
	if got := transport.ttlFor(otherReq); got != time.Minute {
		t.Fatalf("unexpected default ttl %v", got)
	}
}

func TestTransportBypassesNonGET(t *testing.T) {
	calls := 0
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer upstream.Close()

	client := &http.Client{Transport: NewTransport(NewMemory(), time.Minute, nil, nil)}
	for i := 0; i < 2; i++ {
		resp, err := client.Post(upstream.URL, "text/plain", nil)
		if err != nil {
			t.Fatalf("post: %v", err)
		}
		resp.Body.Close()
	}
	if calls != 2 {
		t.Fatalf("POST must bypass cache, calls=%d", calls)
	}
}
