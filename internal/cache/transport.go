package cache

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"
)

// Rule assigns a freshness window to requests whose URL contains Match.
// Rules are evaluated in order; the first hit wins.
type Rule struct {
	Match string
	TTL   time.Duration
}

// Transport caches successful GET responses in a Store. Responses are reused
// within short freshness windows so the adapters themselves stay cache-free.
type Transport struct {
	Base       http.RoundTripper
	Store      Store
	Rules      []Rule
	DefaultTTL time.Duration
	// Observe, when set, is invoked with the cache outcome of each
	// cacheable request.
	Observe func(hit bool)
}

type cachedResponse struct {
	ContentType string `json:"contentType"`
	Body        []byte `json:"body"`
}

// NewTransport builds a caching transport over base (http.DefaultTransport
// when nil).
func NewTransport(store Store, defaultTTL time.Duration, rules []Rule, base http.RoundTripper) *Transport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &Transport{Base: base, Store: store, Rules: rules, DefaultTTL: defaultTTL}
}

func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	ttl := t.ttlFor(req)
	if req.Method != http.MethodGet || t.Store == nil || ttl <= 0 {
		return t.base().RoundTrip(req)
	}

	key := cacheKey(req)
	if raw, ok := t.Store.Get(req.Context(), key); ok {
		var cached cachedResponse
		if err := json.Unmarshal(raw, &cached); err == nil {
			t.observe(true)
			return rebuildResponse(req, cached), nil
		}
	}
	t.observe(false)

	resp, err := t.base().RoundTrip(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return resp, nil
	}

	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return nil, err
	}

	payload, marshalErr := json.Marshal(cachedResponse{
		ContentType: resp.Header.Get("Content-Type"),
		Body:        body,
	})
	if marshalErr == nil {
		// Store under a detached context so a canceled request does not
		// lose the already-fetched response.
		t.Store.Set(context.WithoutCancel(req.Context()), key, payload, ttl)
	}

	resp.Body = io.NopCloser(bytes.NewReader(body))
	resp.ContentLength = int64(len(body))
	return resp, nil
}

func (t *Transport) base() http.RoundTripper {
	if t.Base != nil {
		return t.Base
	}
	return http.DefaultTransport
}

func (t *Transport) ttlFor(req *http.Request) time.Duration {
	target := req.URL.String()
	for _, rule := range t.Rules {
		if rule.Match != "" && strings.Contains(target, rule.Match) {
			return rule.TTL
		}
	}
	return t.DefaultTTL
}

func (t *Transport) observe(hit bool) {
	if t.Observe != nil {
		t.Observe(hit)
	}
}

func cacheKey(req *http.Request) string {
	return "httpcache:" + req.URL.String()
}

func rebuildResponse(req *http.Request, cached cachedResponse) *http.Response {
	header := http.Header{}
	if cached.ContentType != "" {
		header.Set("Content-Type", cached.ContentType)
	}
	return &http.Response{
		StatusCode:    http.StatusOK,
		Status:        "200 OK",
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        header,
		Body:          io.NopCloser(bytes.NewReader(cached.Body)),
		ContentLength: int64(len(cached.Body)),
		Request:       req,
	}
}
