package providers

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorCodesAndKinds(t *testing.T) {
	base := errors.New("connection refused")
	err := Upstream("mlb-statsapi", "mlb-scores-failed", base)

	if CodeOf(err) != "mlb-scores-failed" {
		t.Fatalf("unexpected code %s", CodeOf(err))
	}
	if KindOf(err) != KindUpstreamUnavailable {
		t.Fatalf("unexpected kind %s", KindOf(err))
	}
	if !errors.Is(err, base) {
		t.Fatal("expected unwrap to reach cause")
	}
}

func TestCodeOfWrappedError(t *testing.T) {
	err := fmt.Errorf("dispatch: %w", Unsupported("balldontlie", "nba-live-not-supported"))
	if CodeOf(err) != "nba-live-not-supported" {
		t.Fatalf("unexpected code %s", CodeOf(err))
	}
	if KindOf(err) != KindUnsupported {
		t.Fatalf("unexpected kind %s", KindOf(err))
	}
}

func TestCodeOfUntypedError(t *testing.T) {
	if CodeOf(errors.New("boom")) != "internal-error" {
		t.Fatal("expected generic code")
	}
	if KindOf(errors.New("boom")) != "" {
		t.Fatal("expected empty kind")
	}
}

func TestErrorString(t *testing.T) {
	err := NotFound("registry", "unknown team")
	if err.Error() != "registry: unknown team" {
		t.Fatalf("unexpected message %q", err.Error())
	}
	wrapped := Upstream("espn", "nfl-scores-failed", errors.New("status 500"))
	if wrapped.Error() != "espn: nfl-scores-failed: status 500" {
		t.Fatalf("unexpected message %q", wrapped.Error())
	}
}
