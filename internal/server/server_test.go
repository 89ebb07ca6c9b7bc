package server

import (
	"context"
	"net/http"
	"testing"
	"time"
)

func TestNormalizeAddr(t *testing.T) {
	cases := map[string]string{"": "", "3001": ":3001", ":8080": ":8080"}
	for in, want := range cases {
		if got := normalizeAddr(in); got != want {
			t.Errorf("normalizeAddr(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNew_DefaultsTimeouts(t *testing.T) {
	s := New(Timeouts{Write: 2 * time.Minute})
	hs := s.newHTTPServer(":0", http.NewServeMux())
	if hs.WriteTimeout != 2*time.Minute {
		t.Errorf("WriteTimeout = %v", hs.WriteTimeout)
	}
	if hs.ReadHeaderTimeout != defaultReadHeaderTimeout || hs.IdleTimeout != defaultIdleTimeout {
		t.Errorf("defaults not applied: %+v", hs)
	}
}

func TestShutdown_BeforeRun(t *testing.T) {
	if err := New(Timeouts{}).Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown() error = %v", err)
	}
}
