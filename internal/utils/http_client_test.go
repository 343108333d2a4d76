package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNewHTTPClient_Configured(t *testing.T) {
	client := NewHTTPClient("http://localhost:8088", 5*time.Second)

	if client == nil || client.Client == nil {
		t.Fatal("expected non-nil client")
	}
	if client.BaseURL != "http://localhost:8088" {
		t.Errorf("expected base URL to be set, got %q", client.BaseURL)
	}
	if client.GetClient().Timeout != 5*time.Second {
		t.Errorf("expected timeout 5s, got %s", client.GetClient().Timeout)
	}
}

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient("http://a", time.Second)
	client2 := NewHTTPClient("http://b", time.Second)

	if client1.Client == client2.Client {
		t.Fatal("expected independent resty clients")
	}
}

func TestHTTPClient_DoesNotRetryHTTPErrors(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	resp, err := NewHTTPClient(srv.URL, time.Second).R().Get("/")

	if err != nil {
		t.Fatalf("expected no transport error, got: %v", err)
	}
	if resp.StatusCode() != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", resp.StatusCode())
	}
	if calls != 1 {
		t.Errorf("expected exactly one call, got %d", calls)
	}
}

func TestNewTimeOrderedID(t *testing.T) {
	first := NewTimeOrderedID()
	time.Sleep(2 * time.Millisecond)
	second := NewTimeOrderedID()

	if len(first) != 36 {
		t.Errorf("expected canonical UUID form, got %q", first)
	}
	if first >= second {
		t.Errorf("expected %q < %q", first, second)
	}
}
