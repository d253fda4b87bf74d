package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestBaselineClientSendsUserAgent(t *testing.T) {
	var gotAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.Header.Get("User-Agent")
		w.Write([]byte("ok"))
	}))
	defer server.Close()

	client := NewBaselineClient(5*time.Second, "opp-comb/1.0")
	if _, err := client.Get(context.Background(), server.URL); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if gotAgent != "opp-comb/1.0" {
		t.Errorf("Expected configured user agent, got %q", gotAgent)
	}
}

func TestEnhancedClientSendsBrowserHeaders(t *testing.T) {
	var gotAccept, gotAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAccept = r.Header.Get("Accept")
		gotAgent = r.Header.Get("User-Agent")
		w.Write([]byte("ok"))
	}))
	defer server.Close()

	client := NewEnhancedClient(5*time.Second, 0)
	if _, err := client.Get(context.Background(), server.URL); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if gotAccept == "" {
		t.Error("Expected Accept header on enhanced path")
	}
	if gotAgent == "" || gotAgent == "opp-comb/1.0" {
		t.Errorf("Expected browser user agent, got %q", gotAgent)
	}
}

func TestEnhancedClientRetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte("finally"))
	}))
	defer server.Close()

	client := NewEnhancedClient(10*time.Second, 3)
	body, err := client.Get(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Expected retries to recover, got error: %v", err)
	}
	if string(body) != "finally" {
		t.Errorf("Unexpected body %q", body)
	}
	if calls.Load() != 3 {
		t.Errorf("Expected 3 attempts, got %d", calls.Load())
	}
}

func TestEnhancedClientGivesUpAfterRetryBudget(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewEnhancedClient(10*time.Second, 2)
	if _, err := client.Get(context.Background(), server.URL); err == nil {
		t.Fatal("Expected error after exhausting retries")
	}
	if calls.Load() != 3 {
		t.Errorf("Expected 3 attempts (1 + 2 retries), got %d", calls.Load())
	}
}
