package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/shaiso/Vigia/internal/domain"
)

// --- Webhook Tests ---

func TestWebhook_Notify_NonProductionSkipsDelivery(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer srv.Close()

	n := NewWebhook(srv.URL, nil, nil)

	for _, mode := range []domain.Mode{domain.ModeDevelop, domain.ModeTest} {
		if err := n.Notify(context.Background(), "bot", mode, "boom"); err != nil {
			t.Errorf("mode %v: unexpected error: %v", mode, err)
		}
	}
	if hits.Load() != 0 {
		t.Errorf("expected no HTTP calls outside production, got %d", hits.Load())
	}
}

func TestWebhook_Notify_ProductionPayload(t *testing.T) {
	var body []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var buf [4096]byte
		n, _ := r.Body.Read(buf[:])
		body = buf[:n]
	}))
	defer srv.Close()

	n := NewWebhook(srv.URL, nil, nil)
	if err := n.Notify(context.Background(), "saving-bot", domain.ModeProduction, "boom after 3 attempts"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var m map[string]any
	if err := json.Unmarshal(body, &m); err != nil {
		t.Fatalf("payload should be JSON: %v", err)
	}
	if m["bot"] != "saving-bot" {
		t.Errorf("bot = %v", m["bot"])
	}
	if m["error_message"] != "boom after 3 attempts" {
		t.Errorf("error_message = %v", m["error_message"])
	}
	device, ok := m["device_info"].(map[string]any)
	if !ok {
		t.Fatal("device_info should be an object")
	}
	for _, key := range []string{"user", "hostname", "ip_address"} {
		if _, ok := device[key]; !ok {
			t.Errorf("device_info missing %q", key)
		}
	}
}

func TestWebhook_Notify_DefaultMessage(t *testing.T) {
	var body []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var buf [4096]byte
		n, _ := r.Body.Read(buf[:])
		body = buf[:n]
	}))
	defer srv.Close()

	n := NewWebhook(srv.URL, nil, nil)
	if err := n.Notify(context.Background(), "bot", domain.ModeProduction, ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(body), defaultMessage) {
		t.Errorf("empty message should fall back to the default, body: %s", body)
	}
}

func TestWebhook_Notify_RejectedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	n := NewWebhook(srv.URL, nil, nil)
	err := n.Notify(context.Background(), "bot", domain.ModeProduction, "boom")
	if err == nil {
		t.Fatal("expected error for non-2xx response")
	}
	if !strings.Contains(err.Error(), "502") {
		t.Errorf("error should mention the status code, got %v", err)
	}
}
