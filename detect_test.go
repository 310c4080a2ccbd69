package langbly

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestDetect(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data":{"detections":[[{"language":"en","confidence":0.97}]]}}`)
	}))
	defer server.Close()

	client, err := New("test-key", WithBaseURL(server.URL))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer client.Close()

	detection, err := client.Detect(context.Background(), "hello world")
	if err != nil {
		t.Fatalf("Detect() error = %v", err)
	}

	if detection.Language != "en" {
		t.Errorf("Language = %q, want en", detection.Language)
	}
	if detection.Confidence != 0.97 {
		t.Errorf("Confidence = %v, want 0.97", detection.Confidence)
	}
}

func TestDetect_ConfidenceDefaultsToZero(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data":{"detections":[[{"language":"en"}]]}}`)
	}))
	defer server.Close()

	client, err := New("test-key", WithBaseURL(server.URL))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer client.Close()

	detection, err := client.Detect(context.Background(), "hello")
	if err != nil {
		t.Fatalf("Detect() error = %v", err)
	}
	if detection.Confidence != 0 {
		t.Errorf("Confidence = %v, want 0", detection.Confidence)
	}
}

func TestDetect_RequiresText(t *testing.T) {
	client, err := New("test-key")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer client.Close()

	if _, err := client.Detect(context.Background(), ""); err == nil {
		t.Error("expected error for empty text")
	}
}

func TestDetect_EmptyPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data":{"detections":[]}}`)
	}))
	defer server.Close()

	client, err := New("test-key", WithBaseURL(server.URL))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer client.Close()

	if _, err := client.Detect(context.Background(), "hello"); err == nil {
		t.Error("expected error for empty detections payload")
	}
}
