//go:build integration

package integration

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/joho/godotenv"
	langbly "github.com/langbly/langbly-go"
)

var (
	apiKey  string
	baseURL string
)

func TestMain(m *testing.M) {
	// Load .env file if it exists (won't error if missing)
	if err := godotenv.Load("../.env"); err != nil {
		os.Stderr.WriteString("Note: .env file not found at project root\n")
	}

	apiKey = os.Getenv("LANGBLY_API_KEY")
	baseURL = os.Getenv("LANGBLY_URL")

	if apiKey == "" {
		os.Stderr.WriteString("Skipping integration tests: LANGBLY_API_KEY not set\n")
		os.Exit(0)
	}

	os.Exit(m.Run())
}

func newClient(t *testing.T) *langbly.Client {
	t.Helper()

	opts := []langbly.Option{
		langbly.WithTimeout(30 * time.Second),
	}
	if baseURL != "" {
		opts = append(opts, langbly.WithBaseURL(baseURL))
	}

	client, err := langbly.New(apiKey, opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	t.Cleanup(func() {
		client.Close()
	})

	return client
}

func TestTranslate(t *testing.T) {
	client := newClient(t)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	result, err := client.Translate(ctx, "Hello, world!", "nl")
	if err != nil {
		t.Fatalf("Translate() error = %v", err)
	}

	if result.Text == "" {
		t.Error("empty translation")
	}
	t.Logf("translated to: %s (source %s)", result.Text, result.Source)
}

func TestTranslateBatch(t *testing.T) {
	client := newClient(t)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	results, err := client.TranslateBatch(ctx, []string{"good morning", "good night"}, "de")
	if err != nil {
		t.Fatalf("TranslateBatch() error = %v", err)
	}

	if len(results) != 2 {
		t.Fatalf("len(results) = %d, want 2", len(results))
	}
	for i, result := range results {
		if result.Text == "" {
			t.Errorf("results[%d] is empty", i)
		}
	}
}

func TestDetect(t *testing.T) {
	client := newClient(t)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	detection, err := client.Detect(ctx, "Bonjour tout le monde")
	if err != nil {
		t.Fatalf("Detect() error = %v", err)
	}

	if detection.Language == "" {
		t.Error("empty detected language")
	}
	t.Logf("detected %s (confidence %.2f)", detection.Language, detection.Confidence)
}

func TestLanguages(t *testing.T) {
	client := newClient(t)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	languages, err := client.Languages(ctx, langbly.WithTarget("en"))
	if err != nil {
		t.Fatalf("Languages() error = %v", err)
	}

	if len(languages) == 0 {
		t.Fatal("no supported languages returned")
	}
	for _, lang := range languages {
		if lang.Code == "" {
			t.Error("language with empty code")
		}
	}
}
