package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
)

func TestTranslate_RequestShape(t *testing.T) {
	var gotMethod, gotPath string
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		data, _ := io.ReadAll(r.Body)
		json.Unmarshal(data, &gotBody)
		fmt.Fprint(w, `{"data":{"translations":[
			{"translatedText":"hallo","detectedSourceLanguage":"en"},
			{"translatedText":"wereld","detectedSourceLanguage":"en","model":"llm-v1"}
		]}}`)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, 0)
	results, err := client.Translate(context.Background(), []string{"hello", "world"}, "nl", "en", "text")
	if err != nil {
		t.Fatalf("Translate() error = %v", err)
	}

	if gotMethod != http.MethodPost {
		t.Errorf("method = %s, want POST", gotMethod)
	}
	if gotPath != "/language/translate/v2" {
		t.Errorf("path = %s", gotPath)
	}

	wantBody := map[string]any{
		"q":      []any{"hello", "world"},
		"target": "nl",
		"source": "en",
		"format": "text",
	}
	if !reflect.DeepEqual(gotBody, wantBody) {
		t.Errorf("body = %v, want %v", gotBody, wantBody)
	}

	if len(results) != 2 {
		t.Fatalf("results = %d, want 2", len(results))
	}
	if results[0].TranslatedText != "hallo" || results[1].TranslatedText != "wereld" {
		t.Errorf("unexpected order: %v", results)
	}
	if results[1].Model != "llm-v1" {
		t.Errorf("Model = %q, want llm-v1", results[1].Model)
	}
}

func TestTranslate_OptionalFieldsOmitted(t *testing.T) {
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		json.Unmarshal(data, &gotBody)
		fmt.Fprint(w, `{"data":{"translations":[{"translatedText":"hallo"}]}}`)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, 0)
	if _, err := client.Translate(context.Background(), []string{"hello"}, "nl", "", ""); err != nil {
		t.Fatalf("Translate() error = %v", err)
	}

	if _, present := gotBody["source"]; present {
		t.Error("source should be omitted when empty")
	}
	if _, present := gotBody["format"]; present {
		t.Error("format should be omitted when empty")
	}
}

func TestDetect_RequestShape(t *testing.T) {
	var gotPath string
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		data, _ := io.ReadAll(r.Body)
		json.Unmarshal(data, &gotBody)
		fmt.Fprint(w, `{"data":{"detections":[[{"language":"en","confidence":0.97}]]}}`)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, 0)
	groups, err := client.Detect(context.Background(), "hello world")
	if err != nil {
		t.Fatalf("Detect() error = %v", err)
	}

	if gotPath != "/language/translate/v2/detect" {
		t.Errorf("path = %s", gotPath)
	}
	if gotBody["q"] != "hello world" {
		t.Errorf("q = %v", gotBody["q"])
	}
	if groups[0][0].Language != "en" || groups[0][0].Confidence != 0.97 {
		t.Errorf("detection = %+v", groups[0][0])
	}
}

func TestLanguages_TargetQueryParam(t *testing.T) {
	var gotPath, gotTarget string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotTarget = r.URL.Query().Get("target")
		fmt.Fprint(w, `{"data":{"languages":[{"language":"nl","name":"Nederlands"},{"language":"de","name":"Duits"}]}}`)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, 0)
	langs, err := client.Languages(context.Background(), "nl")
	if err != nil {
		t.Fatalf("Languages() error = %v", err)
	}

	if gotPath != "/language/translate/v2/languages" {
		t.Errorf("path = %s", gotPath)
	}
	if gotTarget != "nl" {
		t.Errorf("target = %q, want nl", gotTarget)
	}
	if len(langs) != 2 || langs[0].Language != "nl" || langs[1].Name != "Duits" {
		t.Errorf("languages = %v", langs)
	}
}

func TestLanguages_NoTarget(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		fmt.Fprint(w, `{"data":{"languages":[{"language":"nl"},{"language":"de"}]}}`)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, 0)
	langs, err := client.Languages(context.Background(), "")
	if err != nil {
		t.Fatalf("Languages() error = %v", err)
	}

	if gotQuery != "" {
		t.Errorf("query = %q, want empty", gotQuery)
	}
	for _, lang := range langs {
		if lang.Name != "" {
			t.Errorf("Name = %q, want empty when service omits it", lang.Name)
		}
	}
}
