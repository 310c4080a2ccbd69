package api

// Wire types for the Langbly API. The format is compatible with Google
// Translate v2: successful payloads arrive wrapped in a "data" envelope,
// error payloads in an "error" envelope.

type translateRequest struct {
	Q      []string `json:"q"`
	Target string   `json:"target"`
	Source string   `json:"source,omitempty"`
	Format string   `json:"format,omitempty"`
}

// TranslationResult is a single entry of the translations payload.
type TranslationResult struct {
	TranslatedText         string `json:"translatedText"`
	DetectedSourceLanguage string `json:"detectedSourceLanguage,omitempty"`
	Model                  string `json:"model,omitempty"`
}

type translateResponse struct {
	Data struct {
		Translations []TranslationResult `json:"translations"`
	} `json:"data"`
}

type detectRequest struct {
	Q string `json:"q"`
}

// DetectionResult is a single candidate of a detection group.
type DetectionResult struct {
	Language   string  `json:"language"`
	Confidence float64 `json:"confidence"`
}

type detectResponse struct {
	Data struct {
		Detections [][]DetectionResult `json:"detections"`
	} `json:"data"`
}

// LanguageResult is a single entry of the languages payload. Name is
// only populated when a display language was requested.
type LanguageResult struct {
	Language string `json:"language"`
	Name     string `json:"name,omitempty"`
}

type languagesResponse struct {
	Data struct {
		Languages []LanguageResult `json:"languages"`
	} `json:"data"`
}

// errorEnvelope is the error payload: {"error":{"message":…,"status":…}}.
type errorEnvelope struct {
	Error struct {
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}
