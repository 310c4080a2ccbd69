package api

import (
	"context"
	"net/http"
	"net/url"
)

// API routes. The path layout is Google Translate v2-compatible.
const (
	translatePath = "/language/translate/v2"
	detectPath    = "/language/translate/v2/detect"
	languagesPath = "/language/translate/v2/languages"
)

// Translate submits texts for translation into the target language.
// Results come back in input order. Source and format are optional and
// omitted from the request when empty.
func (c *Client) Translate(ctx context.Context, texts []string, target, source, format string) ([]TranslationResult, error) {
	req := &translateRequest{
		Q:      texts,
		Target: target,
		Source: source,
		Format: format,
	}

	var resp translateResponse
	if err := c.do(ctx, http.MethodPost, translatePath, nil, req, &resp); err != nil {
		return nil, err
	}
	return resp.Data.Translations, nil
}

// Detect identifies the language of the given text. The service returns
// one group of candidates per input; with a single input the best match
// is the first candidate of the first group.
func (c *Client) Detect(ctx context.Context, text string) ([][]DetectionResult, error) {
	var resp detectResponse
	if err := c.do(ctx, http.MethodPost, detectPath, nil, &detectRequest{Q: text}, &resp); err != nil {
		return nil, err
	}
	return resp.Data.Detections, nil
}

// Languages lists the supported languages. When target is non-empty,
// language names are localized into that language.
func (c *Client) Languages(ctx context.Context, target string) ([]LanguageResult, error) {
	var query url.Values
	if target != "" {
		query = url.Values{"target": {target}}
	}

	var resp languagesResponse
	if err := c.do(ctx, http.MethodGet, languagesPath, query, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data.Languages, nil
}
