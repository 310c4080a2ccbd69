package langbly

import (
	"context"
	"errors"
)

// Translation is a single translation result.
type Translation struct {
	// Text is the translated text.
	Text string
	// Source is the source language code: the one detected by the
	// service, or the requested one when the service reports none.
	Source string
	// Model identifies the model that produced the translation, when
	// the service reports it.
	Model string
}

// Translate translates text into the target language. The source
// language is auto-detected unless WithSource is given.
func (c *Client) Translate(ctx context.Context, text, target string, opts ...TranslateOption) (*Translation, error) {
	results, err := c.TranslateBatch(ctx, []string{text}, target, opts...)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, errors.New("empty translations payload")
	}
	return &results[0], nil
}

// TranslateBatch translates several texts in a single call. Results are
// returned in input order.
func (c *Client) TranslateBatch(ctx context.Context, texts []string, target string, opts ...TranslateOption) ([]Translation, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}
	if len(texts) == 0 {
		return nil, errors.New("at least one text is required")
	}
	if target == "" {
		return nil, errors.New("target language is required")
	}

	cfg := &translateConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	items, err := c.apiClient.Translate(ctx, texts, target, cfg.source, string(cfg.format))
	if err != nil {
		return nil, wrapError(err)
	}

	translations := make([]Translation, 0, len(items))
	for _, item := range items {
		source := item.DetectedSourceLanguage
		if source == "" {
			source = cfg.source
		}
		translations = append(translations, Translation{
			Text:   item.TranslatedText,
			Source: source,
			Model:  item.Model,
		})
	}
	return translations, nil
}
