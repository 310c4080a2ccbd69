package langbly

import (
	"context"
)

// Language is a supported language.
type Language struct {
	// Code is the language code (e.g. "nl", "de", "fr").
	Code string
	// Name is the language's display name, localized into the language
	// given via WithTarget. Empty when the service does not provide one.
	Name string
}

// Languages lists the languages supported by the service, in the order
// the service returns them.
func (c *Client) Languages(ctx context.Context, opts ...LanguagesOption) ([]Language, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}

	cfg := &languagesConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	items, err := c.apiClient.Languages(ctx, cfg.target)
	if err != nil {
		return nil, wrapError(err)
	}

	languages := make([]Language, 0, len(items))
	for _, item := range items {
		languages = append(languages, Language{
			Code: item.Language,
			Name: item.Name,
		})
	}
	return languages, nil
}
