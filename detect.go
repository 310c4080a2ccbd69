package langbly

import (
	"context"
	"errors"
)

// Detection is a language detection result.
type Detection struct {
	// Language is the detected language code.
	Language string
	// Confidence is the service's confidence in the detection, between
	// 0 and 1. Zero when the service reports none.
	Confidence float64
}

// Detect detects the language of text.
func (c *Client) Detect(ctx context.Context, text string) (*Detection, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}
	if text == "" {
		return nil, errors.New("text is required")
	}

	groups, err := c.apiClient.Detect(ctx, text)
	if err != nil {
		return nil, wrapError(err)
	}
	if len(groups) == 0 || len(groups[0]) == 0 {
		return nil, errors.New("empty detections payload")
	}

	best := groups[0][0]
	return &Detection{
		Language:   best.Language,
		Confidence: best.Confidence,
	}, nil
}
