// Package langbly provides a Go client SDK for the Langbly translation
// API — a drop-in replacement for Google Translate v2, powered by LLMs.
//
// The client exposes three operations: translating text, detecting the
// language of text, and listing supported languages. Transient failures
// (connection faults, timeouts, and the statuses 429, 500, 502, 503 and
// 504) are retried automatically with exponential backoff, honoring the
// server's Retry-After header when present.
//
// Basic usage:
//
//	client, err := langbly.New(os.Getenv("LANGBLY_API_KEY"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	result, err := client.Translate(ctx, "Hello, world!", "nl")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Text)
//
// Failures surface as typed errors; use errors.Is and errors.As to
// inspect them:
//
//	var rateErr *langbly.RateLimitError
//	if errors.As(err, &rateErr) {
//	    time.Sleep(rateErr.RetryAfter)
//	}
package langbly
