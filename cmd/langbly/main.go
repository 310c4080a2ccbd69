// Command langbly is a command-line interface for the Langbly
// translation API. Configuration comes from the environment (optionally
// via a .env file): LANGBLY_API_KEY is required, LANGBLY_URL,
// LANGBLY_TIMEOUT and LANGBLY_MAX_RETRIES are optional.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	langbly "github.com/langbly/langbly-go"
)

type config struct {
	APIKey     string        `envconfig:"LANGBLY_API_KEY"`
	BaseURL    string        `envconfig:"LANGBLY_URL"`
	Timeout    time.Duration `envconfig:"LANGBLY_TIMEOUT" default:"30s"`
	MaxRetries int           `envconfig:"LANGBLY_MAX_RETRIES" default:"2"`
}

var (
	flagSource  string
	flagFormat  string
	flagTarget  string
	flagVerbose bool
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "langbly",
		Short:         "Translate text with the Langbly API",
		Version:       langbly.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "log requests and retries")

	cmd.AddCommand(translateCmd(), detectCmd(), languagesCmd())
	return cmd
}

func translateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "translate --target <code> <text> [text...]",
		Short: "Translate one or more texts",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			defer client.Close()

			opts := []langbly.TranslateOption{}
			if flagSource != "" {
				opts = append(opts, langbly.WithSource(flagSource))
			}
			if flagFormat != "" {
				opts = append(opts, langbly.WithFormat(langbly.Format(flagFormat)))
			}

			ctx, cancel := commandContext(cmd)
			defer cancel()

			results, err := client.TranslateBatch(ctx, args, flagTarget, opts...)
			if err != nil {
				return err
			}
			for _, result := range results {
				fmt.Println(result.Text)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&flagTarget, "target", "t", "", "target language code (required)")
	cmd.Flags().StringVarP(&flagSource, "source", "s", "", "source language code (auto-detected when omitted)")
	cmd.Flags().StringVarP(&flagFormat, "format", "f", "", `input format: "text" or "html"`)
	cmd.MarkFlagRequired("target")
	return cmd
}

func detectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "detect <text>",
		Short: "Detect the language of a text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			defer client.Close()

			ctx, cancel := commandContext(cmd)
			defer cancel()

			detection, err := client.Detect(ctx, strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Printf("%s\t%.2f\n", detection.Language, detection.Confidence)
			return nil
		},
	}
}

func languagesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "languages",
		Short: "List supported languages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			defer client.Close()

			opts := []langbly.LanguagesOption{}
			if flagTarget != "" {
				opts = append(opts, langbly.WithTarget(flagTarget))
			}

			ctx, cancel := commandContext(cmd)
			defer cancel()

			languages, err := client.Languages(ctx, opts...)
			if err != nil {
				return err
			}
			for _, lang := range languages {
				if lang.Name != "" {
					fmt.Printf("%s\t%s\n", lang.Code, lang.Name)
				} else {
					fmt.Println(lang.Code)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&flagTarget, "target", "t", "", "localize language names into this language")
	return cmd
}

func newClient() (*langbly.Client, error) {
	// A .env file is a convenience for local use; its absence is fine.
	godotenv.Load()

	var cfg config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("LANGBLY_API_KEY is required")
	}

	opts := []langbly.Option{
		langbly.WithTimeout(cfg.Timeout),
		langbly.WithMaxRetries(cfg.MaxRetries),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, langbly.WithBaseURL(cfg.BaseURL))
	}
	if flagVerbose {
		logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(zerolog.DebugLevel).
			With().Timestamp().Logger()
		opts = append(opts, langbly.WithLogger(logger))
	}

	return langbly.New(cfg.APIKey, opts...)
}

func commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), 2*time.Minute)
}
