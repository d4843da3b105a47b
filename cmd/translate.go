package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/afaq-ahmed07/ai-dubbing-system/internal/config"
	"github.com/afaq-ahmed07/ai-dubbing-system/internal/translate"
)

var translateCmd = &cobra.Command{
	Use:   "translate <transcript-file>",
	Short: "Translate a transcript into a target language",
	Long: `Translate a transcript file (or stdin when the argument is '-') into the
target language and print the result to stdout.`,
	Args: cobra.ExactArgs(1),
	RunE: runTranslate,
}

var targetLanguage string

func init() {
	translateCmd.Flags().StringVarP(&targetLanguage, "target", "t", "", "target language code or name (default from config)")

	rootCmd.AddCommand(translateCmd)
}

func runTranslate(cmd *cobra.Command, args []string) error {
	var text string
	if args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		text = string(data)
	} else {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read transcript: %w", err)
		}
		text = string(data)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return fmt.Errorf("transcript is empty")
	}

	target := targetLanguage
	if target == "" {
		target = cfg.DefaultTargetLanguage
	}
	code := config.NormalizeLanguage(target)
	if code == "" {
		return fmt.Errorf("unsupported target language: %s", target)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	translated, err := translate.New(cfg).Translate(ctx, text, code)
	if err != nil {
		return err
	}

	fmt.Fprintln(os.Stdout, translated)
	return nil
}
