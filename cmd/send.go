package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mark3labs/raindrop/internal/config"
	"github.com/mark3labs/raindrop/internal/locale"
	"github.com/mark3labs/raindrop/internal/translate"
	"github.com/mark3labs/raindrop/internal/ui"
)

// Output formats of the send command.
const (
	formatAuto  = "auto"
	formatANSI  = "ansi"
	formatPlain = "plain"
	formatHTML  = "html"
)

var sendFormat string

var sendCmd = &cobra.Command{
	Use:   "send <text>",
	Short: "Translate text once and print the poem",
	Long: `Send text to the translation endpoint without the interactive widget.

The poem is rendered for the terminal when stdout is one and printed as plain
text otherwise. Use --format to choose explicitly:

  ansi   styled terminal output
  plain  text only, one line per paragraph
  html   the server's HTML as is`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		client, err := newClient(cfg)
		if err != nil {
			return err
		}
		logger, closeLog, err := newLogger(cfg, "")
		if err != nil {
			return err
		}
		defer closeLog()

		text := strings.Join(args, " ")
		logger.Debug("sending", "endpoint", client.Endpoint(), "text", text)

		format := sendFormat
		width := 80
		if fd := int(os.Stdout.Fd()); term.IsTerminal(fd) {
			if w, _, err := term.GetSize(fd); err == nil && w > 0 {
				width = w
			}
			if format == formatAuto {
				format = formatANSI
			}
		} else if format == formatAuto {
			format = formatPlain
		}

		var status io.Writer
		if term.IsTerminal(int(os.Stderr.Fd())) {
			status = cmd.ErrOrStderr()
		}
		return runSend(cmd.Context(), cmd.OutOrStdout(), status, client, locale.New(cfg.Locale), text, format, width)
	},
}

func init() {
	sendCmd.Flags().StringVarP(&sendFormat, "format", "f", formatAuto, "output format: auto, ansi, plain or html")
}

// runSend translates text and writes the result to w in the given format.
// While waiting, a spinner is drawn on status unless it is nil.
func runSend(ctx context.Context, w, status io.Writer, tr translate.Translator, catalog *locale.Catalog, text, format string, width int) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("nothing to send")
	}

	var render func(string) string
	switch format {
	case formatANSI:
		render = func(html string) string { return ui.RenderOutput(html, width) }
	case formatPlain:
		render = ui.PlainText
	case formatHTML:
		render = func(html string) string { return html }
	default:
		return fmt.Errorf("unknown format %q", format)
	}

	var spin *ui.Spinner
	if status != nil {
		spin = ui.NewSpinner(status, catalog.T(locale.Translating))
		spin.Start()
	}
	out, err := tr.Translate(ctx, text)
	if spin != nil {
		spin.Stop()
	}
	if err != nil {
		if apiErr, ok := translate.IsAPIError(err); ok {
			return fmt.Errorf("server rejected %q: %s", text, apiErr.Message)
		}
		return fmt.Errorf("%s: %w", catalog.T(locale.NetworkError), err)
	}

	_, err = fmt.Fprintln(w, render(out))
	return err
}
