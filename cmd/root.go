package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/mark3labs/raindrop/internal/config"
	"github.com/mark3labs/raindrop/internal/locale"
	"github.com/mark3labs/raindrop/internal/translate"
	"github.com/mark3labs/raindrop/internal/ui"
)

var (
	configFile string
	endpoint   string
	localeFlag string
	debugMode  bool
	noHint     bool
)

// rootCmd starts the interactive rain translator.
var rootCmd = &cobra.Command{
	Use:   "raindrop",
	Short: "Turn ten characters of rain into a poem",
	Long: `raindrop is a small terminal widget for the rain translator service.

Type up to ten characters: the bar fills as you type and the text is sent as
soon as it reaches ten characters, or earlier when you press Enter. Each
submission and its poem is kept in a history of the last ten.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractive(cmd.Context())
	},
}

// GetRootCommand returns the root command with the version set.
func GetRootCommand(v string) *cobra.Command {
	rootCmd.Version = v
	return rootCmd
}

// InitConfig binds the persistent flags to viper and loads configuration
// before any command runs.
func InitConfig() error {
	flags := rootCmd.PersistentFlags()
	for _, name := range []string{"endpoint", "locale", "debug"} {
		if err := viper.BindPFlag(name, flags.Lookup(name)); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}
	if err := config.Init(configFile); err != nil {
		return err
	}
	if noHint {
		viper.Set("hint", false)
	}
	return nil
}

func init() {
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return InitConfig()
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file (default is ./.raindrop.yml or $HOME/.raindrop.yml)")
	flags.StringVar(&endpoint, "endpoint", translate.DefaultEndpoint, "translation endpoint URL")
	flags.StringVar(&localeFlag, "locale", "en", "language of messages (en, zh)")
	flags.BoolVar(&debugMode, "debug", false, "write debug logs to the log file")
	rootCmd.Flags().BoolVar(&noHint, "no-hint", false, "do not show the startup hint")

	rootCmd.AddCommand(sendCmd, healthCmd, configCmd)
}

// newClient builds the translation client from the resolved config.
func newClient(cfg config.Config) (*translate.Client, error) {
	return translate.NewClient(cfg.Endpoint)
}

// runInteractive starts the Bubble Tea widget and blocks until the user quits.
// In-flight translations are cancelled when it returns.
func runInteractive(ctx context.Context) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("raindrop needs an interactive terminal; use 'raindrop send' in scripts")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	client, err := newClient(cfg)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg, cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width == 0 {
		width, height = 80, 24
	}

	widget := ui.NewWidget(ui.Options{
		Translator: client,
		Catalog:    locale.New(cfg.Locale),
		Logger:     logger,
		Endpoint:   client.Endpoint(),
		Hint:       cfg.Hint,
		Context:    ctx,
		Width:      width,
		Height:     height,
	})

	logger.Info("starting", "endpoint", client.Endpoint(), "locale", cfg.Locale)
	if _, err := tea.NewProgram(widget).Run(); err != nil {
		return fmt.Errorf("run widget: %w", err)
	}
	return nil
}
