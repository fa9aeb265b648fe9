package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Iron-Ham/flashdeck/internal/config"
	"github.com/Iron-Ham/flashdeck/internal/logging"
	"github.com/Iron-Ham/flashdeck/internal/menu"
	"github.com/Iron-Ham/flashdeck/internal/store"
	"github.com/Iron-Ham/flashdeck/internal/study"
	"github.com/Iron-Ham/flashdeck/internal/tui"
	"github.com/Iron-Ham/flashdeck/internal/tui/styles"
)

var rootCmd = &cobra.Command{
	Use:   "flashdeck",
	Short: "Terminal flashcard study tool",
	Long: `Flashdeck manages decks of question/answer flashcards and runs timed
study sessions in the terminal. Decks are stored in a single JSON file that
is saved after every change.`,
	SilenceUsage: true,
	RunE:         runFlashdeck,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/flashdeck/config.yaml)")
	rootCmd.PersistentFlags().StringP("decks", "d", "", "decks file (default is ./flashcard_decks.json)")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("storage.decks_file", rootCmd.PersistentFlags().Lookup("decks"))

	rootCmd.Flags().Bool("plain", false, "use line prompts for study sessions instead of the full-screen view")
}

func initConfig() {
	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("FLASHDECK")
	// Replace dots with underscores for nested keys in env vars
	// e.g., FLASHDECK_STORAGE_DECKS_FILE for storage.decks_file
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}

func runFlashdeck(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	styles.SetActiveTheme(styles.ThemeName(cfg.TUI.Theme))

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Close() }()

	ctx := cmd.Context()
	st, err := openStore(cfg, logger)
	if err != nil {
		return err
	}
	reg, err := st.Load(ctx)
	if err != nil {
		return err
	}
	logger.Info("flashdeck started", "decks_file", st.Path(), "decks", reg.Len())

	plain, _ := cmd.Flags().GetBool("plain")
	opts := menu.Options{
		ClearScreen: cfg.TUI.ClearScreen,
		Watch:       cfg.Storage.Watch,
		Logger:      logger,
	}
	if !plain && menu.ResolveInteractive(cfg.TUI.Interactive, cmd.InOrStdin(), cmd.OutOrStdout()) {
		opts.Runner = func(ctx context.Context, s *study.Session) (study.Summary, error) {
			return tui.Run(ctx, s, tui.Options{AltScreen: cfg.TUI.AltScreen, Logger: logger})
		}
	}

	return menu.New(cmd.InOrStdin(), cmd.OutOrStdout(), st, reg, opts).Run(ctx)
}

// newLogger returns a rotating file logger when logging is enabled and a
// discarding logger otherwise.
func newLogger(cfg *config.Config) (*logging.Logger, error) {
	if !cfg.Logging.Enabled {
		return logging.NopLogger(), nil
	}
	return logging.NewLogger(cfg.Logging.ResolveDir(), logging.ParseLevel(cfg.Logging.Level), logging.RotationConfig{
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
		MaxAgeDays: cfg.Logging.MaxAgeDays,
		Compress:   cfg.Logging.Compress,
	})
}

// openStore resolves the decks file against the working directory.
func openStore(cfg *config.Config, logger *logging.Logger) (*store.Store, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}
	return store.New(cfg.Storage.ResolveDecksFile(cwd), store.WithLogger(logger)), nil
}
