package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Iron-Ham/flashdeck/internal/config"
	"github.com/Iron-Ham/flashdeck/internal/logging"
	"github.com/Iron-Ham/flashdeck/internal/menu"
	"github.com/Iron-Ham/flashdeck/internal/tui/styles"
)

var decksCmd = &cobra.Command{
	Use:   "decks",
	Short: "List decks and their card counts",
	Long: `List every deck in the decks file with its card counts by difficulty.

The file is only read. When it does not exist the built-in sample deck is shown.`,
	Args: cobra.NoArgs,
	RunE: runDecks,
}

func init() {
	rootCmd.AddCommand(decksCmd)
}

func runDecks(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	styles.SetActiveTheme(styles.ThemeName(cfg.TUI.Theme))

	st, err := openStore(cfg, logging.NopLogger())
	if err != nil {
		return err
	}
	reg, err := st.Load(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Decks file: %s\n\n", st.Path())
	menu.RenderDeckList(cmd.OutOrStdout(), reg.Decks(), styles.GetActiveTheme())
	return nil
}
