package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/Iron-Ham/flashdeck/internal/config"
	"github.com/Iron-Ham/flashdeck/internal/tui/styles"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or modify flashdeck configuration",
	Long: `View or modify flashdeck configuration.

Without arguments, displays the current configuration.
Use subcommands to modify settings or create a config file.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value in the user's config file.

Keys use dot notation, e.g.:
  flashdeck config set storage.decks_file ~/decks.json
  flashdeck config set tui.theme nord
  flashdeck config set logging.enabled true

Valid keys:
  storage.decks_file    - Path of the JSON decks file
  storage.watch         - Warn when the decks file changes on disk (true/false)
  tui.theme             - Color theme: default, monokai, dracula, nord
  tui.interactive       - Study screen: auto, always, never
  tui.clear_screen      - Clear the terminal between screens (true/false)
  tui.alt_screen        - Use the alternate screen while studying (true/false)
  logging.enabled       - Write a debug log (true/false)
  logging.level         - Log level: debug, info, warn, error
  logging.dir           - Directory for flashdeck.log
  logging.max_size_mb   - Rotate the log at this size in megabytes
  logging.max_backups   - Rotated logs to keep
  logging.max_age_days  - Remove rotated logs older than this
  logging.compress      - Gzip rotated logs (true/false)`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default config file",
	Long:  `Create a default config file at ~/.config/flashdeck/config.yaml with all available options.`,
	RunE:  runConfigInit,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file path",
	RunE:  runConfigPath,
}

var configThemesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List the built-in color themes",
	RunE:  runConfigThemes,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configThemesCmd)
}

// configKeyTypes lists the keys accepted by 'config set' and their value types.
var configKeyTypes = map[string]string{
	"storage.decks_file":   "string",
	"storage.watch":        "bool",
	"tui.theme":            "string",
	"tui.interactive":      "string",
	"tui.clear_screen":     "bool",
	"tui.alt_screen":       "bool",
	"logging.enabled":      "bool",
	"logging.level":        "string",
	"logging.dir":          "string",
	"logging.max_size_mb":  "int",
	"logging.max_backups":  "int",
	"logging.max_age_days": "int",
	"logging.compress":     "bool",
}

// configKeyOptions restricts string keys to a fixed set of values.
var configKeyOptions = map[string]func() []string{
	"tui.theme":       config.ValidThemes,
	"tui.interactive": config.ValidInteractiveModes,
	"logging.level":   config.ValidLogLevels,
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(out, "Warning: %v\nShowing defaults.\n\n", err)
		cfg = config.Default()
	}

	fmt.Fprintln(out, "Current configuration:")
	fmt.Fprintln(out)

	// Show where config is being read from
	if viper.ConfigFileUsed() != "" {
		fmt.Fprintf(out, "Config file: %s\n", viper.ConfigFileUsed())
	} else {
		fmt.Fprintln(out, "Config file: (none - using defaults)")
	}
	fmt.Fprintln(out)

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode configuration: %w", err)
	}
	fmt.Fprint(out, string(data))
	return nil
}

// parseConfigValue converts value to the type registered for key.
func parseConfigValue(key, value string) (any, error) {
	keyType, ok := configKeyTypes[key]
	if !ok {
		return nil, fmt.Errorf("unknown configuration key: %s\nRun 'flashdeck config set --help' to see valid keys", key)
	}

	switch keyType {
	case "bool":
		if value != "true" && value != "false" {
			return nil, fmt.Errorf("invalid value for %s: expected true or false", key)
		}
		return value == "true", nil
	case "int":
		intVal, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("invalid value for %s: expected integer", key)
		}
		if intVal < 0 {
			return nil, fmt.Errorf("invalid value for %s: must be non-negative", key)
		}
		return intVal, nil
	default:
		if options, ok := configKeyOptions[key]; ok {
			v := value
			if key == "logging.level" {
				v = strings.ToLower(v)
			}
			if !slices.Contains(options(), v) {
				return nil, fmt.Errorf("invalid value for %s: %s\nValid options: %s",
					key, value, strings.Join(options(), ", "))
			}
			return v, nil
		}
		if strings.TrimSpace(value) == "" {
			return nil, fmt.Errorf("invalid value for %s: cannot be empty", key)
		}
		return value, nil
	}
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key := args[0]
	typedValue, err := parseConfigValue(key, args[1])
	if err != nil {
		return err
	}

	// Ensure config directory exists
	configDir := config.ConfigDir()
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	viper.Set(key, typedValue)

	configFile := config.ConfigFile()
	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %v\n", key, typedValue)
	fmt.Fprintf(cmd.OutOrStdout(), "Config saved to %s\n", configFile)
	return nil
}

const defaultConfigContent = `# flashdeck configuration

# Where decks are stored
storage:
  # JSON file holding every deck; relative paths resolve against the
  # directory flashdeck is started from
  decks_file: flashcard_decks.json
  # Warn in the menu when another program edits the decks file
  watch: true

# Terminal UI settings
tui:
  # Color theme: default, monokai, dracula, nord
  theme: default
  # Study screen: auto (full-screen when on a terminal), always, never
  interactive: auto
  # Clear the terminal between menu screens
  clear_screen: true
  # Run the study screen in the alternate screen buffer
  alt_screen: true

# Debug logging (written to flashdeck.log, never to the terminal)
logging:
  enabled: false
  # Level: debug, info, warn, error
  level: info
  # Empty means the config directory
  dir: ""
  max_size_mb: 5
  max_backups: 3
  max_age_days: 28
  compress: false
`

func runConfigInit(cmd *cobra.Command, args []string) error {
	configDir := config.ConfigDir()
	configFile := config.ConfigFile()

	// Check if config file already exists
	if _, err := os.Stat(configFile); err == nil {
		return fmt.Errorf("config file already exists at %s\nUse 'flashdeck config set' to modify values", configFile)
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(configFile, []byte(defaultConfigContent), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created config file at %s\n", configFile)
	fmt.Fprintln(cmd.OutOrStdout(), "Edit this file to customize flashdeck's behavior.")
	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	configFile := config.ConfigFile()

	if viper.ConfigFileUsed() != "" {
		fmt.Fprintf(out, "Active config: %s\n", viper.ConfigFileUsed())
	} else {
		fmt.Fprintf(out, "Default path: %s (not created)\n", configFile)
	}

	// Also show config search paths
	fmt.Fprintln(out, "\nSearch paths:")
	fmt.Fprintf(out, "  1. %s\n", filepath.Join(config.ConfigDir(), "config.yaml"))
	fmt.Fprintln(out, "  2. ./config.yaml (current directory)")
	fmt.Fprintln(out, "\nEnvironment variables: FLASHDECK_* (e.g., FLASHDECK_STORAGE_DECKS_FILE)")
	return nil
}

func runConfigThemes(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	current := viper.GetString("tui.theme")

	fmt.Fprintln(out, "Built-in themes:")
	for _, name := range styles.BuiltinThemes() {
		p := styles.GetPalette(styles.ThemeName(name))
		marker := " "
		if name == current {
			marker = "*"
		}
		fmt.Fprintf(out, "%s %-8s  primary %s  easy %s  medium %s  hard %s\n",
			marker, name, p.Primary, p.Easy, p.Medium, p.Hard)
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Select one with: flashdeck config set tui.theme <name>")
	return nil
}
