package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

// executeCommand runs a cobra command with args and returns captured output
func executeCommand(root *cobra.Command, stdin string, args ...string) (output string, err error) {
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err = root.Execute()
	return buf.String(), err
}

// isolateConfig points the config directory at a temp dir so the user's own
// config file is never read or written.
func isolateConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	return dir
}

func TestRootCommand(t *testing.T) {
	if rootCmd.Use != "flashdeck" {
		t.Errorf("rootCmd.Use = %q, want %q", rootCmd.Use, "flashdeck")
	}

	expectedCmds := []string{"config", "decks"}
	cmdMap := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		cmdMap[cmd.Name()] = true
	}
	for _, expected := range expectedCmds {
		if !cmdMap[expected] {
			t.Errorf("expected subcommand %q not found", expected)
		}
	}

	for _, flag := range []string{"config", "decks"} {
		if rootCmd.PersistentFlags().Lookup(flag) == nil {
			t.Errorf("expected persistent flag --%s", flag)
		}
	}
	if rootCmd.Flags().Lookup("plain") == nil {
		t.Error("expected --plain flag")
	}
}

func TestRootRunsMenu(t *testing.T) {
	isolateConfig(t)
	decksFile := filepath.Join(t.TempDir(), "decks.json")

	output, err := executeCommand(rootCmd, "2\nGerman\n\n7\n", "--plain", "--decks", decksFile)
	if err != nil {
		t.Fatalf("root command failed: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Deck 'German' created successfully!") {
		t.Errorf("output missing create confirmation:\n%s", output)
	}
	if !strings.Contains(output, "Your decks have been saved! Happy studying!") {
		t.Errorf("output missing goodbye:\n%s", output)
	}

	data, err := os.ReadFile(decksFile)
	if err != nil {
		t.Fatalf("decks file not written: %v", err)
	}
	if !strings.Contains(string(data), `"name": "German"`) {
		t.Errorf("decks file missing new deck:\n%s", data)
	}
}

func TestRootCorruptDecksFile(t *testing.T) {
	isolateConfig(t)
	decksFile := filepath.Join(t.TempDir(), "decks.json")
	if err := os.WriteFile(decksFile, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := executeCommand(rootCmd, "7\n", "--plain", "--decks", decksFile); err == nil {
		t.Fatal("expected error for corrupt decks file")
	}

	data, _ := os.ReadFile(decksFile)
	if string(data) != "{not json" {
		t.Error("corrupt decks file must not be overwritten")
	}
}

func TestDecksCommand(t *testing.T) {
	isolateConfig(t)
	decksFile := filepath.Join(t.TempDir(), "decks.json")
	content := `[{"name":"Capitals","cards":[{"question":"Capital of Peru?","answer":"Lima","difficulty":"easy"}]}]`
	if err := os.WriteFile(decksFile, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	output, err := executeCommand(rootCmd, "", "decks", "--decks", decksFile)
	if err != nil {
		t.Fatalf("decks command failed: %v", err)
	}
	for _, want := range []string{"Capitals", "Total Cards: 1", "Easy: 1 | Medium: 0 | Hard: 0", decksFile} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}
}

func TestDecksCommand_MissingFileShowsSample(t *testing.T) {
	isolateConfig(t)
	decksFile := filepath.Join(t.TempDir(), "decks.json")

	output, err := executeCommand(rootCmd, "", "decks", "--decks", decksFile)
	if err != nil {
		t.Fatalf("decks command failed: %v", err)
	}
	if !strings.Contains(output, "Sample Deck") {
		t.Errorf("output missing sample deck:\n%s", output)
	}
	if _, err := os.Stat(decksFile); !os.IsNotExist(err) {
		t.Error("decks command must not create the decks file")
	}
}

func TestParseConfigValue(t *testing.T) {
	tests := []struct {
		key     string
		value   string
		want    any
		wantErr bool
	}{
		{"storage.watch", "false", false, false},
		{"storage.watch", "yes", nil, true},
		{"tui.theme", "dracula", "dracula", false},
		{"tui.theme", "neon", nil, true},
		{"tui.interactive", "never", "never", false},
		{"logging.level", "DEBUG", "debug", false},
		{"logging.max_size_mb", "10", 10, false},
		{"logging.max_size_mb", "ten", nil, true},
		{"logging.max_backups", "-1", nil, true},
		{"storage.decks_file", "~/decks.json", "~/decks.json", false},
		{"storage.decks_file", " ", nil, true},
		{"study.max_cards", "5", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			got, err := parseConfigValue(tt.key, tt.value)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseConfigValue(%q, %q) expected error", tt.key, tt.value)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseConfigValue(%q, %q) error = %v", tt.key, tt.value, err)
			}
			if got != tt.want {
				t.Errorf("parseConfigValue(%q, %q) = %v, want %v", tt.key, tt.value, got, tt.want)
			}
		})
	}
}

func TestConfigSetAndInit(t *testing.T) {
	dir := isolateConfig(t)
	configFile := filepath.Join(dir, "flashdeck", "config.yaml")

	output, err := executeCommand(rootCmd, "", "config", "init")
	if err != nil {
		t.Fatalf("config init failed: %v", err)
	}
	if !strings.Contains(output, configFile) {
		t.Errorf("config init output missing path:\n%s", output)
	}
	if _, err := executeCommand(rootCmd, "", "config", "init"); err == nil {
		t.Error("second config init should fail")
	}

	if _, err := executeCommand(rootCmd, "", "config", "set", "logging.max_backups", "7"); err != nil {
		t.Fatalf("config set failed: %v", err)
	}
	data, err := os.ReadFile(configFile)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "max_backups: 7") {
		t.Errorf("config file missing new value:\n%s", data)
	}

	if _, err := executeCommand(rootCmd, "", "config", "set", "tui.theme", "neon"); err == nil {
		t.Error("config set should reject unknown theme")
	}
}

func TestConfigShowAndThemes(t *testing.T) {
	isolateConfig(t)

	output, err := executeCommand(rootCmd, "", "config", "show")
	if err != nil {
		t.Fatalf("config show failed: %v", err)
	}
	for _, want := range []string{"storage:", "decks_file:", "tui:", "theme:", "logging:"} {
		if !strings.Contains(output, want) {
			t.Errorf("config show missing %q:\n%s", want, output)
		}
	}

	output, err = executeCommand(rootCmd, "", "config", "themes")
	if err != nil {
		t.Fatalf("config themes failed: %v", err)
	}
	for _, want := range []string{"default", "monokai", "dracula", "nord"} {
		if !strings.Contains(output, want) {
			t.Errorf("config themes missing %q:\n%s", want, output)
		}
	}
}

func TestLogsCommand(t *testing.T) {
	dir := isolateConfig(t)
	logDir := filepath.Join(dir, "flashdeck")
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		t.Fatal(err)
	}
	lines := strings.Join([]string{
		`{"time":"2026-01-02T10:00:00Z","level":"INFO","msg":"deck created","component":"menu","deck":"Spanish"}`,
		`{"time":"2026-01-02T10:01:00Z","level":"ERROR","msg":"save failed","component":"store"}`,
	}, "\n")
	if err := os.WriteFile(filepath.Join(logDir, "flashdeck.log"), []byte(lines), 0o644); err != nil {
		t.Fatal(err)
	}

	output, err := executeCommand(rootCmd, "", "logs", "--level", "error")
	if err != nil {
		t.Fatalf("logs command failed: %v", err)
	}
	if !strings.Contains(output, "save failed") || strings.Contains(output, "deck created") {
		t.Errorf("unexpected logs output:\n%s", output)
	}

	output, err = executeCommand(rootCmd, "", "logs", "--level", "", "--deck", "Spanish")
	if err != nil {
		t.Fatalf("logs command failed: %v", err)
	}
	if !strings.Contains(output, "deck created (component=menu, deck=Spanish)") {
		t.Errorf("unexpected logs output:\n%s", output)
	}
}
