package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/weekly/internal/config"
	"github.com/javiermolinar/weekly/internal/tui/theme"
)

// configPath is replaced in tests.
var configPath = config.DefaultConfigPath

func (a *App) configCmd() *cobra.Command {
	var show bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "View or edit configuration",
		Long: `Interactive configuration management.

If no config file exists, creates one with default values.
Otherwise, displays current config and allows editing.

Example:
  weekly config
  weekly config --show`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigInteractive(cmd.InOrStdin(), cmd.OutOrStdout(), configPath(), show)
		},
	}

	cmd.Flags().BoolVar(&show, "show", false, "Print the configuration without prompting")
	return cmd
}

func runConfigInteractive(in io.Reader, out io.Writer, path string, showOnly bool) error {
	fmt.Fprintf(out, "Config file: %s\n\n", path)

	// Load existing config or create defaults
	cfg, err := config.LoadFrom(path)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if _, statErr := os.Stat(path); errors.Is(statErr, fs.ErrNotExist) {
		fmt.Fprintln(out, "No config file found. Creating with default values...")
		if err := cfg.SaveTo(path); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Fprintf(out, "Created %s\n\n", path)
	}

	printConfig(out, cfg)
	if showOnly {
		return nil
	}

	reader := bufio.NewReader(in)
	if !promptYesNo(reader, out, "\nWould you like to edit the configuration?") {
		return nil
	}

	cfg.Storage.DBPath = promptValue(reader, out, "Database path", cfg.Storage.DBPath)
	cfg.UI.Theme = promptTheme(reader, out, cfg.UI.Theme)
	cfg.UI.ShowSeparators = promptBool(reader, out, "Show day separators", cfg.UI.ShowSeparators)
	cfg.UI.ShowCompleted = promptBool(reader, out, "Show completed todos", cfg.UI.ShowCompleted)
	cfg.UI.ListWidth = promptInt(reader, out, "List width (0 = terminal width)", cfg.UI.ListWidth)
	cfg.Log.Level = promptValue(reader, out, "Debug log level", cfg.Log.Level)
	cfg.Log.Path = promptValue(reader, out, "Debug log path", cfg.Log.Path)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if err := cfg.SaveTo(path); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Fprintln(out, "\nConfiguration saved!")
	return nil
}

func printConfig(out io.Writer, cfg *config.Config) {
	fmt.Fprintln(out, "Current configuration:")
	fmt.Fprintln(out, "──────────────────────")
	fmt.Fprintln(out, "[storage]")
	fmt.Fprintf(out, "  db_path          = %s\n", cfg.Storage.DBPath)
	fmt.Fprintln(out, "\n[ui]")
	fmt.Fprintf(out, "  theme            = %s\n", cfg.UI.Theme)
	fmt.Fprintf(out, "  show_separators  = %t\n", cfg.UI.ShowSeparators)
	fmt.Fprintf(out, "  show_completed   = %t\n", cfg.UI.ShowCompleted)
	fmt.Fprintf(out, "  list_width       = %d\n", cfg.UI.ListWidth)
	fmt.Fprintln(out, "\n[log]")
	fmt.Fprintf(out, "  debug            = %t\n", cfg.Log.Debug)
	fmt.Fprintf(out, "  level            = %s\n", cfg.Log.Level)
	fmt.Fprintf(out, "  path             = %s\n", cfg.Log.Path)
}

func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func promptYesNo(reader *bufio.Reader, out io.Writer, question string) bool {
	fmt.Fprintf(out, "%s [y/N]: ", question)
	input := strings.ToLower(readLine(reader))
	return input == "y" || input == "yes"
}

func promptValue(reader *bufio.Reader, out io.Writer, label, current string) string {
	if current == "" {
		fmt.Fprintf(out, "  %s: ", label)
	} else {
		fmt.Fprintf(out, "  %s [%s]: ", label, current)
	}
	if input := readLine(reader); input != "" {
		return input
	}
	return current
}

func promptBool(reader *bufio.Reader, out io.Writer, label string, current bool) bool {
	for {
		value := promptValue(reader, out, label, strconv.FormatBool(current))
		b, err := strconv.ParseBool(value)
		if err == nil {
			return b
		}
		fmt.Fprintf(out, "  Invalid value %q, expected true or false\n", value)
	}
}

func promptInt(reader *bufio.Reader, out io.Writer, label string, current int) int {
	for {
		value := promptValue(reader, out, label, strconv.Itoa(current))
		n, err := strconv.Atoi(value)
		if err == nil {
			return n
		}
		fmt.Fprintf(out, "  Invalid number %q\n", value)
	}
}

func promptTheme(reader *bufio.Reader, out io.Writer, current string) string {
	options := strings.Join(theme.Available(), ", ")
	label := fmt.Sprintf("UI theme (%s)", options)
	for {
		value := strings.ToLower(promptValue(reader, out, label, current))
		if theme.IsAvailable(value) {
			return value
		}
		if value == current {
			// Nothing typed over an unknown theme.
			current = "mocha"
		}
		fmt.Fprintf(out, "  Invalid theme %q. Available: %s\n", value, options)
	}
}
