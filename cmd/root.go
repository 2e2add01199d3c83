package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/Hollywoodr19/programming-bot-2025/internal"
	"github.com/spf13/cobra"
)

var (
	verbose    bool
	configPath string
	dataDir    string
	endpoint   string
	version    string = "dev"
	commit     string = "unknown"
	date       string = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "workspace",
	Short: "Terminal programming workspace backed by a remote assistant",
	Long: `An interactive programming workspace in your terminal.

The workspace keeps one code buffer per language, autosaves your edits,
remembers your conversation with the assistant across runs, and can run
a deterministic simulated execution over the buffer.

Quick Start:
  workspace chat                 # Open the interactive workspace
  workspace run                  # Simulated run of the saved buffer
  workspace history              # Show the stored conversation
  workspace export --format md   # Export the transcript as Markdown`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		internal.SetVerbose(verbose)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file location (default ~/.programming-workspace/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", "", "Workspace data directory")
	rootCmd.PersistentFlags().StringVar(&endpoint, "endpoint", "", "Assistant service endpoint")

	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}

// loadConfig reads the config file and applies flag overrides.
func loadConfig() (*internal.Config, error) {
	cfg, err := internal.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	if dataDir != "" {
		cfg.DataDir = dataDir
	}
	if endpoint != "" {
		cfg.Endpoint = endpoint
	}
	return cfg, nil
}

// controllerOptions maps the config's autosave intervals onto the controller.
func controllerOptions(cfg *internal.Config) internal.ControllerOptions {
	return internal.ControllerOptions{
		DebounceInterval: time.Duration(cfg.AutosaveDebounce) * time.Second,
		PeriodicInterval: time.Duration(cfg.AutosavePeriodic) * time.Second,
	}
}

// openStore prepares the data directory and opens the workspace store.
func openStore(cfg *internal.Config) (*internal.Store, error) {
	if err := cfg.EnsureDataDir(); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	store, err := internal.OpenStore(cfg.DatabasePath())
	if err != nil {
		return nil, fmt.Errorf("failed to open workspace store: %w", err)
	}
	return store, nil
}
