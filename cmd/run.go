package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Hollywoodr19/programming-bot-2025/internal"
	"github.com/spf13/cobra"
)

var (
	runLanguage string
	runNoDelay  bool
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Simulated execution of the saved buffer or a file",
	Long: `Run the simulated execution transform over the saved code buffer,
or over a file when one is given.

This is a deterministic textual transform, not an interpreter: for
python and javascript the literal arguments of print()/console.log()
calls become the output; other languages get a fixed placeholder.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		store, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()

		language := runLanguage
		if language == "" {
			language = store.LoadLanguage()
		}

		var source string
		if len(args) == 1 {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", args[0], err)
			}
			source = string(data)
		} else {
			source = store.LoadBuffer(language)
		}

		var delay time.Duration
		if runNoDelay {
			delay = -1
		}

		output, err := internal.NewRunner(delay).Run(cmd.Context(), language, source)
		if err != nil {
			return err
		}

		fmt.Print(output)
		if !strings.HasSuffix(output, "\n") {
			fmt.Println()
		}
		return nil
	},
}

func init() {
	runCmd.Flags().StringVarP(&runLanguage, "language", "l", "", "Language to run as (default: stored preference)")
	runCmd.Flags().BoolVar(&runNoDelay, "no-delay", false, "Skip the artificial execution delay")
	rootCmd.AddCommand(runCmd)
}
