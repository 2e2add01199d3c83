package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// historyCmd represents the history command
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the stored conversation",
	Long:  `Show the chat history persisted by previous workspace runs.`,
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

		history := store.LoadHistory()
		if history.Len() == 0 {
			fmt.Println("No stored conversation.")
			return nil
		}

		view := newTerminalView(os.Stdout, os.Stdin, store.LoadTheme(cfg.Theme))
		for _, msg := range history.Messages() {
			view.RenderMessage(msg)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
}
