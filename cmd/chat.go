package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/Hollywoodr19/programming-bot-2025/internal"
	"github.com/spf13/cobra"
)

// chatCmd represents the chat command
var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Open the interactive workspace",
	Long: `Open the interactive programming workspace.

Plain input is sent to the assistant with the active code buffer as
context. Lines starting with "/" are workspace commands:

  /lang <name>     switch the active language
  /code            show the active buffer
  /load <file>     replace the buffer with a file's contents
  /run             simulated execution of the buffer
  /review          ask the assistant for a structured code review
  /theme <name>    switch between light and dark
  /history         show the stored conversation
  /quit            save and exit`,
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

		client := internal.NewClient(cfg.Endpoint, cfg.APIKey)
		view := newTerminalView(os.Stdout, os.Stdin, store.LoadTheme(cfg.Theme))
		ctrl := internal.NewController(store, view, client, controllerOptions(cfg))

		ctrl.Init()
		defer ctrl.Dispose()

		fmt.Printf("Workspace ready (language: %s). Type /quit to exit.\n", ctrl.Session().CurrentLanguage)

		scanner := bufio.NewScanner(os.Stdin)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for {
			fmt.Print("> ")
			if !scanner.Scan() {
				break
			}
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}

			if strings.HasPrefix(line, "/") {
				if quit := runWorkspaceCommand(cmd.Context(), ctrl, client, view, line); quit {
					break
				}
				continue
			}

			ctrl.Send(cmd.Context(), line)
		}

		return scanner.Err()
	},
}

// runWorkspaceCommand handles one slash command; returns true on /quit.
func runWorkspaceCommand(ctx context.Context, ctrl *internal.Controller, client *internal.Client, view *terminalView, line string) bool {
	fields := strings.Fields(line)
	command := fields[0]
	arg := ""
	if len(fields) > 1 {
		arg = fields[1]
	}

	switch command {
	case "/quit", "/exit":
		return true

	case "/lang":
		if arg == "" {
			fmt.Printf("Active language: %s\n", ctrl.Session().CurrentLanguage)
			return false
		}
		if !internal.IsSupportedLanguage(arg) {
			view.ShowWarning(fmt.Sprintf("Unknown language %q. Supported: %s", arg, strings.Join(internal.SupportedLanguages(), ", ")))
			return false
		}
		ctrl.SwitchLanguage(arg)
		fmt.Printf("Switched to %s.\n", arg)

	case "/code":
		fmt.Println(view.GetEditorText())

	case "/load":
		if arg == "" {
			view.ShowWarning("Usage: /load <file>")
			return false
		}
		data, err := os.ReadFile(arg)
		if err != nil {
			view.ShowWarning(fmt.Sprintf("Could not read %s: %v", arg, err))
			return false
		}
		view.SetEditorText(string(data))
		ctrl.NoteEdit()
		fmt.Printf("Loaded %s into the %s buffer.\n", arg, ctrl.Session().CurrentLanguage)

	case "/run":
		ctrl.RunCode(ctx)

	case "/review":
		runReview(ctx, ctrl, client, view)

	case "/theme":
		if arg != "light" && arg != "dark" {
			view.ShowWarning("Usage: /theme light|dark")
			return false
		}
		ctrl.SetTheme(arg)
		view.SetTheme(arg)
		fmt.Printf("Theme set to %s.\n", arg)

	case "/history":
		for _, msg := range ctrl.History().Messages() {
			view.RenderMessage(msg)
		}

	case "/help":
		fmt.Println("Commands: /lang /code /load /run /review /theme /history /quit")

	default:
		view.ShowWarning(fmt.Sprintf("Unknown command %s (try /help)", command))
	}

	return false
}

// runReview asks the assistant for a structured review of the active buffer.
func runReview(ctx context.Context, ctrl *internal.Controller, client *internal.Client, view *terminalView) {
	code := view.GetEditorText()
	if strings.TrimSpace(code) == "" {
		view.ShowWarning("Nothing to review - the editor is empty.")
		return
	}

	result, err := client.Review(ctx, ctrl.Session(), ctrl.Session().CurrentLanguage, code)
	if err != nil {
		view.ShowWarning(fmt.Sprintf("Code review failed: %v", err))
		return
	}

	fmt.Printf("Score: %d/100\n\n%s\n", result.Score, result.Analysis)
	printReviewList("Suggestions", result.Suggestions)
	printReviewList("Issues", result.Issues)
	printReviewList("Strengths", result.Strengths)
}

func printReviewList(title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Printf("\n%s:\n", title)
	for _, item := range items {
		fmt.Printf("  - %s\n", item)
	}
}

func init() {
	rootCmd.AddCommand(chatCmd)
}
