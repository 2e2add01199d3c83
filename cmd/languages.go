package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/Hollywoodr19/programming-bot-2025/internal"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var languagesHeaderStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("62"))

// languagesCmd represents the languages command
var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List supported languages",
	Long:  `List the supported editor languages with their comment token and file extension.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(languagesHeaderStyle.Render("Supported languages"))

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "LANGUAGE\tCOMMENT\tEXTENSION")
		for _, name := range internal.SupportedLanguages() {
			info := internal.LookupLanguage(name)
			fmt.Fprintf(w, "%s\t%s\t%s\n", info.Name, info.CommentToken, info.FileExtension)
		}
		_ = w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(languagesCmd)
}
