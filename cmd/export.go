package cmd

import (
	"fmt"
	"os"

	"github.com/Hollywoodr19/programming-bot-2025/internal"
	"github.com/Hollywoodr19/programming-bot-2025/internal/export"
	"github.com/spf13/cobra"
)

var (
	exportFormat string
	exportOutput string
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the conversation transcript",
	Long:  `Export the stored conversation in JSON, JSONL, Markdown or YAML format.`,
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

		exporter, err := export.NewExporter(exportFormat)
		if err != nil {
			return err
		}

		session := internal.NewSession(store.LoadLanguage())
		transcript := internal.NewTranscript(session, store.LoadHistory())

		out := os.Stdout
		if exportOutput != "" {
			f, err := os.Create(exportOutput)
			if err != nil {
				return &internal.ExportError{Format: exportFormat, Path: exportOutput, Err: err}
			}
			defer func() { _ = f.Close() }()
			out = f
		}

		if err := exporter.Export(transcript, out); err != nil {
			return &internal.ExportError{Format: exportFormat, Path: exportOutput, Err: err}
		}

		if exportOutput != "" {
			fmt.Printf("Exported %d messages to %s\n", len(transcript.Messages), exportOutput)
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "Export format (json, jsonl, md, yaml)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default: stdout)")
	rootCmd.AddCommand(exportCmd)
}
