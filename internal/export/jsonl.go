package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/Hollywoodr19/programming-bot-2025/internal"
)

// JSONLExporter exports transcripts in JSONL format (one message per line)
type JSONLExporter struct{}

// Export exports a transcript to JSONL format
func (e *JSONLExporter) Export(transcript *internal.Transcript, w io.Writer) error {
	enc := json.NewEncoder(w)

	for _, msg := range transcript.Messages {
		obj := map[string]interface{}{
			"sender":  msg.Sender,
			"content": msg.Content,
			"kind":    msg.Kind,
		}

		if !msg.Timestamp.IsZero() {
			obj["timestamp"] = msg.Timestamp
		}

		if err := enc.Encode(obj); err != nil {
			return fmt.Errorf("failed to encode message: %w", err)
		}
	}

	return nil
}

// Extension returns the file extension for this format
func (e *JSONLExporter) Extension() string {
	return "jsonl"
}
