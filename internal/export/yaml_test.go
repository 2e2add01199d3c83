package export

import (
	"bytes"
	"testing"

	"github.com/Hollywoodr19/programming-bot-2025/internal"
	"gopkg.in/yaml.v3"
)

func TestYAMLExporter_Export(t *testing.T) {
	var buf bytes.Buffer
	exporter := &YAMLExporter{}

	if err := exporter.Export(testTranscript(), &buf); err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	var restored internal.Transcript
	if err := yaml.Unmarshal(buf.Bytes(), &restored); err != nil {
		t.Fatalf("Output is not valid YAML: %v\nOutput: %s", err, buf.String())
	}

	if restored.SessionID != "session-1" {
		t.Errorf("SessionID = %q", restored.SessionID)
	}
	if len(restored.Messages) != 3 {
		t.Errorf("Messages = %d, want 3", len(restored.Messages))
	}
	if restored.Messages[0].Sender != internal.SenderUser {
		t.Errorf("first sender = %q", restored.Messages[0].Sender)
	}
}
