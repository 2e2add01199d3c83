package internal

import "testing"

func TestNewSession(t *testing.T) {
	s := NewSession("sql")
	if s.ID == "" {
		t.Error("NewSession() produced empty id")
	}
	if s.CurrentLanguage != "sql" {
		t.Errorf("CurrentLanguage = %q, want sql", s.CurrentLanguage)
	}
	if s.Processing {
		t.Error("new session is processing")
	}

	other := NewSession("")
	if other.CurrentLanguage != DefaultLanguage() {
		t.Errorf("CurrentLanguage with empty input = %q, want default", other.CurrentLanguage)
	}
	if other.ID == s.ID {
		t.Error("two sessions share an id")
	}
}
