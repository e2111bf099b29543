package todo

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	t.Run("valid todo", func(t *testing.T) {
		td, err := New(Monday, "  Buy milk  ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if td.Text != "Buy milk" {
			t.Errorf("text = %q, want trimmed", td.Text)
		}
		if td.Day != Monday {
			t.Errorf("day = %s", td.Day)
		}
		if td.Completed || td.CompletedAt != nil {
			t.Error("new todo should be open")
		}
		if td.CreatedAt.IsZero() {
			t.Error("expected CreatedAt to be set")
		}
	})

	tests := []struct {
		name    string
		day     Weekday
		text    string
		wantErr error
	}{
		{"empty text", Monday, "   ", ErrEmptyText},
		{"too long", Monday, strings.Repeat("a", MaxTextLength+1), ErrTextTooLong},
		{"bad weekday", Weekday("funday"), "text", ErrInvalidWeekday},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.day, tt.text)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("got %v, want %v", err, tt.wantErr)
			}
		})
	}

	t.Run("max length accepted", func(t *testing.T) {
		if _, err := New(Friday, strings.Repeat("é", MaxTextLength)); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}

func TestSetCompleted(t *testing.T) {
	td := &Todo{Day: Monday, Text: "x"}
	at := time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)

	td.SetCompleted(true, at)
	if !td.Completed || td.CompletedAt == nil || !td.CompletedAt.Equal(at) {
		t.Fatalf("expected completed at %v, got %+v", at, td)
	}

	td.SetCompleted(false, at)
	if td.Completed || td.CompletedAt != nil {
		t.Fatalf("expected open todo, got %+v", td)
	}
}
