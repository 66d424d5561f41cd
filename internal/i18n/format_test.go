package i18n

import (
	"errors"
	"testing"
)

func TestFormatCount(t *testing.T) {
	templates := PluralTemplates{
		Singular: "1 reply",
		Plural:   "{count} replies",
	}

	tests := []struct {
		count int64
		want  string
	}{
		{0, "0 replies"},
		{1, "1 reply"},
		{2, "2 replies"},
		{41, "41 replies"},
	}

	for _, tt := range tests {
		got, err := FormatCount(tt.count, templates)
		if err != nil {
			t.Fatalf("FormatCount(%d) returned error: %v", tt.count, err)
		}
		if got != tt.want {
			t.Errorf("FormatCount(%d) = %q, want %q", tt.count, got, tt.want)
		}
	}
}

func TestFormatCountNegative(t *testing.T) {
	_, err := FormatCount(-1, PluralTemplates{Singular: "1", Plural: "{count}"})
	if !errors.Is(err, ErrNegativeCount) {
		t.Fatalf("FormatCount(-1) returned %v, want ErrNegativeCount", err)
	}
}

func TestBind(t *testing.T) {
	tests := []struct {
		template string
		name     string
		value    string
		want     string
	}{
		{"{username} has no followers.", "username", "alice", "alice has no followers."},
		{"no placeholder here", "username", "alice", "no placeholder here"},
		{"{count} of {count}", "count", "3", "3 of 3"},
		{"{username} and {count}", "count", "5", "{username} and 5"},
	}

	for _, tt := range tests {
		if got := Bind(tt.template, tt.name, tt.value); got != tt.want {
			t.Errorf("Bind(%q, %q, %q) = %q, want %q", tt.template, tt.name, tt.value, got, tt.want)
		}
	}
}
