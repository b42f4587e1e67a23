package tool

import (
	"strings"
	"testing"
	"time"
)

func TestFormatFileSize(t *testing.T) {
	cases := []struct {
		size int64
		want string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{1024, "1.00 KB"},
		{1536, "1.50 KB"},
		{2 * 1024 * 1024, "2.00 MB"},
		{5*1024*1024 + 512*1024, "5.50 MB"},
		{3 * 1024 * 1024 * 1024, "3.00 GB"},
	}
	for _, tc := range cases {
		if got := FormatFileSize(tc.size); got != tc.want {
			t.Errorf("FormatFileSize(%d) = %q, want %q", tc.size, got, tc.want)
		}
	}
}

func TestSanitizeFileName(t *testing.T) {
	cases := map[string]string{
		"photo.png":            "photo.png",
		"my holiday photo.png": "my_holiday_photo.png",
		"  padded  name.txt  ": "padded_name.txt",
		"tab\tseparated":       "tab_separated",
	}
	for in, want := range cases {
		if got := SanitizeFileName(in); got != want {
			t.Errorf("SanitizeFileName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNewFileIDUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewFileID()
		if id == "" {
			t.Fatal("empty file id")
		}
		if seen[id] {
			t.Fatalf("duplicate file id %s", id)
		}
		seen[id] = true
	}
}

func TestNewRunIDLength(t *testing.T) {
	id := NewRunID()
	if len(id) != 8 {
		t.Errorf("NewRunID() = %q, want 8 chars", id)
	}
}

func TestLegacyFileID(t *testing.T) {
	now := time.UnixMilli(1700000000000)
	id := LegacyFileID(now, func() float64 { return 0.123456789 })
	if !strings.HasPrefix(id, "1700000000000-") {
		t.Errorf("LegacyFileID prefix wrong: %q", id)
	}
	if id != "1700000000000-123456789" {
		t.Errorf("LegacyFileID = %q", id)
	}
}
