package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/codingthings-com/finfeed/app/feed"
)

func sampleArticles() []feed.Article {
	return []feed.Article{
		{
			Title:       "Markets rally into the close",
			Link:        "https://example.com/rally",
			Description: "Stocks finished the session higher.",
			Published:   "Mon, 06 Jan 2025 16:00:00 GMT",
			GUID:        "https://example.com/rally",
			Author:      "desk@example.com (Market Desk)",
			Categories:  []string{"stocks", "markets"},
			Source:      "Demo Wire",
			Extra:       map[string]string{"credit": "Newsroom"},
		},
		{
			Title:  "Yields drift lower",
			Link:   "https://example.com/yields",
			Source: "Demo Wire",
		},
	}
}

func TestWriteAndReadBack(t *testing.T) {
	writer := NewWriter(t.TempDir())
	articles := sampleArticles()

	path, err := writer.Write("demo_markets", articles)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if filepath.Base(path) != "demo_markets.json" {
		t.Errorf("Unexpected file name: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Expected the export file to exist: %v", err)
	}

	var got []feed.Article
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Expected valid JSON, got: %v", err)
	}
	if !reflect.DeepEqual(got, articles) {
		t.Errorf("Expected articles to round-trip unchanged.\nwant: %+v\ngot:  %+v", articles, got)
	}
}

func TestWritePrettyPrints(t *testing.T) {
	writer := NewWriter(t.TempDir())

	path, err := writer.Write("demo", sampleArticles())
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Expected the export file to exist: %v", err)
	}
	if !strings.Contains(string(data), "\n  {") {
		t.Error("Expected indented JSON output")
	}
}

func TestWriteEmptyList(t *testing.T) {
	writer := NewWriter(t.TempDir())

	path, err := writer.Write("empty", nil)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Expected the export file to exist: %v", err)
	}
	if string(data) != "[]" {
		t.Errorf("Expected an empty JSON array, got: %s", data)
	}
}

func TestWriteSanitizesName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"wsj opinions", "wsj_opinions.json"},
		{"cnn/money latest", "cnn_money_latest.json"},
		{"../escape", ".._escape.json"},
		{"", "articles.json"},
		{"normal-name_1.2", "normal-name_1.2.json"},
	}

	writer := NewWriter(t.TempDir())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, err := writer.Write(tt.name, nil)
			if err != nil {
				t.Fatalf("Expected no error, got: %v", err)
			}
			if filepath.Base(path) != tt.want {
				t.Errorf("Expected file name '%s', got '%s'", tt.want, filepath.Base(path))
			}
		})
	}
}

func TestWriteCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "exports")
	writer := NewWriter(dir)

	path, err := writer.Write("demo", sampleArticles())
	if err != nil {
		t.Fatalf("Expected the export directory to be created, got: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("Expected the export file to exist: %v", err)
	}
}
