package export

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/codingthings-com/finfeed/app/feed"
)

// Writer persists article lists as pretty-printed JSON files.
type Writer struct {
	dir string
}

func NewWriter(dir string) *Writer {
	return &Writer{dir: dir}
}

// Write stores the articles under a sanitized version of name and returns
// the path of the written file. The export directory is created on first
// use.
func (w *Writer) Write(name string, articles []feed.Article) (string, error) {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	if articles == nil {
		articles = []feed.Article{}
	}

	data, err := json.MarshalIndent(articles, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode articles: %w", err)
	}

	path := filepath.Join(w.dir, sanitizeName(name)+".json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write export file: %w", err)
	}

	slog.Debug("Articles exported", "path", path, "articles", len(articles))
	return path, nil
}

// sanitizeName keeps letters, digits, dots, underscores and dashes so the
// export name is always a plain file name.
func sanitizeName(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '_', r == '-':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	if b.Len() == 0 {
		return "articles"
	}
	return b.String()
}
