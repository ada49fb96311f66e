// Package sources loads pre-extracted articles from JSON files on disk. Each
// file holds either a single article object or an array of them; a directory
// load walks every .json file in name order so runs are reproducible.
package sources

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"autonews/internal/core"
	"autonews/internal/logger"
)

// Loader reads article corpora from the filesystem.
type Loader struct{}

// NewLoader creates a filesystem article loader.
func NewLoader() *Loader {
	return &Loader{}
}

// LoadDir loads every .json file under dir, in lexical file-name order. A
// file that fails to parse is logged and skipped; an empty resulting corpus
// is an error because the pipeline has nothing to do.
func (l *Loader) LoadDir(dir string) ([]core.Article, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read input directory %s: %w", dir, err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.EqualFold(filepath.Ext(e.Name()), ".json") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	var articles []core.Article
	for _, name := range names {
		path := filepath.Join(dir, name)
		loaded, err := l.LoadFile(path)
		if err != nil {
			logger.Warn("Skipping unreadable input file", "file", path, "error", err.Error())
			continue
		}
		articles = append(articles, loaded...)
	}

	if len(articles) == 0 {
		return nil, fmt.Errorf("no articles loaded from %s", dir)
	}

	logger.Info("Loaded articles", "dir", dir, "files", len(names), "articles", len(articles))

	return articles, nil
}

// LoadFile loads one JSON file containing an article object or an array.
func (l *Loader) LoadFile(path string) ([]core.Article, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	articles, err := decodeArticles(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	for i := range articles {
		sanitize(&articles[i])
	}
	return articles, nil
}

func decodeArticles(data []byte) ([]core.Article, error) {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "[") {
		var articles []core.Article
		if err := json.Unmarshal(data, &articles); err != nil {
			return nil, err
		}
		return articles, nil
	}

	var article core.Article
	if err := json.Unmarshal(data, &article); err != nil {
		return nil, err
	}
	return []core.Article{article}, nil
}

// sanitize fills in defaults the pipeline relies on: every article gets an ID
// and a timestamp, and body text is capped at MaxContentLength.
func sanitize(a *core.Article) {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.PublishedAt == "" {
		a.PublishedAt = time.Now().UTC().Format(time.RFC3339)
	}
	if len(a.Content) > core.MaxContentLength {
		a.Content = a.Content[:core.MaxContentLength]
	}
	a.Title = strings.TrimSpace(a.Title)
	a.Source = strings.TrimSpace(a.Source)
}
