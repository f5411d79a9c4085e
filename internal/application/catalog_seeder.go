package application

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"bookshelf/internal/domain"
	"bookshelf/internal/ports/output"

	"github.com/sirupsen/logrus"
)

// CatalogSeeder struct - loads book pages from disk into the document store
type CatalogSeeder struct {
	store output.DocumentStore
}

// NewCatalogSeeder func - Creates new catalog seeder
func NewCatalogSeeder(store output.DocumentStore) *CatalogSeeder {
	return &CatalogSeeder{store: store}
}

// Seed stores every file of dir named book<id>.<ext> under the key book<id>,
// overwriting existing documents. Returns the number of books stored.
func (s *CatalogSeeder) Seed(ctx context.Context, dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("read seed dir: %w", err)
	}

	seeded := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), domain.BookKeyPrefix) {
			continue
		}
		key := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		if _, ok := domain.ParseBookKey(key); !ok {
			logrus.Warnf("Skipping seed file with invalid book name: %s", entry.Name())
			continue
		}
		content, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return seeded, fmt.Errorf("read %s: %w", entry.Name(), err)
		}
		if err := s.store.Set(ctx, key, string(content)); err != nil {
			return seeded, fmt.Errorf("store %s: %w", key, err)
		}
		seeded++
	}

	logrus.Infof("Seeded %d books from %s", seeded, dir)
	return seeded, nil
}
