package adapters

import (
	"context"
	"fmt"
	"os"

	"github.com/VoxDroid/vrforce/internal/profile"
)

// ImportExportAdapterImpl reads and writes YAML profile bundles on disk.
type ImportExportAdapterImpl struct{ store *profile.Store }

// NewImportExportAdapter constructs a new ImportExportAdapter backed by store.
func NewImportExportAdapter(store *profile.Store) *ImportExportAdapterImpl {
	return &ImportExportAdapterImpl{store: store}
}

// Export writes the named profiles (all when none are given) to dest.
func (i *ImportExportAdapterImpl) Export(_ context.Context, dest string, names ...string) (err error) {
	f, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
		if err != nil {
			_ = os.Remove(dest)
		}
	}()
	return i.store.Export(f, names...)
}

// Import reads a bundle from src.
func (i *ImportExportAdapterImpl) Import(_ context.Context, src string, overwrite bool) ([]string, []string, error) {
	f, err := os.Open(src)
	if err != nil {
		return nil, nil, fmt.Errorf("import: %w", err)
	}
	defer func() { _ = f.Close() }()
	res, err := i.store.Import(f, overwrite)
	return res.Imported, res.Skipped, err
}
