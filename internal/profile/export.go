package profile

import (
	"fmt"
	"io"

	"github.com/goccy/go-yaml"

	"github.com/VoxDroid/vrforce/internal/nameutil"
)

// Exported is one profile in a shareable YAML bundle.
type Exported struct {
	Name    string `yaml:"name"`
	Profile `yaml:",inline"`
}

// Bundle is the YAML export format.
type Bundle struct {
	Profiles []Exported `yaml:"profiles"`
}

// Export writes the named profiles (all when names is empty) as YAML.
func (s *Store) Export(w io.Writer, names ...string) error {
	if len(names) == 0 {
		names = s.Names()
	}
	var b Bundle
	for _, n := range names {
		p, ok := s.Get(n)
		if !ok {
			return fmt.Errorf("%w: %q", ErrNotFound, n)
		}
		b.Profiles = append(b.Profiles, Exported{Name: n, Profile: p})
	}
	out, err := yaml.Marshal(b)
	if err != nil {
		return fmt.Errorf("marshal profiles: %w", err)
	}
	_, err = w.Write(out)
	return err
}

// ImportResult lists what Import did.
type ImportResult struct {
	Imported []string
	Skipped  []string
}

// Import reads a YAML bundle. Existing names are skipped unless overwrite
// is set. The store is saved once at the end.
func (s *Store) Import(r io.Reader, overwrite bool) (ImportResult, error) {
	var res ImportResult
	raw, err := io.ReadAll(r)
	if err != nil {
		return res, err
	}
	var b Bundle
	if err := yaml.Unmarshal(raw, &b); err != nil {
		return res, fmt.Errorf("parse profiles: %w", err)
	}
	for _, e := range b.Profiles {
		name, _ := nameutil.Clean(e.Name)
		if err := nameutil.Validate(name); err != nil {
			return res, fmt.Errorf("import %q: %w", e.Name, err)
		}
		if s.Has(name) && !overwrite {
			res.Skipped = append(res.Skipped, name)
			continue
		}
		s.doc.Profiles[name] = e.Profile.Trimmed()
		res.Imported = append(res.Imported, name)
	}
	if len(res.Imported) == 0 {
		return res, nil
	}
	return res, s.Save()
}
