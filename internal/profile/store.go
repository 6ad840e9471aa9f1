package profile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/VoxDroid/vrforce/internal/nameutil"
)

var (
	// ErrNotFound is returned when a named profile does not exist.
	ErrNotFound = errors.New("profile not found")
	// ErrCorrupt is returned (with a usable empty store) when the document
	// on disk cannot be parsed or fails validation.
	ErrCorrupt = errors.New("profile document unreadable")
)

// Store is an in-memory copy of a profile document bound to a file.
// Every mutation is persisted by rewriting the whole file.
type Store struct {
	path string
	doc  Document
}

// Open loads the document at path. A missing file yields an empty store.
// An unreadable one yields an empty store together with an error wrapping
// ErrCorrupt, so callers can warn and carry on.
func Open(path string) (*Store, error) {
	s := &Store{path: path, doc: emptyDocument()}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return s, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if len(bytes.TrimSpace(b)) == 0 {
		return s, nil
	}
	if err := validateDocument(b); err != nil {
		return s, fmt.Errorf("%w: %s: %v", ErrCorrupt, path, err)
	}
	var doc Document
	if err := json.Unmarshal(b, &doc); err != nil {
		return s, fmt.Errorf("%w: %s: %v", ErrCorrupt, path, err)
	}
	if doc.Profiles == nil {
		doc.Profiles = map[string]Profile{}
	}
	s.doc = doc
	return s, nil
}

// Path is the file backing the store.
func (s *Store) Path() string { return s.path }

// Names returns profile names in sorted order.
func (s *Store) Names() []string {
	out := make([]string, 0, len(s.doc.Profiles))
	for n := range s.doc.Profiles {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Len is the number of profiles.
func (s *Store) Len() int { return len(s.doc.Profiles) }

// Get returns the named profile.
func (s *Store) Get(name string) (Profile, bool) {
	p, ok := s.doc.Profiles[name]
	return p, ok
}

// Has reports whether name exists.
func (s *Store) Has(name string) bool {
	_, ok := s.doc.Profiles[name]
	return ok
}

// Put creates or overwrites name and saves.
func (s *Store) Put(name string, p Profile) error {
	if err := nameutil.Validate(name); err != nil {
		return err
	}
	s.doc.Profiles[name] = p.Trimmed()
	return s.Save()
}

// PutIfAbsent saves p under name only if the name is free. It reports
// whether the profile was written.
func (s *Store) PutIfAbsent(name string, p Profile) (bool, error) {
	if s.Has(name) {
		return false, nil
	}
	if err := s.Put(name, p); err != nil {
		return false, err
	}
	return true, nil
}

// Delete removes name and clears the last-active pointer when it referenced it.
func (s *Store) Delete(name string) error {
	if !s.Has(name) {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	delete(s.doc.Profiles, name)
	if s.doc.LastProfile == name {
		s.doc.LastProfile = ""
	}
	return s.Save()
}

// Last returns the last-active profile name, or "" when it is unset or
// no longer exists.
func (s *Store) Last() string {
	if s.Has(s.doc.LastProfile) {
		return s.doc.LastProfile
	}
	return ""
}

// SetLast marks name as last-active and saves. Empty clears it.
func (s *Store) SetLast(name string) error {
	if name != "" && !s.Has(name) {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	s.doc.LastProfile = name
	return s.Save()
}

// Selected returns what a profile selector should show: the last-active
// profile when valid, otherwise the first name, otherwise "".
func (s *Store) Selected() string {
	if l := s.Last(); l != "" {
		return l
	}
	if names := s.Names(); len(names) > 0 {
		return names[0]
	}
	return ""
}

// Save writes the document to disk, replacing the previous file.
func (s *Store) Save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create profile dir: %w", err)
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s.doc); err != nil {
		return fmt.Errorf("encode profiles: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".profiles-*.json")
	if err != nil {
		return fmt.Errorf("save profiles: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()
	if _, err := tmp.Write(buf.Bytes()); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("save profiles: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("save profiles: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("save profiles: %w", err)
	}
	return nil
}
