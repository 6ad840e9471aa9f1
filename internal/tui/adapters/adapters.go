// Package adapters provides adapter interfaces and lightweight types used by
// the TUI to decouple it from the internal domain packages.
package adapters

import (
	"context"
	"errors"
	"time"

	"github.com/VoxDroid/vrforce/internal/config"
)

// ErrNotFound is used when a requested profile does not exist.
var ErrNotFound = errors.New("not found")

// Form holds the editable fields shown by the UI.
type Form struct {
	Folder       string
	Exe          string
	LauncherName string
	Args         string
}

// ProfileSummary is a named, saved Form.
type ProfileSummary struct {
	Name string
	Form
}

// Detection is what auto-detect found in a folder.
type Detection struct {
	Exe          string
	LauncherName string
}

// ActionResult carries the outputs of a successful primary action.
type ActionResult struct {
	// Hint is the platform launch option, set by the launcher variant.
	Hint string
}

// Event is one journaled action, as shown by the history screen.
type Event struct {
	Action   string
	Profile  string
	Folder   string
	Exe      string
	OK       bool
	Message  string
	Duration time.Duration
	At       time.Time
}

// ProfileAdapter describes the profile store operations used by the UI.
type ProfileAdapter interface {
	ListProfiles(ctx context.Context) ([]string, error)
	GetProfile(ctx context.Context, name string) (ProfileSummary, error)
	SaveProfile(ctx context.Context, p ProfileSummary) error
	// SaveProfileIfAbsent saves only when the name is free and reports
	// whether it wrote.
	SaveProfileIfAbsent(ctx context.Context, p ProfileSummary) (bool, error)
	DeleteProfile(ctx context.Context, name string) error
	LastProfile(ctx context.Context) (string, error)
	SetLastProfile(ctx context.Context, name string) error
}

// ActionAdapter runs the variant's actions against a game folder.
type ActionAdapter interface {
	Variant() config.Variant
	Detect(ctx context.Context, folder string) (Detection, error)
	// Primary creates the launcher or applies the wrapper.
	Primary(ctx context.Context, f Form) (ActionResult, error)
	// Secondary removes the launcher or undoes the wrapper.
	Secondary(ctx context.Context, f Form) error
	Status(ctx context.Context, f Form) error
}

// HistoryAdapter journals actions.
type HistoryAdapter interface {
	Record(ctx context.Context, e Event) error
	Recent(ctx context.Context, limit int) ([]Event, error)
}

// ImportExportAdapter moves profiles in and out of YAML bundles.
type ImportExportAdapter interface {
	Export(ctx context.Context, dest string, names ...string) error
	Import(ctx context.Context, src string, overwrite bool) (imported, skipped []string, err error)
}
