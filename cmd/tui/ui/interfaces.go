package ui

import (
	"context"

	"github.com/VoxDroid/vrforce/internal/config"
	"github.com/VoxDroid/vrforce/internal/console"
	"github.com/VoxDroid/vrforce/internal/tui/adapters"
)

// Model defines the subset of methods from the framework-agnostic internal
// UI model that the TUI depends on.
//
// Named `Model` (instead of `UIModel`) to avoid redundant package/type
// stuttering when referenced as `ui.Model`.
type Model interface {
	Variant() config.Variant
	Panel() *console.Panel

	Form() adapters.Form
	SetForm(f adapters.Form)
	Hint() string
	CopyHint(write func(string) error) error

	RefreshProfiles(ctx context.Context) error
	Profiles() []string
	Selected() string
	Select(name string)
	SuggestName() string

	Browse(ctx context.Context, folder string) error
	LoadLast(ctx context.Context) error
	LoadProfile(ctx context.Context, name string) error
	SaveProfile(ctx context.Context, name string) error
	DeleteProfile(ctx context.Context, name string) error

	Primary(ctx context.Context) error
	Secondary(ctx context.Context) error
	Status(ctx context.Context) error
	// Close writes the form back into the last-active profile.
	Close(ctx context.Context) error
}
