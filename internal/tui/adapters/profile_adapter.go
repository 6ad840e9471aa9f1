package adapters

import (
	"context"
	"errors"
	"fmt"

	"github.com/VoxDroid/vrforce/internal/profile"
)

// ProfileAdapterImpl adapts a profile.Store to ProfileAdapter.
type ProfileAdapterImpl struct{ store *profile.Store }

// NewProfileAdapter returns an adapter backed by store.
func NewProfileAdapter(store *profile.Store) *ProfileAdapterImpl {
	return &ProfileAdapterImpl{store: store}
}

// ListProfiles returns the profile names in sorted order.
func (a *ProfileAdapterImpl) ListProfiles(_ context.Context) ([]string, error) {
	return a.store.Names(), nil
}

// GetProfile returns the named profile or ErrNotFound.
func (a *ProfileAdapterImpl) GetProfile(_ context.Context, name string) (ProfileSummary, error) {
	p, ok := a.store.Get(name)
	if !ok {
		return ProfileSummary{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return ProfileSummary{Name: name, Form: Form{Folder: p.Folder, Exe: p.Exe, LauncherName: p.LauncherName, Args: p.Args}}, nil
}

// SaveProfile creates or overwrites p.
func (a *ProfileAdapterImpl) SaveProfile(_ context.Context, p ProfileSummary) error {
	return a.store.Put(p.Name, toProfile(p.Form))
}

// SaveProfileIfAbsent saves p only when its name is unused.
func (a *ProfileAdapterImpl) SaveProfileIfAbsent(_ context.Context, p ProfileSummary) (bool, error) {
	return a.store.PutIfAbsent(p.Name, toProfile(p.Form))
}

// DeleteProfile removes name.
func (a *ProfileAdapterImpl) DeleteProfile(_ context.Context, name string) error {
	return mapNotFound(a.store.Delete(name))
}

// LastProfile returns the last-active profile name, or "".
func (a *ProfileAdapterImpl) LastProfile(_ context.Context) (string, error) {
	return a.store.Last(), nil
}

// SetLastProfile marks name as last-active.
func (a *ProfileAdapterImpl) SetLastProfile(_ context.Context, name string) error {
	return mapNotFound(a.store.SetLast(name))
}

func toProfile(f Form) profile.Profile {
	return profile.Profile{Folder: f.Folder, Exe: f.Exe, LauncherName: f.LauncherName, Args: f.Args}
}

func mapNotFound(err error) error {
	if errors.Is(err, profile.ErrNotFound) {
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	return err
}
