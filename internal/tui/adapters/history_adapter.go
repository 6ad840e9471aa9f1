package adapters

import (
	"context"

	"github.com/VoxDroid/vrforce/internal/config"
	"github.com/VoxDroid/vrforce/internal/history"
)

// HistoryAdapterImpl journals events for one variant.
type HistoryAdapterImpl struct {
	repo    *history.Repository
	variant config.Variant
}

// NewHistoryAdapter returns an adapter writing to repo.
func NewHistoryAdapter(repo *history.Repository, variant config.Variant) *HistoryAdapterImpl {
	return &HistoryAdapterImpl{repo: repo, variant: variant}
}

// Record stores e.
func (h *HistoryAdapterImpl) Record(ctx context.Context, e Event) error {
	_, err := h.repo.Record(ctx, history.Entry{
		Variant:  string(h.variant),
		Action:   e.Action,
		Profile:  e.Profile,
		Folder:   e.Folder,
		Exe:      e.Exe,
		OK:       e.OK,
		Message:  e.Message,
		Duration: e.Duration,
		At:       e.At,
	})
	return err
}

// Recent returns up to limit events of this variant, newest first.
func (h *HistoryAdapterImpl) Recent(ctx context.Context, limit int) ([]Event, error) {
	all, err := h.repo.List(ctx, 0)
	if err != nil {
		return nil, err
	}
	var out []Event
	for _, e := range all {
		if e.Variant != string(h.variant) {
			continue
		}
		out = append(out, Event{
			Action: e.Action, Profile: e.Profile, Folder: e.Folder, Exe: e.Exe,
			OK: e.OK, Message: e.Message, Duration: e.Duration, At: e.At,
		})
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}
