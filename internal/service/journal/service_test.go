package journal

import (
	"context"
	"testing"
	"time"

	"animo/internal/domain/journal"
)

type fakeStore struct {
	entries map[string]journal.Entry
	saveErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{entries: make(map[string]journal.Entry)}
}

func (f *fakeStore) SaveEntry(ctx context.Context, entry journal.Entry) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.entries[entry.ID] = entry
	return nil
}

func (f *fakeStore) FindEntries(ctx context.Context, userID string, filter journal.Filter) ([]journal.Entry, error) {
	var out []journal.Entry
	for _, e := range f.entries {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeStore) FindEntry(ctx context.Context, userID, entryID string) (*journal.Entry, error) {
	e, ok := f.entries[entryID]
	if !ok || e.UserID != userID {
		return nil, journal.ErrNotFound
	}
	return &e, nil
}

func (f *fakeStore) UpdateEntry(ctx context.Context, userID, entryID string, update journal.Update) error {
	e, ok := f.entries[entryID]
	if !ok || e.UserID != userID {
		return journal.ErrNotFound
	}
	if update.Text != nil {
		e.Text = *update.Text
	}
	if update.Mood != nil {
		e.Mood = *update.Mood
	}
	if update.Tags != nil {
		e.Tags = *update.Tags
	}
	f.entries[entryID] = e
	return nil
}

func (f *fakeStore) DeleteEntry(ctx context.Context, userID, entryID string) error {
	e, ok := f.entries[entryID]
	if !ok || e.UserID != userID {
		return journal.ErrNotFound
	}
	delete(f.entries, entryID)
	return nil
}

func TestCreateEntry(t *testing.T) {
	store := newFakeStore()
	service := NewService(store, nil, ServiceConfig{})

	entry, err := service.CreateEntry(context.Background(), journal.NewEntry{
		UserID: "user-1",
		Text:   "  hoy fue un buen día  ",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if entry.ID == "" {
		t.Fatal("expected a generated ID")
	}
	if entry.Text != "hoy fue un buen día" {
		t.Fatalf("text = %q, want trimmed text", entry.Text)
	}
	if entry.Date.IsZero() {
		t.Fatal("expected date to default to today")
	}
	if entry.Tags == nil {
		t.Fatal("expected tags to default to an empty slice")
	}
	if _, ok := store.entries[entry.ID]; !ok {
		t.Fatal("entry was not saved")
	}
}

func TestCreateEntryRequiresText(t *testing.T) {
	service := NewService(newFakeStore(), nil, ServiceConfig{})

	_, err := service.CreateEntry(context.Background(), journal.NewEntry{
		UserID: "user-1",
		Text:   "   ",
	})
	if err != ErrEmptyText {
		t.Fatalf("err = %v, want ErrEmptyText", err)
	}
}

func TestCreateEntryKeepsExplicitDate(t *testing.T) {
	store := newFakeStore()
	service := NewService(store, nil, ServiceConfig{})

	date := time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC)
	entry, err := service.CreateEntry(context.Background(), journal.NewEntry{
		UserID: "user-1",
		Text:   "texto",
		Date:   date,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !entry.Date.Equal(date) {
		t.Fatalf("date = %v, want %v", entry.Date, date)
	}
}

func TestUpdateEntryTrimsText(t *testing.T) {
	store := newFakeStore()
	service := NewService(store, nil, ServiceConfig{})

	entry, err := service.CreateEntry(context.Background(), journal.NewEntry{
		UserID: "user-1",
		Text:   "original",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	text := "  actualizado  "
	if err := service.UpdateEntry(context.Background(), "user-1", entry.ID, journal.Update{Text: &text}); err != nil {
		t.Fatalf("update: %v", err)
	}

	if store.entries[entry.ID].Text != "actualizado" {
		t.Fatalf("text = %q, want trimmed update", store.entries[entry.ID].Text)
	}
}

func TestUpdateMissingEntry(t *testing.T) {
	service := NewService(newFakeStore(), nil, ServiceConfig{})

	text := "x"
	err := service.UpdateEntry(context.Background(), "user-1", "missing", journal.Update{Text: &text})
	if err != journal.ErrNotFound {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestDeleteEntry(t *testing.T) {
	store := newFakeStore()
	service := NewService(store, nil, ServiceConfig{})

	entry, err := service.CreateEntry(context.Background(), journal.NewEntry{
		UserID: "user-1",
		Text:   "para borrar",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := service.DeleteEntry(context.Background(), "user-1", entry.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := service.DeleteEntry(context.Background(), "user-1", entry.ID); err != journal.ErrNotFound {
		t.Fatalf("second delete err = %v, want ErrNotFound", err)
	}
}
