package jsonfile

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"salon-scheduler/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_SeedsDefaultsOnFirstOpen(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)

	cfg, err := store.Hours().Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "America/New_York", cfg.Timezone)
	assert.Equal(t, []string{"10:00-14:00"}, cfg.WeeklyHours["Sat"])
	assert.Empty(t, cfg.WeeklyHours["Sun"])

	services, err := store.List(context.Background())
	require.NoError(t, err)
	require.Len(t, services, 3)
	assert.Equal(t, "Basic Haircut", services[0].Name)
	assert.Equal(t, 30, services[0].DurationMinutes)

	info, err := store.Business().Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Your Salon", info["Business Name"])
}

func TestStore_DoesNotOverwriteExistingFiles(t *testing.T) {
	dir := t.TempDir()
	custom := `{"timezone":"UTC","slot_interval_minutes":30,"weekly_hours":{"Mon":["08:00-12:00"]},"exceptions":{}}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "working_hours.json"), []byte(custom), 0o644))

	store, err := NewStore(dir)
	require.NoError(t, err)

	cfg, err := store.Hours().Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "UTC", cfg.Timezone)
	assert.Equal(t, 30, cfg.SlotIntervalMinutes)
}

func TestStore_CalendarRoundTrip(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)
	ctx := context.Background()

	intervals, err := store.Read(ctx, "2026-09-05")
	require.NoError(t, err)
	assert.Empty(t, intervals)

	require.NoError(t, store.Write(ctx, "2026-09-05", []string{"10:00-10:30", "11:00-11:45"}))

	got, err := store.Read(ctx, "2026-09-05")
	require.NoError(t, err)
	assert.Equal(t, []string{"10:00-10:30", "11:00-11:45"}, got)

	// The on-disk layout keeps the appointments map hand-editable.
	raw, err := os.ReadFile(filepath.Join(dir, "calendar.json"))
	require.NoError(t, err)
	var doc struct {
		Appointments map[string][]string `json:"appointments"`
	}
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Equal(t, []string{"10:00-10:30", "11:00-11:45"}, doc.Appointments["2026-09-05"])
}

func TestStore_CachesReadsAndRefreshesOnWrite(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)
	ctx := context.Background()

	// First read pulls the document off disk and into the cache.
	_, err = store.Read(ctx, "2026-09-05")
	require.NoError(t, err)

	// Later reads are served from memory, not disk.
	require.NoError(t, os.Remove(filepath.Join(dir, "calendar.json")))
	intervals, err := store.Read(ctx, "2026-09-05")
	require.NoError(t, err)
	assert.Empty(t, intervals)

	// A write swaps the cached document synchronously.
	require.NoError(t, store.Write(ctx, "2026-09-05", []string{"10:00-10:30"}))
	got, err := store.Read(ctx, "2026-09-05")
	require.NoError(t, err)
	assert.Equal(t, []string{"10:00-10:30"}, got)
}

func TestStore_FindByNameIsCaseInsensitive(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	svc, err := store.FindByName(context.Background(), "  skin fade ")
	require.NoError(t, err)
	require.NotNil(t, svc)
	assert.Equal(t, "Skin Fade", svc.Name)
	assert.Equal(t, 45, svc.DurationMinutes)

	svc, err = store.FindByName(context.Background(), "perm")
	require.NoError(t, err)
	assert.Nil(t, svc)
}

func TestStore_AppendBookingRecord(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)

	rec := booking.NewRecord("2026-09-05", "10:00", "10:30", "Basic Haircut", 30,
		booking.Client{Name: "Dana", Phone: "555-0100"}, time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC))
	require.NoError(t, store.Append(context.Background(), rec))

	raw, err := os.ReadFile(filepath.Join(dir, "bookings.json"))
	require.NoError(t, err)
	var doc struct {
		Bookings []booking.Record `json:"bookings"`
	}
	require.NoError(t, json.Unmarshal(raw, &doc))
	require.Len(t, doc.Bookings, 1)
	assert.Equal(t, rec.ID, doc.Bookings[0].ID)
	assert.Equal(t, "Dana", doc.Bookings[0].Client.Name)
}
