package activity

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/halyard/quarterdeck/internal/journal"
)

func openTestStore(t *testing.T) *journal.Store {
	t.Helper()
	db, err := journal.Open(filepath.Join(t.TempDir(), "journal.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, journal.Migrate(db))
	return journal.NewStore(db)
}

func TestLoadShowsJournalTotal(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	store := openTestStore(t)
	require.NoError(t, store.Record(ctx, "welcome", "", 0))
	require.NoError(t, store.Record(ctx, "settings", "welcome", 1))

	a := New(store)
	msg := a.loadCmd()()
	em, ok := msg.(entriesMsg)
	require.True(t, ok)
	require.NoError(t, em.err)
	require.Len(t, em.entries, 2)
	require.Equal(t, 2, em.total)

	a.Update(em)
	require.Equal(t, "Activation journal (2)", a.list.Title)
}

func TestJournalTitleCappedWindow(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Activation journal (0)", journalTitle(0, 0))
	require.Equal(t, "Activation journal (100 of 250)", journalTitle(100, 250))
}
