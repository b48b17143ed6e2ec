package watch_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"crashkit/internal/domain"
	"crashkit/internal/store"
	"crashkit/internal/watch"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newWatcher(t *testing.T, debounce time.Duration) (*watch.Watcher, *store.FileStore) {
	t.Helper()
	st, err := store.New(t.TempDir(), nil)
	require.NoError(t, err)
	w, err := watch.New(st, debounce, nil)
	require.NoError(t, err)
	return w, st
}

func TestWatcher_SeesArrivals(t *testing.T) {
	w, st := newWatcher(t, 0)

	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	require.NoError(t, store.WriteFile(st.PriorityReportFile("abc"), []byte("payload"), 0o600))

	select {
	case rep := <-w.Reports():
		assert.Equal(t, domain.SessionID("abc"), rep.SessionID)
		assert.Equal(t, domain.ReportPriority, rep.Kind)
		assert.Equal(t, st.PriorityReportFile("abc"), rep.Path)
		assert.Len(t, rep.Fingerprint, 20)
	case <-time.After(5 * time.Second):
		t.Fatal("no report arrival observed")
	}
}

func TestWatcher_DebounceSuppressesRepeatArrivals(t *testing.T) {
	w, st := newWatcher(t, time.Minute)

	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	require.NoError(t, store.WriteFile(st.ReportFile("abc"), []byte("first"), 0o600))

	select {
	case rep := <-w.Reports():
		assert.Equal(t, domain.SessionID("abc"), rep.SessionID)
	case <-time.After(5 * time.Second):
		t.Fatal("first arrival not observed")
	}

	// A rewrite of the same report inside the window stays quiet.
	require.NoError(t, store.WriteFile(st.ReportFile("abc"), []byte("second"), 0o600))

	select {
	case rep := <-w.Reports():
		t.Fatalf("debounced arrival leaked through: %+v", rep)
	case <-time.After(500 * time.Millisecond):
	}

	// A different path is unaffected.
	require.NoError(t, store.WriteFile(st.ReportFile("other"), []byte("x"), 0o600))

	select {
	case rep := <-w.Reports():
		assert.Equal(t, domain.SessionID("other"), rep.SessionID)
	case <-time.After(5 * time.Second):
		t.Fatal("arrival for distinct path not observed")
	}
}

func TestWatcher_StopClosesChannel(t *testing.T) {
	w, _ := newWatcher(t, 0)

	require.NoError(t, w.Start(context.Background()))
	w.Stop()

	_, open := <-w.Reports()
	assert.False(t, open, "reports channel should close on stop")

	// Stop again is a no-op.
	w.Stop()
}

func TestWatcher_ContextCancelStopsLoop(t *testing.T) {
	w, _ := newWatcher(t, 0)

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, w.Start(ctx))
	defer w.Stop()
	cancel()

	select {
	case _, open := <-w.Reports():
		assert.False(t, open)
	case <-time.After(5 * time.Second):
		t.Fatal("event loop did not exit on context cancel")
	}
}
