package report_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crashkit/internal/domain"
	"crashkit/internal/services/report"
	"crashkit/internal/store"
)

func newService(t *testing.T) (*report.Service, *store.FileStore) {
	t.Helper()
	st, err := store.New(t.TempDir(), nil)
	require.NoError(t, err)
	return report.New(st, nil), st
}

func writeReport(t *testing.T, path string, mtime time.Time) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(path), 0o600))
	require.NoError(t, os.Chtimes(path, mtime, mtime))
}

func TestList_EmptyQueue(t *testing.T) {
	svc, _ := newService(t)
	assert.Empty(t, svc.List())
}

func TestList_KindsAndOrder(t *testing.T) {
	svc, st := newService(t)

	now := time.Now()
	writeReport(t, st.ReportFile("b"), now.Add(-time.Minute))
	writeReport(t, st.PriorityReportFile("a"), now.Add(-time.Hour))
	writeReport(t, st.NativeReportFile("c"), now)

	got := svc.List()
	require.Len(t, got, 3)

	// Oldest first.
	assert.Equal(t, domain.SessionID("a"), got[0].SessionID)
	assert.Equal(t, domain.ReportPriority, got[0].Kind)
	assert.Equal(t, domain.SessionID("b"), got[1].SessionID)
	assert.Equal(t, domain.ReportStandard, got[1].Kind)
	assert.Equal(t, domain.SessionID("c"), got[2].SessionID)
	assert.Equal(t, domain.ReportNative, got[2].Kind)

	for _, rep := range got {
		assert.Len(t, rep.Fingerprint, 20)
		assert.Positive(t, rep.Size)
	}
}

func TestRemove_ExactNameOnly(t *testing.T) {
	svc, st := newService(t)

	writeReport(t, st.ReportFile("s"), time.Now())
	writeReport(t, st.PriorityReportFile("s"), time.Now())

	assert.True(t, svc.Remove("s"))
	assert.False(t, svc.Remove("s"), "second remove finds nothing")
	assert.Len(t, svc.List(), 1, "priority variant survives")
}

func TestRemoveAll(t *testing.T) {
	svc, st := newService(t)

	writeReport(t, st.ReportFile("s"), time.Now())
	writeReport(t, st.PriorityReportFile("s"), time.Now())
	writeReport(t, st.NativeReportFile("s"), time.Now())
	writeReport(t, st.ReportFile("other"), time.Now())

	assert.Equal(t, 3, svc.RemoveAll("s"))
	assert.Equal(t, 0, svc.RemoveAll("s"))

	got := svc.List()
	require.Len(t, got, 1)
	assert.Equal(t, domain.SessionID("other"), got[0].SessionID)
}

func TestTrimToCount(t *testing.T) {
	svc, st := newService(t)

	now := time.Now()
	writeReport(t, st.ReportFile("old"), now.Add(-2*time.Hour))
	writeReport(t, st.ReportFile("mid"), now.Add(-time.Hour))
	writeReport(t, st.ReportFile("new"), now)

	assert.Equal(t, 0, svc.TrimToCount(5), "under the cap nothing is trimmed")

	assert.Equal(t, 2, svc.TrimToCount(1))
	got := svc.List()
	require.Len(t, got, 1)
	assert.Equal(t, domain.SessionID("new"), got[0].SessionID, "newest survives")
}

func TestTrimToCount_Zero(t *testing.T) {
	svc, st := newService(t)

	writeReport(t, st.ReportFile("a"), time.Now())
	assert.Equal(t, 1, svc.TrimToCount(0))
	assert.Empty(t, svc.List())
}
