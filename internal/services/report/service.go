package report

import (
	"os"
	"path/filepath"
	"sort"

	"go.uber.org/zap"

	"crashkit/internal/crypto"
	"crashkit/internal/domain"
)

// Service reads and prunes the prepared-report queue.
type Service struct {
	store domain.Store
	log   *zap.Logger
}

// New constructs a report Service over the given store.
func New(st domain.Store, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{store: st, log: log}
}

// List returns every prepared report, oldest first. Reports that vanish
// between listing and stat are skipped; fingerprinting is best-effort.
func (s *Service) List() []domain.Report {
	paths := s.store.AllReportFiles()
	out := make([]domain.Report, 0, len(paths))
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		id, kind := domain.SplitReportName(filepath.Base(path))
		rep := domain.Report{
			SessionID: id,
			Kind:      kind,
			Path:      path,
			Size:      info.Size(),
			ModTime:   info.ModTime(),
		}
		if fp, err := crypto.FingerprintFile(path); err == nil {
			rep.Fingerprint = fp
		}
		out = append(out, rep)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ModTime.Before(out[j].ModTime) })
	return out
}

// Remove deletes the report named exactly after the session id.
func (s *Service) Remove(id domain.SessionID) bool {
	return s.store.DeleteReport(id)
}

// RemoveAll deletes every kind variant for the session id, returning how
// many files were actually removed.
func (s *Service) RemoveAll(id domain.SessionID) int {
	n := 0
	if s.store.DeleteReport(id) {
		n++
	}
	for _, path := range []string{s.store.PriorityReportFile(id), s.store.NativeReportFile(id)} {
		if os.Remove(path) == nil {
			n++
		}
	}
	if n > 0 {
		s.log.Debug("removed report variants",
			zap.String("id", id.String()), zap.Int("count", n))
	}
	return n
}

// TrimToCount deletes the oldest reports until at most n remain, returning
// how many were removed. This is where retention policy lives; the store
// itself never expires anything.
func (s *Service) TrimToCount(n int) int {
	if n < 0 {
		n = 0
	}
	reports := s.List()
	if len(reports) <= n {
		return 0
	}
	removed := 0
	for _, rep := range reports[:len(reports)-n] {
		if os.Remove(rep.Path) == nil {
			removed++
			s.log.Debug("trimmed old report", zap.String("path", rep.Path))
		}
	}
	return removed
}

// Compile-time assertion that Service implements domain.ReportService.
var _ domain.ReportService = (*Service)(nil)
