package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"crashkit/internal/domain"
)

const (
	filesDirName    = ".crashkit.files.v1"
	sessionsDirName = "open-sessions"
	reportsDirName  = "prepared-reports"

	// Unversioned root used by layouts prior to v1.
	legacyDirName = ".crashkit"
)

// prepareMu guards directory preparation across every FileStore in the
// process, so concurrent construction cannot race on the same paths.
var prepareMu sync.Mutex

// FileStore is the single source of truth for crashkit file locations.
// Paths it returns are plain, absolute-if-base-is-absolute filesystem
// paths; no caching, no buffering.
type FileStore struct {
	rootDir     string
	sessionsDir string
	reportsDir  string
	log         *zap.Logger
}

// New builds a FileStore rooted at baseDir and ensures the root, sessions
// and reports directories exist. Failure to create any of them is fatal:
// nothing else in the SDK can function without them.
func New(baseDir string, log *zap.Logger) (*FileStore, error) {
	if log == nil {
		log = zap.NewNop()
	}
	s := &FileStore{
		rootDir: filepath.Join(baseDir, filesDirName),
		log:     log,
	}
	s.sessionsDir = filepath.Join(s.rootDir, sessionsDirName)
	s.reportsDir = filepath.Join(s.rootDir, reportsDirName)

	for _, dir := range []string{s.rootDir, s.sessionsDir, s.reportsDir} {
		if err := s.prepareDir(dir); err != nil {
			return nil, fmt.Errorf("create crashkit directory %s: %w", dir, err)
		}
	}
	return s, nil
}

// CommonFile returns the path for a file that is not specific to a session,
// re-ensuring the root directory first.
func (s *FileStore) CommonFile(name string) string {
	if err := s.prepareDir(s.rootDir); err != nil {
		s.log.Debug("could not re-create root directory", zap.Error(err))
	}
	return filepath.Join(s.rootDir, name)
}

// CommonFiles returns all common file paths matching filter.
func (s *FileStore) CommonFiles(filter domain.FilenameFilter) []string {
	return listPaths(s.rootDir, filter)
}

// SessionFile returns the path for name inside the directory of the given
// session. The session directory itself is created by the session service
// at open time, not here.
func (s *FileStore) SessionFile(id domain.SessionID, name string) string {
	return filepath.Join(s.sessionsDir, string(id), name)
}

// SessionFiles returns the paths of the session's files matching filter.
func (s *FileStore) SessionFiles(id domain.SessionID, filter domain.FilenameFilter) []string {
	return listPaths(filepath.Join(s.sessionsDir, string(id)), filter)
}

// DeleteSessionFiles removes the session's directory and everything under
// it, reporting whether the directory itself was removed.
func (s *FileStore) DeleteSessionFiles(id domain.SessionID) bool {
	return recursiveDelete(filepath.Join(s.sessionsDir, string(id)))
}

// OpenSessionIDs returns the ids of every session with an open directory.
func (s *FileStore) OpenSessionIDs() []string {
	return listNames(s.sessionsDir, nil)
}

// ReportFile returns the path of the standard report for a session.
func (s *FileStore) ReportFile(id domain.SessionID) string {
	return filepath.Join(s.reportsDir, string(id))
}

// PriorityReportFile returns the path of the priority report for a session.
func (s *FileStore) PriorityReportFile(id domain.SessionID) string {
	return filepath.Join(s.reportsDir, string(id)+domain.ReportPriority.Extension())
}

// NativeReportFile returns the path of the native-crash report for a session.
func (s *FileStore) NativeReportFile(id domain.SessionID) string {
	return filepath.Join(s.reportsDir, string(id)+domain.ReportNative.Extension())
}

// ReportsDir returns the prepared-reports directory itself, for consumers
// such as the arrival watcher that attach to the whole queue.
func (s *FileStore) ReportsDir() string {
	return s.reportsDir
}

// AllReportFiles returns the paths of every prepared report.
func (s *FileStore) AllReportFiles() []string {
	return listPaths(s.reportsDir, nil)
}

// DeleteReport removes the report file named exactly after the session id.
// Suffixed (priority/native) variants are left alone. A missing file is a
// logged no-op, not an error.
func (s *FileStore) DeleteReport(id domain.SessionID) bool {
	path := s.ReportFile(id)
	if _, err := os.Stat(path); err != nil {
		s.log.Debug("could not find report file to delete", zap.String("path", path))
		return false
	}
	s.log.Debug("deleting session report", zap.String("path", path))
	return os.Remove(path) == nil
}

// CleanupLegacyFiles removes the unversioned pre-v1 root, wholesale, if it
// is still around.
func (s *FileStore) CleanupLegacyFiles() {
	legacy := filepath.Join(filepath.Dir(s.rootDir), legacyDirName)
	if recursiveDelete(legacy) {
		s.log.Debug("deleted legacy crashkit files", zap.String("path", legacy))
	}
}

// prepareDir makes sure dir exists and is a directory. A plain file sitting
// on the expected path is deleted and replaced; this repair is logged but
// not an error.
func (s *FileStore) prepareDir(dir string) error {
	prepareMu.Lock()
	defer prepareMu.Unlock()

	if info, err := os.Stat(dir); err == nil {
		if info.IsDir() {
			return nil
		}
		s.log.Debug("unexpected non-directory file; deleting and creating directory",
			zap.String("path", dir))
		if err := os.Remove(dir); err != nil {
			return err
		}
	}
	return os.MkdirAll(dir, 0o700)
}

// recursiveDelete removes a file, or a directory and all of its children,
// depth-first. It reports whether the final removal of the top-level node
// succeeded; failures deeper in the tree are best-effort and unreported.
func recursiveDelete(path string) bool {
	if entries, err := os.ReadDir(path); err == nil {
		for _, e := range entries {
			recursiveDelete(filepath.Join(path, e.Name()))
		}
	}
	return os.Remove(path) == nil
}

// listNames returns the entry names of dir matching filter. Any listing
// failure yields an empty, non-nil slice: absent directories are a normal
// outcome for every caller.
func listNames(dir string, filter domain.FilenameFilter) []string {
	out := []string{}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return out
	}
	for _, e := range entries {
		if filter == nil || filter(e.Name()) {
			out = append(out, e.Name())
		}
	}
	return out
}

// listPaths is listNames with names joined back onto dir.
func listPaths(dir string, filter domain.FilenameFilter) []string {
	names := listNames(dir, filter)
	out := make([]string, 0, len(names))
	for _, n := range names {
		out = append(out, filepath.Join(dir, n))
	}
	return out
}

// Compile-time assertion that FileStore implements domain.Store.
var _ domain.Store = (*FileStore)(nil)
