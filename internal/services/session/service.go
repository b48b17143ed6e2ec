package session

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"crashkit/internal/crypto"
	"crashkit/internal/domain"
	"crashkit/internal/store"
)

// metaFilename is the metadata record written into every session directory.
const metaFilename = "session.json"

// sdkTag is stamped into session metadata so a tree can be matched to the
// crashkit version that wrote it.
const sdkTag = "crashkit/1"

// Service opens, fills and finalizes sessions.
//
// The session directory is created eagerly at Open time rather than lazily
// on first write, so an opened session is immediately visible to
// OpenSessionIDs even before any payload lands.
type Service struct {
	store domain.Store
	log   *zap.Logger
}

// New constructs a session Service over the given store.
func New(st domain.Store, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{store: st, log: log}
}

// Open mints a fresh session id, creates its working directory and writes
// the metadata record.
func (s *Service) Open() (domain.Session, error) {
	sess := domain.Session{
		ID:        domain.SessionID(uuid.NewString()),
		StartedAt: time.Now().UTC(),
		SDK:       sdkTag,
	}

	metaPath := s.store.SessionFile(sess.ID, metaFilename)
	if err := os.MkdirAll(filepath.Dir(metaPath), 0o700); err != nil {
		return domain.Session{}, fmt.Errorf("create session directory: %w", err)
	}
	if err := store.WriteJSON(metaPath, sess, 0o600); err != nil {
		return domain.Session{}, fmt.Errorf("write session metadata: %w", err)
	}

	s.log.Debug("opened session", zap.String("id", sess.ID.String()))
	return sess, nil
}

// Write stores an opaque payload under the session's directory, creating
// the directory on demand (open-for-write semantics).
func (s *Service) Write(id domain.SessionID, name string, data []byte) error {
	path := s.store.SessionFile(id, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create session directory: %w", err)
	}
	return store.WriteFile(path, data, 0o600)
}

// Files lists the session's files matching filter.
func (s *Service) Files(id domain.SessionID, filter domain.FilenameFilter) []string {
	return s.store.SessionFiles(id, filter)
}

// List returns the ids of every open session.
func (s *Service) List() []string {
	return s.store.OpenSessionIDs()
}

// Meta loads the metadata record for a session, reporting whether one exists.
func (s *Service) Meta(id domain.SessionID) (domain.Session, bool, error) {
	var sess domain.Session
	found, err := store.ReadJSON(s.store.SessionFile(id, metaFilename), &sess)
	return sess, found, err
}

// Finalize writes the finished report payload for the session and tears
// down its working directory. The payload bytes are the caller's business;
// crashkit does not define their format.
func (s *Service) Finalize(id domain.SessionID, kind domain.ReportKind, payload []byte) (domain.Report, error) {
	var path string
	switch kind {
	case domain.ReportPriority:
		path = s.store.PriorityReportFile(id)
	case domain.ReportNative:
		path = s.store.NativeReportFile(id)
	default:
		path = s.store.ReportFile(id)
	}

	if err := store.WriteFile(path, payload, 0o600); err != nil {
		return domain.Report{}, fmt.Errorf("write report: %w", err)
	}

	if !s.store.DeleteSessionFiles(id) {
		s.log.Debug("no session directory to remove on finalize", zap.String("id", id.String()))
	}

	rep := domain.Report{
		SessionID:   id,
		Kind:        kind,
		Path:        path,
		Size:        int64(len(payload)),
		ModTime:     time.Now().UTC(),
		Fingerprint: crypto.Fingerprint(payload),
	}
	s.log.Debug("finalized session",
		zap.String("id", id.String()),
		zap.String("kind", kind.String()),
		zap.String("fingerprint", rep.Fingerprint))
	return rep, nil
}

// Discard drops a session's working directory without producing a report.
func (s *Service) Discard(id domain.SessionID) bool {
	return s.store.DeleteSessionFiles(id)
}

// Compile-time assertion that Service implements domain.SessionService.
var _ domain.SessionService = (*Service)(nil)
