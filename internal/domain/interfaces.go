package domain

// Store is the single source of truth for where session and report
// artifacts live on disk. Callers never build those paths themselves.
type Store interface {
	// Common files, not tied to any session.
	CommonFile(name string) string
	CommonFiles(filter FilenameFilter) []string

	// Per-session working directories.
	SessionFile(id SessionID, name string) string
	SessionFiles(id SessionID, filter FilenameFilter) []string
	DeleteSessionFiles(id SessionID) bool
	OpenSessionIDs() []string

	// Prepared, upload-ready reports.
	ReportFile(id SessionID) string
	PriorityReportFile(id SessionID) string
	NativeReportFile(id SessionID) string
	ReportsDir() string
	AllReportFiles() []string
	DeleteReport(id SessionID) bool

	// One-time migration from the unversioned legacy layout.
	CleanupLegacyFiles()
}

// SessionService manages the lifecycle of open sessions.
type SessionService interface {
	Open() (Session, error)
	Write(id SessionID, name string, data []byte) error
	Files(id SessionID, filter FilenameFilter) []string
	List() []string
	Meta(id SessionID) (Session, bool, error)
	Finalize(id SessionID, kind ReportKind, payload []byte) (Report, error)
	Discard(id SessionID) bool
}

// ReportService exposes the prepared-report queue to uploaders and tooling.
type ReportService interface {
	List() []Report
	Remove(id SessionID) bool
	RemoveAll(id SessionID) int
	TrimToCount(n int) int
}
