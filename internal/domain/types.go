package domain

import (
	"strings"
	"time"
)

// SessionID identifies one bounded run of the monitored application.
// IDs are opaque; the store never parses them.
type SessionID string

func (id SessionID) String() string { return string(id) }

// ReportKind distinguishes the three report artifact flavours.
type ReportKind int

const (
	ReportStandard ReportKind = iota
	ReportPriority
	ReportNative
)

const (
	priorityExt = ".priority"
	nativeExt   = ".native"
)

// Extension returns the filename suffix for the kind ("" for standard).
func (k ReportKind) Extension() string {
	switch k {
	case ReportPriority:
		return priorityExt
	case ReportNative:
		return nativeExt
	default:
		return ""
	}
}

func (k ReportKind) String() string {
	switch k {
	case ReportPriority:
		return "priority"
	case ReportNative:
		return "native"
	default:
		return "standard"
	}
}

// SplitReportName splits a prepared-report filename into session id and kind.
func SplitReportName(name string) (SessionID, ReportKind) {
	switch {
	case strings.HasSuffix(name, priorityExt):
		return SessionID(strings.TrimSuffix(name, priorityExt)), ReportPriority
	case strings.HasSuffix(name, nativeExt):
		return SessionID(strings.TrimSuffix(name, nativeExt)), ReportNative
	default:
		return SessionID(name), ReportStandard
	}
}

// Report describes one prepared, upload-ready artifact.
type Report struct {
	SessionID   SessionID
	Kind        ReportKind
	Path        string
	Size        int64
	ModTime     time.Time
	Fingerprint string // short content hash, "" if unavailable
}

// Session is the metadata record written when a session is opened.
type Session struct {
	ID        SessionID `json:"id"`
	StartedAt time.Time `json:"started_at"`
	SDK       string    `json:"sdk"`
}

// FilenameFilter selects directory entries by name. A nil filter matches all.
type FilenameFilter func(name string) bool
