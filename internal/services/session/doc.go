// Package session manages the lifecycle of open crash-monitoring sessions.
//
// It mints session ids, creates the per-session working directory, writes
// caller payloads into it, and finalizes a session into a prepared report
// for the uploader to find.
package session
