// Package store controls where crashkit keeps its files on disk.
//
// Three kinds of files exist: "common" files independent of any session,
// "open session" files that accumulate under a per-session directory while
// a session runs, and "prepared report" files ready for upload. Keeping
// session files in session-specific directories lets a whole session be
// cleaned up by deleting one subtree, and lets prepared reports be grabbed
// with a single flat listing.
//
// Everything lives under a versioned, crashkit-specific root so the layout
// can change in the future without guessing what an old tree means:
//
//	<base>/.crashkit.files.v1/
//	  open-sessions/
//	    SESSION-ID-A/
//	      file1
//	      file2
//	    SESSION-ID-B/
//	      ...
//	  prepared-reports/
//	    SESSION-ID-A.priority
//	    SESSION-ID-B
//	    SESSION-ID-C.native
//
// By convention, building any of these paths outside this package is a
// code smell: all access goes through FileStore.
package store
