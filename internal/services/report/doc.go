// Package report exposes the prepared-report queue.
//
// It is the consumer side of the store's prepared-reports contract:
// uploaders list what is ready, delete what has shipped, and retention
// policy lives here rather than in the store.
package report
