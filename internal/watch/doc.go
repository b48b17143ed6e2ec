// Package watch surfaces report arrivals as they land in the
// prepared-reports directory, so an uploader can react without polling.
package watch
