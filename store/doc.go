// Package store is the persistent, keyed set of layouts: one Layout per
// connected output set, loaded from and flushed to a JSON file with
// crash-safe tmp-file-plus-rename semantics.
package store
