// Package dataset drives a space through whole files: it loads text
// datasets into object vectors, writes them back, loads several files
// concurrently, and persists datasets and serialized indices in SQLite.
package dataset
