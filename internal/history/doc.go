// Package history persists benchmark runs in a SQLite database under the
// configured data directory, so past sequential and pipeline timings can be
// compared across invocations. The database is an append-only archive of
// run summaries; a flock beside it keeps concurrent washline processes from
// writing at the same time.
package history
