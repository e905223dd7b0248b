// Package store is ggo's usage datastore: a single SQLite file holding
// branch usage counters, the previous-branch pointer and aliases, all
// partitioned by repository root path.
//
// # Schema evolution
//
// The schema is built by an ordered list of [Migration] steps. Each applied
// step appends a row to the schema_version ledger in the same transaction
// that ran it, so the ledger always says exactly which steps landed. On
// [Open] every step above the highest recorded version runs in ascending
// order; a failure aborts Open and the store must not be used.
//
// # Concurrency
//
// Concurrent ggo processes rely on SQLite's own locking (WAL mode plus a
// busy timeout). Writes are independent statements; usage counters are
// best-effort telemetry and the checkout bookkeeping is not transactional
// across statements.
package store
