// Package postgres provides PostgreSQL implementations of the store
// interfaces. All implementations work against the store.DBTX abstraction,
// so they run equally on a pooled connection or inside a transaction.
package postgres
