// Package database owns the SQLite reading-log file: it opens the
// connection, migrates the schema, seeds the default user profile and
// exposes the raw statement primitives used by the repositories in its
// subpackages.
//
// Each repository lives in its own subpackage:
//
//   - books: reading-log entries (CRUD, filters, statistics, CSV export)
//   - profile: the singleton user profile
//   - settings: key/value application settings
package database
