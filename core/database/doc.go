// Package database provides the optional MySQL connection used when the
// normalized relational tables are exported straight into a server rather
// than a local SQLite file.
//
// The connection is configured with strict setup and I/O timeouts and a
// silent GORM logger; application-level warnings go through the main zap
// logger instead.
package database
