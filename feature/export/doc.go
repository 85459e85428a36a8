// Package export renders the compiled catalog into its output families:
// enveloped JSON documents (whole catalog, per set, oracle-grouped, and
// format-filtered pairs), normalized relational tables for SQLite or
// MySQL, and a columnar parquet cards table.
package export
