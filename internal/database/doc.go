// Package database provides the optional direct-Postgres backend.
//
// Hosted projects expose the same tables over a direct connection string;
// when the config carries a database section, commands insert and query over
// a pgx pool instead of the REST table API.
package database
