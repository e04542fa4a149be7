// Package postgrest provides a client for the backend's table API.
//
// Endpoints live under <project-url>/rest/v1/<table>. Filters are encoded as
// query parameters (column=op.value), inserts as JSON POST bodies, and large
// result sets are fetched in Range-header windows.
package postgrest
