package id

import "github.com/oklog/ulid/v2"

// New returns a ULID used to tag an acknowledged notification in the logs.
// IDs from one process sort in the order notifications arrived.
func New() string {
	return ulid.Make().String()
}
