package logging

import "github.com/oklog/ulid/v2"

// GenerateRunID generates a new ULID for run identification. ULIDs are
// lexicographically sortable by creation time, so log filenames carrying
// them list in run order.
func GenerateRunID() string {
	return ulid.Make().String()
}
