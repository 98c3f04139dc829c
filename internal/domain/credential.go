package domain

import (
	"time"
)

// Credential is the fixed operator credential pair.
// It is established once (config or first-run generation) and never
// changes for the lifetime of the process.
type Credential struct {
	Principal string
	Secret    string
	CreatedAt time.Time
}
