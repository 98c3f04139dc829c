package domain

import (
	"time"
)

// ProcessStatus is a read-only projection of the supervised server
// process's state. Degraded is set when the state could not be read;
// the console stays usable either way.
type ProcessStatus struct {
	Running    bool      `json:"running"`
	ServerPort int       `json:"serverPort"`
	Address    string    `json:"address,omitempty"`
	CheckedAt  time.Time `json:"checkedAt"`
	Degraded   bool      `json:"degraded,omitempty"`
}
