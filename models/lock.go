package models

import "fmt"

// LockState is the lock lifecycle state of the session.
type LockState int

// Lock lifecycle states.
const (
	// LockStateFirstRun means no document has been persisted yet.
	LockStateFirstRun LockState = iota
	// LockStateLocked means an encrypted document awaits the PIN.
	LockStateLocked
	// LockStateUnlocked means the document is loaded into the session.
	LockStateUnlocked
)

var lockStateNames = map[LockState]string{
	LockStateFirstRun: "FIRST_RUN",
	LockStateLocked:   "LOCKED",
	LockStateUnlocked: "UNLOCKED",
}

func (s LockState) String() string {
	if name, ok := lockStateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("LockState(%d)", int(s))
}

// MarshalText implements encoding.TextMarshaler.
func (s LockState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *LockState) UnmarshalText(text []byte) error {
	for state, name := range lockStateNames {
		if name == string(text) {
			*s = state
			return nil
		}
	}
	return fmt.Errorf("unknown lock state %q", string(text))
}

// Status describes the session as exposed to user interfaces.
type Status struct {
	State         LockState `json:"state"`
	PinConfigured bool      `json:"pinConfigured"`
	LockEnabled   bool      `json:"lockEnabled"`
	Name          string    `json:"name,omitempty"`
	// Dirty reports that in-memory changes failed to persist.
	Dirty bool `json:"dirty,omitempty"`
}
