package models

// Keys of the persisted records.
const (
	RecordKeyState            = "state"
	RecordKeySecurityMetadata = "security-metadata"
	RecordKeyPinMetadata      = "pin-metadata"
)

// RecordKeys lists every record the application persists.
var RecordKeys = []string{RecordKeyState, RecordKeySecurityMetadata, RecordKeyPinMetadata}

// Record is a single keyed JSON value in local storage.
type Record struct {
	Key   string
	Value []byte
}

// RecordBatch is a set of puts and deletes applied atomically.
type RecordBatch struct {
	Put    []Record
	Delete []string
}

// IsEmpty reports whether the batch changes nothing.
func (b RecordBatch) IsEmpty() bool {
	return len(b.Put) == 0 && len(b.Delete) == 0
}
