package models

// JournalEntry is a free-text journal note.
type JournalEntry struct {
	// Timestamp is the creation time in Unix milliseconds.
	Timestamp int64  `json:"t"`
	Date      string `json:"date"`
	Text      string `json:"text"`
}

// JournalInput is the payload accepted when adding a journal entry.
type JournalInput struct {
	Text string `json:"text"`
}
