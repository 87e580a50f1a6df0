package model

// Item is the domain model for a todo entry.
// ID is unique for the lifetime of the process; Text is never blank.
type Item struct {
	ID   int64  `json:"id"`
	Text string `json:"text"`
	Done bool   `json:"done"`
}
