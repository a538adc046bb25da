package models

// OrderLine is one accumulated entry in a session's order. Item holds the
// display name shown to the user; merging compares it case-insensitively.
// Quantity is always >= 1.
type OrderLine struct {
	Item     string `json:"item"`
	Quantity int    `json:"quantity"`
}
