package models

// Student belongs to exactly one class and carries a signed coin
// balance mutated only through delta application.
type Student struct {
	ID      string `db:"id" json:"id"`
	Name    string `db:"name" json:"name"`
	Coins   int64  `db:"coins" json:"coins"`
	ClassID string `db:"class_id" json:"class_id"`
}
