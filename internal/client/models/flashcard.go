package models

// Flashcard is one study card in a user's deck. Question text is the
// card's identity for deduplication: the merge step drops incoming cards
// whose Question already exists in the deck (case-sensitive exact match).
type Flashcard struct {
	ID          string `json:"id"`
	Question    string `json:"question"`
	Answer      string `json:"answer"`
	Tag         string `json:"tag"`
	Color       string `json:"color"` // red, blue, emerald, amber, purple
	Topic       string `json:"topic"`
	Category    string `json:"category"`
	Subcategory string `json:"subcategory"`
	CreatedAt   int64  `json:"createdAt"` // unix milliseconds
}
