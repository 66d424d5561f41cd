package model

// Rank is a forum rank assigned to a user, shown as a title label on
// profile cards. CSSClass styles the card when the rank defines one.
type Rank struct {
	Title    string  `json:"title"`
	CSSClass *string `json:"css_class"`
}
