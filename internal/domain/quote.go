// Package domain contains core business entities and rules.
package domain

// Quote is a passage of text together with who it is attributed to.
// Quotes are immutable once constructed and have no identity beyond
// structural equality.
type Quote struct {
	// Text is the quoted passage.
	Text string

	// Attribution names the person the quote is attributed to.
	Attribution string
}
