package domain

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// Post lifecycle. Transitions only move forward: Draft -> Active -> Archived.
const (
	PostStatusDraft    = "Draft"
	PostStatusActive   = "Active"
	PostStatusArchived = "Archived"
)

const (
	CategoryLeftovers   = "leftovers"
	CategoryPerishables = "perishables"
)

const (
	NotificationPostCompleted   = "post_completed"
	NotificationMessageReceived = "message_received"
	NotificationSystem          = "system"
)

const (
	MessageStatusActive   = "active"
	MessageStatusArchived = "archived"
	MessageStatusDeleted  = "deleted"
)

const (
	VoteUpvote   = "upvote"
	VoteDownvote = "downvote"
)

// ValidCategory reports whether c is a known post category.
func ValidCategory(c string) bool {
	return c == CategoryLeftovers || c == CategoryPerishables
}

// ValidVoteType reports whether v is a known vote direction.
func ValidVoteType(v string) bool {
	return v == VoteUpvote || v == VoteDownvote
}
