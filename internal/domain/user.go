package domain

// User represents a bot user. ExternalID is the opaque identifier
// supplied by the transport (the Telegram account id).
type User struct {
	ID         int64
	ExternalID int64
}
