package request

// UserSyncRequest asks for a resync of the local user row from the
// legacy backend.
type UserSyncRequest struct {
	Email string `json:"email" binding:"required,email"`
}
