package request

// ParticipantRequest carries the activity path segment and the email query parameter
// of the signup and unregister endpoints.
type ParticipantRequest struct {
	ActivityName string `validate:"required"`
	Email        string `validate:"required"`
}
