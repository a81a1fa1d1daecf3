package request

// CreateMatchRequest is the request body for starting a match
type CreateMatchRequest struct {
	Strategy string `json:"strategy,omitempty"`
}

// MoveRequest is the request body for playing a letter
type MoveRequest struct {
	Letter string `json:"letter"`
}
