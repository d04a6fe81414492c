package request

// PlayRequest is the request body for a play attempt. "gender" is the
// historical wire name for the content side.
type PlayRequest struct {
	Gender string `json:"gender"`
	Name   string `json:"name"`
	Lang   string `json:"lang"`
}
