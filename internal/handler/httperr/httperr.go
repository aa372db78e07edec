package httperr

// Response is the public error payload the error middleware renders for a
// failed request. Status is transport metadata, not part of the body.
type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
}
