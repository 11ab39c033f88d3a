package pollinations

import "net/http"

// Validator checks a completed API response before the client uses it.
type Validator interface {
	Validate(status int, body []byte) error
}

// ChatValidator accepts any 200 response, empty bodies included.
type ChatValidator struct{}

func (ChatValidator) Validate(status int, body []byte) error {
	if status != http.StatusOK {
		return &APIError{StatusCode: status, Message: string(body)}
	}
	return nil
}

// ImageValidator requires a 200 response carrying a non-empty body.
type ImageValidator struct{}

func (ImageValidator) Validate(status int, body []byte) error {
	if status != http.StatusOK {
		return &APIError{StatusCode: status, Message: string(body)}
	}
	if len(body) == 0 {
		return &APIError{StatusCode: status, Message: "Empty response received"}
	}
	return nil
}
