package response

import (
	"errors"
	"net/http"

	"github.com/The-Tech-Tentacles/CampusHub-sub000/pkg/apperr"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// Envelope is the success wrapper used by the application endpoints.
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

func OK(data interface{}) Envelope {
	return Envelope{Success: true, Data: data}
}

func OKMessage(data interface{}, message string) Envelope {
	return Envelope{Success: true, Data: data, Message: message}
}

func Fail(message string) Envelope {
	return Envelope{Success: false, Message: message}
}

// StatusOf maps an application error to its HTTP status. Unclassified errors
// are treated as internal and their detail is not exposed to the client.
func StatusOf(err error) (int, string) {
	var ae *apperr.Error
	if errors.As(err, &ae) {
		switch ae.Kind {
		case apperr.KindValidation:
			return http.StatusBadRequest, ae.Message
		case apperr.KindAuthorization:
			return http.StatusForbidden, ae.Message
		case apperr.KindNotFound:
			return http.StatusNotFound, ae.Message
		case apperr.KindConflict:
			return http.StatusConflict, ae.Message
		}
	}
	return http.StatusInternalServerError, "internal server error"
}
