package model

import "net/http"

// SecurityLayer builds the transport used to reach the API.
type SecurityLayer interface {
	Transport() (*http.Transport, error)
}
