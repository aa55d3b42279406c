package spacetraders

import (
	"errors"
	"fmt"
)

var MissingTokenError = errors.New("missing auth token")
var UnableToDecodeResponseError = errors.New("unable to decode response")
var InvalidWaypointError = errors.New("invalid waypoint symbol")
var InvalidFactionError = errors.New("invalid faction")
var InvalidAgentSymbolError = errors.New("invalid agent symbol")

// NetworkError is returned when the request never produced a readable
// response: DNS, connection, TLS or timeout failures.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("a network error occurred talking to the spacetraders api: %s", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// BadRequestError carries the error payload the API sent back.
type BadRequestError struct {
	StatusCode int
	Info       ErrorInfo
}

func (e *BadRequestError) Error() string {
	return fmt.Sprintf("the spacetraders api rejected the request. Message: %s, Code: %d", e.Info.Message, e.Info.Code)
}

// TokenPersistError is returned alongside a successful registration when the
// new token could not be saved to the config file. The token is still usable.
type TokenPersistError struct {
	Token string
	Err   error
}

func (e *TokenPersistError) Error() string {
	return fmt.Sprintf("agent registered but the token could not be saved: %s", e.Err)
}

func (e *TokenPersistError) Unwrap() error {
	return e.Err
}
