package spacetraders

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ErrorInfo is the error payload of a response, see
// https://docs.spacetraders.io/api-guide/response-errors
type ErrorInfo struct {
	Message string         `json:"message"`
	Code    int            `json:"code"`
	Data    map[string]any `json:"data,omitempty"`
}

// Envelope is the outer shape of every API response. Exactly one of Data and
// Error is set after a successful decode.
type Envelope[T any] struct {
	Data  *T
	Error *ErrorInfo
}

// UnmarshalJSON picks the variant from which keys are present. An "error"
// key, or a bare object carrying both message and code, is the error shape.
// Otherwise a non-null "data" key is the success shape. Anything else fails
// with UnableToDecodeResponseError.
func (e *Envelope[T]) UnmarshalJSON(raw []byte) error {
	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return fmt.Errorf("%w: %v", UnableToDecodeResponseError, err)
	}

	data, hasData := fields["data"]
	hasData = hasData && !isNull(data)
	errorRaw, hasError := fields["error"]
	_, hasMessage := fields["message"]
	_, hasCode := fields["code"]

	switch {
	case hasError && hasData:
		return fmt.Errorf("%w: response has both data and error", UnableToDecodeResponseError)
	case hasError:
		return e.setError(errorRaw)
	case hasMessage && hasCode:
		return e.setError(raw)
	case hasData:
		var payload T
		if err := json.Unmarshal(data, &payload); err != nil {
			return fmt.Errorf("%w: %v", UnableToDecodeResponseError, err)
		}

		*e = Envelope[T]{Data: &payload}
		return nil
	default:
		return fmt.Errorf("%w: response is neither a data nor an error envelope", UnableToDecodeResponseError)
	}
}

func (e *Envelope[T]) setError(raw json.RawMessage) error {
	info, err := decodeErrorInfo(raw)
	if err != nil {
		return err
	}

	*e = Envelope[T]{Error: &info}
	return nil
}

func decodeErrorInfo(raw json.RawMessage) (ErrorInfo, error) {
	shape := struct {
		Message *string        `json:"message"`
		Code    *int           `json:"code"`
		Data    map[string]any `json:"data"`
	}{}
	if err := json.Unmarshal(raw, &shape); err != nil {
		return ErrorInfo{}, fmt.Errorf("%w: %v", UnableToDecodeResponseError, err)
	}

	if shape.Message == nil || shape.Code == nil {
		return ErrorInfo{}, fmt.Errorf("%w: error payload is missing message or code", UnableToDecodeResponseError)
	}

	return ErrorInfo{Message: *shape.Message, Code: *shape.Code, Data: shape.Data}, nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
