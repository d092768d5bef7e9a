package client

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

type errorBody struct {
	Error string `json:"error"`
}

// classify maps a non-success response onto the error taxonomy. Status codes
// win over bodies: 401, 413 and 404 are classified before the body is read.
func classify(resp *http.Response) error {
	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusRequestEntityTooLarge:
		return ErrPayloadTooLarge
	case http.StatusNotFound:
		return ErrNotFound
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err == nil {
		var eb errorBody
		if json.Unmarshal(data, &eb) == nil && eb.Error != "" {
			return &ServerRejectedError{Status: resp.StatusCode, Message: eb.Error}
		}
	}
	return unreachable(fmt.Errorf("unexpected status %s", resp.Status))
}

// readJSON decodes a 2xx body into out, or classifies the failure. A body that
// does not decode is treated as no usable response.
func readJSON(resp *http.Response, out any) error {
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return classify(resp)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return unreachable(fmt.Errorf("decode response: %w", err))
	}
	return nil
}
