package utils

import (
	"encoding/json"
	"io"

	"github.com/dwikurnia/forum-api/internal/errors"
	"github.com/dwikurnia/forum-api/internal/logger"
)

// Decode parses a JSON body into body without validation. Payload shapes
// are checked downstream by entity constructors so the error codes match
// per-field semantics.
func Decode(r io.ReadCloser, body any) error {
	if err := json.NewDecoder(r).Decode(body); err != nil {
		logger.Log.Debug("invalid request body", "error", err)
		return &errors.InvariantError{Message: "body harus berupa JSON yang valid"}
	}
	return nil
}
