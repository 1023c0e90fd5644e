package tools

import (
	"context"
	"errors"
	"fmt"
)

// Kind labels a tool failure so the calling agent can phrase a useful
// response instead of guessing from the message text.
type Kind string

const (
	KindValidation    Kind = "ValidationError"
	KindProvider      Kind = "ProviderError"
	KindNoHotelsFound Kind = "NoHotelsFound"
	KindNoOffersFound Kind = "NoOffersFound"
	KindUnknownTool   Kind = "UnknownToolError"
	KindTimeout       Kind = "Timeout"
)

// Error is a structured tool failure. It never crosses the transport
// boundary as a raw error; the registry folds it into the result envelope.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func validationErrorf(format string, args ...interface{}) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// providerError converts an adapter-level error, classifying exceeded
// deadlines separately so the host can tell a timeout from a refusal.
func providerError(err error) *Error {
	if errors.Is(err, context.DeadlineExceeded) {
		return &Error{Kind: KindTimeout, Message: "provider call timed out"}
	}
	return &Error{Kind: KindProvider, Message: err.Error()}
}
