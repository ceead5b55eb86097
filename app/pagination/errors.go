package pagination

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/bwmarrin/discordgo"
)

// ErrInvalidConfiguration is returned for a non-positive page size or an
// empty page set.
var ErrInvalidConfiguration = errors.New("invalid pagination configuration")

// ErrMessageMismatch is returned when a button press arrives from a message
// other than the one the view is bound to.
var ErrMessageMismatch = errors.New("interaction does not belong to the bound message")

// RenderTargetUnavailableError indicates that the bound message could not be
// edited, typically because it was deleted or permissions were revoked.
type RenderTargetUnavailableError struct {
	MessageID string
	Reason    string
	Cause     error
}

func (e *RenderTargetUnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("render target %q unavailable: %s (caused by: %v)", e.MessageID, e.Reason, e.Cause)
	}
	return fmt.Sprintf("render target %q unavailable: %s", e.MessageID, e.Reason)
}

func (e *RenderTargetUnavailableError) Unwrap() error {
	return e.Cause
}

// MessageGone reports whether Discord answered 404 for the bound message.
func (e *RenderTargetUnavailableError) MessageGone() bool {
	var restErr *discordgo.RESTError
	return errors.As(e.Cause, &restErr) && restErr.Response != nil && restErr.Response.StatusCode == http.StatusNotFound
}

// IsRenderTargetUnavailable checks if an error indicates a failed re-render
func IsRenderTargetUnavailable(err error) bool {
	var target *RenderTargetUnavailableError
	return errors.As(err, &target)
}

func newRenderTargetUnavailableError(messageID string, cause error) *RenderTargetUnavailableError {
	reason := "edit rejected"
	var restErr *discordgo.RESTError
	if errors.As(cause, &restErr) && restErr.Response != nil {
		switch restErr.Response.StatusCode {
		case http.StatusNotFound:
			reason = "message not found"
		case http.StatusForbidden:
			reason = "missing permissions"
		}
	}
	return &RenderTargetUnavailableError{MessageID: messageID, Reason: reason, Cause: cause}
}
