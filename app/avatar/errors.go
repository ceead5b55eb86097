package avatar

import (
	"errors"
	"fmt"
)

// ExternalFetchError reports that the avatar stylesheet could not be
// retrieved. Callers fall back to the placeholder image.
type ExternalFetchError struct {
	URL        string
	StatusCode int
	Cause      error
}

func (e *ExternalFetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: unexpected status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Cause)
}

func (e *ExternalFetchError) Unwrap() error {
	return e.Cause
}

// IsExternalFetchError checks if an error came from the stylesheet fetch.
func IsExternalFetchError(err error) bool {
	var target *ExternalFetchError
	return errors.As(err, &target)
}
