package scripting

import (
	"errors"
	"fmt"
)

// ErrUnavailable indicates the scripting service did not answer: Resolve is
// not running, external scripting is disabled in its preferences, or an
// accessor in the chain returned no object.
var ErrUnavailable = errors.New("resolve scripting service unavailable")

// RemoteError carries a stringified exception raised on the vendor side.
// There is no richer taxonomy to offer: the vendor API reports failures as
// free-form exception text.
type RemoteError struct {
	Method  string
	Message string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("%s failed: %s", e.Method, e.Message)
}
