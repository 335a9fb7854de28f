package detect

import "errors"

// ErrTracker is returned when the first-access store fails.
var ErrTracker = errors.New("detect: first access tracking failed")
