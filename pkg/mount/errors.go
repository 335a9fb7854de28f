package mount

import "errors"

// ErrUnsupportedPattern is returned for patterns chi cannot express,
// such as a catch-all param before the last segment.
var ErrUnsupportedPattern = errors.New("mount: unsupported route pattern")
