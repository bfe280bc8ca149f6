package catalog

import "errors"

// ErrNotFound covers both a missing hotel and a caller whose ticket does
// not entitle them to hotel browsing; like the booking module, the cause
// is not distinguishable from the error.
var ErrNotFound = errors.New("hotel prerequisite not found")
