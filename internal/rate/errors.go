package rate

import "errors"

// ErrRateLimited reports that the failed-attempt budget for an
// identifier is exhausted and the cooldown window is still active.
var ErrRateLimited = errors.New("rate limited")
