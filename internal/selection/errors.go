package selection

import "errors"

// ErrNoMover is returned when a bulk action runs on a selection built
// without a candidate service
var ErrNoMover = errors.New("selection has no bulk mover")
