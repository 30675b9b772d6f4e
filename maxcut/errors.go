package maxcut

import "errors"

// ErrCutComputationFailed indicates the sweep produced zero cuts for a
// non-empty memory graph. This is a fatal, internal-invariant failure:
// it signals a bug in memgraph's construction, not a caller mistake.
var ErrCutComputationFailed = errors.New("maxcut: cut computation produced no cuts for a non-empty graph")
