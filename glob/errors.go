package glob

import "github.com/pkg/errors"

// ErrEmptyPattern is a pattern-fatal error (§7): Compile was called with no
// patterns at all, which has no sensible regex translation.
var ErrEmptyPattern = errors.New("glob: no patterns given")
