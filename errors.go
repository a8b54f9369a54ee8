package hebparse

import "github.com/hebphonics/hebparse/normalize"

// ErrInvalidUTF8 is returned by Parse/ParseWords when the input is not
// valid UTF-8 (spec §7 "Input errors"). It is the only fatal error the
// parser ever produces; every other ambiguity surfaces as a diagnostic
// flag on the result instead.
var ErrInvalidUTF8 = normalize.ErrInvalidUTF8
