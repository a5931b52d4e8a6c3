package combo

import "errors"

// ErrInvalidArgument is returned when beam_width or max_candidates is
// below 1 (spec 7, InvalidArgument — caller error, rejected at the
// boundary).
var ErrInvalidArgument = errors.New("combo: invalid argument")
