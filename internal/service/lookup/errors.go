package lookup

import "errors"

var ErrEmptyQuery = errors.New("empty lookup query")
