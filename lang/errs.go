package lang

import "errors"

var ErrNotWellFormed = errors.New("not well formed")
