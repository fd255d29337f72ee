package catalog

import "errors"

var ErrNotFound = errors.New("listing not found")
