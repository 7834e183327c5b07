package commons

import "errors"

// ErrValidation marks request errors detected before the ledger is touched.
var ErrValidation = errors.New("validation failed")
