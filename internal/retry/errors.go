package retry

import "errors"

// ErrExhausted — все попытки исчерпаны.
var ErrExhausted = errors.New("all attempts failed")
