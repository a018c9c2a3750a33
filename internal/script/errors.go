package script

import "errors"

// ErrEngineClosed indicates use of an engine after Close.
var ErrEngineClosed = errors.New("script engine is closed")
