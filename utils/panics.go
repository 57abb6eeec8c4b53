package utils

import "fmt"

// RecoverWithError turns a panic in the deferring function into *err.
func RecoverWithError(err *error) {
	if rv := recover(); rv != nil {
		*err = fmt.Errorf("got panic: %v", rv)
	}
}
