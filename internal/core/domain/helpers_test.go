package domain_test

import "testing"

// recoverError runs fn and returns the error it panicked with, or nil.
func recoverError(t *testing.T, fn func()) (err error) {
	t.Helper()
	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(error)
			if !ok {
				t.Fatalf("expected panic with error, got %T: %v", r, r)
			}
			err = e
		}
	}()
	fn()
	return nil
}
