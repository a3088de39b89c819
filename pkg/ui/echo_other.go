//go:build !linux

package ui

// disableInputEcho is a no-op where termios ioctls are not wired.
func disableInputEcho(int) (func(), error) {
	return nil, nil
}
