//go:build !windows

package action

// Cursor reports no pointer outside Windows; hosts fall back to their own
// input events.
func Cursor() (CursorState, bool) { return CursorState{}, false }

// MoveCursor is a no-op outside Windows.
func MoveCursor(x, y int) {}
