package action

// CursorState is one sample of the OS pointer.
type CursorState struct {
	X, Y int
	Down bool
}

// CursorSource samples the pointer; ok is false when the platform offers no
// global pointer query.
type CursorSource func() (CursorState, bool)
