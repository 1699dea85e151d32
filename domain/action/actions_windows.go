//go:build windows

package action

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

const vkLButton = 0x01

var (
	user32               = windows.NewLazySystemDLL("user32.dll")
	procGetCursorPos     = user32.NewProc("GetCursorPos")
	procGetAsyncKeyState = user32.NewProc("GetAsyncKeyState")
	procSetCursorPos     = user32.NewProc("SetCursorPos")
)

// Cursor samples the OS pointer position (screen pixels) and the primary
// button state. Windows implementation using GetCursorPos/GetAsyncKeyState.
func Cursor() (CursorState, bool) {
	var pt struct{ X, Y int32 }
	r1, _, _ := procGetCursorPos.Call(uintptr(unsafe.Pointer(&pt)))
	if r1 == 0 {
		return CursorState{}, false
	}
	state, _, _ := procGetAsyncKeyState.Call(vkLButton)
	return CursorState{X: int(pt.X), Y: int(pt.Y), Down: state&0x8000 != 0}, true
}

// MoveCursor moves the OS mouse pointer to (x, y).
// Windows implementation using SetCursorPos.
func MoveCursor(x, y int) {
	_, _, _ = procSetCursorPos.Call(uintptr(x), uintptr(y))
}
