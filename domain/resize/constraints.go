package resize

import (
	"math"

	"github.com/soocke/gripframe/domain/geometry"
)

// Constraints holds the minimum size policy and the aspect lock.
//
// While AspectLock is set the minimums are frozen: setters refuse changes and
// the previous value is kept. The zero value is unlocked with no minimum, which
// the Engine never uses directly (see NewConstraints).
type Constraints struct {
	MinWidth    float64
	MinHeight   float64
	AspectLock  bool
	AspectRatio float64 // width/height captured when the lock was enabled

	unlockedW, unlockedH float64
}

// NewConstraints returns unlocked constraints. Non-positive minimums fall back to 1.
func NewConstraints(minW, minH float64) Constraints {
	if minW <= 0 {
		minW = 1
	}
	if minH <= 0 {
		minH = 1
	}
	return Constraints{MinWidth: minW, MinHeight: minH}
}

// SetMinWidth changes the minimum width. It reports false and keeps the old
// value when locked or when v is not positive.
func (c *Constraints) SetMinWidth(v float64) bool {
	if c.AspectLock || !(v > 0) || math.IsInf(v, 0) {
		return false
	}
	c.MinWidth = v
	return true
}

// SetMinHeight is the vertical counterpart of SetMinWidth.
func (c *Constraints) SetMinHeight(v float64) bool {
	if c.AspectLock || !(v > 0) || math.IsInf(v, 0) {
		return false
	}
	c.MinHeight = v
	return true
}

// Lock enables the aspect lock using frame's ratio. The minimums are scaled
// up so that they share that ratio while still honouring both previous
// minimums. Lock fails on a degenerate frame.
func (c *Constraints) Lock(frame geometry.Rect) bool {
	if frame.IsEmpty() {
		return false
	}
	if c.AspectLock {
		return true
	}
	c.unlockedW, c.unlockedH = c.MinWidth, c.MinHeight
	// the binding axis keeps its exact value
	if c.MinWidth/frame.W >= c.MinHeight/frame.H {
		c.MinHeight = c.MinWidth * frame.H / frame.W
	} else {
		c.MinWidth = c.MinHeight * frame.W / frame.H
	}
	c.AspectRatio = frame.W / frame.H
	c.AspectLock = true
	return true
}

// Unlock disables the aspect lock and restores the minimums that were in
// effect before Lock.
func (c *Constraints) Unlock() {
	if !c.AspectLock {
		return
	}
	c.AspectLock = false
	c.AspectRatio = 0
	if c.unlockedW > 0 {
		c.MinWidth = c.unlockedW
	}
	if c.unlockedH > 0 {
		c.MinHeight = c.unlockedH
	}
	c.unlockedW, c.unlockedH = 0, 0
}
