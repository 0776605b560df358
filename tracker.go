package joystick

// tracker arbitrates which pointer, if any, drives the displacement.
type tracker struct {
	id       int
	captured bool
}

// claim captures the pointer if nothing is captured yet and the horizontal
// position x, relative to the center, lies inside the hit region around the touch offset.
func (t *tracker) claim(id int, x, offsetX, halfExtent float64) bool {
	if t.captured {
		return false
	}
	if x < offsetX-halfExtent || x > offsetX+halfExtent {
		return false
	}
	t.id, t.captured = id, true

	return true
}

// owns reports whether the pointer id is the captured one.
func (t *tracker) owns(id int) bool {
	return t.captured && t.id == id
}

// release frees the capture held by id.
func (t *tracker) release(id int) bool {
	if !t.owns(id) {
		return false
	}
	t.captured = false

	return true
}

// reset frees the capture regardless of the owning pointer.
func (t *tracker) reset() bool {
	if !t.captured {
		return false
	}
	t.captured = false

	return true
}
