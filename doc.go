/*
Package joystick implements a virtual analog joystick: a touch driven control surface
which reports the normalized 2-D displacement of its handle to a listener while a
pointer is held, and animates the handle back to the center on release.

The Joystick type is a plain state machine and has no dependency on a user interface
toolkit. A host forwards the pointer events to it and reads back the displacement
to draw the handle. The package ships such a host for Gio (Widget) and a headless
renderer (Render).

The module also provides a command line interface. To check the supported flags type:

	$ joystick --help

In case you wish to integrate the API in a self constructed environment here is a simple example:

	package main

	import (
		"fmt"
		"time"

		"github.com/esimov/joystick"
	)

	func main() {
		q := joystick.NewFrameQueue(time.Now())
		js := joystick.New(q)
		js.UpdateGeometry(400, 400, 0)
		js.Listen(func(x, y int) {
			fmt.Printf("x: %d, y: %d\n", x, y)
		})

		js.OnPress(0, 250, 200) // x: 5, y: 0
		js.OnRelease(0)         // x: 0, y: 0

		// Run the return animation frames from the host's frame loop.
		q.Advance(time.Now())
	}
*/
package joystick
