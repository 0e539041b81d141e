// Package testing provides deterministic helpers for testing pressable
// controls.
//
// # Quick Start
//
// Create a harness, mount a controller on a recording surface, and drive it
// with simulated gestures:
//
//	func TestMyButton(t *testing.T) {
//	    h := drifttest.NewHarness(t)
//	    surface := drifttest.NewRecordingSurface(graphics.RectFromLTWH(0, 0, 100, 40))
//	    ctrl := pressable.New(pressable.ConfigOf(onPress))
//	    ctrl.Mount(surface)
//
//	    sim := drifttest.NewGestureSimulator(h, ctrl)
//	    sim.Tap(graphics.Offset{X: 50, Y: 20}, 10*time.Millisecond)
//	    h.Advance(300 * time.Millisecond)
//
//	    if surface.Opacity() != 1 {
//	        t.Error("expected the press-out fade to finish")
//	    }
//	}
//
// # Time
//
// The harness installs a [FakeClock] as the animation clock. Timers and
// animations only move when frames are stepped, so use [Harness.Advance]
// rather than advancing the clock directly. Frames are 1ms apart by default,
// which keeps timer deadlines exact.
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import drifttest "github.com/go-drift/pressable/pkg/testing"
package testing
