// Package gesture recognizes pointer gestures (tap, double-tap, press,
// drag and flick) from raw mouse and touch input and delivers them to
// listeners on a tree of hit-testable nodes, for [Ebitengine] games and
// tools.
//
// # Quick start
//
// Build a node tree, attach listeners and call [Scene.Update] once per
// frame from your game's Update:
//
//	scene := gesture.NewScene()
//	card := gesture.NewNode("card", 120, 80, "card")
//	card.X, card.Y = 40, 40
//	scene.Root().AddChild(card)
//
//	card.On(gesture.GestureTap, func(e *gesture.Event) {
//		fmt.Println("tapped", e.CurrentTarget.Name)
//	})
//
//	type Game struct{ scene *gesture.Scene }
//
//	func (g *Game) Update() error { g.scene.Update(); return nil }
//
// # Gestures
//
// Every pointer-down starts a session that ends in at most one outcome:
//
//   - tap: released on the node it was pressed on, without moving. Taps are
//     held back for [Config.DoubleTapInterval] in case a second tap follows.
//   - doubletap: a second tap on the same node inside that window. The held
//     tap is dropped.
//   - press: held still for [Config.PressDuration]. No tap follows it.
//   - drag: moved farther than [Config.MoveThreshold]. One drag event per
//     move, deltas against the previous sample; the last one has End set.
//     The node a drag starts on receives all of its events.
//   - flick: emitted after the final drag when the whole session took less
//     than [Config.FlickDuration].
//
// # Listeners
//
// [Node.On] attaches a direct listener; it sees gestures on the node and on
// its descendants. [Node.OnDelegate] attaches a delegated listener that
// fires only for descendants matching a [Selector], with
// [Event.CurrentTarget] set to the matching descendant. Events bubble from
// the target to the root; at each node delegated listeners run before
// direct ones, each in registration order.
//
// # Testing
//
// [ManualClock] with [Scene.SetClock], [Scene.SetInputSource](nil) and the
// Inject helpers ([Scene.InjectTap], [Scene.InjectHold],
// [Scene.InjectDrag], ...) replay exact timelines. [LoadTestScript] does the
// same from JSON.
//
// ECS integration is available via the Donburi adapter in gesture/ecs.
//
// [Ebitengine]: https://ebitengine.org
package gesture
