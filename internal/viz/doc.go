// Package viz previews a running animation in the terminal.
//
// The live view is a Bubble Tea program fed from the animation loop through
// [Feed]. Each pixel is drawn as a two-cell block in its own colour; unset
// pixels show as dots.
//
// # Key Bindings
//
//	Space - Freeze/unfreeze the preview (the loop keeps running)
//	P     - Toggle logical/physical order
//	?     - Show help overlay
//	Q     - Quit
package viz
