// Package viz renders walks in the terminal.
//
// The live view runs a sketch.Session inside a Bubble Tea program:
//
//   - [Model]: tick loop, window sizing and key handling around a session
//   - [Screen]: half-block pixel surface the session draws on
//   - [Braille]: dot-matrix thumbnail of a whole walk
//   - [Picker]: menu of registry entries that starts the live view
//
// # Key Bindings
//
//	S     - Toggle the stats overlay
//	G     - Toggle GIF recording
//	?     - Show help overlay
//	Q     - Quit
//
// # Recording
//
// G starts capturing every drawn frame; pressing it again writes
// <name>.gif to the data directory.
package viz
