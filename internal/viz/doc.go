// Package viz draws views in the terminal.
//
//   - [Canvas]: braille surface, 2x4 sub-pixels per cell
//   - [Model]: Bubble Tea program that ticks one view at the configured
//     frame rate
//   - [RunInteractive]: view picker in front of [Model]
//   - Themes: five lipgloss colour schemes
//
// # Key Bindings
//
//	Space - Pause/Resume
//	R     - Reset the view
//	Tab   - Select parameter
//	Up/Dn - Adjust the selected parameter
//	T     - Cycle color themes
//	G     - Toggle GIF recording
//	?     - Show help overlay
//
// # Recording
//
// G starts capturing the canvas each frame and G again writes the frames as
// a GIF to the path given to [NewModel].
package viz
