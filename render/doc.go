// Package render turns engine state into colorized display strings for
// terminal front-ends. It is the presentation side of the module's
// boundary: nothing here mutates game state, handles input, or lays out
// a screen — a UI calls these helpers after a change notification and
// prints the results however it likes.
//
// Red suits render in red, black suits in bright white, and the pile
// markers in a dim gray. Color degrades to plain text automatically on
// non-TTY writers (fatih/color's NoColor handling).
package render
