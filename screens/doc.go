// Package screens holds the modal overlays pushed onto the screen stack:
// the command palette, the model picker, and the generic option picker.
// Screens own their input state and pop themselves by returning done=true.
package screens
