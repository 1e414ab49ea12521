// Package writers owns every file the splitter creates.
//
// Design:
//   • Rotator keeps at most one output open and closes it explicitly on rotation.
//   • Splitter logic only sees the Sink interface; dry runs swap in Discard.
package writers
