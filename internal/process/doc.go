// Package process terminates the headless Chrome process tree left behind
// by a PDF renderer.
package process
