// Package pacer implements the paced execution loop.
//
// Each iteration has two phases. Measure reads the full-width counter,
// forwards the microseconds elapsed since the previous iteration to the
// machine and keeps the reading as the new baseline. Pace then busy-waits on
// the low-word counter until at least the pacing budget has passed. The
// phases never overlap and the loop never yields.
package pacer
