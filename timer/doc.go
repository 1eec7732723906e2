// Package timer wraps a free-running hardware counter.
//
// The counter is exposed through two views: a full-width reading used once
// per loop iteration to measure elapsed time, and a narrow 32-bit reading
// cheap enough to poll continuously while pacing. Every difference between
// two readings is taken with modular subtraction, so a wrap of the counter
// between readings never produces a negative or inflated duration.
package timer
