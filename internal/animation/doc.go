// Package animation drives a pipeline at a fixed frame rate.
//
// A [Runner] owns the single [pipeline.Context] of an animation. Each tick it
// shifts the current frame into PrevFrame, allocates a fresh frame, stores
// the user tick value, runs the chain, notifies observers and then sleeps
// for the remainder of the frame:
//
//	wait = 1s/FrameRate - processing - 1ms
//
// A negative wait fires immediately; the loop never skips ticks to catch up.
//
// Under the Skip policy a failed tick is dropped whole: observers do not see
// it and the next tick's PrevFrame is the last frame that rendered.
//
// # Cancellation
//
// Run blocks until its context is cancelled, MaxFrames ticks have run or a
// tick fails under the Halt policy. Start runs the loop in a goroutine and
// returns a [Handle] for shutting it down.
//
// # Thread Safety
//
// Exactly one tick is in flight at a time. Stages, tick functions and
// observers all run on the loop goroutine and must not retain the Context.
package animation
