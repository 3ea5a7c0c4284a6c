// Package scheduler runs a set of engines concurrently against one request.
//
// Each engine executes as an independent goroutine with its own copy of the
// request; a failure, panic, or timeout in one engine never affects another's
// in-flight run. The scheduler is an all-complete barrier, not a race: it
// waits for every launched engine and returns one Outcome per engine in input
// order, so output is deterministic regardless of actual concurrent timing.
// The only early exit is caller cancellation, which propagates to all
// in-flight engines and returns promptly without waiting for stragglers.
package scheduler
