// Package runstate owns the shared state of one visualization run.
//
// A RunState aggregates the instrumented sequence, the comparisons counter,
// algorithm progress indices and the completion/verified flags behind a single
// mutex. Workers advance it one unit of work at a time through Unit; observers
// read it through Snapshot and Peek.
//
// # Locking Discipline
//
// Every field except the cancellation flag is read or written only while the
// lock is held. A unit of work is:
//
//  1. acquire the lock
//  2. enable counting (scoped guard)
//  3. run exactly one comparison, swap or move
//  4. increment comparisons (compare units only)
//  5. restore counting
//  6. release the lock
//  7. return immediately if cancellation was requested
//  8. otherwise sleep the pacing delay, waking early on cancellation
//
// The lock is never held across a sleep, so an observer interleaves with the
// worker at unit granularity and always sees a complete unit.
//
// # Cancellation
//
// Cancel flips an atomic flag and closes a channel. Neither needs the lock, so
// the host can request a stop without waiting for the worker.
package runstate
