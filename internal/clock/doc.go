// Package clock measures elapsed time against a monotonic source and converts raw nanosecond
// durations into coarser units, from microseconds up to years.
//
// Every Timer reads against an Epoch: a single instant captured once from a Source. Timers that
// share an Epoch report begin and now offsets on the same scale, so readings taken by different
// timers within one process are directly comparable. The process-wide default Epoch is created
// lazily, exactly once, on first use; callers that want isolation (tests, in particular) construct
// their own Epoch over an alternate Source and bind timers to it explicitly.
//
// Durations are carried as time.Duration, an int64 nanosecond count. The supported range of any
// reading is therefore roughly 292 years in either direction; longer readings overflow silently.
package clock
