// Package sortvis runs instrumented sorting algorithms that can be watched live.
//
// A Session owns one run: an instrumented sequence, a background algorithm
// worker, and a verifier that sweeps the result afterwards. The worker
// performs its work in small units; each unit holds the run's lock while it
// touches the data, then sleeps the pacing delay without it. Observers take
// consistent snapshots between units and see exactly which elements were
// touched since their previous snapshot.
//
// # Quick Start
//
//	cfg := sortvis.DefaultConfig()
//	cfg.Algorithm = sortvis.AlgorithmBubble
//	cfg.Size = 50
//
//	sess, err := sortvis.NewSession(&cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := sess.Start(ctx); err != nil {
//	    log.Fatal(err)
//	}
//	snap := sess.Observer().Snapshot()
//	fmt.Println(snap.Comparisons, snap.Accessed)
//
//	res, err := sess.Wait(ctx)
//
// # Lifecycle
//
// A session moves through phases:
//
//	IDLE → SORTING → SORTED → VERIFYING → VERIFIED
//
// CANCELLED and FAILED are terminal. Cancellation is cooperative: the worker
// notices it within one unit of work, including during a pacing sleep, and
// never sets the completion flag afterwards.
//
// # Counting
//
// Comparisons are counted once per comparison unit. Array accesses are
// counted by the sequence itself, only while a worker holds the lock, so
// observer reads never inflate the counters.
//
// See the examples/ directory and cmd/sortvis for complete programs.
package sortvis
