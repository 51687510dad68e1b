package sortvis

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Dyyynamic/sort-visualizer/internal/hooks"
	"github.com/Dyyynamic/sort-visualizer/internal/lifecycle"
	"github.com/Dyyynamic/sort-visualizer/internal/logging"
	"github.com/Dyyynamic/sort-visualizer/internal/metrics"
	"github.com/Dyyynamic/sort-visualizer/internal/runstate"
	"github.com/Dyyynamic/sort-visualizer/internal/sorting"
	"github.com/Dyyynamic/sort-visualizer/internal/verify"
	"github.com/Dyyynamic/sort-visualizer/source"
)

// Session hosts one run: a sort worker, then an optional verifier.
//
// Session is the main entry point of the library. It handles:
//   - Building the instrumented run state from a sequence source
//   - Launching exactly one background worker at a time
//   - Cooperative cancellation from Cancel, Stop or a cancelled context
//   - Phase tracking, hooks, metrics and logging
//
// Thread Safety:
//   - All public methods are safe for concurrent use
//   - The Observer may be polled from any goroutine while a worker runs
//
// Lifecycle:
//   - Create with NewSession()
//   - Call Start() to launch the sort worker, or Run() for sort plus verify
//   - Poll Observer() from a render loop
//   - Call Stop() to cancel and wait for background goroutines
type Session struct {
	cfg Config
	id  string

	hooks   Hooks
	metrics MetricsCollector
	logger  Logger

	rs    *runstate.RunState
	phase *lifecycle.StateMachine
	work  sorting.Func

	// Lifecycle context handed to hooks; cancelled by Stop.
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu          sync.Mutex
	sortStarted bool
	verifyStart bool
	active      bool
	done        chan struct{} // closed when the most recent worker returns
	started     time.Time
	elapsed     time.Duration
	finished    bool
	result      Result
}

// NewSession creates a Session with the provided configuration.
//
// The initial values are drawn from the sequence source before NewSession
// returns, so the Observer is usable immediately. No worker is started.
//
// Parameters:
//   - cfg: Session configuration (defaults are filled in place)
//   - opts: Optional configuration (source, hooks, metrics, logger)
//
// Returns:
//   - *Session: Initialized session in PhaseIdle
//   - error: ErrInvalidConfig-wrapped validation error, or a source error
//
// Example:
//
//	cfg := sortvis.DefaultConfig()
//	cfg.Algorithm = sortvis.AlgorithmInsertion
//	sess, err := sortvis.NewSession(&cfg, sortvis.WithLogger(logging.NewSlogDefault()))
func NewSession(cfg *Config, opts ...Option) (*Session, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}

	SetDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	options := &sessionOptions{}
	for _, opt := range opts {
		opt(options)
	}

	if options.sourceSet && options.source == nil {
		return nil, ErrSequenceSourceRequired
	}

	metricsCollector := options.metrics
	if metricsCollector == nil {
		metricsCollector = metrics.NewNop()
	}

	loggerInstance := options.logger
	if loggerInstance == nil {
		loggerInstance = logging.NewNop()
	}

	cfg.ValidateWithWarnings(loggerInstance)

	work, err := sorting.Lookup(cfg.Algorithm)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	src := options.source
	if src == nil {
		src = sourceFor(cfg)
	}

	values, err := src.Values(context.Background(), cfg.Size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate initial values: %w", err)
	}
	if len(values) != cfg.Size {
		return nil, fmt.Errorf("sequence source returned %d values, want %d", len(values), cfg.Size)
	}

	ctx, cancel := context.WithCancel(context.Background())

	s := &Session{
		cfg:     *cfg,
		id:      uuid.NewString(),
		hooks:   hooks.Fill(options.hooks),
		metrics: metricsCollector,
		logger:  loggerInstance,
		rs:      runstate.New(values, runstate.WithDelay(cfg.Delay)),
		phase:   lifecycle.NewStateMachine(loggerInstance, metricsCollector),
		work:    work,
		ctx:     ctx,
		cancel:  cancel,
	}

	return s, nil
}

// sourceFor builds the default sequence source for cfg.Input.
func sourceFor(cfg *Config) SequenceSource {
	switch strings.ToLower(cfg.Input) {
	case InputReversed:
		return source.NewReversed()
	case InputSorted:
		return source.NewSorted()
	default:
		return source.NewShuffled(source.SeedFromString(cfg.Seed))
	}
}

// ID returns the session's unique identifier.
func (s *Session) ID() string {
	return s.id
}

// Config returns a copy of the session configuration.
func (s *Session) Config() Config {
	return s.cfg
}

// Phase returns the current phase.
func (s *Session) Phase() Phase {
	return s.phase.Phase()
}

// Observer returns the read-only view polled by render loops.
func (s *Session) Observer() Observer {
	return s.rs
}

// Subscribe returns a channel that receives phase changes.
//
// The channel receives the current phase immediately. Slow subscribers miss
// notifications instead of blocking the session.
//
// Returns:
//   - <-chan Phase: Phase notifications
//   - func(): Unsubscribe function
func (s *Session) Subscribe() (<-chan Phase, func()) {
	return s.phase.Subscribe()
}

// Elapsed returns the wall time of the sort worker.
//
// It grows while the sort runs and stops at completion or cancellation.
func (s *Session) Elapsed() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case !s.sortStarted:
		return 0
	case s.finished:
		return s.elapsed
	default:
		return time.Since(s.started)
	}
}

// Start launches the sort worker in the background.
//
// Cancelling ctx requests cancellation of the worker.
//
// Parameters:
//   - ctx: Context whose cancellation cancels the run
//
// Returns:
//   - error: ErrAlreadyStarted if Start was called before
func (s *Session) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sortStarted {
		return ErrAlreadyStarted
	}
	if s.rs.Cancelled() {
		return fmt.Errorf("session cancelled: %w", context.Canceled)
	}

	s.sortStarted = true
	s.active = true
	s.started = time.Now()
	done := make(chan struct{})
	s.done = done

	s.transition(PhaseSorting)
	s.logger.Info("sort started",
		"session", s.id,
		"algorithm", s.cfg.Algorithm.String(),
		"size", s.cfg.Size,
		"delay", s.cfg.Delay,
	)

	stop := context.AfterFunc(ctx, s.rs.Cancel)
	s.wg.Go(func() {
		defer close(done)
		defer stop()

		completed := s.work(s.rs)
		s.finishSort(completed)
	})

	return nil
}

func (s *Session) finishSort(completed bool) {
	s.mu.Lock()
	elapsed := time.Since(s.started)
	s.elapsed = elapsed
	s.finished = true
	s.active = false

	res := Result{
		Algorithm:   s.cfg.Algorithm,
		Comparisons: s.rs.Comparisons(),
		Accesses:    s.rs.Accesses(),
		Elapsed:     elapsed,
		Cancelled:   !completed,
	}
	if completed {
		s.transition(PhaseSorted)
		s.metrics.RecordRunCompleted(s.cfg.Algorithm, s.cfg.Size, res.Comparisons, res.Accesses, elapsed.Seconds())
		s.logger.Info("sort completed",
			"session", s.id,
			"algorithm", s.cfg.Algorithm.String(),
			"comparisons", res.Comparisons,
			"accesses", res.Accesses,
			"elapsed", elapsed,
		)
	} else {
		s.transition(PhaseCancelled)
		s.metrics.RecordRunCancelled(s.cfg.Algorithm)
		s.logger.Info("sort cancelled",
			"session", s.id,
			"algorithm", s.cfg.Algorithm.String(),
			"comparisons", res.Comparisons,
		)
	}
	res.Phase = s.phase.Phase()
	s.result = res
	s.mu.Unlock()

	s.fireCompleted(res)
}

// Verify launches the verifier in the background.
//
// Parameters:
//   - ctx: Context whose cancellation cancels the sweep
//
// Returns:
//   - error: ErrWorkerActive while the sort worker runs, ErrNotSorted before
//     the completion flag is set, ErrAlreadyStarted on a second call
func (s *Session) Verify(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active {
		return ErrWorkerActive
	}
	if s.verifyStart {
		return ErrAlreadyStarted
	}
	if !s.rs.Sorted() || s.phase.Phase() != PhaseSorted {
		return ErrNotSorted
	}

	s.verifyStart = true
	s.active = true
	done := make(chan struct{})
	s.done = done

	s.transition(PhaseVerifying)

	stop := context.AfterFunc(ctx, s.rs.Cancel)
	s.wg.Go(func() {
		defer close(done)
		defer stop()

		start := time.Now()
		completed, err := verify.Run(s.rs)
		s.finishVerify(completed, err, time.Since(start))
	})

	return nil
}

func (s *Session) finishVerify(completed bool, err error, took time.Duration) {
	s.mu.Lock()
	s.active = false
	s.metrics.RecordVerifyDuration(took.Seconds())

	res := s.result
	res.Accesses = s.rs.Accesses()
	res.Err = err

	switch {
	case err != nil:
		s.transition(PhaseFailed)
		s.metrics.RecordIntegrityViolation(s.cfg.Algorithm)
		s.logger.Error("verification failed",
			"session", s.id,
			"algorithm", s.cfg.Algorithm.String(),
			"error", err,
		)
	case completed:
		s.transition(PhaseVerified)
		s.logger.Info("verification succeeded", "session", s.id, "took", took)
	default:
		res.Cancelled = true
		s.transition(PhaseCancelled)
		s.logger.Info("verification cancelled", "session", s.id)
	}
	res.Phase = s.phase.Phase()
	s.result = res
	s.mu.Unlock()

	if err != nil {
		s.fireError(err)
	}
	s.fireCompleted(res)
}

// Wait blocks until the most recently started worker returns.
//
// Parameters:
//   - ctx: Context bounding the wait; its cancellation does not cancel the run
//
// Returns:
//   - Result: Outcome of the worker
//   - error: ErrNotStarted, ctx.Err(), or the worker's error
func (s *Session) Wait(ctx context.Context) (Result, error) {
	s.mu.Lock()
	done := s.done
	s.mu.Unlock()

	if done == nil {
		return Result{}, ErrNotStarted
	}

	select {
	case <-done:
	case <-ctx.Done():
		return Result{}, ctx.Err()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.result, s.result.Err
}

// Run sorts, then verifies when the sort completes.
//
// Parameters:
//   - ctx: Context whose cancellation cancels the run
//
// Returns:
//   - Result: Final outcome; Cancelled is set if the run was interrupted
//   - error: Integrity violation or lifecycle error; cancellation is not an error
func (s *Session) Run(ctx context.Context) (Result, error) {
	if err := s.Start(ctx); err != nil {
		return Result{}, err
	}

	res, err := s.Wait(context.Background())
	if err != nil || res.Cancelled {
		return res, err
	}

	if err := s.Verify(ctx); err != nil {
		return res, err
	}

	return s.Wait(context.Background())
}

// Cancel requests cooperative cancellation of the current worker.
//
// Safe to call multiple times and from any goroutine. Returns immediately.
func (s *Session) Cancel() {
	s.rs.Cancel()
}

// Stop cancels the run and waits for background goroutines (workers and hooks).
//
// Parameters:
//   - ctx: Context bounding the wait
//
// Returns:
//   - error: ctx.Err() if goroutines did not exit in time
func (s *Session) Stop(ctx context.Context) error {
	s.rs.Cancel()

	s.mu.Lock()
	if !s.active && !s.phase.Phase().Terminal() {
		s.transition(PhaseCancelled)
	}
	s.mu.Unlock()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	var err error
	select {
	case <-done:
		s.logger.Debug("session stopped", "session", s.id)
	case <-ctx.Done():
		s.logger.Error("shutdown timeout exceeded, some goroutines may still be running", "session", s.id)
		err = ctx.Err()
	}

	s.cancel()
	s.phase.Close()

	return err
}

// transition changes phase and fires the phase hook. Caller holds s.mu.
func (s *Session) transition(to Phase) {
	from, ok := s.phase.Transition(to)
	if !ok {
		return
	}

	s.wg.Go(func() {
		if err := s.hooks.OnPhaseChanged(s.ctx, from, to); err != nil {
			s.logger.Error("phase change hook error", "from", from.String(), "to", to.String(), "error", err)
		}
	})
}

func (s *Session) fireCompleted(res Result) {
	s.wg.Go(func() {
		if err := s.hooks.OnCompleted(s.ctx, res); err != nil {
			s.logger.Error("completion hook error", "error", err)
		}
	})
}

func (s *Session) fireError(cause error) {
	s.wg.Go(func() {
		if err := s.hooks.OnError(s.ctx, cause); err != nil {
			s.logger.Error("error hook error", "error", err)
		}
	})
}
