// Package publish streams session progress to NATS subscribers.
//
// A Publisher is a remote observer: it polls the run with Peek, so it never
// drains the access markers a local render loop relies on.
package publish

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"golang.org/x/time/rate"

	"github.com/Dyyynamic/sort-visualizer/types"
)

// flushTimeout bounds the final flush after the publisher stops.
const flushTimeout = 2 * time.Second

// ProgressEvent is the JSON payload published on <prefix>.<session>.progress.
type ProgressEvent struct {
	SessionID    string    `json:"sessionId"`
	Algorithm    string    `json:"algorithm"`
	Phase        string    `json:"phase"`
	Size         int       `json:"size"`
	Comparisons  int       `json:"comparisons"`
	Accesses     int       `json:"accesses"`
	Cursor       int       `json:"cursor"`
	Boundary     int       `json:"boundary"`
	Pivot        int       `json:"pivot"`
	VerifiedUpTo int       `json:"verifiedUpTo"`
	Sorted       bool      `json:"sorted"`
	Verified     bool      `json:"verified"`
	Values       []int     `json:"values,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}

// PhaseEvent is the JSON payload published on <prefix>.<session>.phase.
type PhaseEvent struct {
	SessionID string    `json:"sessionId"`
	Phase     string    `json:"phase"`
	Timestamp time.Time `json:"timestamp"`
}

// Config controls what and how often the publisher sends.
type Config struct {
	// SubjectPrefix is the first subject token.
	SubjectPrefix string

	// Interval is the minimum time between progress events.
	Interval time.Duration

	// IncludeValues adds the full element list to every progress event.
	IncludeValues bool
}

// Publisher publishes progress and phase events for one session.
type Publisher struct {
	conn      *nats.Conn
	cfg       Config
	sessionID string
	algorithm types.Algorithm
	observer  types.Observer
	logger    types.Logger

	phase        types.Phase
	lastProgress [2]int // comparisons, accesses of the previous event
	published    bool
}

// ProgressSubject returns the subject progress events are published on.
func ProgressSubject(prefix, sessionID string) string {
	return fmt.Sprintf("%s.%s.progress", prefix, sessionID)
}

// PhaseSubject returns the subject phase events are published on.
func PhaseSubject(prefix, sessionID string) string {
	return fmt.Sprintf("%s.%s.phase", prefix, sessionID)
}

// New creates a Publisher.
//
// Parameters:
//   - conn: Connected NATS client
//   - sessionID: Session identifier used in subjects and payloads
//   - algorithm: Algorithm of the session
//   - observer: Run to poll
//   - cfg: Subject prefix and throttle interval
//   - logger: Logger for publish failures
//
// Returns:
//   - *Publisher: Publisher ready to Run
func New(conn *nats.Conn, sessionID string, algorithm types.Algorithm, observer types.Observer, cfg Config, logger types.Logger) *Publisher {
	if cfg.SubjectPrefix == "" {
		cfg.SubjectPrefix = "sortvis"
	}
	if cfg.Interval <= 0 {
		cfg.Interval = 100 * time.Millisecond
	}

	return &Publisher{
		conn:      conn,
		cfg:       cfg,
		sessionID: sessionID,
		algorithm: algorithm,
		observer:  observer,
		logger:    logger,
	}
}

// Run publishes until ctx is cancelled, phases is closed, or a terminal phase arrives.
//
// A final progress event is always published before Run returns.
//
// Parameters:
//   - ctx: Context whose cancellation stops the publisher
//   - phases: Phase notifications, typically from Session.Subscribe
//
// Returns:
//   - error: Flush failure after the final event; nil otherwise
func (p *Publisher) Run(ctx context.Context, phases <-chan types.Phase) error {
	limiter := rate.NewLimiter(rate.Every(p.cfg.Interval), 1)

	for {
		if err := limiter.Wait(ctx); err != nil {
			return p.finish()
		}

		if done := p.drainPhases(phases); done {
			return p.finish()
		}

		p.publishProgress(false)
	}
}

// drainPhases publishes every pending phase and reports whether the run is over.
func (p *Publisher) drainPhases(phases <-chan types.Phase) bool {
	for {
		select {
		case phase, ok := <-phases:
			if !ok {
				return true
			}
			p.phase = phase
			p.publishPhase(phase)
			if phase.Terminal() {
				return true
			}
		default:
			return false
		}
	}
}

func (p *Publisher) finish() error {
	p.publishProgress(true)

	if err := p.conn.FlushTimeout(flushTimeout); err != nil {
		return fmt.Errorf("flush progress events: %w", err)
	}

	return nil
}

// publishProgress sends a progress event when the counters moved since the
// previous one, or unconditionally when force is set.
func (p *Publisher) publishProgress(force bool) {
	snap := p.observer.Peek()

	key := [2]int{snap.Comparisons, snap.Accesses}
	if !force && p.published && key == p.lastProgress {
		return
	}

	evt := ProgressEvent{
		SessionID:    p.sessionID,
		Algorithm:    p.algorithm.String(),
		Phase:        p.phase.Label(),
		Size:         len(snap.Values),
		Comparisons:  snap.Comparisons,
		Accesses:     snap.Accesses,
		Cursor:       snap.Cursor,
		Boundary:     snap.Boundary,
		Pivot:        snap.Pivot,
		VerifiedUpTo: snap.VerifiedUpTo,
		Sorted:       snap.Sorted,
		Verified:     snap.Verified,
		Timestamp:    time.Now(),
	}
	if p.cfg.IncludeValues {
		evt.Values = snap.Values
	}

	if p.publish(ProgressSubject(p.cfg.SubjectPrefix, p.sessionID), evt) {
		p.lastProgress = key
		p.published = true
	}
}

func (p *Publisher) publishPhase(phase types.Phase) {
	p.publish(PhaseSubject(p.cfg.SubjectPrefix, p.sessionID), PhaseEvent{
		SessionID: p.sessionID,
		Phase:     phase.Label(),
		Timestamp: time.Now(),
	})
}

func (p *Publisher) publish(subject string, payload any) bool {
	data, err := json.Marshal(payload)
	if err != nil {
		p.logger.Error("failed to encode event", "subject", subject, "error", err)
		return false
	}

	if err := p.conn.Publish(subject, data); err != nil {
		p.logger.Warn("failed to publish event", "subject", subject, "error", err)
		return false
	}

	return true
}
