// Package daemon provides the long-running background ledger monitor service.
package daemon

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"ponto/internal/model"
	"ponto/internal/store"
	"ponto/internal/timesheet"
)

// Config controls the daemon runtime behavior.
type Config struct {
	DataPath      string
	WeeklyTarget  float64
	Interval      time.Duration
	Addr          string
	EventsBuffer  int
	RemindersOn   bool
	ReminderTimes []string // "HH:MM", local time
}

// Snapshot is a compact ledger state for status/event payloads.
type Snapshot struct {
	At            time.Time `json:"at"`
	Date          string    `json:"date"`
	Punches       int       `json:"punches"`
	NextKind      string    `json:"next_kind,omitempty"`
	Complete      bool      `json:"complete"`
	TodayHours    float64   `json:"today_hours"`
	WeeklyBalance float64   `json:"weekly_balance"`
}

// Delta captures snapshot deltas between polls.
type Delta struct {
	Punches       int     `json:"punches"`
	TodayHours    float64 `json:"today_hours"`
	WeeklyBalance float64 `json:"weekly_balance"`
}

func (d Delta) isZero() bool {
	return d.Punches == 0 &&
		d.TodayHours == 0 &&
		d.WeeklyBalance == 0
}

// Event is emitted whenever the ledger snapshot updates or a reminder fires.
type Event struct {
	ID        int64     `json:"id"`
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Snapshot  Snapshot  `json:"snapshot"`
	Delta     Delta     `json:"delta"`
	Message   string    `json:"message,omitempty"`
}

// Status is served at /v1/status.
type Status struct {
	StartedAt       time.Time `json:"started_at"`
	LastPollAt      time.Time `json:"last_poll_at"`
	PollIntervalSec int       `json:"poll_interval_sec"`
	PollCount       int64     `json:"poll_count"`
	DataPath        string    `json:"data_path"`
	Summary         Snapshot  `json:"summary"`
	LastError       string    `json:"last_error,omitempty"`
	EventCount      int       `json:"event_count"`
	SubscriberCount int       `json:"subscriber_count"`
}

// Service provides the daemon runtime and HTTP API.
type Service struct {
	cfg Config

	mu          sync.RWMutex
	startedAt   time.Time
	lastPollAt  time.Time
	pollCount   int64
	lastError   string
	hasSnapshot bool
	snapshot    Snapshot
	nextEventID int64
	events      []Event

	nextSubID int
	subs      map[int]chan Event
}

// New returns a new daemon service with the provided config.
func New(cfg Config) *Service {
	if cfg.Interval < 2*time.Second {
		cfg.Interval = 30 * time.Second
	}
	if cfg.EventsBuffer < 1 {
		cfg.EventsBuffer = 200
	}
	if cfg.Addr == "" {
		cfg.Addr = "127.0.0.1:8799"
	}
	if cfg.WeeklyTarget <= 0 {
		cfg.WeeklyTarget = timesheet.DefaultWeeklyTarget
	}

	return &Service{
		cfg:       cfg,
		startedAt: time.Now(),
		subs:      make(map[int]chan Event),
	}
}

// Run starts HTTP endpoints, polling, and reminder scheduling until ctx
// is canceled.
func (s *Service) Run(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/v1/status", s.handleStatus)
	mux.HandleFunc("/v1/events", s.handleEvents)
	mux.HandleFunc("/v1/stream", s.handleStream)

	server := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Seed initial snapshot so status is useful immediately.
	s.pollOnce()

	if s.cfg.RemindersOn {
		s.scheduleNextReminder(ctx, time.Now())
	}

	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		case <-ticker.C:
			s.pollOnce()
		case err := <-errCh:
			return fmt.Errorf("daemon http server: %w", err)
		}
	}
}

func (s *Service) pollOnce() {
	ledger, err := s.loadLedger()
	if err != nil {
		s.mu.Lock()
		s.lastError = err.Error()
		s.lastPollAt = time.Now()
		s.pollCount++
		s.mu.Unlock()
		log.Printf("ponto daemon poll error: %v", err)
		return
	}

	now := time.Now()
	snap := snapshotLedger(ledger, now, s.cfg.WeeklyTarget)

	var (
		ev      Event
		publish bool
	)

	s.mu.Lock()
	prev := s.snapshot
	prevExists := s.hasSnapshot

	s.hasSnapshot = true
	s.snapshot = snap
	s.lastPollAt = now
	s.pollCount++
	s.lastError = ""

	if !prevExists {
		s.nextEventID++
		ev = Event{
			ID:        s.nextEventID,
			Type:      "snapshot",
			Timestamp: now,
			Snapshot:  snap,
			Delta:     Delta{},
		}
		publish = true
	} else {
		delta := diffSnapshots(prev, snap)
		if !delta.isZero() {
			s.nextEventID++
			ev = Event{
				ID:        s.nextEventID,
				Type:      "punch_delta",
				Timestamp: now,
				Snapshot:  snap,
				Delta:     delta,
			}
			publish = true
		}
	}
	s.mu.Unlock()

	if publish {
		s.publishEvent(ev)
	}
}

// loadLedger reads the ledger from the store. The daemon never writes it:
// ledger mutation is reserved for user-initiated actions so a reminder can
// never race a punch write.
func (s *Service) loadLedger() (model.Ledger, error) {
	st, err := store.Open(s.cfg.DataPath)
	if err != nil {
		return nil, err
	}
	defer func() { _ = st.Close() }()
	return st.LoadLedger()
}

func snapshotLedger(ledger model.Ledger, now time.Time, target float64) Snapshot {
	date := model.DateKey(now)
	day, _ := ledger.Day(date)
	day.Date = date

	snap := Snapshot{
		At:            now,
		Date:          date,
		Punches:       len(day.Punches),
		Complete:      day.Complete(),
		TodayHours:    timesheet.WorkedHours(day),
		WeeklyBalance: timesheet.WeeklyBalance(ledger, now, target),
	}
	if kind, ok := day.NextKind(); ok {
		snap.NextKind = string(kind)
	}
	return snap
}

func diffSnapshots(prev, curr Snapshot) Delta {
	if prev.Date != curr.Date {
		// Day rollover: report the new day's state as the delta.
		return Delta{
			Punches:       curr.Punches,
			TodayHours:    curr.TodayHours,
			WeeklyBalance: curr.WeeklyBalance - prev.WeeklyBalance,
		}
	}
	return Delta{
		Punches:       curr.Punches - prev.Punches,
		TodayHours:    curr.TodayHours - prev.TodayHours,
		WeeklyBalance: curr.WeeklyBalance - prev.WeeklyBalance,
	}
}

func (s *Service) publishEvent(ev Event) {
	s.mu.Lock()
	s.events = append(s.events, ev)
	if len(s.events) > s.cfg.EventsBuffer {
		s.events = s.events[len(s.events)-s.cfg.EventsBuffer:]
	}

	for _, ch := range s.subs {
		select {
		case ch <- ev:
		default:
		}
	}
	s.mu.Unlock()
}

func (s *Service) snapshotStatus() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Status{
		StartedAt:       s.startedAt,
		LastPollAt:      s.lastPollAt,
		PollIntervalSec: int(s.cfg.Interval.Seconds()),
		PollCount:       s.pollCount,
		DataPath:        s.cfg.DataPath,
		Summary:         s.snapshot,
		LastError:       s.lastError,
		EventCount:      len(s.events),
		SubscriberCount: len(s.subs),
	}
}

func (s *Service) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

func (s *Service) handleStatus(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(s.snapshotStatus())
}

func (s *Service) handleEvents(w http.ResponseWriter, _ *http.Request) {
	s.mu.RLock()
	events := make([]Event, len(s.events))
	copy(events, s.events)
	s.mu.RUnlock()

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(events)
}

func (s *Service) handleStream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	ch := make(chan Event, 16)
	id := s.addSubscriber(ch)
	defer s.removeSubscriber(id)

	// Send current snapshot immediately.
	current := Event{
		Type:      "snapshot",
		Timestamp: time.Now(),
		Snapshot:  s.snapshotStatus().Summary,
	}
	writeSSE(w, current)
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case ev := <-ch:
			writeSSE(w, ev)
			flusher.Flush()
		}
	}
}

func writeSSE(w http.ResponseWriter, ev Event) {
	data, err := json.Marshal(ev)
	if err != nil {
		return
	}
	_, _ = fmt.Fprintf(w, "event: %s\n", ev.Type)
	_, _ = fmt.Fprintf(w, "data: %s\n\n", data)
}

func (s *Service) addSubscriber(ch chan Event) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextSubID++
	id := s.nextSubID
	s.subs[id] = ch
	return id
}

func (s *Service) removeSubscriber(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.subs, id)
}
