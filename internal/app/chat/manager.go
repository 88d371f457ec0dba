/*
Package chat contains the client-side logic for the community chat.

This file defines the Manager struct, the connection lifecycle state machine:
connect, room join, history replay, live append, bounded reconnection, and
teardown. A single run goroutine owns every state transition; the UI reads
snapshots and receives callbacks.
*/
package chat

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"huecas/internal/app/user"
	"huecas/internal/pkg/errs"
	"huecas/internal/pkg/limiter"
	"huecas/internal/pkg/logx"
)

const outboundChannelBuffer = 32

// State is one phase of the connection lifecycle.
type State int

const (
	// StateIdle means no user is known and no connection is attempted.
	StateIdle State = iota

	// StateConnecting means a dial is in progress (first connect or reconnect).
	StateConnecting

	// StateJoining means the connection is up and the room join was emitted.
	StateJoining

	// StateSynced means the history payload replaced the local message list.
	StateSynced

	// StateLive means live messages are appending to the list tail.
	StateLive

	// StateDisconnected means the connection dropped and retries are exhausted
	// (or pending); existing messages are kept.
	StateDisconnected

	// StateTerminal means the manager was stopped and processes no further events.
	StateTerminal
)

// String returns the state name, for logs and test failure messages.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateConnecting:
		return "connecting"
	case StateJoining:
		return "joining"
	case StateSynced:
		return "synced"
	case StateLive:
		return "live"
	case StateDisconnected:
		return "disconnected"
	case StateTerminal:
		return "terminal"
	default:
		return "invalid"
	}
}

// Config tunes a Manager. Zero values fall back to production defaults.
type Config struct {
	// URL is the chat service endpoint.
	URL string

	// Room is the room to join. Defaults to RoomGeneral.
	Room string

	// ReconnectAttempts bounds retries after a failed dial. Defaults to 5.
	ReconnectAttempts int

	// ReconnectDelay is the pause before each retry. Defaults to 1 second.
	ReconnectDelay time.Duration

	// Dialer opens connections. Defaults to the gorilla/websocket dialer.
	Dialer Dialer

	// Limiter throttles outgoing messages. Defaults to the standard chat tuning.
	Limiter *limiter.SendLimiter

	// OnMessage, when set, is invoked for every live message appended.
	OnMessage func(ChatMessage)

	// OnStateChange, when set, is invoked after every state transition.
	OnStateChange func(State)
}

// Manager owns exactly one live connection to the chat service for the
// lifetime of the chat view. It synchronizes history and live updates and
// survives transient disconnects within the retry bound.
type Manager struct {
	cfg  Config
	user user.User

	// mu protects state, loading, messages, draft, and sending.
	mu sync.RWMutex

	state    State
	loading  bool
	messages []ChatMessage
	draft    string
	sending  bool

	// outbound queues fire-and-forget sends for the connection writer.
	outbound chan Envelope

	stop     chan struct{}
	stopOnce sync.Once

	// done is closed when the run loop exits.
	done chan struct{}

	// structured logger with chat context.
	logger zerolog.Logger
}

// NewManager constructs a Manager for the given user. The manager starts Idle;
// nothing connects until Start is called.
func NewManager(u user.User, cfg Config) *Manager {
	if cfg.Room == "" {
		cfg.Room = RoomGeneral
	}
	if cfg.ReconnectAttempts == 0 {
		cfg.ReconnectAttempts = 5
	}
	if cfg.ReconnectDelay == 0 {
		cfg.ReconnectDelay = time.Second
	}
	if cfg.Dialer == nil {
		cfg.Dialer = NewWebsocketDialer()
	}
	if cfg.Limiter == nil {
		cfg.Limiter = limiter.NewDefaultSendLimiter()
	}

	managerLogger := logx.Logger().With().
		Str("component", "ChatManager").
		Str("room", cfg.Room).
		Str("user_id", u.ID).
		Logger()

	return &Manager{
		cfg:      cfg,
		user:     u,
		state:    StateIdle,
		loading:  true,
		outbound: make(chan Envelope, outboundChannelBuffer),
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
		logger:   managerLogger,
	}
}

// Start launches the connection lifecycle. Without a known user the manager
// stays Idle and reports a validation error.
func (m *Manager) Start(ctx context.Context) error {
	if m.user.ID == "" {
		return errs.NewError(errs.ErrNoCurrentUser)
	}

	go m.run(ctx)
	return nil
}

// Stop closes the connection unconditionally and halts event processing.
// Safe to call more than once.
func (m *Manager) Stop() {
	m.stopOnce.Do(func() {
		close(m.stop)
	})
}

// Done is closed once the run loop has fully exited.
func (m *Manager) Done() <-chan struct{} {
	return m.done
}

// run drives the state machine: dial, join, pump events, and reconnect with a
// bounded retry count. It is the only goroutine that mutates lifecycle state.
func (m *Manager) run(ctx context.Context) {
	defer close(m.done)

	failures := 0

	for {
		m.setState(StateConnecting)

		conn, err := m.cfg.Dialer.Dial(ctx, m.cfg.URL)
		if err != nil {
			failures++
			m.logger.Warn().Err(err).
				Int("failed_attempts", failures).
				Int("max_retries", m.cfg.ReconnectAttempts).
				Msg("Chat dial failed.")

			if failures > m.cfg.ReconnectAttempts {
				m.logger.Error().Err(err).Msg("Chat reconnection retries exhausted. Staying disconnected.")
				m.setState(StateDisconnected)
				return
			}

			select {
			case <-time.After(m.cfg.ReconnectDelay):
				continue
			case <-m.stop:
				m.setState(StateTerminal)
				return
			case <-ctx.Done():
				m.setState(StateTerminal)
				return
			}
		}

		failures = 0

		if !m.runConnection(ctx, conn) {
			return
		}

		// connection dropped; loop back into Connecting for the next episode
		m.onDisconnect()
	}
}

// runConnection joins the room and pumps one connection until it drops.
// It returns false when the manager is stopping (Terminal reached).
func (m *Manager) runConnection(ctx context.Context, conn Conn) bool {
	defer conn.Close()

	m.setState(StateJoining)

	joinEnv, err := NewEnvelope(EventJoinRoom, m.cfg.Room)
	if err != nil {
		m.logger.Error().Err(err).Msg("Failed to build join-room event.")
		return true
	}

	if err := conn.WriteEnvelope(joinEnv); err != nil {
		m.logger.Warn().Err(err).Msg("Failed to emit join-room. Treating connection as lost.")
		return true
	}

	events := make(chan Envelope, 64)
	readFailed := make(chan error, 1)
	writerQuit := make(chan struct{})
	defer close(writerQuit)

	go readPump(conn, events, readFailed)
	go m.writePump(conn, writerQuit)

	for {
		select {
		case env := <-events:
			m.handleEnvelope(env)

		case err := <-readFailed:
			m.logger.Warn().Err(err).Msg("Chat connection read failed.")
			return true

		case <-m.stop:
			m.setState(StateTerminal)
			return false

		case <-ctx.Done():
			m.setState(StateTerminal)
			return false
		}
	}
}

// readPump forwards server events to the run loop until the connection fails.
func readPump(conn Conn, events chan<- Envelope, readFailed chan<- error) {
	for {
		env, err := conn.ReadEnvelope()
		if err != nil {
			readFailed <- err
			return
		}
		events <- env
	}
}

// writePump drains the outbound queue onto one connection. It exits when the
// connection epoch ends or a write fails; queued sends are fire-and-forget
// and are dropped with the connection.
func (m *Manager) writePump(conn Conn, quit <-chan struct{}) {
	for {
		select {
		case env := <-m.outbound:
			if err := conn.WriteEnvelope(env); err != nil {
				m.logger.Warn().Err(err).Str("event", env.Event).Msg("Failed to write chat event.")
				return
			}

		case <-quit:
			return
		}
	}
}

// handleEnvelope applies one server event to the local state.
func (m *Manager) handleEnvelope(env Envelope) {
	switch env.Event {
	case EventMessageHistory:
		m.applyHistory(env)

	case EventReceiveMessage:
		m.applyLiveMessage(env)

	case EventError:
		// chat errors are logged only, never surfaced to the user
		m.logger.Warn().RawJSON("detail", env.Data).Msg("Chat service reported an error.")

	default:
		m.logger.Warn().Str("event", env.Event).Msg("Chat service sent an unsupported event.")
	}
}

// applyHistory replaces the message list wholesale, in server-given order,
// and turns the loading flag off.
func (m *Manager) applyHistory(env Envelope) {
	var history []wireMessage
	if err := decodeData(env, &history); err != nil {
		m.logger.Warn().Err(err).Msg("Chat service sent an invalid message-history payload.")
		return
	}

	now := time.Now()
	replaced := make([]ChatMessage, 0, len(history))
	for i, w := range history {
		replaced = append(replaced, w.fromHistory(i, now))
	}

	m.mu.Lock()
	m.messages = replaced
	m.loading = false
	m.mu.Unlock()

	m.logger.Info().Int("history_len", len(replaced)).Msg("Chat history synchronized.")

	m.setState(StateSynced)
}

// applyLiveMessage appends one live message to the list tail. No
// de-duplication against history is performed.
func (m *Manager) applyLiveMessage(env Envelope) {
	var w wireMessage
	if err := decodeData(env, &w); err != nil {
		m.logger.Warn().Err(err).Msg("Chat service sent an invalid receive-message payload.")
		return
	}

	msg := w.fromLive(time.Now())

	m.mu.Lock()
	m.messages = append(m.messages, msg)
	wasSynced := m.state == StateSynced
	m.mu.Unlock()

	if wasSynced {
		m.setState(StateLive)
	}

	if m.cfg.OnMessage != nil {
		m.cfg.OnMessage(msg)
	}
}

// onDisconnect flips the loading indicator back on without clearing existing
// messages, then lets the run loop re-enter Connecting.
func (m *Manager) onDisconnect() {
	m.mu.Lock()
	m.loading = true
	m.mu.Unlock()

	m.setState(StateDisconnected)
}

// setState records a state transition and fires the state-change callback.
// Transitions out of Terminal are ignored.
func (m *Manager) setState(next State) {
	m.mu.Lock()

	if m.state == StateTerminal {
		m.mu.Unlock()
		return
	}

	prev := m.state
	m.state = next
	m.mu.Unlock()

	if prev != next {
		m.logger.Debug().
			Str("from", prev.String()).
			Str("to", next.String()).
			Msg("Chat state changed.")
	}

	if m.cfg.OnStateChange != nil {
		m.cfg.OnStateChange(next)
	}
}

// SetDraft replaces the draft text, truncating at MaxMessageLength characters.
func (m *Manager) SetDraft(text string) {
	runes := []rune(text)
	if len(runes) > MaxMessageLength {
		text = string(runes[:MaxMessageLength])
	}

	m.mu.Lock()
	m.draft = text
	m.mu.Unlock()
}

// Draft returns the current draft text.
func (m *Manager) Draft() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.draft
}

// Send emits the current draft as a fire-and-forget message and clears the
// draft synchronously, before any transport round trip. The sender sees their
// own message only when the live echo arrives. Preconditions: non-empty
// trimmed text, no send already in flight, and a known user.
func (m *Manager) Send() error {
	m.mu.Lock()

	text := strings.TrimSpace(m.draft)

	if text == "" {
		m.mu.Unlock()
		return errs.NewError(errs.ErrMessageEmpty)
	}

	if m.sending {
		m.mu.Unlock()
		return errs.NewError(errs.ErrSendInFlight)
	}

	if m.user.ID == "" {
		m.mu.Unlock()
		return errs.NewError(errs.ErrNoCurrentUser)
	}

	if !m.cfg.Limiter.Allow() {
		m.mu.Unlock()
		return errs.NewError(errs.ErrChatSendThrottled)
	}

	m.sending = true
	m.draft = ""
	m.mu.Unlock()

	defer func() {
		m.mu.Lock()
		m.sending = false
		m.mu.Unlock()
	}()

	payload := outboundMessage{
		UserID:   m.user.ID,
		UserName: m.user.Name,
		Message:  text,
		Room:     m.cfg.Room,
	}

	env, err := NewEnvelope(EventSendMessage, payload)
	if err != nil {
		m.logger.Error().Err(err).Msg("Failed to build send-message event.")
		return errs.NewError(errs.ErrUnknown, err)
	}

	select {
	case m.outbound <- env:
		return nil
	default:
		m.logger.Warn().Int("queue_len", len(m.outbound)).Msg("Chat outbound queue full, dropping message.")
		return errs.NewError(errs.ErrChatSendQueueFull)
	}
}

// IsOwn reports whether msg should render as the current user's own message.
// The userName fallback tolerates server payloads that omit the user id.
func (m *Manager) IsOwn(msg ChatMessage) bool {
	return (msg.UserID != "" && msg.UserID == m.user.ID) ||
		(msg.UserName != "" && msg.UserName == m.user.Name)
}

// State returns the current lifecycle state.
func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.state
}

// IsLoading reports whether the UI should show the connecting indicator.
func (m *Manager) IsLoading() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.loading
}

// Messages returns a copy of the rendered message sequence.
func (m *Manager) Messages() []ChatMessage {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]ChatMessage, len(m.messages))
	copy(out, m.messages)
	return out
}

// decodeData unmarshals an envelope payload into dst.
func decodeData(env Envelope, dst any) error {
	return json.Unmarshal(env.Data, dst)
}
