// Package ws implements the engine client over a websocket connection.
//
// The engine speaks a small JSON envelope protocol: intents and queries
// go out as typed messages, query responses come back with the
// request's correlation id, and the three push feeds arrive as
// unsolicited typed messages. A dropped connection is redialed with
// exponential backoff; subscribers learn about the gap through the
// Disconnected and Reconnected signals so they can refetch state the
// pushes may have skipped.
package ws

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"github.com/tmorvan/cadence/internal/engine"
)

const (
	msgPlayPause         = "play_pause"
	msgSkipNext          = "skip_next"
	msgSkipPrevious      = "skip_previous"
	msgToggleShuffle     = "toggle_shuffle"
	msgToggleRepeatMode  = "toggle_repeat_mode"
	msgSeek              = "seek"
	msgSetVolume         = "set_volume"
	msgToggleMute        = "toggle_mute"
	msgPlayFromQueue     = "play_track_from_queue"
	msgGetAppState       = "get_application_state"
	msgGetTrackDetails   = "get_track_details"
	msgPlayerStateUpdate = "player_state_update"
	msgQueueStateUpdate  = "queue_state_update"
	msgPlayerTimeUpdate  = "player_time_update"
)

type envelope struct {
	Type    string          `json:"type"`
	ID      string          `json:"id,omitempty"`
	Payload json.RawMessage `json:"payload,omitempty"`
	Error   string          `json:"error,omitempty"`
}

type seekPayload struct {
	PositionSeconds float64 `json:"positionSeconds"`
}

type volumePayload struct {
	Volume int `json:"volume"`
}

type trackIDPayload struct {
	TrackID string `json:"trackId"`
}

// Config holds the connection settings for the engine websocket.
type Config struct {
	URL              string
	ReconnectInitial time.Duration
	ReconnectMax     time.Duration
}

// Client is a websocket engine client. It satisfies engine.Client.
type Client struct {
	url        string
	log        *slog.Logger
	backoffMin time.Duration
	backoffMax time.Duration

	mu        sync.Mutex // guards conn and writes to it
	conn      *websocket.Conn
	connected bool

	pendingMu sync.Mutex
	pending   map[string]chan envelope
	nextID    atomic.Uint64

	subsMu sync.Mutex
	subs   []*engine.Subscription

	done      chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
}

var _ engine.Client = (*Client)(nil)

// New creates a client for the given engine endpoint. Connect must be
// called before any other method.
func New(cfg Config, log *slog.Logger) *Client {
	if log == nil {
		log = slog.Default()
	}
	if cfg.ReconnectInitial <= 0 {
		cfg.ReconnectInitial = time.Second
	}
	if cfg.ReconnectMax <= 0 {
		cfg.ReconnectMax = 30 * time.Second
	}
	return &Client{
		url:        cfg.URL,
		log:        log,
		backoffMin: cfg.ReconnectInitial,
		backoffMax: cfg.ReconnectMax,
		pending:    make(map[string]chan envelope),
		done:       make(chan struct{}),
	}
}

// Connect dials the engine and starts the read loop.
func (c *Client) Connect(ctx context.Context) error {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, c.url, nil)
	if err != nil {
		return fmt.Errorf("dial %s: %w", c.url, err)
	}
	c.mu.Lock()
	c.conn = conn
	c.connected = true
	c.mu.Unlock()

	c.wg.Add(1)
	go c.readLoop(conn)
	return nil
}

// Subscribe returns a new push subscription.
func (c *Client) Subscribe() *engine.Subscription {
	c.subsMu.Lock()
	defer c.subsMu.Unlock()
	sub := engine.NewSubscription()
	c.subs = append(c.subs, sub)
	return sub
}

// Close tears the connection down and closes all subscriptions.
func (c *Client) Close() error {
	c.closeOnce.Do(func() {
		close(c.done)

		c.mu.Lock()
		if c.conn != nil {
			c.conn.Close()
		}
		c.connected = false
		c.mu.Unlock()

		c.failPending(engine.ErrNotConnected)

		c.subsMu.Lock()
		for _, sub := range c.subs {
			sub.CloseSub()
		}
		c.subs = nil
		c.subsMu.Unlock()
	})
	c.wg.Wait()
	return nil
}

func (c *Client) PlayPause(ctx context.Context) error {
	return c.sendIntent(ctx, msgPlayPause, nil)
}

func (c *Client) SkipNext(ctx context.Context) error {
	return c.sendIntent(ctx, msgSkipNext, nil)
}

func (c *Client) SkipPrevious(ctx context.Context) error {
	return c.sendIntent(ctx, msgSkipPrevious, nil)
}

func (c *Client) ToggleShuffle(ctx context.Context) error {
	return c.sendIntent(ctx, msgToggleShuffle, nil)
}

func (c *Client) ToggleRepeatMode(ctx context.Context) error {
	return c.sendIntent(ctx, msgToggleRepeatMode, nil)
}

func (c *Client) Seek(ctx context.Context, positionSeconds float64) error {
	return c.sendIntent(ctx, msgSeek, seekPayload{PositionSeconds: positionSeconds})
}

func (c *Client) SetVolume(ctx context.Context, volume int) error {
	return c.sendIntent(ctx, msgSetVolume, volumePayload{Volume: volume})
}

func (c *Client) ToggleMute(ctx context.Context) error {
	return c.sendIntent(ctx, msgToggleMute, nil)
}

func (c *Client) PlayTrackFromQueue(ctx context.Context, trackID string) error {
	return c.sendIntent(ctx, msgPlayFromQueue, trackIDPayload{TrackID: trackID})
}

// ApplicationState queries the engine for the full state snapshot.
func (c *Client) ApplicationState(ctx context.Context) (*engine.ApplicationState, error) {
	raw, err := c.request(ctx, msgGetAppState, nil)
	if err != nil {
		return nil, err
	}
	var st engine.ApplicationState
	if err := json.Unmarshal(raw, &st); err != nil {
		return nil, fmt.Errorf("decode application state: %w", err)
	}
	return &st, nil
}

// TrackDetails queries the engine for rich metadata on one track.
func (c *Client) TrackDetails(ctx context.Context, trackID string) (*engine.DetailedTrackInfo, error) {
	raw, err := c.request(ctx, msgGetTrackDetails, trackIDPayload{TrackID: trackID})
	if err != nil {
		return nil, err
	}
	var d engine.DetailedTrackInfo
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("decode track details: %w", err)
	}
	return &d, nil
}

func (c *Client) sendIntent(_ context.Context, msgType string, payload any) error {
	return c.write(envelope{Type: msgType, Payload: marshalPayload(payload)})
}

// request sends a correlated query and waits for the matching reply.
func (c *Client) request(ctx context.Context, msgType string, payload any) (json.RawMessage, error) {
	id := strconv.FormatUint(c.nextID.Add(1), 10)
	ch := make(chan envelope, 1)

	c.pendingMu.Lock()
	c.pending[id] = ch
	c.pendingMu.Unlock()
	defer func() {
		c.pendingMu.Lock()
		delete(c.pending, id)
		c.pendingMu.Unlock()
	}()

	if err := c.write(envelope{Type: msgType, ID: id, Payload: marshalPayload(payload)}); err != nil {
		return nil, err
	}

	select {
	case resp := <-ch:
		if resp.Error != "" {
			return nil, fmt.Errorf("engine: %s", resp.Error)
		}
		return resp.Payload, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-c.done:
		return nil, engine.ErrNotConnected
	}
}

func (c *Client) write(env envelope) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.connected {
		return engine.ErrNotConnected
	}
	return c.conn.WriteJSON(env)
}

func (c *Client) readLoop(conn *websocket.Conn) {
	defer c.wg.Done()
	for {
		var env envelope
		if err := conn.ReadJSON(&env); err != nil {
			c.handleDisconnect(err)
			return
		}
		c.dispatch(env)
	}
}

func (c *Client) dispatch(env envelope) {
	if env.ID != "" {
		c.pendingMu.Lock()
		ch, ok := c.pending[env.ID]
		c.pendingMu.Unlock()
		if ok {
			ch <- env
		}
		return
	}

	switch env.Type {
	case msgPlayerStateUpdate:
		var p engine.PlayerStatePayload
		if err := json.Unmarshal(env.Payload, &p); err != nil {
			c.log.Warn("bad state push", "error", err)
			return
		}
		for _, sub := range c.snapshotSubs() {
			sub.PublishState(p)
		}
	case msgQueueStateUpdate:
		var p engine.QueuePayload
		if err := json.Unmarshal(env.Payload, &p); err != nil {
			c.log.Warn("bad queue push", "error", err)
			return
		}
		for _, sub := range c.snapshotSubs() {
			sub.PublishQueue(p)
		}
	case msgPlayerTimeUpdate:
		var p engine.TimePayload
		if err := json.Unmarshal(env.Payload, &p); err != nil {
			c.log.Warn("bad time push", "error", err)
			return
		}
		for _, sub := range c.snapshotSubs() {
			sub.PublishTime(p)
		}
	default:
		c.log.Debug("unknown push type", "type", env.Type)
	}
}

func (c *Client) handleDisconnect(err error) {
	select {
	case <-c.done:
		return
	default:
	}

	c.log.Warn("engine connection lost", "error", err)

	c.mu.Lock()
	c.connected = false
	c.conn = nil
	c.mu.Unlock()

	c.failPending(engine.ErrNotConnected)

	for _, sub := range c.snapshotSubs() {
		sub.PublishDisconnected()
	}

	c.wg.Add(1)
	go c.reconnectLoop()
}

// reconnectLoop redials with exponential backoff until it succeeds or
// the client is closed.
func (c *Client) reconnectLoop() {
	defer c.wg.Done()
	backoff := c.backoffMin
	for {
		select {
		case <-c.done:
			return
		case <-time.After(backoff):
		}

		conn, _, err := websocket.DefaultDialer.Dial(c.url, nil)
		if err != nil {
			c.log.Debug("reconnect attempt failed", "error", err, "backoff", backoff)
			backoff *= 2
			if backoff > c.backoffMax {
				backoff = c.backoffMax
			}
			continue
		}

		c.mu.Lock()
		c.conn = conn
		c.connected = true
		c.mu.Unlock()

		c.log.Info("engine connection restored")
		for _, sub := range c.snapshotSubs() {
			sub.PublishReconnected()
		}

		c.wg.Add(1)
		go c.readLoop(conn)
		return
	}
}

func (c *Client) failPending(err error) {
	c.pendingMu.Lock()
	defer c.pendingMu.Unlock()
	for id, ch := range c.pending {
		select {
		case ch <- envelope{Error: err.Error()}:
		default:
		}
		delete(c.pending, id)
	}
}

func (c *Client) snapshotSubs() []*engine.Subscription {
	c.subsMu.Lock()
	defer c.subsMu.Unlock()
	out := make([]*engine.Subscription, len(c.subs))
	copy(out, c.subs)
	return out
}

func marshalPayload(p any) json.RawMessage {
	if p == nil {
		return nil
	}
	raw, err := json.Marshal(p)
	if err != nil {
		return nil
	}
	return raw
}
