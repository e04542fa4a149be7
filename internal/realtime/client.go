package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

var (
	ErrNotConnected  = errors.New("realtime: not connected")
	ErrAlreadyClosed = errors.New("realtime: client closed")
)

// Config holds realtime client settings.
type Config struct {
	URL               string // websocket endpoint, ws:// or wss://
	APIKey            string
	HeartbeatInterval time.Duration
	BufferSize        int
}

// InsertEvent is one newly inserted row, as announced by the backend.
type InsertEvent struct {
	Table      string
	Record     json.RawMessage
	ReceivedAt time.Time
}

// phxMessage is the phoenix-channel wire frame.
type phxMessage struct {
	Topic   string          `json:"topic"`
	Event   string          `json:"event"`
	Payload json.RawMessage `json:"payload"`
	Ref     string          `json:"ref"`
}

// Client is a websocket subscription to table inserts.
type Client struct {
	cfg    Config
	logger *slog.Logger

	conn *websocket.Conn

	// Output channels
	inserts chan InsertEvent
	errors  chan error
	done    chan struct{}

	// Write serialization
	writeMu sync.Mutex

	// State
	mu        sync.RWMutex
	connected bool
	closed    bool
	refSeq    int
}

// NewClient creates a new realtime client.
func NewClient(cfg Config, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.HeartbeatInterval == 0 {
		cfg.HeartbeatInterval = 30 * time.Second
	}
	if cfg.BufferSize == 0 {
		cfg.BufferSize = 256
	}

	return &Client{
		cfg:     cfg,
		logger:  logger,
		inserts: make(chan InsertEvent, cfg.BufferSize),
		errors:  make(chan error, 1),
		done:    make(chan struct{}),
	}
}

// Connect establishes the websocket connection and starts the read and
// heartbeat loops.
func (c *Client) Connect(ctx context.Context) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrAlreadyClosed
	}
	c.mu.Unlock()

	endpoint, err := c.endpoint()
	if err != nil {
		return err
	}

	dialer := websocket.Dialer{
		HandshakeTimeout: 10 * time.Second,
	}

	conn, _, err := dialer.DialContext(ctx, endpoint, nil)
	if err != nil {
		return fmt.Errorf("dial realtime endpoint: %w", err)
	}

	c.mu.Lock()
	c.conn = conn
	c.connected = true
	c.mu.Unlock()

	go c.readLoop()
	go c.heartbeatLoop()

	c.logger.Debug("realtime connected", "url", c.cfg.URL)
	return nil
}

// endpoint builds the dial URL with the apikey and protocol version attached.
func (c *Client) endpoint() (string, error) {
	u, err := url.Parse(c.cfg.URL)
	if err != nil {
		return "", fmt.Errorf("parse realtime url: %w", err)
	}
	q := u.Query()
	q.Set("apikey", c.cfg.APIKey)
	q.Set("vsn", "1.0.0")
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// Subscribe joins the topic for one table's inserts.
func (c *Client) Subscribe(table string) error {
	return c.send(phxMessage{
		Topic:   "realtime:public:" + table,
		Event:   "phx_join",
		Payload: json.RawMessage("{}"),
		Ref:     c.nextRef(),
	})
}

// Close gracefully closes the connection.
func (c *Client) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	c.connected = false
	c.mu.Unlock()

	close(c.done)

	if c.conn != nil {
		c.conn.WriteControl(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(time.Second),
		)
		return c.conn.Close()
	}
	return nil
}

// Inserts returns the channel of incoming insert events.
func (c *Client) Inserts() <-chan InsertEvent {
	return c.inserts
}

// Errors returns a channel of connection errors.
func (c *Client) Errors() <-chan error {
	return c.errors
}

// IsConnected returns the current connection state.
func (c *Client) IsConnected() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.connected
}

// send writes one frame to the connection.
func (c *Client) send(msg phxMessage) error {
	c.mu.RLock()
	if !c.connected {
		c.mu.RUnlock()
		return ErrNotConnected
	}
	c.mu.RUnlock()

	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal frame: %w", err)
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
	return c.conn.WriteMessage(websocket.TextMessage, data)
}

// nextRef returns the next frame reference number.
func (c *Client) nextRef() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.refSeq++
	return strconv.Itoa(c.refSeq)
}

// readLoop reads frames from the websocket and surfaces INSERT events.
func (c *Client) readLoop() {
	defer func() {
		c.mu.Lock()
		c.connected = false
		c.mu.Unlock()
	}()

	for {
		select {
		case <-c.done:
			return
		default:
		}

		_, data, err := c.conn.ReadMessage()
		receivedAt := time.Now()

		if err != nil {
			// Ignore errors after Close() is called
			select {
			case <-c.done:
				return
			default:
				select {
				case c.errors <- err:
				default:
				}
				return
			}
		}

		var msg phxMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			c.logger.Warn("dropping malformed frame", "error", err)
			continue
		}

		c.handleFrame(msg, receivedAt)
	}
}

// handleFrame dispatches one incoming frame.
func (c *Client) handleFrame(msg phxMessage, receivedAt time.Time) {
	switch msg.Event {
	case "INSERT":
		var payload struct {
			Table  string          `json:"table"`
			Record json.RawMessage `json:"record"`
		}
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			c.logger.Warn("dropping malformed INSERT payload", "error", err)
			return
		}

		table := payload.Table
		if table == "" {
			table = topicTable(msg.Topic)
		}

		ev := InsertEvent{
			Table:      table,
			Record:     payload.Record,
			ReceivedAt: receivedAt,
		}

		select {
		case c.inserts <- ev:
		case <-c.done:
		default:
			c.logger.Warn("insert buffer full, dropping event")
		}

	case "phx_reply":
		c.logger.Debug("join acknowledged", "topic", msg.Topic, "ref", msg.Ref)

	case "phx_error":
		select {
		case c.errors <- fmt.Errorf("channel error on %s", msg.Topic):
		default:
		}

	default:
		c.logger.Debug("ignoring frame", "event", msg.Event, "topic", msg.Topic)
	}
}

// heartbeatLoop keeps the phoenix connection alive.
func (c *Client) heartbeatLoop() {
	ticker := time.NewTicker(c.cfg.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-c.done:
			return
		case <-ticker.C:
			err := c.send(phxMessage{
				Topic:   "phoenix",
				Event:   "heartbeat",
				Payload: json.RawMessage("{}"),
				Ref:     c.nextRef(),
			})
			if err != nil {
				c.logger.Debug("failed to send heartbeat", "error", err)
			}
		}
	}
}

// topicTable extracts the table name from a realtime topic.
func topicTable(topic string) string {
	const prefix = "realtime:public:"
	if len(topic) > len(prefix) && topic[:len(prefix)] == prefix {
		return topic[len(prefix):]
	}
	return topic
}
