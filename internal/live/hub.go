package live

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	mdwlog "github.com/msto63/iadate/foundation/core/log"
	"github.com/msto63/iadate/pkg/iatime"
)

// Update is one published value of the current IA time
type Update struct {
	Ticks int64     `json:"ticks"`
	Unix  int64     `json:"unix"`
	Time  time.Time `json:"time"`
}

// NewUpdate builds the update for a tick count
func NewUpdate(ticks int64) Update {
	return Update{
		Ticks: ticks,
		Unix:  iatime.UnixFromTicks(ticks),
		Time:  iatime.TimeFromTicks(ticks),
	}
}

// Publisher receives updates from a Poller
type Publisher interface {
	Publish(u Update)
}

// Subscription is a registered receiver of updates
type Subscription struct {
	ID string
	C  <-chan Update
}

// Hub fans updates out to subscribers. Publishing never blocks: a subscriber
// whose buffer is full misses that update.
type Hub struct {
	mu         sync.RWMutex
	subs       map[string]chan Update
	bufferSize int
	last       *Update
	closed     bool

	dropped atomic.Uint64
	logger  *mdwlog.Logger
}

// NewHub creates a hub with per-subscriber buffers of bufferSize
func NewHub(bufferSize int, logger *mdwlog.Logger) *Hub {
	if bufferSize < 1 {
		bufferSize = 1
	}
	if logger == nil {
		logger = mdwlog.GetDefault()
	}
	return &Hub{
		subs:       make(map[string]chan Update),
		bufferSize: bufferSize,
		logger:     logger.WithName("live-hub"),
	}
}

// Subscribe registers a new subscriber. The most recent update, if any, is
// delivered immediately.
func (h *Hub) Subscribe() *Subscription {
	ch := make(chan Update, h.bufferSize)
	id := uuid.New().String()

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		close(ch)
		return &Subscription{ID: id, C: ch}
	}

	if h.last != nil {
		ch <- *h.last
	}
	h.subs[id] = ch

	h.logger.Debug("subscriber added", mdwlog.Fields{"id": id, "subscribers": len(h.subs)})
	return &Subscription{ID: id, C: ch}
}

// Unsubscribe removes a subscriber and closes its channel
func (h *Hub) Unsubscribe(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch, ok := h.subs[id]
	if !ok {
		return
	}
	delete(h.subs, id)
	close(ch)

	h.logger.Debug("subscriber removed", mdwlog.Fields{"id": id, "subscribers": len(h.subs)})
}

// Publish delivers u to every subscriber with room in its buffer
func (h *Hub) Publish(u Update) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.last = &u

	for id, ch := range h.subs {
		select {
		case ch <- u:
		default:
			h.dropped.Add(1)
			h.logger.Trace("update dropped for slow subscriber", mdwlog.Fields{"id": id})
		}
	}
}

// Last returns the most recent update
func (h *Hub) Last() (Update, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.last == nil {
		return Update{}, false
	}
	return *h.last, true
}

// Count returns the number of subscribers
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

// Dropped returns how many deliveries were skipped for full buffers
func (h *Hub) Dropped() uint64 {
	return h.dropped.Load()
}

// Close closes all subscriber channels. Later publishes are ignored.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.closed = true
	for id, ch := range h.subs {
		close(ch)
		delete(h.subs, id)
	}
}
