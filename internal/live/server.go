package live

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	mdwerror "github.com/msto63/iadate/foundation/core/error"
	mdwlog "github.com/msto63/iadate/foundation/core/log"
	"github.com/msto63/iadate/pkg/core/cache"
	"github.com/msto63/iadate/pkg/core/health"
	"github.com/msto63/iadate/pkg/core/version"
	"github.com/msto63/iadate/pkg/iatime"
)

const (
	readTimeout  = 120 * time.Second
	pingInterval = 50 * time.Second
	writeTimeout = 10 * time.Second
)

// ServerConfig holds the listener settings
type ServerConfig struct {
	Addr         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Server exposes the current IA time over HTTP and streams hub updates
// over websocket.
type Server struct {
	cfg      ServerConfig
	hub      *Hub
	renderer *iatime.Renderer
	now      func() iatime.Instant
	logger   *mdwlog.Logger
	health   *health.Registry
	rendered *cache.Cache[nowKey, NowResponse]
	upgrader websocket.Upgrader
}

// nowKey identifies a rendered NowResponse. The relative phrase depends on
// the current tick, so it is part of the key.
type nowKey struct {
	ticks   int64
	current int64
	format  iatime.Format
}

// NewServer creates a server streaming updates from hub
func NewServer(cfg ServerConfig, hub *Hub, renderer *iatime.Renderer, logger *mdwlog.Logger) *Server {
	if renderer == nil {
		renderer = iatime.DefaultRenderer()
	}
	if logger == nil {
		logger = mdwlog.GetDefault()
	}
	s := &Server{
		cfg:      cfg,
		hub:      hub,
		renderer: renderer,
		now:      iatime.Now,
		logger:   logger.WithName("live-server"),
		health:   health.NewRegistry("iadate", version.Live),
		rendered: cache.New[nowKey, NowResponse](cache.Config{MaxItems: 256, TTL: iatime.SecondsPerTick * time.Second}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true // Local tool, any origin may watch the clock
			},
		},
	}
	s.health.Register(health.TickLagCheck("hub", s.lastTicks, func() int64 { return s.now().Ticks() }, 1))
	return s
}

// Health returns the registry behind /api/v1/health
func (s *Server) Health() *health.Registry {
	return s.health
}

func (s *Server) lastTicks() (int64, bool) {
	u, ok := s.hub.Last()
	return u.Ticks, ok
}

// WSMessage is a client message
type WSMessage struct {
	Type string `json:"type"` // "ping"
}

// WSResponse is a server message
type WSResponse struct {
	Type    string      `json:"type"` // "update", "pong", "error"
	Payload interface{} `json:"payload,omitempty"`
}

// WSErrorPayload describes an error sent to the client
type WSErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NowResponse is the body of GET /api/v1/now
type NowResponse struct {
	Ticks    int64  `json:"ticks"`
	Unix     int64  `json:"unix"`
	Date     string `json:"date"`
	Day      string `json:"day"`
	Month    string `json:"month"`
	Relative string `json:"relative"`
}

// Handler returns the HTTP routes
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/health", s.handleHealth)
	mux.HandleFunc("/api/v1/now", s.handleNow)
	mux.HandleFunc("/ws", s.handleWebSocket)
	return mux
}

// ListenAndServe serves until ctx is done, then shuts down gracefully
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Addr,
		Handler:      s.Handler(),
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", mdwlog.String("addr", s.cfg.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return mdwerror.Wrap(err, "server failed").
			WithCode(mdwerror.CodeNetworkError).
			WithOperation("live.ListenAndServe")
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	s.logger.Info("shutting down")
	s.hub.Close()
	return srv.Shutdown(shutdownCtx)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())
	writeJSON(w, report.HTTPStatus(), map[string]interface{}{
		"status":      report.Status,
		"uptime":      report.Uptime.String(),
		"subscribers": s.hub.Count(),
		"dropped":     s.hub.Dropped(),
		"checks":      report.Checks,
	})
}

func (s *Server) handleNow(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, WSErrorPayload{Code: "method_not_allowed", Message: r.Method})
		return
	}

	now := s.now()
	if v := r.URL.Query().Get("ticks"); v != "" {
		if err := now.UnmarshalText([]byte(v)); err != nil {
			s.writeError(w, err)
			return
		}
	}

	format, err := iatime.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		s.writeError(w, err)
		return
	}

	key := nowKey{ticks: now.Ticks(), current: iatime.NowTicks(), format: format}
	resp, err := s.rendered.GetOrSet(key, func() (NowResponse, error) {
		return s.renderNow(now, format)
	})
	if err != nil {
		s.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) renderNow(now iatime.Instant, format iatime.Format) (NowResponse, error) {
	var err error
	resp := NowResponse{Ticks: now.Ticks(), Unix: now.Unix()}
	if resp.Date, err = s.renderer.Format(now, "dd-MM-yyyy HH:mm zzz"); err != nil {
		return resp, err
	}
	if resp.Day, err = s.renderer.Get(now, iatime.FieldDay, format); err != nil {
		return resp, err
	}
	if resp.Month, err = s.renderer.Get(now, iatime.FieldMonth, format); err != nil {
		return resp, err
	}
	resp.Relative, err = iatime.RelativeIATime(now.Ticks(), format)
	return resp, err
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	code := mdwerror.GetCode(err)
	if code.HTTPStatus() >= 500 {
		s.logger.LogError(err)
	}
	writeJSON(w, code.HTTPStatus(), WSErrorPayload{Code: code.String(), Message: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// handleWebSocket streams hub updates to one client
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	// Subscribe before the handshake completes so no update published after
	// the client connected is missed
	sub := s.hub.Subscribe()
	defer s.hub.Unsubscribe(sub.ID)

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.WarnWithErr("websocket upgrade failed", err)
		return
	}
	defer conn.Close()

	s.logger.Info("websocket connection established", mdwlog.String("remote", conn.RemoteAddr().String()))

	replies := make(chan WSResponse, 4)
	done := make(chan struct{})
	go s.readLoop(conn, replies, done)

	ping := time.NewTicker(pingInterval)
	defer ping.Stop()

	for {
		select {
		case <-done:
			return

		case u, ok := <-sub.C:
			if !ok {
				_ = conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
					time.Now().Add(writeTimeout))
				return
			}
			if err := s.send(conn, WSResponse{Type: "update", Payload: u}); err != nil {
				return
			}

		case resp := <-replies:
			if err := s.send(conn, resp); err != nil {
				return
			}

		case <-ping.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeTimeout)); err != nil {
				return
			}
		}
	}
}

// readLoop handles client messages; all writes go through the caller's loop
func (s *Server) readLoop(conn *websocket.Conn, replies chan<- WSResponse, done chan<- struct{}) {
	defer close(done)

	conn.SetReadDeadline(time.Now().Add(readTimeout))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(readTimeout))
		return nil
	})

	for {
		var msg WSMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.WarnWithErr("websocket read error", err)
			} else {
				s.logger.Info("websocket connection closed")
			}
			return
		}
		conn.SetReadDeadline(time.Now().Add(readTimeout))

		var resp WSResponse
		switch msg.Type {
		case "ping":
			resp = WSResponse{Type: "pong"}
		default:
			resp = WSResponse{Type: "error", Payload: WSErrorPayload{
				Code:    "unknown_type",
				Message: "Unknown message type: " + msg.Type,
			}}
		}

		select {
		case replies <- resp:
		default:
			// Client is sending faster than we can answer
		}
	}
}

func (s *Server) send(conn *websocket.Conn, resp WSResponse) error {
	conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	if err := conn.WriteJSON(resp); err != nil {
		s.logger.Debug("websocket write failed", mdwlog.Err(err))
		return err
	}
	return nil
}
