package httpapi

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"esg-server/internal/esg/usecases"
	"esg-server/internal/infra/async"
	"esg-server/internal/infra/httpserver"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// CORS middleware guards the HTTP surface; the upgrade itself
		// accepts any origin.
		return true
	},
}

// SessionEventsWebSocketController streams form session events (values set,
// submissions accepted or failed, snapshots refreshed) to connected clients.
// One hub goroutine owns the client set and relays the broker topic.
type SessionEventsWebSocketController struct {
	broker     async.InternalBroker
	clients    map[*websocket.Conn]bool
	clientsMux sync.RWMutex
	broadcast  chan usecases.SessionEvent
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	ctx        context.Context
	cancel     context.CancelFunc
}

func NewSessionEventsWebSocketController(broker async.InternalBroker) *SessionEventsWebSocketController {
	ctx, cancel := context.WithCancel(context.Background())

	wsc := &SessionEventsWebSocketController{
		broker:     broker,
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan usecases.SessionEvent, 256),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
		ctx:        ctx,
		cancel:     cancel,
	}

	go wsc.run()

	return wsc
}

var _ httpserver.Controller = (*SessionEventsWebSocketController)(nil)

func (wsc *SessionEventsWebSocketController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /ws/session-events", wsc.handleWebSocket())
}

func (wsc *SessionEventsWebSocketController) handleWebSocket() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			slog.Error("websocket upgrade failed", slog.String("error", err.Error()))
			return
		}

		slog.Info("session events client connected", slog.String("remote_addr", r.RemoteAddr))

		wsc.register <- conn

		go wsc.handlePingPong(conn)
		go wsc.handleClient(conn)
	}
}

func (wsc *SessionEventsWebSocketController) handleClient(conn *websocket.Conn) {
	defer func() {
		wsc.unregister <- conn
		conn.Close()
	}()

	conn.SetReadLimit(512)
	conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		_, _, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				slog.Error("websocket read error", slog.String("error", err.Error()))
			} else {
				slog.Debug("websocket connection closed", slog.String("error", err.Error()))
			}
			break
		}
	}
}

func (wsc *SessionEventsWebSocketController) handlePingPong(conn *websocket.Conn) {
	ticker := time.NewTicker(54 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-wsc.ctx.Done():
			return
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (wsc *SessionEventsWebSocketController) run() {
	subscription, err := wsc.broker.Subscribe(usecases.TopicSessionEvents)
	if err != nil {
		slog.Error("session events subscription failed", slog.String("error", err.Error()))
		return
	}
	defer wsc.broker.Unsubscribe(usecases.TopicSessionEvents, subscription)

	for {
		select {
		case <-wsc.ctx.Done():
			return

		case client := <-wsc.register:
			wsc.clientsMux.Lock()
			wsc.clients[client] = true
			wsc.clientsMux.Unlock()

		case client := <-wsc.unregister:
			wsc.clientsMux.Lock()
			if _, ok := wsc.clients[client]; ok {
				delete(wsc.clients, client)
				client.Close()
			}
			wsc.clientsMux.Unlock()

		case event := <-wsc.broadcast:
			wsc.clientsMux.Lock()
			for client := range wsc.clients {
				client.SetWriteDeadline(time.Now().Add(10 * time.Second))
				if err := client.WriteJSON(event); err != nil {
					slog.Error("writing session event to client", slog.String("error", err.Error()))
					client.Close()
					delete(wsc.clients, client)
				}
			}
			wsc.clientsMux.Unlock()

		case brokerMsg := <-subscription.Receiver:
			event, ok := brokerMsg.Value.(usecases.SessionEvent)
			if !ok {
				continue
			}
			select {
			case wsc.broadcast <- event:
			default:
				slog.Warn("broadcast channel full, dropping session event")
			}
		}
	}
}

func (wsc *SessionEventsWebSocketController) Shutdown() {
	slog.Info("shutting down session events websocket controller")
	wsc.cancel()

	wsc.clientsMux.Lock()
	for client := range wsc.clients {
		client.Close()
	}
	wsc.clientsMux.Unlock()
}
