package server

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/infinityCounter2/basis-stream/internal/logic"
	"github.com/infinityCounter2/basis-stream/internal/metrics"
	"github.com/infinityCounter2/basis-stream/internal/models"
	"github.com/mailru/easyjson"
	"go.uber.org/zap"
)

// maxMessageSize caps client frames. Clients have nothing to say beyond
// control frames.
const maxMessageSize = 512

// wsHandler upgrades the connection and streams basis updates to it: the
// day's backlog first, then every new point exactly once.
func (s *Server) wsHandler(c *gin.Context) {
	conn, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// The upgrader has already replied to the client.
		s.p.Logger.Debug("Websocket upgrade failed", zap.Error(err))
		return
	}

	sub := NewSubscriber(s.p.Engine.Store(), logic.StartOfDay(s.p.Engine.Now()))
	log := s.p.Logger.With(zap.String("subscriber", sub.ID), zap.String("remote", c.Request.RemoteAddr))

	if !s.addSubscriber(sub) {
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
			time.Now().Add(s.p.WriteTimeout),
		)
		conn.Close()
		return
	}
	defer s.removeSubscriber(sub)

	log.Info("Subscriber connected")
	s.serve(conn, sub, log)
	log.Info("Subscriber disconnected")
}

// serve is the only writer on conn.
func (s *Server) serve(conn *websocket.Conn, sub *Subscriber, log *zap.Logger) {
	defer conn.Close()

	closed := make(chan struct{})
	go s.readPump(conn, closed)

	if err := s.send(conn, sub.Backlog()); err != nil {
		log.Debug("Failed to send backlog", zap.Error(err))
		return
	}

	push := time.NewTicker(s.p.PushInterval)
	defer push.Stop()
	ping := time.NewTicker(s.p.PingInterval)
	defer ping.Stop()

	for {
		select {
		case <-s.closing:
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
				time.Now().Add(s.p.WriteTimeout),
			)
			return

		case <-closed:
			return

		case <-push.C:
			if err := s.send(conn, sub.Next()); err != nil {
				log.Debug("Failed to push update", zap.Error(err))
				return
			}

		case <-ping.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(s.p.WriteTimeout)); err != nil {
				log.Debug("Failed to ping subscriber", zap.Error(err))
				return
			}
		}
	}
}

// readPump drains client frames so control messages are processed, and
// closes closed when the connection goes away.
func (s *Server) readPump(conn *websocket.Conn, closed chan<- struct{}) {
	defer close(closed)

	pongWait := 2 * s.p.PingInterval
	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.p.Logger.Debug("Subscriber read error", zap.Error(err))
			}
			return
		}
		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	}
}

// send writes upd as one text message. Empty updates are not sent.
func (s *Server) send(conn *websocket.Conn, upd models.Update) error {
	if len(upd) == 0 {
		return nil
	}

	payload, err := easyjson.Marshal(upd)
	if err != nil {
		return err
	}

	if err := conn.SetWriteDeadline(time.Now().Add(s.p.WriteTimeout)); err != nil {
		return err
	}
	if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
		return err
	}

	metrics.PointsSent.Add(float64(countPoints(upd)))
	return nil
}
