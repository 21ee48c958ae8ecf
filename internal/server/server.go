package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/infinityCounter2/basis-stream/internal/logic"
	"github.com/infinityCounter2/basis-stream/internal/metrics"
	"github.com/infinityCounter2/basis-stream/internal/models"
	"github.com/mailru/easyjson"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type Params struct {
	Port   int
	Engine *logic.Engine
	Logger *zap.Logger
	// PushInterval is how often each subscriber is checked for new points.
	//
	// Defaults to 500ms.
	PushInterval time.Duration
	// PingInterval defaults to 30s. A client that does not answer within
	// two intervals is dropped.
	PingInterval time.Duration
	// WriteTimeout bounds every websocket write.
	//
	// Defaults to 10s.
	WriteTimeout time.Duration
}

type Server struct {
	p Params

	upgrader websocket.Upgrader

	subsMtx sync.Mutex
	// subs holds the live subscribers keyed by id.
	subs map[string]*Subscriber
	// wg tracks subscriber loops, which outlive http.Server.Shutdown
	// because their connections are hijacked.
	wg sync.WaitGroup

	closing   chan struct{}
	closeOnce sync.Once
}

func NewServer(p Params) *Server {
	if p.Logger == nil {
		p.Logger = zap.NewNop()
	}
	if p.PushInterval <= 0 {
		p.PushInterval = 500 * time.Millisecond
	}
	if p.PingInterval <= 0 {
		p.PingInterval = 30 * time.Second
	}
	if p.WriteTimeout <= 0 {
		p.WriteTimeout = 10 * time.Second
	}
	p.Logger = p.Logger.Named("server")

	return &Server{
		p: p,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			// Dashboards are served from other origins.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		subs:    make(map[string]*Subscriber),
		closing: make(chan struct{}),
	}
}

// Handler returns the routes served by Run.
func (s *Server) Handler() http.Handler {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(ginzap.Ginzap(s.p.Logger, time.RFC3339, true))
	r.Use(ginzap.RecoveryWithZap(s.p.Logger, true))

	r.GET("/ws", s.wsHandler)
	r.POST("/ingest", s.ingestHandler)
	r.GET("/basis", s.basisHandler)
	r.GET("/contracts", s.contractsHandler)
	r.GET("/bars", s.barsHandler)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	return r
}

// Run starts the HTTP server and will continue until either an
// expected event is encountered, or the provided context is finished.
func (s *Server) Run(ctx context.Context) error {
	// Buffer the error channel so that the routine
	// pushing to it can exit immediately.
	errCh := make(chan error, 1)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.p.Port),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	s.p.Logger.Info("Server listening", zap.Int("port", s.p.Port))

	select {
	case <-ctx.Done():
		shCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		s.Close()
		_ = srv.Shutdown(shCtx)
		<-errCh
		s.wg.Wait()
		return nil

	case err := <-errCh:
		s.Close()
		s.wg.Wait()
		return err
	}
}

// Close ends every subscriber loop. New websocket connections are
// refused afterwards.
func (s *Server) Close() {
	s.subsMtx.Lock()
	defer s.subsMtx.Unlock()
	s.closeOnce.Do(func() { close(s.closing) })
}

// SubscriberCount returns the number of connected subscribers.
func (s *Server) SubscriberCount() int {
	s.subsMtx.Lock()
	defer s.subsMtx.Unlock()
	return len(s.subs)
}

// addSubscriber registers sub unless the server is closing. The wait
// group is only added to under subsMtx so Close then wg.Wait is safe.
func (s *Server) addSubscriber(sub *Subscriber) bool {
	s.subsMtx.Lock()
	defer s.subsMtx.Unlock()

	select {
	case <-s.closing:
		return false
	default:
	}

	s.wg.Add(1)
	s.subs[sub.ID] = sub
	metrics.Subscribers.Inc()
	return true
}

func (s *Server) removeSubscriber(sub *Subscriber) {
	s.subsMtx.Lock()
	delete(s.subs, sub.ID)
	s.subsMtx.Unlock()

	metrics.Subscribers.Dec()
	s.wg.Done()
}

// ingestHandler is a handler for the /ingest endpoint, taking a JSON list
// of ticks and running each through the engine in order.
func (s *Server) ingestHandler(c *gin.Context) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.String(http.StatusInternalServerError, "Failed to read POST body")
		return
	}

	var ticks models.TickList
	if err := easyjson.Unmarshal(payload, &ticks); err != nil {
		c.String(http.StatusUnprocessableEntity, "Failed to parse POST body to ticks")
		return
	}

	var res models.IngestResult
	for _, t := range ticks {
		res.Processed++
		n, err := s.p.Engine.Ingest(t)
		res.Appended += n
		switch {
		case err == nil:
		case errors.Is(err, logic.ErrUnknownCode):
			s.p.Logger.Debug("Ignoring tick", zap.String("code", t.Code))
		default:
			res.Failed++
			s.p.Logger.Warn("Dropping tick", zap.String("code", t.Code), zap.Error(err))
		}
	}

	writeJSON(c, http.StatusOK, res)
}

// basisHandler serves the full series of the current day for the
// required "contract" parameter.
func (s *Server) basisHandler(c *gin.Context) {
	contract, ok := s.contractParam(c)
	if !ok {
		return
	}

	since := models.UnixSeconds(logic.StartOfDay(s.p.Engine.Now()))
	points := s.p.Engine.Store().PointsSince(contract, since, true)
	if points == nil {
		points = make(models.PointList, 0)
	}

	writeJSON(c, http.StatusOK, points)
}

// contractsHandler lists every futures contract with its family and spot.
func (s *Server) contractsHandler(c *gin.Context) {
	list := make(models.ContractList, 0)
	for _, f := range s.p.Engine.Registry().Families() {
		for _, contract := range f.Contracts {
			list = append(list, models.ContractInfo{
				Family:   f.ID,
				Contract: contract,
				Spot:     f.Spot,
			})
		}
	}

	writeJSON(c, http.StatusOK, list)
}

// barsHandler serves OHLC bars of the basis for the required "contract"
// and optional "interval" (defaults to 1m) parameters.
func (s *Server) barsHandler(c *gin.Context) {
	contract, ok := s.contractParam(c)
	if !ok {
		return
	}

	intvlArg := c.DefaultQuery("interval", "1m")
	intvl, ok := parseBarInterval(intvlArg)
	if !ok {
		c.String(http.StatusBadRequest, fmt.Sprintf("invalid interval value %q", intvlArg))
		return
	}

	since := models.UnixSeconds(logic.StartOfDay(s.p.Engine.Now()))
	builder := logic.NewBarBuilder(logic.BarBuilderParams{Interval: intvl})
	builder.ProcessPoints(s.p.Engine.Store().PointsSince(contract, since, true))

	bars := builder.GetBars()
	if bars == nil {
		bars = make(models.BarList, 0)
	}

	writeJSON(c, http.StatusOK, bars)
}

// contractParam reads the "contract" query parameter and checks that the
// store knows it, writing the error response when it does not.
func (s *Server) contractParam(c *gin.Context) (string, bool) {
	contract := c.Query("contract")
	if contract == "" {
		c.String(http.StatusBadRequest, "contract is required")
		return "", false
	}

	for _, known := range s.p.Engine.Store().Contracts() {
		if known == contract {
			return contract, true
		}
	}
	c.String(http.StatusNotFound, fmt.Sprintf("unknown contract %q", contract))
	return "", false
}

// writeJSON is a helper for serializing the response via easyjson
// and writing it back to the client.
func writeJSON(c *gin.Context, status int, data easyjson.Marshaler) {
	payload, err := easyjson.Marshal(data)
	if err != nil {
		_ = c.Error(err)
		c.String(http.StatusInternalServerError, "Internal Error")
		return
	}

	c.Data(status, "application/json", payload)
}

var validIntervals = map[string]logic.BarInterval{
	"1m":  logic.BarInterval1m,
	"5m":  logic.BarInterval5m,
	"15m": logic.BarInterval15m,
	"1h":  logic.BarInterval1h,
}

func parseBarInterval(k string) (logic.BarInterval, bool) {
	intvl, ok := validIntervals[k]
	return intvl, ok
}
