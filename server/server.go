package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	"outrunner/calculator"
	"outrunner/config"
	"outrunner/model"
	"outrunner/store"
)

// History records served designs. *store.DB satisfies it.
type History interface {
	Save(ctx context.Context, params model.Params, design model.MotorDesign) (store.Record, error)
	List(ctx context.Context, limit int) ([]store.Record, error)
}

// DesignCache memoizes designs by input. *cache.Cache satisfies it.
type DesignCache interface {
	Get(ctx context.Context, params model.Params) (model.MotorDesign, bool, error)
	Set(ctx context.Context, params model.Params, design model.MotorDesign) error
}

// Deps are the optional collaborators of the server. Nil fields are disabled.
type Deps struct {
	Calculator   *calculator.Calculator
	History      History
	Cache        DesignCache
	SweepWorkers int
	// MaxSweepKVs caps the targets of one sweep request, 0 means no cap.
	MaxSweepKVs int
}

type Server struct {
	cfg      config.ServerConfig
	upgrader websocket.Upgrader
	deps     Deps
	metrics  *metrics
}

func NewServer(cfg config.ServerConfig, deps Deps) *Server {
	if deps.Calculator == nil {
		deps.Calculator = calculator.NewCalculator()
	}
	return &Server{
		cfg: cfg,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  cfg.ReadBufferSize,
			WriteBufferSize: cfg.WriteBufferSize,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		deps:    deps,
		metrics: newMetrics(),
	}
}

// serveWs handles websocket requests from the peer.
func (s *Server) serveWs(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.WithError(err).Warn("websocket upgrade failed")
		return
	}
	defer conn.Close()
	if s.cfg.ReadLimit > 0 {
		conn.SetReadLimit(s.cfg.ReadLimit)
	}

	log.WithField("remote", conn.RemoteAddr().String()).Info("client connected")

	hub := NewHub(s, conn)
	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()
	go hub.handleRequest(ctx)
	go hub.handleResponse(ctx)

	for {
		var msg model.Msg
		if err := conn.ReadJSON(&msg); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.WithError(err).Warn("read message failed")
			}
			break
		}
		select {
		case hub.msg <- msg:
		case <-ctx.Done():
			return
		}
	}
	log.WithField("remote", conn.RemoteAddr().String()).Info("client disconnected")
}

// Handler returns the HTTP routes of the service.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(s.cfg.WsPath, s.serveWs)
	mux.Handle(s.cfg.MetricsPath, promhttp.HandlerFor(s.metrics.registry, promhttp.HandlerOpts{}))
	return mux
}

// Serve listens until ctx is cancelled.
func (s *Server) Serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.WithError(err).Warn("server shutdown")
		}
	}()

	log.WithFields(log.Fields{
		"addr":    s.cfg.Addr,
		"ws":      s.cfg.WsPath,
		"metrics": s.cfg.MetricsPath,
	}).Info("design server listening")

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
