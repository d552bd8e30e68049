package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"outrunner/calculator"
	"outrunner/model"
)

// 请求类型
const (
	TypeDesign  = "design"
	TypeAWG     = "awg"
	TypeSweep   = "sweep"
	TypeHistory = "history"
)

// 回复类型
const (
	TypeDesigned      = "designed"
	TypeAWGConverted  = "awgConverted"
	TypeSwept         = "swept"
	TypeHistoryListed = "historyListed"
	TypeError         = "error"
)

const defaultHistoryLimit = 20

// Hub serves the requests of one websocket connection. Requests are handled
// in order; replies are written by a single goroutine.
type Hub struct {
	s    *Server
	conn *websocket.Conn
	// request
	msg chan model.Msg
	// response
	reply chan model.Msg
}

func NewHub(s *Server, conn *websocket.Conn) *Hub {
	return &Hub{
		s:     s,
		conn:  conn,
		msg:   make(chan model.Msg, 10),
		reply: make(chan model.Msg, 10),
	}
}

func (h *Hub) handleResponse(ctx context.Context) {
	for {
		select {
		case reply := <-h.reply:
			if err := h.conn.WriteJSON(&reply); err != nil {
				log.WithError(err).WithField("type", reply.Type).Warn("write reply failed")
			}
		case <-ctx.Done():
			return
		}
	}
}

func (h *Hub) handleRequest(ctx context.Context) {
	for {
		select {
		case msg := <-h.msg:
			reply := h.dispatch(ctx, msg)
			select {
			case h.reply <- reply:
			case <-ctx.Done():
				return
			}
		case <-ctx.Done():
			return
		}
	}
}

func (h *Hub) dispatch(ctx context.Context, msg model.Msg) model.Msg {
	var (
		replyType string
		content   interface{}
		err       error
	)

	switch msg.Type {
	case TypeDesign:
		replyType = TypeDesigned
		content, err = h.design(ctx, msg.Content)
	case TypeAWG:
		replyType = TypeAWGConverted
		content, err = h.awg(msg.Content)
	case TypeSweep:
		replyType = TypeSwept
		content, err = h.sweep(ctx, msg.Content)
	case TypeHistory:
		replyType = TypeHistoryListed
		content, err = h.history(ctx, msg.Content)
	default:
		log.WithField("type", msg.Type).Warn("no such type")
		err = fmt.Errorf("unknown message type %q", msg.Type)
	}

	if err != nil {
		return errorReply(err)
	}

	b, err := json.Marshal(content)
	if err != nil {
		return errorReply(fmt.Errorf("encode %s reply: %w", replyType, err))
	}
	return model.Msg{Type: replyType, Content: string(b)}
}

func (h *Hub) design(ctx context.Context, content string) (model.MotorDesign, error) {
	start := time.Now()
	defer func() {
		h.s.metrics.duration.Observe(time.Since(start).Seconds())
	}()

	var params model.Params
	if err := json.Unmarshal([]byte(content), &params); err != nil {
		h.s.metrics.designs.WithLabelValues("malformed").Inc()
		return model.MotorDesign{}, fmt.Errorf("decode params: %w", err)
	}

	d, cached := h.cached(ctx, params)
	if cached {
		h.s.metrics.designs.WithLabelValues("cached").Inc()
	} else {
		var err error
		d, err = h.s.deps.Calculator.CalculateMotorDesign(params)
		if err != nil {
			h.s.metrics.designs.WithLabelValues("rejected").Inc()
			return model.MotorDesign{}, err
		}
		h.s.metrics.designs.WithLabelValues("ok").Inc()
		if d.Fallback {
			h.s.metrics.fallbacks.Inc()
		}

		if c := h.s.deps.Cache; c != nil {
			if err := c.Set(ctx, params, d); err != nil {
				log.WithError(err).Warn("design cache store failed")
			}
		}
	}

	// 缓存命中的设计同样记入历史
	if hist := h.s.deps.History; hist != nil {
		if _, err := hist.Save(ctx, params, d); err != nil {
			log.WithError(err).Warn("save design history failed")
		}
	}

	log.WithFields(log.Fields{
		"slots":       d.SlotCount,
		"poles":       d.PoleCount,
		"estimatedKV": d.EstimatedKV,
		"efficiency":  d.Efficiency,
		"cached":      cached,
	}).Info("design served")
	return d, nil
}

func (h *Hub) cached(ctx context.Context, params model.Params) (model.MotorDesign, bool) {
	c := h.s.deps.Cache
	if c == nil {
		return model.MotorDesign{}, false
	}
	d, ok, err := c.Get(ctx, params)
	if err != nil {
		log.WithError(err).Warn("design cache lookup failed")
		return model.MotorDesign{}, false
	}
	return d, ok
}

type awgReply struct {
	AWG  int                  `json:"awg"`
	Wire model.WireProperties `json:"wire"`
}

func (h *Hub) awg(content string) (awgReply, error) {
	gauge, err := strconv.Atoi(strings.TrimSpace(content))
	if err != nil {
		return awgReply{}, fmt.Errorf("decode awg: %w", err)
	}
	wire, err := calculator.CalculateWireProperties(calculator.AWGToDiameter(gauge))
	if err != nil {
		return awgReply{}, err
	}
	return awgReply{AWG: gauge, Wire: wire}, nil
}

func (h *Hub) sweep(ctx context.Context, content string) ([]model.MotorDesign, error) {
	var req model.SweepRequest
	if err := json.Unmarshal([]byte(content), &req); err != nil {
		return nil, fmt.Errorf("decode sweep: %w", err)
	}
	if limit := h.s.deps.MaxSweepKVs; limit > 0 && len(req.KVs) > limit {
		return nil, fmt.Errorf("sweep of %d targets exceeds the limit of %d", len(req.KVs), limit)
	}
	designs, err := h.s.deps.Calculator.SweepKV(ctx, req.Params, req.KVs, h.s.deps.SweepWorkers)
	if err != nil {
		return nil, err
	}
	log.WithField("designs", len(designs)).Info("sweep served")
	return designs, nil
}

func (h *Hub) history(ctx context.Context, content string) (interface{}, error) {
	if h.s.deps.History == nil {
		return nil, errors.New("design history is disabled")
	}
	limit := defaultHistoryLimit
	if c := strings.TrimSpace(content); c != "" {
		n, err := strconv.Atoi(c)
		if err != nil {
			return nil, fmt.Errorf("decode history limit: %w", err)
		}
		limit = n
	}
	return h.s.deps.History.List(ctx, limit)
}

func errorReply(err error) model.Msg {
	rejection := model.Rejection{Message: err.Error()}
	var ipe *calculator.InvalidParameterError
	if errors.As(err, &ipe) {
		rejection.Field = ipe.Field
		rejection.Constraint = ipe.Constraint
	}
	b, _ := json.Marshal(rejection)
	return model.Msg{Type: TypeError, Content: string(b)}
}
