// Package dashboard is the operator-facing HTTP service: the order board,
// the move endpoint, the calendar projection and the customer history.
package dashboard

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"catering-system/internal/board"
	"catering-system/internal/common/config"
	"catering-system/internal/common/httpx"
	"catering-system/internal/common/logger"
	"catering-system/internal/connections/database"
	"catering-system/internal/connections/rabbitmq"
	"catering-system/internal/data"
	"catering-system/internal/events"
	"catering-system/internal/store"
)

type Config struct {
	Port int
	// Demo serves a seeded in-memory store and skips the broker.
	Demo bool
	App  config.App
}

func Run(ctx context.Context, cfg Config) error {
	lg := logger.New("dashboard-service")

	var (
		st  store.RecordStore
		pub board.Publisher
	)
	if cfg.Demo {
		st = store.NewMemory(data.DemoRecords(time.Now().UTC())...)
		lg.Info("demo_store_seeded", nil)
	} else {
		pool, err := database.Connect(ctx, cfg.App.Database)
		if err != nil {
			return fmt.Errorf("dashboard: %w", err)
		}
		defer pool.Close()
		st = store.NewPostgres(pool)

		rmq, err := rabbitmq.Dial(cfg.App.RabbitMQ, false)
		if err != nil {
			return fmt.Errorf("dashboard: rabbitmq: %w", err)
		}
		defer rmq.Close()
		if err := rmq.DeclareTopology(); err != nil {
			return fmt.Errorf("dashboard: declare topology: %w", err)
		}
		pub = events.NewAMQPPublisher(rmq)
	}

	// Initial load: fetch everything once and partition by stage. A read
	// failure leaves an empty board and is logged; the service still
	// starts, and the next successful reload fills it.
	initial, rerouted := board.Partition(nil)
	if records, err := st.ListAll(ctx); err != nil {
		lg.Error("initial_load_failed", err, nil)
	} else {
		initial, rerouted = board.Partition(records)
	}
	for _, r := range rerouted {
		lg.Warn("unrecognized_status_rerouted", map[string]any{"record_id": r.ID, "status": r.Status})
	}

	queue := board.NewQueue(initial)
	defer queue.Close()

	controller := board.NewController(queue, st, lg).WithPublisher(pub)
	controller.WriteTimeout = 10 * time.Second
	controller.Notify = func(msg string) {
		lg.Warn("user_notice", map[string]any{"message": msg})
	}

	h := newHandler(queue, controller, st, lg)
	srv := httpx.New(":"+strconv.Itoa(cfg.Port), withRequestLog(lg, h.routes()))
	lg.Info("listening", map[string]any{"port": cfg.Port, "demo": cfg.Demo})
	return srv.Run(ctx)
}

// withRequestLog stamps each request with a uuid and logs its outcome.
func withRequestLog(lg *logger.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		reqLg := lg.WithRequestID(uuid.NewString())

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		reqLg.Debug("request_completed", map[string]any{
			"method":      r.Method,
			"path":        r.URL.Path,
			"status":      rec.status,
			"duration_ms": time.Since(start).Milliseconds(),
		})
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}
