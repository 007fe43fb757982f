package dashboard

import (
	"encoding/json"
	"errors"
	"net/http"

	"catering-system/internal/board"
	"catering-system/internal/common/logger"
	"catering-system/internal/domain"
	"catering-system/internal/pipeline"
	"catering-system/internal/store"
	"catering-system/internal/views"
)

// Handler serves the board and its derived views over HTTP.
type Handler struct {
	queue      *board.Queue
	controller *board.Controller
	store      store.RecordStore
	lg         *logger.Logger
}

func newHandler(q *board.Queue, c *board.Controller, st store.RecordStore, lg *logger.Logger) *Handler {
	return &Handler{queue: q, controller: c, store: st, lg: lg}
}

// card is one board entry: the cached record plus its derived urgency.
type card struct {
	domain.OrderRecord
	Urgent bool `json:"urgent"`
}

type column struct {
	Stage domain.Stage `json:"stage"`
	Cards []card       `json:"cards"`
}

func (h *Handler) getBoard(w http.ResponseWriter, r *http.Request) {
	now := h.controller.Now()

	var cols []column
	h.queue.Apply(func(m *board.Model) {
		for _, stage := range domain.Stages() {
			records := m.Column(stage)
			cards := make([]card, 0, len(records))
			for _, rec := range records {
				cards = append(cards, card{
					OrderRecord: rec,
					Urgent:      pipeline.IsUrgent(rec.Status, rec.QuoteSentAt, now),
				})
			}
			cols = append(cols, column{Stage: stage, Cards: cards})
		}
	})
	writeJSON(w, http.StatusOK, map[string]any{"columns": cols})
}

func (h *Handler) moveCard(w http.ResponseWriter, r *http.Request) {
	var ev board.DragEvent
	if err := json.NewDecoder(r.Body).Decode(&ev); err != nil {
		writeProblem(w, http.StatusBadRequest, "bad_request", "invalid JSON body")
		return
	}
	if ev.RecordID == "" {
		writeProblem(w, http.StatusBadRequest, "bad_request", "record_id is required")
		return
	}
	for _, s := range []domain.Stage{ev.From, ev.To} {
		if _, ok := domain.ParseStage(string(s)); !ok {
			writeProblem(w, http.StatusBadRequest, "unknown_stage", "unrecognized stage "+string(s))
			return
		}
	}

	err := h.controller.HandleDragEnd(r.Context(), ev)
	switch {
	case err == nil:
		w.WriteHeader(http.StatusNoContent)
	case errors.Is(err, board.ErrCardNotFound):
		writeProblem(w, http.StatusNotFound, "card_not_found", "order is no longer on the board")
	case errors.Is(err, board.ErrMoveInFlight):
		writeProblem(w, http.StatusConflict, "move_in_flight", "a move for this order is still being saved")
	case errors.Is(err, board.ErrMoveNotAllowed):
		writeProblem(w, http.StatusUnprocessableEntity, "move_not_allowed", err.Error())
	default:
		// The controller already reloaded the board from the store.
		writeProblem(w, http.StatusBadGateway, "store_write_failed", "update failed, state reloaded")
	}
}

func (h *Handler) getCalendar(w http.ResponseWriter, r *http.Request) {
	var snapshot []domain.OrderRecord
	h.queue.Apply(func(m *board.Model) { snapshot = m.Snapshot() })
	writeJSON(w, http.StatusOK, map[string]any{"entries": views.Calendar(snapshot)})
}

func (h *Handler) getHistory(w http.ResponseWriter, r *http.Request) {
	email := r.PathValue("email")
	entries, err := views.CustomerHistory(r.Context(), h.store, email)
	if err != nil {
		h.lg.Error("history_lookup_failed", err, map[string]any{"email": email})
		writeProblem(w, http.StatusBadGateway, "store_read_failed", "could not load customer history")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"email": email, "orders": entries})
}

func (h *Handler) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /board", h.getBoard)
	mux.HandleFunc("POST /board/move", h.moveCard)
	mux.HandleFunc("GET /calendar", h.getCalendar)
	mux.HandleFunc("GET /customers/{email}/history", h.getHistory)
	return mux
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// writeProblem renders errors as simplified RFC7807 problem JSON.
func writeProblem(w http.ResponseWriter, code int, typ, detail string) {
	writeJSON(w, code, map[string]any{
		"type":   typ,
		"title":  http.StatusText(code),
		"status": code,
		"detail": detail,
	})
}
