// Package api exposes the HTTP surface triggering rounds and reporting their outcome.
package api

import (
	"coffee-chat/contract"
	"coffee-chat/domain"
	"coffee-chat/errors"
	"crypto/subtle"
	"encoding/json"
	goerrors "errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

const triggerHTTP = "http"

type Handler struct {
	queue contract.IJobQueue
	token string
	log   *slog.Logger
}

func NewHandler(queue contract.IJobQueue, token string, log *slog.Logger) http.Handler {
	h := &Handler{queue: queue, token: token, log: log}
	mux := http.NewServeMux()
	mux.HandleFunc("POST /rounds/{token}", h.trigger)
	mux.HandleFunc("GET /rounds/{token}", h.trigger)
	mux.HandleFunc("GET /jobs/latest", h.latest)
	mux.HandleFunc("GET /jobs/{id}", h.job)
	return mux
}

// trigger submits a round and answers before it runs.
// The job id returned lets the caller fetch the outcome later.
func (h *Handler) trigger(w http.ResponseWriter, r *http.Request) {
	if subtle.ConstantTimeCompare([]byte(r.PathValue("token")), []byte(h.token)) != 1 {
		http.NotFound(w, r)
		return
	}
	job, err := h.queue.Submit(triggerHTTP)
	if err != nil {
		if goerrors.Is(err, errors.ErrRoundInProgress) {
			writeError(w, http.StatusConflict, err)
			return
		}
		h.log.Error("Round submission failed", "error", err)
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	h.log.Info("Round submitted", "job", job.ID)
	writeJSON(w, http.StatusAccepted, toJobResponse(job))
}

func (h *Handler) job(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	job, err := h.queue.Get(id)
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}
	writeJSON(w, http.StatusOK, toJobResponse(job))
}

func (h *Handler) latest(w http.ResponseWriter, _ *http.Request) {
	job, err := h.queue.Latest()
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}
	writeJSON(w, http.StatusOK, toJobResponse(job))
}

type JobResponse struct {
	JobID       string        `json:"jobId"`
	Trigger     string        `json:"trigger"`
	Status      string        `json:"status"`
	SubmittedAt time.Time     `json:"submittedAt"`
	StartedAt   *time.Time    `json:"startedAt,omitempty"`
	FinishedAt  *time.Time    `json:"finishedAt,omitempty"`
	Error       string        `json:"error,omitempty"`
	Round       *RoundPayload `json:"round,omitempty"`
}

type RoundPayload struct {
	ExecutedAt time.Time         `json:"executedAt"`
	PairCount  int               `json:"pairCount"`
	Excluded   string            `json:"excluded"`
	Pairs      []DeliveryPayload `json:"pairs"`
}

type DeliveryPayload struct {
	Members   [2]string `json:"members"`
	Delivered bool      `json:"delivered"`
	Error     string    `json:"error,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func toJobResponse(job domain.Job) JobResponse {
	res := JobResponse{
		JobID:       job.ID.String(),
		Trigger:     job.Trigger,
		Status:      string(job.Status),
		SubmittedAt: job.SubmittedAt,
		Error:       job.Error,
	}
	if !job.StartedAt.IsZero() {
		res.StartedAt = lo.ToPtr(job.StartedAt)
	}
	if !job.FinishedAt.IsZero() {
		res.FinishedAt = lo.ToPtr(job.FinishedAt)
	}
	if job.Outcome != nil {
		res.Round = toRoundPayload(*job.Outcome)
	}
	return res
}

func toRoundPayload(outcome domain.RoundOutcome) *RoundPayload {
	deliveries := lo.SliceToMap(outcome.Deliveries, func(d domain.Delivery) (domain.PairKey, error) {
		return d.Pair.Key(), d.Err
	})
	return &RoundPayload{
		ExecutedAt: outcome.Record.ExecutedAt,
		PairCount:  outcome.Record.PairCount,
		Excluded:   string(outcome.Record.Excluded),
		Pairs: lo.Map(outcome.Record.Pairs, func(p domain.Pair, _ int) DeliveryPayload {
			payload := DeliveryPayload{Members: [2]string{string(p.First), string(p.Second)}}
			err, ok := deliveries[p.Key()]
			switch {
			case ok && err == nil:
				payload.Delivered = true
			case ok:
				payload.Error = err.Error()
			}
			return payload
		}),
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}
