package api

import (
	"coffee-chat/domain"
	"coffee-chat/runtime"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const token = "a-long-enough-trigger-token"

func serve(handler http.Handler, method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) JobResponse {
	t.Helper()
	var res JobResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
	return res
}

func TestHandler_Trigger_Accepts_Then_Conflicts(t *testing.T) {
	req := require.New(t)
	queue := runtime.NewJobQueue(10, time.Now)
	handler := NewHandler(queue, token, slog.Default())

	// When a round is triggered
	rec := serve(handler, http.MethodPost, "/rounds/"+token)

	// Then it is accepted with a job id
	req.Equal(http.StatusAccepted, rec.Code)
	res := decode(t, rec)
	req.Equal("pending", res.Status)
	req.Equal(triggerHTTP, res.Trigger)
	_, err := uuid.Parse(res.JobID)
	req.NoError(err)

	// And a second trigger is refused while the first one is in flight
	rec = serve(handler, http.MethodGet, "/rounds/"+token)
	req.Equal(http.StatusConflict, rec.Code)
}

func TestHandler_Trigger_Wrong_Token(t *testing.T) {
	req := require.New(t)
	queue := runtime.NewJobQueue(10, time.Now)
	handler := NewHandler(queue, token, slog.Default())

	rec := serve(handler, http.MethodPost, "/rounds/guess")

	req.Equal(http.StatusNotFound, rec.Code)
	_, err := queue.Latest()
	req.Error(err)
}

func TestHandler_Job_Reports_Outcome(t *testing.T) {
	req := require.New(t)
	queue := runtime.NewJobQueue(10, time.Now)
	handler := NewHandler(queue, token, slog.Default())
	delivered := domain.Pair{First: "Alice", Second: "Bob"}
	failed := domain.Pair{First: "Clara", Second: "Dan"}

	// Given a finished round with one undelivered pair
	job, err := queue.Submit("http")
	req.NoError(err)
	req.NoError(queue.MarkRunning(job.ID))
	_, err = queue.MarkDone(job.ID, &domain.RoundOutcome{
		Record: domain.NewRoundRecord(time.Now(), []domain.Pair{delivered, failed}, "Eve"),
		Deliveries: []domain.Delivery{
			{Pair: delivered},
			{Pair: failed, Err: fmt.Errorf("channel_not_found")},
		},
	}, nil)
	req.NoError(err)

	for _, target := range []string{"/jobs/" + job.ID.String(), "/jobs/latest"} {
		// When the job is fetched
		rec := serve(handler, http.MethodGet, target)

		// Then the outcome of each pair is visible
		req.Equal(http.StatusOK, rec.Code, target)
		res := decode(t, rec)
		req.Equal("partial", res.Status)
		req.NotNil(res.StartedAt)
		req.NotNil(res.FinishedAt)
		req.NotNil(res.Round)
		req.Equal("Eve", res.Round.Excluded)
		req.Equal(2, res.Round.PairCount)
		req.Equal(DeliveryPayload{Members: [2]string{"Alice", "Bob"}, Delivered: true}, res.Round.Pairs[0])
		req.False(res.Round.Pairs[1].Delivered)
		req.Equal("channel_not_found", res.Round.Pairs[1].Error)
	}
}

func TestHandler_Job_Errors(t *testing.T) {
	req := require.New(t)
	handler := NewHandler(runtime.NewJobQueue(10, time.Now), token, slog.Default())

	req.Equal(http.StatusBadRequest, serve(handler, http.MethodGet, "/jobs/not-a-uuid").Code)
	req.Equal(http.StatusNotFound, serve(handler, http.MethodGet, "/jobs/"+uuid.NewString()).Code)
	req.Equal(http.StatusNotFound, serve(handler, http.MethodGet, "/jobs/latest").Code)
}
