package services

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"

	"github.com/senyabanana/towbid-service/internal/models"
)

func TestBiddingSessionSelect(t *testing.T) {
	jobs := sampleJobRepo(t)
	s := NewBiddingSession("s1")

	if s.State() != models.SessionIdle || s.Job() != nil {
		t.Fatalf("new session should be idle with no job")
	}

	if err := s.Select(mustJob(t, jobs, "1")); err != nil {
		t.Fatal(err)
	}
	if err := s.Select(mustJob(t, jobs, "2")); err != nil {
		t.Fatal(err)
	}
	if s.State() != models.SessionSelected || s.Job().ID != "2" {
		t.Fatalf("expected job 2 selected, got %+v", s.Snapshot())
	}
}

func TestBiddingSessionNoStaleSelection(t *testing.T) {
	jobs := sampleJobRepo(t)
	s := NewBiddingSession("s1")

	_ = s.Select(mustJob(t, jobs, "1"))
	_ = s.Select(mustJob(t, jobs, "2"))
	s.OpenBid(*s.Job())

	if s.State() != models.SessionBidding {
		t.Fatalf("state = %q, want bidding", s.State())
	}
	if got := s.Job(); got == nil || got.ID != "2" {
		t.Fatalf("dialog shows %+v, want job 2", got)
	}
}

func TestBiddingSessionOpenBidFromIdle(t *testing.T) {
	jobs := sampleJobRepo(t)
	s := NewBiddingSession("s1")

	s.OpenBid(mustJob(t, jobs, "3"))
	if s.State() != models.SessionBidding || s.Job().ID != "3" {
		t.Fatalf("unexpected snapshot %+v", s.Snapshot())
	}

	if err := s.Cancel(); err != nil {
		t.Fatal(err)
	}
	if s.State() != models.SessionIdle || s.Job() != nil || s.Amount() != "" {
		t.Fatalf("cancel from idle-opened dialog should return to idle, got %+v", s.Snapshot())
	}
}

func TestBiddingSessionCancelRestoresSelection(t *testing.T) {
	jobs := sampleJobRepo(t)
	s := NewBiddingSession("s1")

	_ = s.Select(mustJob(t, jobs, "1"))
	s.OpenBid(mustJob(t, jobs, "2"))
	_ = s.SetAmount("120")

	if err := s.Cancel(); err != nil {
		t.Fatal(err)
	}
	if s.State() != models.SessionSelected || s.Job().ID != "1" {
		t.Fatalf("expected job 1 selected after cancel, got %+v", s.Snapshot())
	}
	if s.Amount() != "" {
		t.Errorf("amount not cleared: %q", s.Amount())
	}
}

func TestBiddingSessionCancelLeavesJobsUntouched(t *testing.T) {
	jobs := sampleJobRepo(t)
	ctx := context.Background()
	before, _, _ := jobs.ListJobs(ctx, models.JobCriteria{})

	s := NewBiddingSession("s1")
	s.OpenBid(mustJob(t, jobs, "1"))
	_ = s.SetAmount("50")
	_ = s.Cancel()

	after, _, _ := jobs.ListJobs(ctx, models.JobCriteria{})
	if len(before) != len(after) {
		t.Fatalf("collection size changed: %d -> %d", len(before), len(after))
	}
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("job %s changed: %+v -> %+v", before[i].ID, before[i], after[i])
		}
	}
}

func TestBiddingSessionInvalidTransitions(t *testing.T) {
	jobs := sampleJobRepo(t)
	s := NewBiddingSession("s1")

	if err := s.Cancel(); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("cancel from idle: %v", err)
	}
	if err := s.SetAmount("10"); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("set amount from idle: %v", err)
	}
	if _, err := s.Submit(context.Background(), &recordingSink{}); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("submit from idle: %v", err)
	}

	s.OpenBid(mustJob(t, jobs, "1"))
	if err := s.Select(mustJob(t, jobs, "2")); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("select while bidding: %v", err)
	}
	if s.Job().ID != "1" {
		t.Errorf("dialog job changed to %s", s.Job().ID)
	}
}

func TestBiddingSessionSelectClearsAmount(t *testing.T) {
	jobs := sampleJobRepo(t)
	s := NewBiddingSession("s1")

	s.OpenBid(mustJob(t, jobs, "1"))
	_ = s.SetAmount("75")
	_ = s.Cancel()
	_ = s.Select(mustJob(t, jobs, "2"))
	if s.Amount() != "" {
		t.Errorf("amount = %q after select", s.Amount())
	}
}

func TestBiddingSessionCanSubmit(t *testing.T) {
	jobs := sampleJobRepo(t)
	s := NewBiddingSession("s1")
	s.OpenBid(mustJob(t, jobs, "1"))

	for _, in := range []string{"", "0", "-5", "abc"} {
		_ = s.SetAmount(in)
		if s.CanSubmit() {
			t.Errorf("CanSubmit() true for %q", in)
		}
	}
	for _, in := range []string{"0.01", "250"} {
		_ = s.SetAmount(in)
		if !s.CanSubmit() {
			t.Errorf("CanSubmit() false for %q", in)
		}
	}
}

func TestBiddingSessionSubmit(t *testing.T) {
	jobs := sampleJobRepo(t)
	sink := &recordingSink{}
	s := NewBiddingSession("s1")
	ctx := context.Background()

	_ = s.Select(mustJob(t, jobs, "2"))
	s.OpenBid(mustJob(t, jobs, "2"))
	_ = s.SetAmount("abc")

	res, err := s.Submit(ctx, sink)
	if err != nil {
		t.Fatal(err)
	}
	if res.Outcome != models.BidValidationError || len(sink.calls) != 0 {
		t.Fatalf("invalid amount must not reach the sink: %+v, calls %d", res, len(sink.calls))
	}
	if s.State() != models.SessionBidding || s.Amount() != "abc" {
		t.Fatalf("validation failure should keep the dialog, got %+v", s.Snapshot())
	}

	_ = s.SetAmount("250")
	res, err = s.Submit(ctx, sink)
	if err != nil {
		t.Fatal(err)
	}
	if !res.Succeeded() {
		t.Fatalf("expected success, got %+v", res)
	}
	if len(sink.calls) != 1 || sink.calls[0] != (submitCall{jobId: "2", amount: "250"}) {
		t.Fatalf("unexpected sink calls: %+v", sink.calls)
	}
	if s.State() != models.SessionIdle || s.Job() != nil || s.Amount() != "" {
		t.Fatalf("expected idle after submit, got %+v", s.Snapshot())
	}
}

func TestBiddingSessionSubmitTransportError(t *testing.T) {
	jobs := sampleJobRepo(t)
	sink := &recordingSink{outcome: models.BidTransportError}
	s := NewBiddingSession("s1")

	s.OpenBid(mustJob(t, jobs, "1"))
	_ = s.SetAmount("300")

	res, err := s.Submit(context.Background(), sink)
	if err != nil {
		t.Fatal(err)
	}
	if res.Outcome != models.BidTransportError {
		t.Fatalf("outcome = %q", res.Outcome)
	}
	if s.State() != models.SessionBidding || s.Amount() != "300" || s.Job().ID != "1" {
		t.Fatalf("transport failure should keep the draft, got %+v", s.Snapshot())
	}
}

func TestSessionStore(t *testing.T) {
	store := NewSessionStore()
	session := store.Create()
	if session.ID == "" || store.Len() != 1 {
		t.Fatalf("unexpected store state")
	}

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.Do(session.ID, func(s *BiddingSession) error {
				s.OpenBid(models.Job{ID: "1"})
				return s.Cancel()
			})
		}()
	}
	wg.Wait()

	if err := store.Do("nope", func(*BiddingSession) error { return nil }); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound, got %v", err)
	}
	if err := store.Delete(session.ID); err != nil {
		t.Fatal(err)
	}
	if err := store.Delete(session.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("second delete: %v", err)
	}
}

func TestSessionServiceFlow(t *testing.T) {
	jobs := sampleJobRepo(t)
	sink := &recordingSink{}
	service := NewSessionService(NewSessionStore(), jobs, sink)
	ctx := context.Background()

	snap := service.CreateSession()
	if snap.State != models.SessionIdle {
		t.Fatalf("state = %q", snap.State)
	}

	if _, err := service.SelectJob(ctx, snap.ID, "1"); err != nil {
		t.Fatal(err)
	}
	if _, err := service.OpenBid(ctx, snap.ID, "3"); err != nil {
		t.Fatal(err)
	}
	got, err := service.SetAmount(snap.ID, "99")
	if err != nil {
		t.Fatal(err)
	}
	if !got.CanSubmit || got.Job.ID != "3" {
		t.Fatalf("unexpected snapshot %+v", got)
	}

	res, after, err := service.SubmitBid(ctx, snap.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !res.Succeeded() || after.State != models.SessionIdle {
		t.Fatalf("unexpected submit result %+v / %+v", res, after)
	}
}

func TestSessionServiceErrors(t *testing.T) {
	service := NewSessionService(NewSessionStore(), sampleJobRepo(t), &recordingSink{})
	ctx := context.Background()
	snap := service.CreateSession()

	tests := []struct {
		name string
		call func() error
		want int
	}{
		{"unknown session", func() error { _, err := service.GetSession("missing"); return err }, http.StatusNotFound},
		{"unknown job", func() error { _, err := service.SelectJob(ctx, snap.ID, "42"); return err }, http.StatusNotFound},
		{"missing job id", func() error { _, err := service.OpenBid(ctx, snap.ID, ""); return err }, http.StatusBadRequest},
		{"cancel while idle", func() error { _, err := service.CancelBid(snap.ID); return err }, http.StatusConflict},
		{"submit while idle", func() error { _, _, err := service.SubmitBid(ctx, snap.ID); return err }, http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var errResp *models.ErrorResponse
			if err := tt.call(); !errors.As(err, &errResp) || errResp.StatusCode != tt.want {
				t.Fatalf("expected status %d, got %v", tt.want, err)
			}
		})
	}
}
