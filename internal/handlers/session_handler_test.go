package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/glowdesk/salon-scheduler/internal/audit"
	"github.com/glowdesk/salon-scheduler/internal/models"
	"github.com/glowdesk/salon-scheduler/internal/refdata"
	"github.com/glowdesk/salon-scheduler/internal/sessions"
	"github.com/glowdesk/salon-scheduler/internal/store/memory"
	"github.com/glowdesk/salon-scheduler/internal/weather"
)

type captureSink struct {
	events chan audit.Event
}

func newCaptureSink() *captureSink {
	return &captureSink{events: make(chan audit.Event, 10)}
}

func (s *captureSink) Write(ev audit.Event) error {
	s.events <- ev
	return nil
}

func confirmFixture(t *testing.T) (*SessionHandler, *sessions.Manager, *captureSink) {
	t.Helper()

	catalog := refdata.New(
		[]models.Service{{ID: "svc-haircut", Name: "Haircut", Price: 40, DurationMin: 30}},
		[]models.StaffMember{{ID: "stf-1", Name: "Staff One", ServiceIDs: []string{"svc-haircut"}}},
	)
	now := func() time.Time { return time.Date(2026, 9, 1, 8, 0, 0, 0, time.Local) }
	manager := sessions.NewManager(catalog, memory.New(), now)

	sink := newCaptureSink()
	h := NewSessionHandler(manager, weather.NewClient(""), audit.NewDispatcher(sink))
	return h, manager, sink
}

func confirmRequest(t *testing.T, h *SessionHandler, id string) *httptest.ResponseRecorder {
	t.Helper()

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Params = gin.Params{{Key: "id", Value: id}}
	c.Request = httptest.NewRequest(http.MethodPost, "/api/sessions/"+id+"/confirm", nil)

	h.Confirm(c)
	return rec
}

func TestConfirm_AuditsCreatedAppointment(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctx := context.Background()

	h, manager, sink := confirmFixture(t)

	id, sess := manager.Start()
	if err := sess.SelectServices([]string{"svc-haircut"}); err != nil {
		t.Fatalf("SelectServices error: %v", err)
	}
	if err := sess.SelectStaff(ctx, "stf-1"); err != nil {
		t.Fatalf("SelectStaff error: %v", err)
	}
	if err := sess.SelectSlot(ctx, "2026-09-04", "10:00"); err != nil {
		t.Fatalf("SelectSlot error: %v", err)
	}
	if err := sess.EnterClientInfo("Jane Doe", "555-0101", "", ""); err != nil {
		t.Fatalf("EnterClientInfo error: %v", err)
	}

	rec := confirmRequest(t, h, id)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d; body: %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	ev := <-sink.events
	if ev.Action != "appointment_created" || ev.Entity != "appointment" {
		t.Fatalf("audit event = %+v, want appointment_created for appointment", ev)
	}
	created, ok := sess.Created()
	if !ok {
		t.Fatalf("session holds no created appointment after confirm")
	}
	if ev.EntityID != created.ID {
		t.Fatalf("audit entity id = %q, want %q", ev.EntityID, created.ID)
	}

	// A repeat confirm replays the appointment without a second event.
	rec = confirmRequest(t, h, id)
	if rec.Code != http.StatusOK {
		t.Fatalf("repeat status = %d, want %d", rec.Code, http.StatusOK)
	}
	select {
	case ev := <-sink.events:
		t.Fatalf("unexpected second audit event: %+v", ev)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestConfirm_NoAuditEventWhenNotReady(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h, manager, sink := confirmFixture(t)
	id, _ := manager.Start()

	rec := confirmRequest(t, h, id)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	select {
	case ev := <-sink.events:
		t.Fatalf("unexpected audit event on rejected confirm: %+v", ev)
	case <-time.After(50 * time.Millisecond):
	}
}
