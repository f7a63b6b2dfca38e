package booking

import (
	"context"
	"strings"
	"time"

	"github.com/glowdesk/salon-scheduler/internal/models"
	"github.com/glowdesk/salon-scheduler/internal/refdata"
	"github.com/glowdesk/salon-scheduler/internal/store"
)

// ===============================
// Session States
// ===============================

type State string

const (
	StateSelectingServices  State = "selecting_services"
	StateSelectingStaff     State = "selecting_staff"
	StateSelectingDateTime  State = "selecting_date_time"
	StateEnteringClientInfo State = "entering_client_info"
	StateConfirming         State = "confirming"
	StateFinalized          State = "finalized"
)

// Session accumulates a booking draft across the steps
// services -> staff -> date/time -> client info -> confirm. Steps are
// strictly sequential and user-driven; earlier steps may be revisited
// without losing untouched data. A finalized session is immutable and
// issues at most one create against the store.
type Session struct {
	catalog refdata.Source
	repo    store.Repository
	now     func() time.Time

	state   State
	draft   Draft
	created *models.Appointment
}

func NewSession(catalog refdata.Source, repo store.Repository, now func() time.Time) *Session {
	if now == nil {
		now = time.Now
	}
	return &Session{
		catalog: catalog,
		repo:    repo,
		now:     now,
		state:   StateSelectingServices,
	}
}

func (s *Session) State() State {
	return s.state
}

// Draft returns a copy of the working state.
func (s *Session) Draft() Draft {
	return s.draft
}

// Created returns the finalized appointment, if any.
func (s *Session) Created() (models.Appointment, bool) {
	if s.created == nil {
		return models.Appointment{}, false
	}
	return *s.created, true
}

// ===============================
// Steps
// ===============================

// SelectServices replaces the service selection and recomputes totals.
// Re-entering this step invalidates a previously chosen staff member who
// cannot perform the new set, and with them the chosen slot.
func (s *Session) SelectServices(ids []string) error {
	if s.state == StateFinalized {
		return validationError("session already finalized")
	}
	if len(ids) == 0 {
		return validationError("at least one service is required")
	}

	seen := make(map[string]struct{}, len(ids))
	services := make([]models.Service, 0, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		svc, ok := s.catalog.Service(id)
		if !ok {
			return validationError("unknown service: " + id)
		}
		services = append(services, svc)
	}

	s.draft.setServices(services)

	if s.draft.Staff != nil && !staffCanPerform(*s.draft.Staff, s.draft.Services) {
		s.draft.Staff = nil
		s.draft.Date = ""
		s.draft.Time = ""
	}

	s.advance()
	return nil
}

// SelectStaff chooses the staff member. The member must perform every
// selected service. A previously chosen slot survives a staff change only
// if it is still available for the new member.
func (s *Session) SelectStaff(ctx context.Context, id string) error {
	if s.state == StateFinalized {
		return validationError("session already finalized")
	}
	if len(s.draft.Services) == 0 {
		return validationError("select at least one service first")
	}

	member, ok := s.catalog.StaffMember(id)
	if !ok {
		return validationError("unknown staff member: " + id)
	}
	if !staffCanPerform(member, s.draft.Services) {
		return validationError("staff member cannot perform every selected service")
	}

	changed := s.draft.Staff == nil || s.draft.Staff.ID != member.ID
	if changed && s.draft.Date != "" {
		appts, err := s.repo.List(ctx)
		if err != nil {
			return err
		}
		if !IsAvailable(s.draft.Date, s.draft.Time, member.ID, appts) {
			s.draft.Date = ""
			s.draft.Time = ""
		}
	}

	s.draft.Staff = &member
	s.advance()
	return nil
}

// SelectSlot chooses the (date, time) pair. The time must come from the
// daily grid and be currently available for the chosen staff member.
func (s *Session) SelectSlot(ctx context.Context, date, tod string) error {
	if s.state == StateFinalized {
		return validationError("session already finalized")
	}
	if s.draft.Staff == nil {
		return validationError("select a staff member first")
	}

	day, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return validationError("invalid date, expected YYYY-MM-DD")
	}
	today := s.now()
	startOfToday := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.Local)
	if day.Before(startOfToday) {
		return validationError("date is in the past")
	}

	if !IsOfferedSlot(tod) {
		return validationError("time is not an offered slot")
	}

	appts, err := s.repo.List(ctx)
	if err != nil {
		return err
	}
	if !IsAvailable(date, tod, s.draft.Staff.ID, appts) {
		return validationError("slot is no longer available")
	}

	s.draft.Date = date
	s.draft.Time = tod
	s.advance()
	return nil
}

// EnterClientInfo records the client contact fields. Name and phone are
// required; email and notes are optional.
func (s *Session) EnterClientInfo(name, phone, email, notes string) error {
	if s.state == StateFinalized {
		return validationError("session already finalized")
	}
	if s.draft.Date == "" || s.draft.Time == "" {
		return validationError("select a date and time first")
	}

	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)
	if name == "" {
		return validationError("client name is required")
	}
	if phone == "" {
		return validationError("phone is required")
	}

	s.draft.ClientName = name
	s.draft.Phone = phone
	s.draft.Email = strings.TrimSpace(email)
	s.draft.Notes = strings.TrimSpace(notes)
	s.advance()
	return nil
}

// Confirm finalizes the draft into exactly one stored appointment.
//
// A session that already finalized returns the stored record without a
// second create. Availability is re-checked against a fresh snapshot so a
// slot lost between selection and confirmation surfaces as
// store.ErrConflict. The state flips to Finalized before the create is
// issued and rolls back to Confirming on failure, leaving the draft intact
// for retry.
func (s *Session) Confirm(ctx context.Context) (models.Appointment, error) {
	if s.created != nil {
		return *s.created, nil
	}
	if s.state != StateConfirming {
		return models.Appointment{}, validationError("booking is not ready to confirm")
	}

	appts, err := s.repo.List(ctx)
	if err != nil {
		return models.Appointment{}, err
	}
	if !IsAvailable(s.draft.Date, s.draft.Time, s.draft.Staff.ID, appts) {
		return models.Appointment{}, store.ErrConflict
	}

	s.state = StateFinalized

	created, err := s.repo.Create(ctx, models.Appointment{
		ServiceIDs:    s.draft.serviceIDs(),
		ServiceNames:  s.draft.joinedServiceNames(),
		StaffID:       s.draft.Staff.ID,
		StaffName:     s.draft.Staff.Name,
		Date:          s.draft.Date,
		Time:          s.draft.Time,
		ClientName:    s.draft.ClientName,
		Phone:         s.draft.Phone,
		Email:         s.draft.Email,
		Notes:         s.draft.Notes,
		TotalPrice:    s.draft.TotalPrice,
		TotalDuration: s.draft.TotalDuration,
		Status:        models.StatusConfirmed,
		CreatedAt:     s.now(),
	})
	if err != nil {
		s.state = StateConfirming
		return models.Appointment{}, err
	}

	s.created = &created
	return created, nil
}

// advance moves the state to the earliest incomplete step. Finalized is
// only ever entered by Confirm.
func (s *Session) advance() {
	switch {
	case len(s.draft.Services) == 0:
		s.state = StateSelectingServices
	case s.draft.Staff == nil:
		s.state = StateSelectingStaff
	case s.draft.Date == "" || s.draft.Time == "":
		s.state = StateSelectingDateTime
	case s.draft.ClientName == "" || s.draft.Phone == "":
		s.state = StateEnteringClientInfo
	default:
		s.state = StateConfirming
	}
}

func staffCanPerform(member models.StaffMember, services []models.Service) bool {
	for _, svc := range services {
		if !member.CanPerform(svc.ID) {
			return false
		}
	}
	return true
}
