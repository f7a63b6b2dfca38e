package booking

import (
	"context"
	"log"
	"sort"
	"time"

	"github.com/glowdesk/salon-scheduler/internal/dto"
	"github.com/glowdesk/salon-scheduler/internal/models"
	"github.com/glowdesk/salon-scheduler/internal/store"
)

// ListUpcoming returns the appointments whose (date, time) is at or after
// now, ascending. Upcoming is a view-level filter: past appointments stay
// in the store, they just stop appearing here.
type ListUpcoming struct {
	repo store.Repository
	now  func() time.Time
}

func NewListUpcoming(repo store.Repository, now func() time.Time) *ListUpcoming {
	if now == nil {
		now = time.Now
	}
	return &ListUpcoming{repo: repo, now: now}
}

func (uc *ListUpcoming) Execute(ctx context.Context) ([]dto.AppointmentListDTO, error) {
	appts, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	now := uc.now()

	upcoming := make([]models.Appointment, 0, len(appts))
	for _, appt := range appts {
		at, err := startOf(appt)
		if err != nil {
			log.Printf("skipping appointment %s with malformed schedule (%q, %q): %v",
				appt.ID, appt.Date, appt.Time, err)
			continue
		}
		if !at.Before(now) {
			upcoming = append(upcoming, appt)
		}
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		a, _ := startOf(upcoming[i])
		b, _ := startOf(upcoming[j])
		return a.Before(b)
	})

	out := make([]dto.AppointmentListDTO, 0, len(upcoming))
	for _, appt := range upcoming {
		out = append(out, dto.AppointmentListDTO{
			ID:            appt.ID,
			Date:          appt.Date,
			Time:          appt.Time,
			ServiceNames:  appt.ServiceNames,
			StaffName:     appt.StaffName,
			ClientName:    appt.ClientName,
			Status:        appt.Status,
			TotalPrice:    appt.TotalPrice,
			TotalDuration: appt.TotalDuration,
			CreatedAt:     appt.CreatedAt,
		})
	}
	return out, nil
}

func startOf(appt models.Appointment) (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04", appt.Date+" "+appt.Time, time.Local)
}
