package app

import (
	"net/http"

	"github.com/studyspot/booking-system/internal/workflow"
)

func (app *application) DashboardHandler(w http.ResponseWriter, r *http.Request) {
	session := app.session(r)
	session.mu.Lock()
	defer session.mu.Unlock()

	session.nav.Navigate(workflow.Dashboard)

	result := session.dashboard.LoadDashboard(r.Context())

	resp := DashboardResponse{
		State: stateOf(result),
		Error: result.Message(),
	}

	if stats, ok := result.Value(); ok {
		resp.Stats = &DashboardStatsResponse{
			HoursThisWeek:     stats.HoursThisWeek,
			TotalHours:        stats.TotalHours,
			CurrentStreak:     stats.CurrentStreak,
			BookingsThisMonth: stats.BookingsThisMonth,
		}
	}

	if booking := session.dashboard.CurrentBooking; booking != nil {
		bookingResp := toBookingResponse(*booking)
		resp.CurrentBooking = &bookingResp
	}

	if user := session.dashboard.CurrentUser; user != nil {
		userResp := toUserResponse(*user)
		resp.User = &userResp
	}

	err := app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
