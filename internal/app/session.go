package app

import (
	"context"
	"net/http"
	"sync"

	"github.com/studyspot/booking-system/internal/controller"
	"github.com/studyspot/booking-system/internal/domain"
	"github.com/studyspot/booking-system/internal/workflow"
)

type sessionKey string

const (
	SessionKeyWorkflow = sessionKey("workflow")
)

func (s sessionKey) String() string {
	return string(s)
}

// workflowSession is one user's booking funnel: the navigation stack plus
// the controller set, all sharing the repository. Access is serialized by
// the session mutex so controllers keep their single-threaded model.
type workflowSession struct {
	mu sync.Mutex

	nav       *workflow.Stack
	login     *controller.LoginController
	seats     *controller.SeatAvailabilityController
	plans     *controller.PlanSelectionController
	checkout  *controller.CheckoutController
	payment   *controller.PaymentController
	dashboard *controller.DashboardController
	history   *controller.BookingHistoryController
}

func newWorkflowSession(repo domain.Repository, provider domain.PaymentProvider, hallID string) *workflowSession {
	seats := controller.NewSeatAvailabilityController(repo)
	seats.HallID = hallID

	return &workflowSession{
		nav:       workflow.NewStack(),
		login:     controller.NewLoginController(repo),
		seats:     seats,
		plans:     controller.NewPlanSelectionController(repo),
		checkout:  controller.NewCheckoutController(),
		payment:   controller.NewPaymentController(repo, provider),
		dashboard: controller.NewDashboardController(repo),
		history:   controller.NewBookingHistoryController(repo),
	}
}

// currentUserID resolves the acting user: the freshly logged-in user, the
// dashboard's resolved user, or the locally stored record.
func (s *workflowSession) currentUserID(ctx context.Context, repo domain.Repository) (string, error) {
	if s.login.CurrentUser != nil {
		return s.login.CurrentUser.ID, nil
	}

	if s.dashboard.CurrentUser != nil {
		return s.dashboard.CurrentUser.ID, nil
	}

	user, err := repo.StoredUser(ctx)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", domain.ErrRecordNotFound
	}

	return user.ID, nil
}

type sessionRegistry struct {
	mu       sync.RWMutex
	sessions map[string]*workflowSession
}

func newSessionRegistry() *sessionRegistry {
	return &sessionRegistry{sessions: make(map[string]*workflowSession)}
}

func (r *sessionRegistry) get(token string) (*workflowSession, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[token]

	return session, ok
}

func (r *sessionRegistry) getOrCreate(token string, create func() *workflowSession) *workflowSession {
	if session, ok := r.get(token); ok {
		return session
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if session, ok := r.sessions[token]; ok {
		return session
	}

	session := create()
	r.sessions[token] = session

	return session
}

func (r *sessionRegistry) remove(token string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, token)
}

// session returns the workflow session bound to the request's scs token,
// creating a fresh one at the login root when none exists yet.
func (app *application) session(r *http.Request) *workflowSession {
	token := app.sessionManager.Token(r.Context())

	return app.sessions.getOrCreate(token, func() *workflowSession {
		return newWorkflowSession(app.repo, app.paymentProvider, app.config.hall)
	})
}
