package controller

import (
	"context"

	"github.com/studyspot/booking-system/internal/async"
	"github.com/studyspot/booking-system/internal/domain"
)

// PlanSelectionController loads the static plan catalog and tracks the
// chosen plan.
type PlanSelectionController struct {
	repo   domain.Repository
	loader *async.Loader[[]domain.Plan]

	SelectedPlan *domain.Plan
}

func NewPlanSelectionController(repo domain.Repository) *PlanSelectionController {
	return &PlanSelectionController{
		repo:   repo,
		loader: async.NewLoader[[]domain.Plan](),
	}
}

// LoadPlans fetches the catalog. When nothing is selected yet, the first
// recommended plan is auto-selected; with no recommended plan the
// selection stays empty.
func (c *PlanSelectionController) LoadPlans(ctx context.Context) async.Result[[]domain.Plan] {
	result := c.loader.Load(ctx, func(ctx context.Context) ([]domain.Plan, error) {
		return c.repo.Plans(ctx)
	})

	if plans, ok := result.Value(); ok && c.SelectedPlan == nil {
		for _, plan := range plans {
			if plan.IsRecommended {
				c.SelectedPlan = &plan
				break
			}
		}
	}

	return result
}

func (c *PlanSelectionController) State() async.Result[[]domain.Plan] {
	return c.loader.Result()
}

func (c *PlanSelectionController) SelectPlan(plan domain.Plan) {
	c.SelectedPlan = &plan
}
