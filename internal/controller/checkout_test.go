package controller

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/studyspot/booking-system/internal/domain"
)

func TestCheckoutPriceBreakdown(t *testing.T) {
	seat := domain.Seat{ID: "seat_1", SeatNumber: "A1", IsAvailable: true, Price: decimal.NewFromInt(50)}
	date := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		plan         *domain.Plan
		wantSubtotal string
		wantGST      string
		wantTotal    string
	}{
		{
			name:         "weekly pass",
			plan:         &domain.Plan{ID: "plan_weekly", Price: decimal.NewFromInt(999)},
			wantSubtotal: "999.00",
			wantGST:      "179.82",
			wantTotal:    "1178.82",
		},
		{
			name:         "daily pass",
			plan:         &domain.Plan{ID: "plan_daily", Price: decimal.NewFromInt(199)},
			wantSubtotal: "199.00",
			wantGST:      "35.82",
			wantTotal:    "234.82",
		},
		{
			name:         "monthly pass",
			plan:         &domain.Plan{ID: "plan_monthly", Price: decimal.NewFromInt(2999)},
			wantSubtotal: "2999.00",
			wantGST:      "539.82",
			wantTotal:    "3538.82",
		},
		{
			name:         "no plan selected",
			plan:         nil,
			wantSubtotal: "0.00",
			wantGST:      "0.00",
			wantTotal:    "0.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCheckoutController()
			c.SetCheckoutData(&seat, tt.plan, date)

			if got := c.Subtotal().StringFixed(2); got != tt.wantSubtotal {
				t.Errorf("Subtotal() = %s, want %s", got, tt.wantSubtotal)
			}
			if got := c.GST().StringFixed(2); got != tt.wantGST {
				t.Errorf("GST() = %s, want %s", got, tt.wantGST)
			}
			if got := c.Total().StringFixed(2); got != tt.wantTotal {
				t.Errorf("Total() = %s, want %s", got, tt.wantTotal)
			}
		})
	}
}

// The breakdown is derived on demand, so swapping the plan immediately
// changes the totals.
func TestCheckoutFollowsSelectionChanges(t *testing.T) {
	seat := domain.Seat{ID: "seat_1", Price: decimal.NewFromInt(50)}
	date := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	c := NewCheckoutController()
	c.SetCheckoutData(&seat, &domain.Plan{ID: "plan_daily", Price: decimal.NewFromInt(199)}, date)

	if got := c.Total().StringFixed(2); got != "234.82" {
		t.Fatalf("Total() = %s, want 234.82", got)
	}

	c.SetCheckoutData(&seat, &domain.Plan{ID: "plan_weekly", Price: decimal.NewFromInt(999)}, date)

	if got := c.Total().StringFixed(2); got != "1178.82" {
		t.Errorf("Total() = %s, want 1178.82", got)
	}
}
