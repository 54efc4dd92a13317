// Package stats assembles the statistics dashboard payload: KPI summary
// cards plus the five chart panels the admin UI renders.
package stats

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ChartKind selects the widget used to render a panel.
type ChartKind string

const (
	KindPie  ChartKind = "pie"
	KindBar  ChartKind = "bar"
	KindRing ChartKind = "ring"
	KindLine ChartKind = "line"
	KindHBar ChartKind = "hbar"
)

// Panel ids the dashboard is built from.
const (
	PanelBestSellers   = "best_sellers"
	PanelWeeklyOrders  = "weekly_orders"
	PanelCustomerSplit = "customer_split"
	PanelRatingTrend   = "rating_trend"
	PanelCouponUsage   = "coupon_usage"
)

// KPICard summarizes one numeric metric, with an optional unit suffix and
// accent color for the card chrome.
type KPICard struct {
	Label  string          `json:"label"`
	Value  decimal.Decimal `json:"value"`
	Unit   string          `json:"unit,omitempty"`
	Accent string          `json:"accent,omitempty"`
}

// ChartPoint is one label/value pair inside a panel.
type ChartPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// ChartPanel is one chart widget with its dataset and display kind.
type ChartPanel struct {
	ID     string       `json:"id"`
	Title  string       `json:"title"`
	Kind   ChartKind    `json:"kind"`
	Points []ChartPoint `json:"points"`
}

// Snapshot is the full dashboard payload.
type Snapshot struct {
	Cards  []KPICard    `json:"cards"`
	Panels []ChartPanel `json:"panels"`
}

// Panel returns the panel with the given id, or false when absent.
func (s Snapshot) Panel(id string) (ChartPanel, bool) {
	for _, p := range s.Panels {
		if p.ID == id {
			return p, true
		}
	}
	return ChartPanel{}, false
}

// TotalOrders sums the weekly order series.
func (s Snapshot) TotalOrders() float64 {
	panel, ok := s.Panel(PanelWeeklyOrders)
	if !ok {
		return 0
	}
	var total float64
	for _, p := range panel.Points {
		total += p.Value
	}
	return total
}

// LatestRating returns the most recent point of the rating trend.
func (s Snapshot) LatestRating() float64 {
	panel, ok := s.Panel(PanelRatingTrend)
	if !ok || len(panel.Points) == 0 {
		return 0
	}
	return panel.Points[len(panel.Points)-1].Value
}

// TopSeller returns the label of the largest best-seller slice.
func (s Snapshot) TopSeller() string {
	panel, ok := s.Panel(PanelBestSellers)
	if !ok || len(panel.Points) == 0 {
		return ""
	}
	top := panel.Points[0]
	for _, p := range panel.Points[1:] {
		if p.Value > top.Value {
			top = p
		}
	}
	return top.Label
}

func validKind(k ChartKind) bool {
	switch k {
	case KindPie, KindBar, KindRing, KindLine, KindHBar:
		return true
	}
	return false
}

// Validate checks a snapshot for the shape the dashboard relies on: unique
// panel ids, known chart kinds, and no empty datasets.
func Validate(s Snapshot) error {
	if len(s.Cards) == 0 {
		return fmt.Errorf("snapshot has no KPI cards")
	}
	seen := make(map[string]struct{}, len(s.Panels))
	for _, p := range s.Panels {
		if p.ID == "" {
			return fmt.Errorf("panel %q has no id", p.Title)
		}
		if _, dup := seen[p.ID]; dup {
			return fmt.Errorf("duplicate panel id %q", p.ID)
		}
		seen[p.ID] = struct{}{}
		if !validKind(p.Kind) {
			return fmt.Errorf("panel %q has unknown kind %q", p.ID, p.Kind)
		}
		if len(p.Points) == 0 {
			return fmt.Errorf("panel %q has no data points", p.ID)
		}
	}
	return nil
}
