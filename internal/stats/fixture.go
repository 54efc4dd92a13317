package stats

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Default dashboard datasets. These mirror the sample figures shipped with
// the admin UI; a fixture file can replace any of them.
func defaultPanels() []ChartPanel {
	return []ChartPanel{
		{
			ID:    PanelBestSellers,
			Title: "Best Selling Items",
			Kind:  KindPie,
			Points: []ChartPoint{
				{Label: "Nasi Lemak", Value: 412},
				{Label: "Chicken Rice", Value: 358},
				{Label: "Laksa", Value: 271},
				{Label: "Satay", Value: 195},
				{Label: "Roti Canai", Value: 164},
			},
		},
		{
			ID:    PanelWeeklyOrders,
			Title: "Orders This Week",
			Kind:  KindBar,
			Points: []ChartPoint{
				{Label: "Mon", Value: 96},
				{Label: "Tue", Value: 112},
				{Label: "Wed", Value: 104},
				{Label: "Thu", Value: 131},
				{Label: "Fri", Value: 187},
				{Label: "Sat", Value: 243},
				{Label: "Sun", Value: 214},
			},
		},
		{
			ID:    PanelCustomerSplit,
			Title: "New vs Returning Customers",
			Kind:  KindRing,
			Points: []ChartPoint{
				{Label: "New", Value: 34},
				{Label: "Returning", Value: 66},
			},
		},
		{
			ID:    PanelRatingTrend,
			Title: "Average Rating by Month",
			Kind:  KindLine,
			Points: []ChartPoint{
				{Label: "Jan", Value: 4.1},
				{Label: "Feb", Value: 4.2},
				{Label: "Mar", Value: 4.0},
				{Label: "Apr", Value: 4.3},
				{Label: "May", Value: 4.5},
				{Label: "Jun", Value: 4.4},
			},
		},
		{
			ID:    PanelCouponUsage,
			Title: "Coupon Usage",
			Kind:  KindHBar,
			Points: []ChartPoint{
				{Label: "WELCOME10", Value: 154},
				{Label: "FREEDEL", Value: 121},
				{Label: "LUNCH15", Value: 87},
				{Label: "WEEKEND5", Value: 63},
			},
		},
	}
}

// Default builds the compiled-in snapshot. The orders, rating, and top-seller
// cards are derived from the chart series so the numbers cannot drift apart.
func Default() Snapshot {
	s := Snapshot{Panels: defaultPanels()}
	s.Cards = []KPICard{
		{Label: "Revenue This Week", Value: decimal.RequireFromString("28465.50"), Unit: "MYR", Accent: "#16a34a"},
		{Label: "Orders This Week", Value: decimal.NewFromFloat(s.TotalOrders()), Accent: "#6366f1"},
		{Label: "Average Rating", Value: decimal.NewFromFloat(s.LatestRating()), Unit: "/5", Accent: "#f59e0b"},
		{Label: "Active Coupons", Value: decimal.NewFromInt(4), Accent: "#ef4444"},
	}
	return s
}

// Fixture file shape. KPI values are strings so fixtures can carry exact
// monetary amounts without float rounding.
type fixtureFile struct {
	Cards []struct {
		Label  string `yaml:"label"`
		Value  string `yaml:"value"`
		Unit   string `yaml:"unit"`
		Accent string `yaml:"accent"`
	} `yaml:"cards"`
	Panels []struct {
		ID     string `yaml:"id"`
		Title  string `yaml:"title"`
		Kind   string `yaml:"kind"`
		Points []struct {
			Label string  `yaml:"label"`
			Value float64 `yaml:"value"`
		} `yaml:"points"`
	} `yaml:"panels"`
}

// LoadFile reads a snapshot from a YAML fixture and validates it.
func LoadFile(path string) (Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Snapshot{}, fmt.Errorf("read dashboard fixture: %w", err)
	}
	var ff fixtureFile
	if err := yaml.Unmarshal(data, &ff); err != nil {
		return Snapshot{}, fmt.Errorf("parse dashboard fixture: %w", err)
	}

	var s Snapshot
	for _, c := range ff.Cards {
		value, err := decimal.NewFromString(c.Value)
		if err != nil {
			return Snapshot{}, fmt.Errorf("card %q: bad value %q: %w", c.Label, c.Value, err)
		}
		s.Cards = append(s.Cards, KPICard{Label: c.Label, Value: value, Unit: c.Unit, Accent: c.Accent})
	}
	for _, p := range ff.Panels {
		panel := ChartPanel{ID: p.ID, Title: p.Title, Kind: ChartKind(p.Kind)}
		for _, pt := range p.Points {
			panel.Points = append(panel.Points, ChartPoint{Label: pt.Label, Value: pt.Value})
		}
		s.Panels = append(s.Panels, panel)
	}
	if err := Validate(s); err != nil {
		return Snapshot{}, fmt.Errorf("dashboard fixture %s: %w", path, err)
	}
	return s, nil
}

// Load returns the fixture snapshot when path is set, else the defaults.
func Load(path string) (Snapshot, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}
