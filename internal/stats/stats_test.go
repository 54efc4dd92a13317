package stats

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultSnapshotIsValid(t *testing.T) {
	s := Default()
	if err := Validate(s); err != nil {
		t.Fatalf("default snapshot invalid: %v", err)
	}
	if len(s.Cards) != 4 {
		t.Errorf("want 4 KPI cards, got %d", len(s.Cards))
	}
	if len(s.Panels) != 5 {
		t.Errorf("want 5 chart panels, got %d", len(s.Panels))
	}
}

func TestDerivedFigures(t *testing.T) {
	s := Default()
	if got := s.TotalOrders(); got != 1087 {
		t.Errorf("TotalOrders = %v, want 1087", got)
	}
	if got := s.LatestRating(); got != 4.4 {
		t.Errorf("LatestRating = %v, want 4.4", got)
	}
	if got := s.TopSeller(); got != "Nasi Lemak" {
		t.Errorf("TopSeller = %q", got)
	}
}

func TestOrdersCardMatchesWeeklySeries(t *testing.T) {
	s := Default()
	var found bool
	for _, c := range s.Cards {
		if c.Label == "Orders This Week" {
			found = true
			if c.Value.String() != "1087" {
				t.Errorf("orders card = %s, want 1087", c.Value)
			}
		}
	}
	if !found {
		t.Fatal("orders card missing")
	}
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	fixture := `cards:
  - label: Revenue Today
    value: "1250.75"
    unit: MYR
panels:
  - id: weekly_orders
    title: Orders
    kind: bar
    points:
      - label: Mon
        value: 10
      - label: Tue
        value: 12
`
	path := filepath.Join(t.TempDir(), "dashboard.yaml")
	if err := os.WriteFile(path, []byte(fixture), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(s.Cards) != 1 || s.Cards[0].Value.String() != "1250.75" {
		t.Fatalf("unexpected cards: %+v", s.Cards)
	}
	if got := s.TotalOrders(); got != 22 {
		t.Errorf("TotalOrders = %v, want 22", got)
	}
}

func TestLoadFileRejectsUnknownKind(t *testing.T) {
	fixture := `cards:
  - label: Revenue
    value: "1"
panels:
  - id: weekly_orders
    title: Orders
    kind: scatter
    points:
      - label: Mon
        value: 10
`
	path := filepath.Join(t.TempDir(), "dashboard.yaml")
	if err := os.WriteFile(path, []byte(fixture), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := LoadFile(path); err == nil || !strings.Contains(err.Error(), "unknown kind") {
		t.Fatalf("want unknown kind error, got %v", err)
	}
}

func TestValidateRejectsDuplicatePanels(t *testing.T) {
	s := Default()
	s.Panels = append(s.Panels, s.Panels[0])
	if err := Validate(s); err == nil {
		t.Fatal("duplicate panel ids must be rejected")
	}
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	s, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(s.Panels) != 5 {
		t.Fatalf("want default panels, got %d", len(s.Panels))
	}
}
