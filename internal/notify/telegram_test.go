package notify

import (
	"strings"
	"testing"
	"time"

	"github.com/epiforge/seirsim/internal/models"
)

func TestFormatPeakAlert(t *testing.T) {
	run := &models.RunRecord{
		ID:        "run-1",
		CreatedAt: time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
		Scenario: models.ScenarioParameters{
			Name:       "Brazil",
			Population: 100000,
		},
		PeakDay:             142,
		PeakValue:           4200,
		PeakMonth:           4,
		TotalEstimatedCases: 61120,
		TitleSEIR:           "Seasonal model Brazil 2025",
	}

	msg := formatPeakAlert(run)

	if !strings.Contains(msg, "Seasonal model Brazil 2025") {
		t.Errorf("message should carry the run title, got:\n%s", msg)
	}
	if !strings.Contains(msg, "day 142") || !strings.Contains(msg, "May") {
		t.Errorf("message should name the peak day and month, got:\n%s", msg)
	}
	if !strings.Contains(msg, "4200 people sick") {
		t.Errorf("message should carry the peak size, got:\n%s", msg)
	}
	// 4200 of 100000 is 4.2%, with the period escaped for MarkdownV2.
	if !strings.Contains(msg, `4\.2%`) {
		t.Errorf("message should carry the escaped peak share, got:\n%s", msg)
	}
}

func TestEscapeMarkdownV2(t *testing.T) {
	got := escapeMarkdownV2("Model (2025) ~1.5%")
	want := `Model \(2025\) \~1\.5%`
	if got != want {
		t.Errorf("escapeMarkdownV2 = %q, want %q", got, want)
	}
}
