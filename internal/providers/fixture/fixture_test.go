package fixture

import (
	"context"
	"testing"
	"time"

	"mlb-scores-service/internal/testutil"
)

func TestFetchScheduleDeterministic(t *testing.T) {
	p := New([]string{"sea", "LAD"})
	p.now = testutil.NowAt(time.Date(2024, 6, 15, 18, 30, 0, 0, time.UTC))

	sched, err := p.FetchSchedule(context.Background(), "2024-06-15")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sched.Date != "2024-06-15" || len(sched.Games) != 3 {
		t.Fatalf("unexpected schedule %+v", sched)
	}
	if got := sched.Index["SEA"]; len(got) != 1 || got[0] != 1001 {
		t.Fatalf("unexpected SEA index %v", sched.Index)
	}
	if got := sched.Index["LAD"]; len(got) != 1 || got[0] != 1003 {
		t.Fatalf("unexpected LAD index %v", sched.Index)
	}
	if _, ok := sched.Index["NYY"]; ok {
		t.Fatalf("expected non-followed teams excluded from index")
	}
}

func TestFetchScheduleDefaultsDate(t *testing.T) {
	p := New(nil)
	p.now = testutil.NowAt(time.Date(2024, 6, 15, 23, 0, 0, 0, time.UTC))

	sched, err := p.FetchSchedule(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sched.Date == "" {
		t.Fatalf("expected a resolved date")
	}
}
