package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"mlb-scores-service/internal/config"
	"mlb-scores-service/internal/providers"
	"mlb-scores-service/internal/testutil"
)

type stubProvider struct {
	sched providers.Schedule
}

func (s stubProvider) FetchSchedule(_ context.Context, _ string) (providers.Schedule, error) {
	return s.sched, nil
}

func withStubProvider(t *testing.T, sched providers.Schedule) {
	t.Helper()
	orig := newProvider
	newProvider = func(config.Config) providers.ScheduleProvider {
		return stubProvider{sched: sched}
	}
	t.Cleanup(func() { newProvider = orig })
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRunTextOutput(t *testing.T) {
	withStubProvider(t, testutil.SampleSchedule("2024-06-15"))

	out, err := runCommand(t, "--format", "text")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected two lines, got %q", out)
	}
	if !strings.Contains(lines[0], "Mariners") {
		t.Fatalf("expected in-progress Mariners game first, got %q", lines[0])
	}
}

func TestRunJSONOutput(t *testing.T) {
	withStubProvider(t, testutil.SampleSchedule("2024-06-15"))

	out, err := runCommand(t, "--format", "json")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	var result OutputResult
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("decode: %v (output %q)", err, out)
	}
	if result.Date != "2024-06-15" || result.Count != 2 {
		t.Fatalf("unexpected result: %+v", result)
	}
	if len(result.Games) != 2 {
		t.Fatalf("expected games in JSON output, got %d", len(result.Games))
	}
}

func TestRunRejectsBadFormat(t *testing.T) {
	withStubProvider(t, testutil.SampleSchedule("2024-06-15"))

	if _, err := runCommand(t, "--format", "xml"); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestRunRejectsBadDate(t *testing.T) {
	withStubProvider(t, testutil.SampleSchedule("2024-06-15"))

	if _, err := runCommand(t, "--date", "June 15"); err == nil {
		t.Fatal("expected error for malformed date")
	}
}

func TestRunRejectsUnknownTeam(t *testing.T) {
	withStubProvider(t, testutil.SampleSchedule("2024-06-15"))

	if _, err := runCommand(t, "--teams", "ZZZ"); err == nil {
		t.Fatal("expected error for unknown team abbreviation")
	}
}

func TestRunFavoritesOnly(t *testing.T) {
	withStubProvider(t, testutil.SampleSchedule("2024-06-15"))

	out, err := runCommand(t, "--teams", "sea", "--all-games=false", "--format", "json")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	var result OutputResult
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if result.Count != 1 {
		t.Fatalf("expected only the followed team's game, got %d", result.Count)
	}
}
