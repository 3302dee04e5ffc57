// Command validate performs integrity checks over a persisted state
// database and, optionally, a directory of generated fixtures. It
// verifies that stored slices parse, enum fields hold known values,
// lifecycle invariants hold, and cross-references resolve.
//
// Usage:
//
//	go run ./cmd/validate -db helphub.db
//	go run ./cmd/validate -db helphub.db -fixtures data/fixtures
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/helphub/helphub/internal/domain"
	"github.com/helphub/helphub/internal/storage"
)

// phase tracks pass/fail for a validation phase.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func main() {
	dbPath := flag.String("db", "", "path to the persisted state database")
	fixturesDir := flag.String("fixtures", "", "optional directory of generated fixture JSON files")
	flag.Parse()

	if *dbPath == "" {
		flag.Usage()
		os.Exit(1)
	}

	if code := run(*dbPath, *fixturesDir); code != 0 {
		os.Exit(code)
	}
}

func run(dbPath, fixturesDir string) int {
	fmt.Println("=== HelpHub State Integrity Validation ===")
	fmt.Println()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	db, err := storage.Open(dbPath, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: open database: %v\n", err)
		return 1
	}
	defer db.Close() //nolint:errcheck

	ctx := context.Background()

	theme, themeOK, themeErr := db.LoadTheme(ctx)
	requests, reqsOK, reqsErr := db.LoadHelpRequests(ctx)
	volunteers, volsOK, volsErr := db.LoadVolunteers(ctx)

	phases := []*phase{
		validateSlices(themeErr, reqsErr, volsErr),
		validateTheme(theme, themeOK),
		validateRequests(requests),
		validateVolunteers(volunteers),
		validateCrossRefs(requests, volunteers),
	}
	if fixturesDir != "" {
		phases = append(phases, validateFixtures(fixturesDir))
	}

	fmt.Println()
	allPassed := true
	for _, p := range phases {
		status := "\033[32mPASS\033[0m"
		if !p.passed() {
			status = fmt.Sprintf("\033[31mFAIL (%d errors)\033[0m", len(p.errors))
			allPassed = false
		}
		fmt.Printf("  %-42s %s\n", p.name, status)
	}

	fmt.Println()
	fmt.Printf("Records: theme stored=%v, %d help requests (stored=%v), %d volunteers (stored=%v)\n",
		themeOK, len(requests), reqsOK, len(volunteers), volsOK)

	for _, p := range phases {
		if p.passed() {
			continue
		}
		fmt.Printf("\n--- %s ---\n", p.name)
		for i, e := range p.errors {
			fmt.Printf("  [%d] %s\n", i+1, e)
		}
	}

	if allPassed {
		fmt.Println("\nAll validations passed.")
		return 0
	}
	fmt.Println("\nValidation FAILED.")
	return 1
}

// ── Phase 1: Slice Parsing ──
// A load error means the stored body was unreadable JSON.

func validateSlices(themeErr, reqsErr, volsErr error) *phase {
	p := &phase{name: "Phase 1: Slice Parsing"}
	if themeErr != nil {
		p.errorf("theme slice unreadable: %v", themeErr)
	}
	if reqsErr != nil {
		p.errorf("help_requests slice unreadable: %v", reqsErr)
	}
	if volsErr != nil {
		p.errorf("volunteers slice unreadable: %v", volsErr)
	}
	return p
}

// ── Phase 2: Theme ──

func validateTheme(theme domain.Theme, stored bool) *phase {
	p := &phase{name: "Phase 2: Theme"}
	if stored && !theme.Valid() {
		p.errorf("stored theme %q is not a known theme", theme)
	}
	return p
}

// ── Phase 3: Help Request Integrity ──

func validateRequests(requests []domain.HelpRequest) *phase {
	p := &phase{name: "Phase 3: Help Request Integrity"}

	seen := map[string]bool{}
	for i := range requests {
		r := &requests[i]
		pf := func(format string, args ...any) {
			p.errorf("request %d (ID %s): "+format, append([]any{i, r.ID}, args...)...)
		}

		if r.ID == "" {
			pf("missing ID")
		} else if seen[r.ID] {
			pf("duplicate ID")
		}
		seen[r.ID] = true

		if !r.Type.Valid() {
			pf("unknown type %q", r.Type)
		}
		if !r.Urgency.Valid() {
			pf("unknown urgency %q", r.Urgency)
		}
		if !r.Status.Valid() {
			pf("unknown status %q", r.Status)
		}
		if err := r.Location.Validate(); err != nil {
			pf("location: %v", err)
		}
		if r.CreatedAt.IsZero() {
			pf("createdAt is zero")
		}
		if r.UpdatedAt.Before(r.CreatedAt) {
			pf("updatedAt %s precedes createdAt %s", r.UpdatedAt, r.CreatedAt)
		}

		checkVolunteerBinding(pf, r)
	}
	return p
}

// checkVolunteerBinding verifies the status/volunteer pairing: requests
// in flight carry a volunteer, open requests do not.
func checkVolunteerBinding(pf func(string, ...any), r *domain.HelpRequest) {
	switch r.Status {
	case domain.StatusAccepted, domain.StatusEnRoute, domain.StatusResolved:
		if r.VolunteerID == "" {
			pf("status %q but no volunteer bound", r.Status)
		}
	case domain.StatusOpen:
		if r.VolunteerID != "" {
			pf("open request has volunteer %q bound", r.VolunteerID)
		}
	case domain.StatusCancelled:
		// Cancellation is allowed both before and after acceptance.
	}
}

// ── Phase 4: Volunteer Integrity ──

func validateVolunteers(volunteers []domain.Volunteer) *phase {
	p := &phase{name: "Phase 4: Volunteer Integrity"}

	seen := map[string]bool{}
	for i := range volunteers {
		v := &volunteers[i]
		if v.ID == "" {
			p.errorf("volunteer %d: missing ID", i)
		} else if seen[v.ID] {
			p.errorf("volunteer %d: duplicate ID %q", i, v.ID)
		}
		seen[v.ID] = true

		if v.Name == "" {
			p.errorf("volunteer %d (ID %s): missing name", i, v.ID)
		}
		if v.Rating < 0 || v.Rating > 5 {
			p.errorf("volunteer %d (ID %s): rating %g outside 0-5", i, v.ID, v.Rating)
		}
		if v.CompletedRequests < 0 {
			p.errorf("volunteer %d (ID %s): negative completedRequests %d", i, v.ID, v.CompletedRequests)
		}
		if err := v.Location.Validate(); err != nil {
			p.errorf("volunteer %d (ID %s): location: %v", i, v.ID, err)
		}
	}
	return p
}

// ── Phase 5: Cross-References ──
// Bound volunteer IDs should resolve against the volunteer slice when
// one is stored at all.

func validateCrossRefs(requests []domain.HelpRequest, volunteers []domain.Volunteer) *phase {
	p := &phase{name: "Phase 5: Cross-References"}
	if len(volunteers) == 0 {
		return p
	}

	known := map[string]bool{}
	for i := range volunteers {
		known[volunteers[i].ID] = true
	}

	for i := range requests {
		r := &requests[i]
		if r.VolunteerID != "" && !known[r.VolunteerID] {
			p.errorf("request %d (ID %s): bound volunteer %q not in volunteer slice", i, r.ID, r.VolunteerID)
		}
	}
	return p
}

// ── Phase 6: Fixture Files ──

func validateFixtures(dir string) *phase {
	p := &phase{name: "Phase 6: Fixture Files"}

	centers, err := loadJSON[domain.ReliefCenter](filepath.Join(dir, "relief_centers.json"))
	if err != nil {
		p.errorf("relief_centers.json: %v", err)
	}
	for i := range centers {
		c := &centers[i]
		if !c.Type.Valid() {
			p.errorf("center %d (ID %s): unknown type %q", i, c.ID, c.Type)
		}
		if c.Capacity < 0 {
			p.errorf("center %d (ID %s): negative capacity %d", i, c.ID, c.Capacity)
		}
		if c.CurrentOccupancy < 0 || c.CurrentOccupancy > c.Capacity {
			p.errorf("center %d (ID %s): occupancy %d outside 0-%d", i, c.ID, c.CurrentOccupancy, c.Capacity)
		}
		if err := c.Location.Validate(); err != nil {
			p.errorf("center %d (ID %s): location: %v", i, c.ID, err)
		}
	}

	alerts, err := loadJSON[domain.WeatherAlert](filepath.Join(dir, "weather_alerts.json"))
	if err != nil {
		p.errorf("weather_alerts.json: %v", err)
	}
	for i := range alerts {
		a := &alerts[i]
		if a.ID == "" {
			p.errorf("alert %d: missing ID", i)
		}
		if !a.EndTime.After(a.StartTime) {
			p.errorf("alert %d (ID %s): endTime does not follow startTime", i, a.ID)
		}
	}

	tips, err := loadJSON[domain.SafetyTip](filepath.Join(dir, "safety_tips.json"))
	if err != nil {
		p.errorf("safety_tips.json: %v", err)
	}
	for i := range tips {
		if tips[i].Title == "" || tips[i].Content == "" {
			p.errorf("tip %d (ID %s): missing title or content", i, tips[i].ID)
		}
	}

	return p
}

func loadJSON[T any](path string) ([]T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, err
	}
	return items, nil
}
