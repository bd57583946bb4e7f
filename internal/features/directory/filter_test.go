package directory

import (
	"testing"

	"go-portal/internal/common/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func testMembers() []models.TeamMember {
	return []models.TeamMember{
		{
			ID:         primitive.NewObjectID(),
			Name:       "John Doe",
			Email:      "john@gmail.com",
			Phone:      "555-0100",
			Company:    "Acme Tax",
			Department: "Compliance",
			Role:       models.RoleAdmin,
			Status:     models.StatusActive,
		},
		{
			ID:         primitive.NewObjectID(),
			Name:       "Jane Lee",
			Email:      "jane@yahoo.com",
			Phone:      "555-0101",
			Company:    "Acme Tax",
			Department: "Audit",
			Role:       models.RoleLead,
			Status:     models.StatusInactive,
		},
		{
			ID:         primitive.NewObjectID(),
			Name:       "Sam Smith",
			Email:      "sam@gmail.com",
			Phone:      "555-0102",
			Company:    "Beta Books",
			Department: "Compliance",
			Role:       models.RoleMember,
			Status:     models.StatusActive,
		},
	}
}

func names(result FilterResult) []string {
	var out []string
	for _, m := range result.Records {
		out = append(out, m.Name)
	}
	return out
}

func TestEvaluate(t *testing.T) {
	members := testMembers()

	tests := []struct {
		name      string
		state     FilterState
		wantNames []string
	}{
		{
			name:      "Empty filter matches everything",
			state:     FilterState{},
			wantNames: []string{"John Doe", "Jane Lee", "Sam Smith"},
		},
		{
			name:      "Email domain search",
			state:     FilterState{SearchText: "@gmail.com"},
			wantNames: []string{"John Doe", "Sam Smith"},
		},
		{
			name: "Roles OR-combine, status restricts",
			state: FilterState{
				SelectedRoles:    []string{models.RoleAdmin, models.RoleLead},
				SelectedStatuses: []string{models.StatusActive},
			},
			wantNames: []string{"John Doe"},
		},
		{
			name:      "Contains searches every configured field",
			state:     FilterState{SearchText: "compliance"},
			wantNames: []string{"John Doe", "Sam Smith"},
		},
		{
			name:      "Exact match on full name",
			state:     FilterState{SearchText: "=jane lee"},
			wantNames: []string{"Jane Lee"},
		},
		{
			name:      "Suffix match",
			state:     FilterState{SearchText: "smith$"},
			wantNames: []string{"Sam Smith"},
		},
		{
			name:      "Unknown role matches zero records",
			state:     FilterState{SelectedRoles: []string{"SUPERUSER"}},
			wantNames: nil,
		},
		{
			name: "Search AND role dimension",
			state: FilterState{
				SearchText:    "@gmail.com",
				SelectedRoles: []string{models.RoleMember},
			},
			wantNames: []string{"Sam Smith"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Evaluate(members, tt.state, SearchableFields(), nil)

			got := names(result)
			if len(got) != len(tt.wantNames) {
				t.Fatalf("Evaluate() names = %v, want %v", got, tt.wantNames)
			}
			for i := range got {
				if got[i] != tt.wantNames[i] {
					t.Fatalf("Evaluate() names = %v, want %v", got, tt.wantNames)
				}
			}

			if result.TotalCount != len(members) {
				t.Errorf("TotalCount = %d, want %d", result.TotalCount, len(members))
			}
			if result.FilteredCount != len(result.Records) {
				t.Errorf("FilteredCount = %d, want %d", result.FilteredCount, len(result.Records))
			}
		})
	}
}

func TestEvaluateRoleSoundness(t *testing.T) {
	members := testMembers()
	state := FilterState{SelectedRoles: []string{models.RoleAdmin, models.RoleMember}}

	result := Evaluate(members, state, SearchableFields(), nil)
	for _, m := range result.Records {
		if m.Role != models.RoleAdmin && m.Role != models.RoleMember {
			t.Errorf("record %q has role %q outside the selection", m.Name, m.Role)
		}
	}
}

func TestEvaluateIdempotent(t *testing.T) {
	members := testMembers()
	state := FilterState{SearchText: "acme", SelectedStatuses: []string{models.StatusActive}}

	first := Evaluate(members, state, SearchableFields(), nil)
	second := Evaluate(first.Records, state, SearchableFields(), nil)

	if second.FilteredCount != first.FilteredCount {
		t.Errorf("re-filtering changed the count: %d -> %d", first.FilteredCount, second.FilteredCount)
	}
}

func TestEvaluateSelectedCount(t *testing.T) {
	members := testMembers()

	// Select John (passes the filter) and Jane (filtered out)
	selected := map[string]bool{
		members[0].ID.Hex(): true,
		members[1].ID.Hex(): true,
	}

	result := Evaluate(members, FilterState{SelectedStatuses: []string{models.StatusActive}}, SearchableFields(), selected)
	if result.SelectedCount != 1 {
		t.Errorf("SelectedCount = %d, want 1", result.SelectedCount)
	}
}

func TestEvaluatePreservesOrder(t *testing.T) {
	members := testMembers()

	result := Evaluate(members, FilterState{SelectedStatuses: []string{models.StatusActive}}, SearchableFields(), nil)
	got := names(result)
	want := []string{"John Doe", "Sam Smith"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order changed: got %v, want %v", got, want)
		}
	}
}

func TestFilterStatePills(t *testing.T) {
	state := FilterState{
		SearchText:       "^acc",
		SelectedRoles:    []string{models.RoleAdmin},
		SelectedStatuses: []string{models.StatusActive, models.StatusPending},
	}

	pills := state.Pills()
	if len(pills) != 4 {
		t.Fatalf("got %d pills, want 4", len(pills))
	}
	if pills[0].Kind != "search" || pills[0].Value != "^acc" {
		t.Errorf("unexpected search pill: %+v", pills[0])
	}

	if got := (FilterState{}).Pills(); len(got) != 0 {
		t.Errorf("empty state produced pills: %+v", got)
	}
}
