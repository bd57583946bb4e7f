package directory

import (
	"testing"
)

func TestColumnVisibilityToggle(t *testing.T) {
	v := NewColumnVisibility(DefaultColumns())

	before := v.IsVisible(ColumnDepartment)
	v.Toggle(ColumnDepartment)
	if v.IsVisible(ColumnDepartment) == before {
		t.Error("toggle did not flip visibility")
	}

	v.Toggle(ColumnDepartment)
	if v.IsVisible(ColumnDepartment) != before {
		t.Error("double toggle did not restore the original visibility")
	}
}

func TestColumnVisibilityToggleFlipsOnlyOne(t *testing.T) {
	v := NewColumnVisibility(DefaultColumns())
	v.Toggle(ColumnPhone)

	for _, def := range DefaultColumns() {
		if def.ID == ColumnPhone {
			continue
		}
		if v.IsVisible(def.ID) != def.Visible {
			t.Errorf("column %s changed, only %s should have", def.ID, ColumnPhone)
		}
	}
}

func TestColumnVisibilityToggleUnknownID(t *testing.T) {
	v := NewColumnVisibility(DefaultColumns())
	v.Toggle("no_such_column")

	if len(v.Visible()) != len(NewColumnVisibility(DefaultColumns()).Visible()) {
		t.Error("toggling an unknown id changed the visible set")
	}
}

func TestColumnVisibilityRestore(t *testing.T) {
	tests := []struct {
		name      string
		persisted []ColumnSetting
		check     func(t *testing.T, v *ColumnVisibility)
	}{
		{
			name:      "Nil persisted value keeps defaults",
			persisted: nil,
			check: func(t *testing.T, v *ColumnVisibility) {
				for _, def := range DefaultColumns() {
					if v.IsVisible(def.ID) != def.Visible {
						t.Errorf("column %s deviates from default", def.ID)
					}
				}
			},
		},
		{
			name: "Persisted overrides apply",
			persisted: []ColumnSetting{
				{ID: ColumnDepartment, Visible: true},
				{ID: ColumnEmail, Visible: false},
			},
			check: func(t *testing.T, v *ColumnVisibility) {
				if !v.IsVisible(ColumnDepartment) {
					t.Error("department override not applied")
				}
				if v.IsVisible(ColumnEmail) {
					t.Error("email override not applied")
				}
				if !v.IsVisible(ColumnName) {
					t.Error("untouched column lost its default")
				}
			},
		},
		{
			name: "Unknown persisted ids are dropped",
			persisted: []ColumnSetting{
				{ID: "legacy_column", Visible: true},
			},
			check: func(t *testing.T, v *ColumnVisibility) {
				for _, s := range v.Settings() {
					if s.ID == "legacy_column" {
						t.Error("unknown column id survived restore")
					}
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewColumnVisibility(DefaultColumns())
			v.Restore(tt.persisted)
			tt.check(t, v)
		})
	}
}

func TestColumnVisibilityRoundTrip(t *testing.T) {
	v := NewColumnVisibility(DefaultColumns())
	v.Toggle(ColumnDepartment)

	// Persist, then load into a fresh session
	restored := NewColumnVisibility(DefaultColumns())
	restored.Restore(v.Settings())

	wantDept := !defaultVisibility(ColumnDepartment)
	if restored.IsVisible(ColumnDepartment) != wantDept {
		t.Errorf("department visibility = %v after round trip, want %v", restored.IsVisible(ColumnDepartment), wantDept)
	}
	for _, def := range DefaultColumns() {
		if def.ID == ColumnDepartment {
			continue
		}
		if restored.IsVisible(def.ID) != def.Visible {
			t.Errorf("column %s changed across round trip", def.ID)
		}
	}
}

func TestColumnVisibilityReset(t *testing.T) {
	v := NewColumnVisibility(DefaultColumns())
	v.Toggle(ColumnName)
	v.Toggle(ColumnStatus)
	v.Reset()

	for _, def := range DefaultColumns() {
		if v.IsVisible(def.ID) != def.Visible {
			t.Errorf("column %s not back to default after reset", def.ID)
		}
	}
}

func TestVisibleKeepsRenderOrder(t *testing.T) {
	v := NewColumnVisibility(DefaultColumns())

	visible := v.Visible()
	want := []ColumnID{ColumnName, ColumnEmail, ColumnCompany, ColumnRole, ColumnStatus}
	if len(visible) != len(want) {
		t.Fatalf("visible = %v, want %v", visible, want)
	}
	for i := range want {
		if visible[i] != want[i] {
			t.Fatalf("visible = %v, want %v", visible, want)
		}
	}
}

func defaultVisibility(id ColumnID) bool {
	for _, def := range DefaultColumns() {
		if def.ID == id {
			return def.Visible
		}
	}
	return false
}
