package directory

// ColumnID names a directory table column. Column visibility is the single
// source of truth for the visible field set: both the table renderer and the
// export path project through it.
type ColumnID string

const (
	ColumnName       ColumnID = "name"
	ColumnEmail      ColumnID = "email"
	ColumnPhone      ColumnID = "phone"
	ColumnCompany    ColumnID = "company"
	ColumnDepartment ColumnID = "department"
	ColumnRole       ColumnID = "role"
	ColumnStatus     ColumnID = "status"
	ColumnLastLogin  ColumnID = "last_login"
)

// ColumnSetting is one persisted {id, visible} pair.
type ColumnSetting struct {
	ID      ColumnID `json:"id" bson:"id"`
	Visible bool     `json:"visible" bson:"visible"`
}

// DefaultColumns is the directory's default configuration. It is injected at
// construction rather than read from ambient state, and is what any failed
// or missing load collapses to.
func DefaultColumns() []ColumnSetting {
	return []ColumnSetting{
		{ID: ColumnName, Visible: true},
		{ID: ColumnEmail, Visible: true},
		{ID: ColumnPhone, Visible: false},
		{ID: ColumnCompany, Visible: true},
		{ID: ColumnDepartment, Visible: false},
		{ID: ColumnRole, Visible: true},
		{ID: ColumnStatus, Visible: true},
		{ID: ColumnLastLogin, Visible: false},
	}
}

// ColumnVisibility tracks which columns are shown, in render order. It is
// owned by a single session context; there is no concurrent mutation.
type ColumnVisibility struct {
	defaults []ColumnSetting
	settings []ColumnSetting
}

// NewColumnVisibility starts from the injected defaults.
func NewColumnVisibility(defaults []ColumnSetting) *ColumnVisibility {
	v := &ColumnVisibility{defaults: cloneSettings(defaults)}
	v.Reset()
	return v
}

// Restore overlays persisted settings onto the defaults. Unknown column ids
// are dropped; columns absent from the persisted value keep their default.
// A nil or empty value leaves the defaults untouched, so a corrupt or
// missing load never yields an empty column set.
func (v *ColumnVisibility) Restore(persisted []ColumnSetting) {
	v.Reset()
	for _, p := range persisted {
		for i := range v.settings {
			if v.settings[i].ID == p.ID {
				v.settings[i].Visible = p.Visible
				break
			}
		}
	}
}

// Toggle flips exactly one column's visibility. Toggling an unknown id is a
// no-op. Toggling twice restores the prior state.
func (v *ColumnVisibility) Toggle(id ColumnID) {
	for i := range v.settings {
		if v.settings[i].ID == id {
			v.settings[i].Visible = !v.settings[i].Visible
			return
		}
	}
}

// Reset returns to the default configuration.
func (v *ColumnVisibility) Reset() {
	v.settings = cloneSettings(v.defaults)
}

// IsVisible reports one column's visibility.
func (v *ColumnVisibility) IsVisible(id ColumnID) bool {
	for _, s := range v.settings {
		if s.ID == id && s.Visible {
			return true
		}
	}
	return false
}

// Visible lists the visible column ids in render order.
func (v *ColumnVisibility) Visible() []ColumnID {
	ids := make([]ColumnID, 0, len(v.settings))
	for _, s := range v.settings {
		if s.Visible {
			ids = append(ids, s.ID)
		}
	}
	return ids
}

// Settings returns a copy of the full configuration for persistence.
func (v *ColumnVisibility) Settings() []ColumnSetting {
	return cloneSettings(v.settings)
}

func cloneSettings(in []ColumnSetting) []ColumnSetting {
	out := make([]ColumnSetting, len(in))
	copy(out, in)
	return out
}
