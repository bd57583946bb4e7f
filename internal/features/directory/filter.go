package directory

import (
	"go-portal/internal/common/models"
)

// FilterState is the mutable query description the UI re-sends on every
// keystroke or selection change. Empty role/status selections mean "match
// all" for that dimension, never "match none".
type FilterState struct {
	SearchText       string   `json:"search_text"`
	SelectedRoles    []string `json:"selected_roles,omitempty"`
	SelectedStatuses []string `json:"selected_statuses,omitempty"`
}

// Empty reports whether the state restricts nothing.
func (s FilterState) Empty() bool {
	return ParseQuery(s.SearchText).Neutral() && len(s.SelectedRoles) == 0 && len(s.SelectedStatuses) == 0
}

// Pill is an active-filter summary entry for the presentation layer.
// Removal is per-item: the UI drops one pill and re-submits the state.
type Pill struct {
	Kind  string `json:"kind"` // "search", "role" or "status"
	Value string `json:"value"`
}

// Pills flattens the state into removable filter summaries.
func (s FilterState) Pills() []Pill {
	var pills []Pill
	if q := ParseQuery(s.SearchText); !q.Neutral() {
		pills = append(pills, Pill{Kind: "search", Value: s.SearchText})
	}
	for _, r := range s.SelectedRoles {
		pills = append(pills, Pill{Kind: "role", Value: r})
	}
	for _, st := range s.SelectedStatuses {
		pills = append(pills, Pill{Kind: "status", Value: st})
	}
	return pills
}

// FilterResult is the evaluator's output. Records preserve input order.
type FilterResult struct {
	Records       []models.TeamMember `json:"records"`
	TotalCount    int                 `json:"total_count"`
	FilteredCount int                 `json:"filtered_count"`
	SelectedCount int                 `json:"selected_count"`
}

// Evaluate applies the search predicate and the multi-select dimensions to
// the record set in one pass. Dimensions combine with AND; values inside one
// dimension combine with OR. selectedIDs may be nil; SelectedCount reports
// how many of those ids survive the filter ("N of M selected remain").
func Evaluate(records []models.TeamMember, state FilterState, searchable []FieldID, selectedIDs map[string]bool) FilterResult {
	query := ParseQuery(state.SearchText)

	result := FilterResult{
		Records:    make([]models.TeamMember, 0, len(records)),
		TotalCount: len(records),
	}

	for i := range records {
		m := &records[i]
		if !inSelection(state.SelectedRoles, m.Role) {
			continue
		}
		if !inSelection(state.SelectedStatuses, m.Status) {
			continue
		}
		if !query.Matches(m, searchable) {
			continue
		}
		result.Records = append(result.Records, records[i])
		if selectedIDs[m.ID.Hex()] {
			result.SelectedCount++
		}
	}

	result.FilteredCount = len(result.Records)
	return result
}

// inSelection is the OR-combined multi-select predicate: an empty selection
// matches every value.
func inSelection(selection []string, value string) bool {
	if len(selection) == 0 {
		return true
	}
	for _, s := range selection {
		if s == value {
			return true
		}
	}
	return false
}
