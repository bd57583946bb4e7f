package directory

import (
	"strings"

	"go-portal/internal/common/models"
)

// Operator selects the string-matching mode extracted from the search text.
type Operator string

const (
	OpContains    Operator = "contains"
	OpExactMatch  Operator = "exact_match"
	OpStartsWith  Operator = "starts_with"
	OpEndsWith    Operator = "ends_with"
	OpEmailDomain Operator = "email_domain"
)

// ParsedQuery is the typed predicate description produced from raw search
// text. It is recomputed on every change and never mutated in place.
type ParsedQuery struct {
	Operator Operator `json:"operator"`
	Operand  string   `json:"operand"`
}

// ParseQuery turns raw search input into a ParsedQuery. It is total:
// anything that doesn't carry an operator marker degrades to a contains
// match. Only one operator applies per query; there is no AND/OR syntax.
//
// Markers, in precedence order: leading "=" exact match, leading "^" prefix,
// leading "@" email domain, trailing "$" suffix.
func ParseQuery(searchText string) ParsedQuery {
	text := strings.TrimSpace(searchText)

	switch {
	case text == "":
		return ParsedQuery{Operator: OpContains, Operand: ""}
	case strings.HasPrefix(text, "="):
		return ParsedQuery{Operator: OpExactMatch, Operand: text[1:]}
	case strings.HasPrefix(text, "^"):
		return ParsedQuery{Operator: OpStartsWith, Operand: text[1:]}
	case strings.HasPrefix(text, "@"):
		return ParsedQuery{Operator: OpEmailDomain, Operand: text[1:]}
	case strings.HasSuffix(text, "$"):
		return ParsedQuery{Operator: OpEndsWith, Operand: strings.TrimSuffix(text, "$")}
	default:
		return ParsedQuery{Operator: OpContains, Operand: text}
	}
}

// Neutral reports whether the query matches every record (empty input).
func (q ParsedQuery) Neutral() bool {
	return q.Operand == "" && q.Operator == OpContains
}

// MatchField applies the query's string relation to a single field value.
// All comparisons are case-insensitive. Email-domain queries never match
// through this path; they are evaluated against the email field only.
func (q ParsedQuery) MatchField(value string) bool {
	v := strings.ToLower(value)
	operand := strings.ToLower(q.Operand)

	switch q.Operator {
	case OpExactMatch:
		return v == operand
	case OpStartsWith:
		return strings.HasPrefix(v, operand)
	case OpEndsWith:
		return strings.HasSuffix(v, operand)
	case OpContains:
		return strings.Contains(v, operand)
	default:
		return false
	}
}

// MatchEmailDomain compares the part after "@" in email to the operand.
// Records without an email never match.
func (q ParsedQuery) MatchEmailDomain(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return false
	}
	return strings.EqualFold(email[at+1:], q.Operand)
}

// FieldID names a searchable text field on a team member record.
type FieldID string

const (
	FieldName       FieldID = "name"
	FieldEmail      FieldID = "email"
	FieldPhone      FieldID = "phone"
	FieldCompany    FieldID = "company"
	FieldDepartment FieldID = "department"
)

// SearchableFields is the directory's default searchable field set.
func SearchableFields() []FieldID {
	return []FieldID{FieldName, FieldEmail, FieldPhone, FieldCompany, FieldDepartment}
}

func fieldValue(m *models.TeamMember, f FieldID) string {
	switch f {
	case FieldName:
		return m.Name
	case FieldEmail:
		return m.Email
	case FieldPhone:
		return m.Phone
	case FieldCompany:
		return m.Company
	case FieldDepartment:
		return m.Department
	default:
		return ""
	}
}

// Matches applies the parsed query to a record over the given searchable
// fields. A neutral query matches everything; an email-domain query consults
// the email field only.
func (q ParsedQuery) Matches(m *models.TeamMember, searchable []FieldID) bool {
	if q.Neutral() {
		return true
	}
	if q.Operator == OpEmailDomain {
		return q.MatchEmailDomain(m.Email)
	}
	for _, f := range searchable {
		if q.MatchField(fieldValue(m, f)) {
			return true
		}
	}
	return false
}
