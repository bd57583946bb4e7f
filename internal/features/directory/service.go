package directory

import (
	"context"
	"time"

	common_models "go-portal/internal/common/models"
	"go-portal/internal/features/audit"
	"go-portal/internal/features/export"
	"go-portal/internal/features/member"
	"go-portal/pkg/utils"

	"go.uber.org/zap"
)

// exportEntity is the filename entity segment for directory exports.
const exportEntity = "team-members"

// QueryResponse is what the directory table renders from: the filtered
// records, the counts, the active-filter pills and the visible column set.
type QueryResponse struct {
	Records        []common_models.TeamMember `json:"records"`
	TotalCount     int                        `json:"total_count"`
	FilteredCount  int                        `json:"filtered_count"`
	SelectedCount  int                        `json:"selected_count"`
	Pills          []Pill                     `json:"pills"`
	VisibleColumns []ColumnID                 `json:"visible_columns"`
}

type DirectoryService interface {
	Query(ctx context.Context, state FilterState, selectedIDs []string) (*QueryResponse, error)
	GetColumns(ctx context.Context) ([]ColumnSetting, error)
	ToggleColumn(ctx context.Context, id ColumnID) ([]ColumnSetting, error)
	ResetColumns(ctx context.Context) ([]ColumnSetting, error)
	Export(ctx context.Context, state FilterState, scope export.Scope, selectedIDs []string, format export.Format) (*export.File, error)
}

type DirectoryServiceImpl struct {
	MemberService member.MemberService
	PrefRepo      PreferenceRepository
	ExportService export.ExportService
	AuditService  audit.AuditService
	Logger        *zap.Logger
}

func NewDirectoryService(
	memberService member.MemberService,
	prefRepo PreferenceRepository,
	exportService export.ExportService,
	auditService audit.AuditService,
	logger *zap.Logger,
) DirectoryService {
	return &DirectoryServiceImpl{
		MemberService: memberService,
		PrefRepo:      prefRepo,
		ExportService: exportService,
		AuditService:  auditService,
		Logger:        logger,
	}
}

func (s *DirectoryServiceImpl) Query(ctx context.Context, state FilterState, selectedIDs []string) (*QueryResponse, error) {
	members, err := s.MemberService.ListMembers(ctx)
	if err != nil {
		return nil, err
	}

	result := Evaluate(members, state, SearchableFields(), idSet(selectedIDs))
	visibility := s.loadVisibility(ctx)

	return &QueryResponse{
		Records:        result.Records,
		TotalCount:     result.TotalCount,
		FilteredCount:  result.FilteredCount,
		SelectedCount:  result.SelectedCount,
		Pills:          state.Pills(),
		VisibleColumns: visibility.Visible(),
	}, nil
}

func (s *DirectoryServiceImpl) GetColumns(ctx context.Context) ([]ColumnSetting, error) {
	return s.loadVisibility(ctx).Settings(), nil
}

// ToggleColumn flips one column and persists best-effort: a failed save is
// logged and dropped, the returned in-memory state stays authoritative.
func (s *DirectoryServiceImpl) ToggleColumn(ctx context.Context, id ColumnID) ([]ColumnSetting, error) {
	visibility := s.loadVisibility(ctx)
	visibility.Toggle(id)
	s.saveVisibility(ctx, visibility)
	return visibility.Settings(), nil
}

func (s *DirectoryServiceImpl) ResetColumns(ctx context.Context) ([]ColumnSetting, error) {
	visibility := s.loadVisibility(ctx)
	visibility.Reset()
	s.saveVisibility(ctx, visibility)

	_ = s.AuditService.LogChange(ctx, common_models.AuditActionSettings, "directory", directoryColumnsKey, map[string]common_models.Change{
		"columns": {New: "reset to defaults"},
	})
	return visibility.Settings(), nil
}

func (s *DirectoryServiceImpl) Export(ctx context.Context, state FilterState, scope export.Scope, selectedIDs []string, format export.Format) (*export.File, error) {
	members, err := s.MemberService.ListMembers(ctx)
	if err != nil {
		return nil, err
	}

	selected := idSet(selectedIDs)
	result := Evaluate(members, state, SearchableFields(), selected)

	var records []common_models.TeamMember
	switch scope {
	case export.ScopeAll:
		records = members
	case export.ScopeSelected:
		// Selected exports intersect with the filtered set
		for _, m := range result.Records {
			if selected[m.ID.Hex()] {
				records = append(records, m)
			}
		}
	default:
		scope = export.ScopeFiltered
		records = result.Records
	}

	visibility := s.loadVisibility(ctx)
	columns := exportColumns(visibility)

	rows := make([][]string, 0, len(records))
	for i := range records {
		rows = append(rows, exportRow(&records[i], visibility))
	}

	file, err := s.ExportService.Build(exportEntity, columns, rows, scope, format)
	if err != nil {
		return nil, err
	}

	_ = s.AuditService.LogChange(ctx, common_models.AuditActionExport, "directory", file.Name, map[string]common_models.Change{
		"scope": {New: string(scope)},
		"rows":  {New: len(rows)},
	})
	return file, nil
}

// loadVisibility rebuilds the column state from persistence, collapsing to
// defaults when nothing is stored or the read fails.
func (s *DirectoryServiceImpl) loadVisibility(ctx context.Context) *ColumnVisibility {
	visibility := NewColumnVisibility(DefaultColumns())

	persisted, err := s.PrefRepo.GetColumns(ctx, actorID(ctx))
	if err != nil {
		s.Logger.Warn("column preference load failed, using defaults", zap.Error(err))
		return visibility
	}
	visibility.Restore(persisted)
	return visibility
}

func (s *DirectoryServiceImpl) saveVisibility(ctx context.Context, visibility *ColumnVisibility) {
	if err := s.PrefRepo.SaveColumns(ctx, actorID(ctx), visibility.Settings()); err != nil {
		s.Logger.Error("column preference save failed", zap.Error(err))
	}
}

func actorID(ctx context.Context) string {
	if claims, ok := ctx.Value(utils.UserClaimsKey).(*utils.UserClaims); ok {
		return claims.UserID
	}
	return "anonymous"
}

func idSet(ids []string) map[string]bool {
	if len(ids) == 0 {
		return nil
	}
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}

var columnHeaders = map[ColumnID]string{
	ColumnName:       "Name",
	ColumnEmail:      "Email",
	ColumnPhone:      "Phone",
	ColumnCompany:    "Company",
	ColumnDepartment: "Department",
	ColumnRole:       "Role",
	ColumnStatus:     "Status",
	ColumnLastLogin:  "Last Login",
}

func exportColumns(visibility *ColumnVisibility) []export.Column {
	var columns []export.Column
	for _, id := range visibility.Visible() {
		columns = append(columns, export.Column{ID: string(id), Header: columnHeaders[id]})
	}
	return columns
}

func exportRow(m *common_models.TeamMember, visibility *ColumnVisibility) []string {
	var row []string
	for _, id := range visibility.Visible() {
		row = append(row, columnValue(m, id))
	}
	return row
}

func columnValue(m *common_models.TeamMember, id ColumnID) string {
	switch id {
	case ColumnName:
		return m.Name
	case ColumnEmail:
		return m.Email
	case ColumnPhone:
		return m.Phone
	case ColumnCompany:
		return m.Company
	case ColumnDepartment:
		return m.Department
	case ColumnRole:
		return m.Role
	case ColumnStatus:
		return m.Status
	case ColumnLastLogin:
		if m.LastLogin == nil {
			return ""
		}
		return m.LastLogin.Format(time.RFC3339)
	default:
		return ""
	}
}
