package directory

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"go-portal/internal/common/models"
	"go-portal/internal/features/export"

	"go.uber.org/zap"
)

type fakeMemberService struct {
	members []models.TeamMember
}

func (f *fakeMemberService) ListMembers(ctx context.Context) ([]models.TeamMember, error) {
	return f.members, nil
}
func (f *fakeMemberService) GetMemberByID(ctx context.Context, id string) (*models.TeamMember, error) {
	return nil, errors.New("not implemented")
}
func (f *fakeMemberService) CreateMember(ctx context.Context, member *models.TeamMember) error {
	return nil
}
func (f *fakeMemberService) UpdateMember(ctx context.Context, id string, updates map[string]interface{}) error {
	return nil
}
func (f *fakeMemberService) UpdateMemberStatus(ctx context.Context, id string, status string) error {
	return nil
}
func (f *fakeMemberService) DeleteMember(ctx context.Context, id string) error { return nil }

type fakePrefRepo struct {
	columns []ColumnSetting
	getErr  error
	saveErr error
	saved   [][]ColumnSetting
}

func (f *fakePrefRepo) GetColumns(ctx context.Context, userID string) ([]ColumnSetting, error) {
	return f.columns, f.getErr
}

func (f *fakePrefRepo) SaveColumns(ctx context.Context, userID string, columns []ColumnSetting) error {
	f.saved = append(f.saved, columns)
	return f.saveErr
}

type noopAudit struct{}

func (noopAudit) LogChange(ctx context.Context, action models.AuditAction, module string, recordID string, changes map[string]models.Change) error {
	return nil
}
func (noopAudit) ListLogs(ctx context.Context, filters map[string]interface{}, page, limit int64) ([]models.AuditLog, error) {
	return nil, nil
}
func (noopAudit) PurgeOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	return 0, nil
}

func newTestService(members []models.TeamMember, prefs *fakePrefRepo) *DirectoryServiceImpl {
	return &DirectoryServiceImpl{
		MemberService: &fakeMemberService{members: members},
		PrefRepo:      prefs,
		ExportService: export.NewExportService(),
		AuditService:  noopAudit{},
		Logger:        zap.NewNop(),
	}
}

func TestToggleColumnSurvivesSaveFailure(t *testing.T) {
	prefs := &fakePrefRepo{saveErr: errors.New("storage unavailable")}
	service := newTestService(nil, prefs)

	columns, err := service.ToggleColumn(context.Background(), ColumnPhone)
	if err != nil {
		t.Fatalf("ToggleColumn() error = %v, save failures must not surface", err)
	}

	// In-memory state stays authoritative despite the failed save
	for _, c := range columns {
		if c.ID == ColumnPhone && !c.Visible {
			t.Error("toggle lost after save failure")
		}
	}
}

func TestGetColumnsDefaultsOnLoadFailure(t *testing.T) {
	prefs := &fakePrefRepo{getErr: errors.New("corrupt value")}
	service := newTestService(nil, prefs)

	columns, err := service.GetColumns(context.Background())
	if err != nil {
		t.Fatalf("GetColumns() error = %v, load failures must collapse to defaults", err)
	}

	defaults := DefaultColumns()
	if len(columns) != len(defaults) {
		t.Fatalf("got %d columns, want %d defaults", len(columns), len(defaults))
	}
	for i := range defaults {
		if columns[i] != defaults[i] {
			t.Errorf("column %d = %+v, want default %+v", i, columns[i], defaults[i])
		}
	}
}

func TestQueryCounts(t *testing.T) {
	members := testMembers()
	service := newTestService(members, &fakePrefRepo{})

	state := FilterState{SelectedStatuses: []string{models.StatusActive}}
	response, err := service.Query(context.Background(), state, []string{members[0].ID.Hex()})
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}

	if response.TotalCount != 3 || response.FilteredCount != 2 || response.SelectedCount != 1 {
		t.Errorf("counts = %d/%d/%d, want 3/2/1",
			response.TotalCount, response.FilteredCount, response.SelectedCount)
	}
	if len(response.Pills) != 1 {
		t.Errorf("got %d pills, want 1", len(response.Pills))
	}
}

func TestExportScopeSelectedIntersectsFiltered(t *testing.T) {
	members := testMembers()
	service := newTestService(members, &fakePrefRepo{})

	// Jane is selected but filtered out by status; only John survives
	selected := []string{members[0].ID.Hex(), members[1].ID.Hex()}
	state := FilterState{SelectedStatuses: []string{models.StatusActive}}

	file, err := service.Export(context.Background(), state, export.ScopeSelected, selected, export.FormatCSV)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	got := string(file.Data)
	if !strings.Contains(got, "John Doe") {
		t.Errorf("selected export missing John Doe: %q", got)
	}
	if strings.Contains(got, "Jane Lee") {
		t.Errorf("selected export leaked filtered-out Jane Lee: %q", got)
	}
	if strings.Contains(got, "Sam Smith") {
		t.Errorf("selected export leaked unselected Sam Smith: %q", got)
	}
	if !strings.Contains(file.Name, "-selected-1.csv") {
		t.Errorf("filename = %q, want selected scope and count 1", file.Name)
	}
}

func TestExportHonorsColumnVisibility(t *testing.T) {
	members := testMembers()
	prefs := &fakePrefRepo{columns: []ColumnSetting{
		{ID: ColumnEmail, Visible: false},
		{ID: ColumnPhone, Visible: true},
	}}
	service := newTestService(members, prefs)

	file, err := service.Export(context.Background(), FilterState{}, export.ScopeFiltered, nil, export.FormatCSV)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	got := string(file.Data)
	if strings.Contains(got, "john@gmail.com") {
		t.Errorf("hidden email column leaked into export: %q", got)
	}
	if !strings.Contains(got, "555-0100") {
		t.Errorf("visible phone column missing from export: %q", got)
	}
}
