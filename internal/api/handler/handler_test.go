package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"shift-checkin/internal/dto"
	"shift-checkin/internal/model"
	"shift-checkin/internal/service"
	"shift-checkin/pkg/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ═══════════════════════════════════════════════════════════
// Mock Services
// ═══════════════════════════════════════════════════════════

// ── Mock CheckinService ──

type mockCheckinService struct {
	checkinResult  *dto.CheckinResponse
	checkinErr     error
	removed        bool
	removeErr      error
	reassignResult *dto.ReassignResponse
	reassignErr    error
	resetCalls     int
	resetErr       error
	board          *dto.DashboardResponse
	boardErr       error

	lastBadge string
	lastRole  string
}

func (m *mockCheckinService) CheckIn(_ context.Context, badge string) (*dto.CheckinResponse, error) {
	m.lastBadge = badge
	return m.checkinResult, m.checkinErr
}
func (m *mockCheckinService) Remove(_ context.Context, badge string) (bool, error) {
	m.lastBadge = badge
	return m.removed, m.removeErr
}
func (m *mockCheckinService) Reassign(_ context.Context, badge, role string) (*dto.ReassignResponse, error) {
	m.lastBadge, m.lastRole = badge, role
	return m.reassignResult, m.reassignErr
}
func (m *mockCheckinService) Reset(_ context.Context) error {
	m.resetCalls++
	return m.resetErr
}
func (m *mockCheckinService) Dashboard(_ context.Context) (*dto.DashboardResponse, error) {
	return m.board, m.boardErr
}
func (m *mockCheckinService) Restore(_ context.Context) error { return nil }

// ── Mock SettingsService ──

type mockSettingsService struct {
	current   *dto.SettingsResponse
	updateErr error
	lastReq   *dto.UpdateSettingsRequest
}

func (m *mockSettingsService) Get(_ context.Context) *dto.SettingsResponse { return m.current }
func (m *mockSettingsService) Update(_ context.Context, req *dto.UpdateSettingsRequest) (*dto.SettingsResponse, error) {
	m.lastReq = req
	if m.updateErr != nil {
		return nil, m.updateErr
	}
	return m.current, nil
}
func (m *mockSettingsService) Target() service.HeadcountTarget { return service.HeadcountTarget{} }

// ── Mock RosterService ──

type mockRosterService struct {
	list        []dto.AssociateResponse
	addResult   *dto.AssociateResponse
	addErr      error
	parseRows   []service.ImportAssociateRow
	parseErr    error
	importRes   *dto.ImportAssociateResponse
	importErr   error
	lastAddReq  *dto.AddAssociateRequest
	importCalls int
}

func (m *mockRosterService) List(_ context.Context) ([]dto.AssociateResponse, error) {
	return m.list, nil
}
func (m *mockRosterService) Lookup(_ context.Context, _ string) (model.Associate, bool, error) {
	return model.Associate{}, false, nil
}
func (m *mockRosterService) Directory(_ context.Context) (map[string]model.Associate, error) {
	return map[string]model.Associate{}, nil
}
func (m *mockRosterService) Add(_ context.Context, req *dto.AddAssociateRequest) (*dto.AssociateResponse, error) {
	m.lastAddReq = req
	return m.addResult, m.addErr
}
func (m *mockRosterService) ParseImportFile(_ io.Reader) ([]service.ImportAssociateRow, error) {
	return m.parseRows, m.parseErr
}
func (m *mockRosterService) Import(_ context.Context, _ []service.ImportAssociateRow) (*dto.ImportAssociateResponse, error) {
	m.importCalls++
	return m.importRes, m.importErr
}

// ── Mock AssignmentService ──

type mockAssignmentService struct {
	getResult      *dto.AssignmentsResponse
	assignAllRes   *dto.AssignAllResponse
	assignAllErr   error
	assignOneErr   error
	lastMapping    map[string]string
	lastOneBarcode string
	lastOneRole    string
}

func (m *mockAssignmentService) Get(_ context.Context) (*dto.AssignmentsResponse, error) {
	return m.getResult, nil
}
func (m *mockAssignmentService) AssignAll(_ context.Context, assignments map[string]string) (*dto.AssignAllResponse, error) {
	m.lastMapping = assignments
	return m.assignAllRes, m.assignAllErr
}
func (m *mockAssignmentService) AssignOne(_ context.Context, badge, role string) error {
	m.lastOneBarcode, m.lastOneRole = badge, role
	return m.assignOneErr
}

// ── Mock ExportService ──

type mockExportService struct {
	buf      *bytes.Buffer
	filename string
	err      error
}

func (m *mockExportService) ExportBoard(_ context.Context) (*bytes.Buffer, string, error) {
	return m.buf, m.filename, m.err
}

// ═══════════════════════════════════════════════════════════
// Test Helpers
// ═══════════════════════════════════════════════════════════

func serve(method, path string, h gin.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r := gin.New()
	r.Handle(method, path, h)
	r.ServeHTTP(w, req)
	return w
}

func formRequest(path string, values url.Values, wantJSON bool) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if wantJSON {
		req.Header.Set("Accept", "application/json")
	}
	return req
}

func jsonRequest(path string, v interface{}) *http.Request {
	b, _ := json.Marshal(v)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	return req
}

func parseResponse(w *httptest.ResponseRecorder) response.Response {
	var resp response.Response
	json.Unmarshal(w.Body.Bytes(), &resp)
	return resp
}

func expectRedirect(t *testing.T, w *httptest.ResponseRecorder, location string) {
	t.Helper()
	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d body=%s", w.Code, w.Body.String())
	}
	if got := w.Header().Get("Location"); got != location {
		t.Errorf("expected Location %q, got %q", location, got)
	}
}

func expectError(t *testing.T, w *httptest.ResponseRecorder, status, code int) response.Response {
	t.Helper()
	if w.Code != status {
		t.Fatalf("expected %d, got %d body=%s", status, w.Code, w.Body.String())
	}
	resp := parseResponse(w)
	if resp.Code != code {
		t.Errorf("expected error code %d, got %d", code, resp.Code)
	}
	return resp
}

// ═══════════════════════════════════════════════════════════
// CheckinHandler Tests
// ═══════════════════════════════════════════════════════════

func TestCheckinHandler_CheckIn_FormRedirects(t *testing.T) {
	mock := &mockCheckinService{checkinResult: &dto.CheckinResponse{Badge: "100", Role: model.RolePit}}
	h := NewCheckinHandler(mock)

	w := serve(http.MethodPost, "/checkin", h.CheckIn, formRequest("/checkin", url.Values{"badge_id": {"100"}}, false))

	expectRedirect(t, w, "/")
	if mock.lastBadge != "100" {
		t.Errorf("expected badge 100 passed to service, got %q", mock.lastBadge)
	}
}

func TestCheckinHandler_CheckIn_JSON(t *testing.T) {
	mock := &mockCheckinService{checkinResult: &dto.CheckinResponse{Badge: "100", Name: "Ann (annl)", Role: model.RolePit}}
	h := NewCheckinHandler(mock)

	w := serve(http.MethodPost, "/checkin", h.CheckIn, jsonRequest("/checkin", dto.CheckinRequest{BadgeID: "100"}))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if resp := parseResponse(w); resp.Code != 0 {
		t.Errorf("expected code 0, got %d", resp.Code)
	}
}

func TestCheckinHandler_CheckIn_Duplicate(t *testing.T) {
	mock := &mockCheckinService{checkinErr: service.ErrDuplicateCheckin}
	h := NewCheckinHandler(mock)

	w := serve(http.MethodPost, "/checkin", h.CheckIn, formRequest("/checkin", url.Values{"badge_id": {"100"}}, false))

	resp := expectError(t, w, http.StatusBadRequest, codeDuplicateCheckin)
	if resp.Message != "Badge already scanned" {
		t.Errorf("unexpected message %q", resp.Message)
	}
}

func TestCheckinHandler_CheckIn_UnknownBadgeRedirectsToAdd(t *testing.T) {
	mock := &mockCheckinService{checkinErr: service.ErrUnknownBadge}
	h := NewCheckinHandler(mock)

	w := serve(http.MethodPost, "/checkin", h.CheckIn, formRequest("/checkin", url.Values{"badge_id": {"999"}}, false))

	expectRedirect(t, w, "/add_associate?barcode=999")
}

func TestCheckinHandler_CheckIn_UnknownBadgeJSON(t *testing.T) {
	mock := &mockCheckinService{checkinErr: service.ErrUnknownBadge}
	h := NewCheckinHandler(mock)

	w := serve(http.MethodPost, "/checkin", h.CheckIn, jsonRequest("/checkin", dto.CheckinRequest{BadgeID: "999"}))

	expectError(t, w, http.StatusNotFound, codeUnknownBadge)
	var body struct {
		Data dto.AddAssociatePrompt `json:"data"`
	}
	json.Unmarshal(w.Body.Bytes(), &body)
	if body.Data.Barcode != "999" {
		t.Errorf("expected prompt barcode 999, got %q", body.Data.Barcode)
	}
	if len(body.Data.Roles[model.CategoryCritical]) == 0 {
		t.Error("expected role catalog in prompt")
	}
}

func TestCheckinHandler_CheckIn_MissingBadge(t *testing.T) {
	h := NewCheckinHandler(&mockCheckinService{})

	w := serve(http.MethodPost, "/checkin", h.CheckIn, formRequest("/checkin", url.Values{}, false))

	expectError(t, w, http.StatusBadRequest, codeBadParams)
}

func TestCheckinHandler_CheckIn_InternalError(t *testing.T) {
	mock := &mockCheckinService{checkinErr: errors.New("disk full")}
	h := NewCheckinHandler(mock)

	w := serve(http.MethodPost, "/checkin", h.CheckIn, formRequest("/checkin", url.Values{"badge_id": {"100"}}, false))

	resp := expectError(t, w, http.StatusInternalServerError, 50000)
	if strings.Contains(resp.Message, "disk full") {
		t.Error("internal error details must not leak to the client")
	}
}

func TestCheckinHandler_Remove_AbsentStillRedirects(t *testing.T) {
	mock := &mockCheckinService{removed: false}
	h := NewCheckinHandler(mock)

	w := serve(http.MethodPost, "/remove", h.Remove, formRequest("/remove", url.Values{"badge_id": {"555"}}, false))

	expectRedirect(t, w, "/")
	if mock.lastBadge != "555" {
		t.Errorf("expected badge 555, got %q", mock.lastBadge)
	}
}

func TestCheckinHandler_Reset(t *testing.T) {
	mock := &mockCheckinService{}
	h := NewCheckinHandler(mock)

	w := serve(http.MethodPost, "/reset", h.Reset, formRequest("/reset", url.Values{}, false))

	expectRedirect(t, w, "/")
	if mock.resetCalls != 1 {
		t.Errorf("expected 1 reset call, got %d", mock.resetCalls)
	}
}

func TestCheckinHandler_ReassignRole(t *testing.T) {
	mock := &mockCheckinService{reassignResult: &dto.ReassignResponse{Badge: "100", NewRole: model.RoleCPT, Changed: true}}
	h := NewCheckinHandler(mock)

	w := serve(http.MethodPost, "/reassign_role", h.ReassignRole,
		formRequest("/reassign_role", url.Values{"barcode": {"100"}, "new_role": {"CPT"}}, false))

	expectRedirect(t, w, "/")
	if mock.lastBadge != "100" || mock.lastRole != "CPT" {
		t.Errorf("unexpected reassign args %q %q", mock.lastBadge, mock.lastRole)
	}
}

func TestCheckinHandler_ReassignRole_InvalidRole(t *testing.T) {
	mock := &mockCheckinService{reassignErr: service.ErrInvalidRole}
	h := NewCheckinHandler(mock)

	w := serve(http.MethodPost, "/reassign_role", h.ReassignRole,
		formRequest("/reassign_role", url.Values{"barcode": {"100"}, "new_role": {"Janitor"}}, false))

	expectError(t, w, http.StatusBadRequest, codeInvalidRole)
}

func TestCheckinHandler_Dashboard(t *testing.T) {
	mock := &mockCheckinService{board: &dto.DashboardResponse{
		Counters: dto.CountersResponse{Total: 2, CurrentCheckins: 1, TransWorkers: 1},
	}}
	h := NewCheckinHandler(mock)

	w := serve(http.MethodGet, "/", h.Dashboard, httptest.NewRequest(http.MethodGet, "/", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body struct {
		Data dto.DashboardResponse `json:"data"`
	}
	json.Unmarshal(w.Body.Bytes(), &body)
	if body.Data.Counters.Total != 2 || body.Data.Counters.TransWorkers != 1 {
		t.Errorf("unexpected counters %+v", body.Data.Counters)
	}
}

// ═══════════════════════════════════════════════════════════
// SettingsHandler Tests
// ═══════════════════════════════════════════════════════════

func TestSettingsHandler_Update_RedirectsToAssign(t *testing.T) {
	mock := &mockSettingsService{current: &dto.SettingsResponse{Configured: true, RequiredHeadcount: 2}}
	h := NewSettingsHandler(mock)

	w := serve(http.MethodPost, "/settings", h.UpdateSettings,
		formRequest("/settings", url.Values{"CE": {"1100"}, "MI": {"0"}, "Trans": {"1500"}}, false))

	expectRedirect(t, w, "/assign_roles")
	if mock.lastReq == nil || mock.lastReq.CE != 1100 || mock.lastReq.Trans != 1500 {
		t.Errorf("unexpected bound request %+v", mock.lastReq)
	}
}

func TestSettingsHandler_Update_TransCapExceeded(t *testing.T) {
	mock := &mockSettingsService{updateErr: &service.TransCapError{Cap: 3000}}
	h := NewSettingsHandler(mock)

	w := serve(http.MethodPost, "/settings", h.UpdateSettings,
		formRequest("/settings", url.Values{"CE": {"1100"}, "Trans": {"3500"}, "TransTarget": {"3"}}, false))

	resp := expectError(t, w, http.StatusBadRequest, codeTransCapExceeded)
	if resp.Message != "Transitional Employees cannot exceed 3000" {
		t.Errorf("unexpected message %q", resp.Message)
	}
}

func TestSettingsHandler_Update_NonNumeric(t *testing.T) {
	h := NewSettingsHandler(&mockSettingsService{})

	w := serve(http.MethodPost, "/settings", h.UpdateSettings,
		formRequest("/settings", url.Values{"CE": {"lots"}}, false))

	expectError(t, w, http.StatusBadRequest, codeBadParams)
}

func TestSettingsHandler_Get(t *testing.T) {
	mock := &mockSettingsService{current: &dto.SettingsResponse{RequiredHeadcount: 4}}
	h := NewSettingsHandler(mock)

	w := serve(http.MethodGet, "/settings", h.GetSettings, httptest.NewRequest(http.MethodGet, "/settings", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// AssignmentHandler Tests
// ═══════════════════════════════════════════════════════════

func TestAssignmentHandler_AssignRoles_Form(t *testing.T) {
	mock := &mockAssignmentService{assignAllRes: &dto.AssignAllResponse{Assigned: 2}}
	h := NewAssignmentHandler(mock)

	w := serve(http.MethodPost, "/assign_roles", h.AssignRoles,
		formRequest("/assign_roles", url.Values{"100": {"Pit"}, "200": {"PA"}}, false))

	expectRedirect(t, w, "/")
	if len(mock.lastMapping) != 2 || mock.lastMapping["100"] != "Pit" || mock.lastMapping["200"] != "PA" {
		t.Errorf("unexpected mapping %v", mock.lastMapping)
	}
}

func TestAssignmentHandler_AssignRoles_JSON(t *testing.T) {
	mock := &mockAssignmentService{assignAllRes: &dto.AssignAllResponse{Assigned: 1, RequiredHeadcount: 1}}
	h := NewAssignmentHandler(mock)

	w := serve(http.MethodPost, "/assign_roles", h.AssignRoles,
		jsonRequest("/assign_roles", dto.AssignRolesRequest{Assignments: map[string]string{"300": "Trans"}}))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}
	if mock.lastMapping["300"] != "Trans" {
		t.Errorf("unexpected mapping %v", mock.lastMapping)
	}
}

func TestAssignmentHandler_AssignRoles_HeadcountExceeded(t *testing.T) {
	mock := &mockAssignmentService{assignAllErr: service.ErrHeadcountExceeded}
	h := NewAssignmentHandler(mock)

	w := serve(http.MethodPost, "/assign_roles", h.AssignRoles,
		formRequest("/assign_roles", url.Values{"100": {"Pit"}}, false))

	expectError(t, w, http.StatusBadRequest, codeHeadcountExceeded)
}

func TestAssignmentHandler_AssignRole(t *testing.T) {
	mock := &mockAssignmentService{}
	h := NewAssignmentHandler(mock)

	w := serve(http.MethodPost, "/assign_role", h.AssignRole,
		formRequest("/assign_role", url.Values{"barcode": {"100"}, "role": {"MI"}}, false))

	expectRedirect(t, w, "/")
	if mock.lastOneBarcode != "100" || mock.lastOneRole != "MI" {
		t.Errorf("unexpected args %q %q", mock.lastOneBarcode, mock.lastOneRole)
	}
}

func TestAssignmentHandler_AssignRole_InvalidRole(t *testing.T) {
	mock := &mockAssignmentService{assignOneErr: service.ErrInvalidRole}
	h := NewAssignmentHandler(mock)

	w := serve(http.MethodPost, "/assign_role", h.AssignRole,
		formRequest("/assign_role", url.Values{"barcode": {"100"}, "role": {"Janitor"}}, true))

	expectError(t, w, http.StatusBadRequest, codeInvalidRole)
}

// ═══════════════════════════════════════════════════════════
// RosterHandler Tests
// ═══════════════════════════════════════════════════════════

func TestRosterHandler_AddAssociateForm(t *testing.T) {
	h := NewRosterHandler(&mockRosterService{})

	w := serve(http.MethodGet, "/add_associate", h.AddAssociateForm,
		httptest.NewRequest(http.MethodGet, "/add_associate?barcode=777", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body struct {
		Data dto.AddAssociatePrompt `json:"data"`
	}
	json.Unmarshal(w.Body.Bytes(), &body)
	if body.Data.Barcode != "777" {
		t.Errorf("expected barcode 777, got %q", body.Data.Barcode)
	}
}

func TestRosterHandler_AddAssociate(t *testing.T) {
	mock := &mockRosterService{addResult: &dto.AssociateResponse{Barcode: "777"}}
	h := NewRosterHandler(mock)

	w := serve(http.MethodPost, "/add_associate", h.AddAssociate, formRequest("/add_associate", url.Values{
		"barcode": {"777"}, "first_name": {"Ann"}, "login": {"annl"}, "assigned_role": {"Pit"},
	}, false))

	expectRedirect(t, w, "/")
	if mock.lastAddReq == nil || mock.lastAddReq.AssignedRole != "Pit" {
		t.Errorf("unexpected add request %+v", mock.lastAddReq)
	}
}

func TestRosterHandler_AddAssociate_JSONCreated(t *testing.T) {
	mock := &mockRosterService{addResult: &dto.AssociateResponse{Barcode: "777", DisplayName: "Ann (annl)"}}
	h := NewRosterHandler(mock)

	w := serve(http.MethodPost, "/add_associate", h.AddAssociate, jsonRequest("/add_associate", dto.AddAssociateRequest{
		Barcode: "777", FirstName: "Ann", Login: "annl",
	}))

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
	}
	if resp := parseResponse(w); resp.Code != 0 {
		t.Errorf("expected code 0, got %d", resp.Code)
	}
}

func TestRosterHandler_AddAssociate_MissingFields(t *testing.T) {
	h := NewRosterHandler(&mockRosterService{})

	w := serve(http.MethodPost, "/add_associate", h.AddAssociate,
		formRequest("/add_associate", url.Values{"barcode": {"777"}}, false))

	expectError(t, w, http.StatusBadRequest, codeBadParams)
}

func TestRosterHandler_Import_MissingFile(t *testing.T) {
	h := NewRosterHandler(&mockRosterService{})

	w := serve(http.MethodPost, "/associates/import", h.ImportAssociates,
		formRequest("/associates/import", url.Values{}, true))

	expectError(t, w, http.StatusBadRequest, codeBadParams)
}

func TestRosterHandler_Import_BadHeader(t *testing.T) {
	mock := &mockRosterService{parseErr: service.ErrImportBadHeader}
	h := NewRosterHandler(mock)

	var buf bytes.Buffer
	mw := multipartWriter(&buf, "roster.xlsx", []byte("not really xlsx"))
	req := httptest.NewRequest(http.MethodPost, "/associates/import", &buf)
	req.Header.Set("Content-Type", mw)

	w := serve(http.MethodPost, "/associates/import", h.ImportAssociates, req)

	expectError(t, w, http.StatusBadRequest, codeImportFailed)
	if mock.importCalls != 0 {
		t.Error("import must not run when parsing failed")
	}
}

func TestRosterHandler_Import_UnreadableFile(t *testing.T) {
	mock := &mockRosterService{parseErr: errors.New("zip: not a valid zip file")}
	h := NewRosterHandler(mock)

	var buf bytes.Buffer
	mw := multipartWriter(&buf, "roster.xlsx", []byte("garbage"))
	req := httptest.NewRequest(http.MethodPost, "/associates/import", &buf)
	req.Header.Set("Content-Type", mw)

	w := serve(http.MethodPost, "/associates/import", h.ImportAssociates, req)

	resp := expectError(t, w, http.StatusBadRequest, codeImportFailed)
	if resp.Details != "zip: not a valid zip file" {
		t.Errorf("expected parser error in details, got %q", resp.Details)
	}
}

func TestRosterHandler_Import_Success(t *testing.T) {
	mock := &mockRosterService{
		parseRows: []service.ImportAssociateRow{{Row: 2, Barcode: "1", FirstName: "A", Login: "a"}},
		importRes: &dto.ImportAssociateResponse{Created: 1},
	}
	h := NewRosterHandler(mock)

	var buf bytes.Buffer
	mw := multipartWriter(&buf, "roster.xlsx", []byte("xlsx"))
	req := httptest.NewRequest(http.MethodPost, "/associates/import", &buf)
	req.Header.Set("Content-Type", mw)

	w := serve(http.MethodPost, "/associates/import", h.ImportAssociates, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}
	if mock.importCalls != 1 {
		t.Errorf("expected 1 import call, got %d", mock.importCalls)
	}
}

// ═══════════════════════════════════════════════════════════
// ExportHandler Tests
// ═══════════════════════════════════════════════════════════

func TestExportHandler_ExportBoard(t *testing.T) {
	mock := &mockExportService{buf: bytes.NewBufferString("xlsx-bytes"), filename: "checkin-board-20260101-0600.xlsx"}
	h := NewExportHandler(mock)

	w := serve(http.MethodGet, "/export/board", h.ExportBoard, httptest.NewRequest(http.MethodGet, "/export/board", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != xlsxContentType {
		t.Errorf("unexpected content type %q", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "checkin-board-20260101-0600.xlsx") {
		t.Errorf("unexpected content disposition %q", cd)
	}
	if w.Body.String() != "xlsx-bytes" {
		t.Errorf("unexpected body %q", w.Body.String())
	}
}

func TestExportHandler_ExportBoard_Failure(t *testing.T) {
	mock := &mockExportService{err: service.ErrExportGenerateFail}
	h := NewExportHandler(mock)

	w := serve(http.MethodGet, "/export/board", h.ExportBoard, httptest.NewRequest(http.MethodGet, "/export/board", nil))

	expectError(t, w, http.StatusInternalServerError, codeExportFailed)
}
