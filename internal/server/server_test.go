package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/types"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	s, err := New(Config{
		Addr:    ":0",
		DataDir: t.TempDir(),
		OutDir:  t.TempDir(),
	})
	require.NoError(t, err)
	return s
}

func doRequest(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestGetResume_Defaults(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodGet, "/resume", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	data := decodeBody[types.ResumeData](t, rec)
	assert.Equal(t, types.TemplateModern, data.Template)
	assert.Empty(t, data.Experiences)
}

func TestUpdatePersonal(t *testing.T) {
	s := newTestServer(t)

	info := types.PersonalInfo{
		FullName: "Jane Doe",
		Email:    "jane@example.com",
		Phone:    "555-0100",
	}
	rec := doRequest(t, s, http.MethodPut, "/resume/personal", info)
	require.Equal(t, http.StatusOK, rec.Code)

	got := decodeBody[types.PersonalInfo](t, rec)
	assert.Equal(t, "Jane Doe", got.FullName)

	// Persisted across reads
	rec = doRequest(t, s, http.MethodGet, "/resume", nil)
	data := decodeBody[types.ResumeData](t, rec)
	assert.Equal(t, "jane@example.com", data.PersonalInfo.Email)
}

func TestUpdatePersonal_InvalidEmail(t *testing.T) {
	s := newTestServer(t)

	info := types.PersonalInfo{
		FullName: "Jane Doe",
		Email:    "not-an-email",
		Phone:    "555-0100",
	}
	rec := doRequest(t, s, http.MethodPut, "/resume/personal", info)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExperienceCRUD(t *testing.T) {
	s := newTestServer(t)

	exp := types.Experience{
		Company:   "Acme Corp",
		Position:  "Engineer",
		StartDate: "2020-01",
		EndDate:   "2022-06",
	}

	// Create
	rec := doRequest(t, s, http.MethodPost, "/resume/experiences", exp)
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeBody[types.Experience](t, rec)
	require.NotEmpty(t, created.ID)

	// Update
	created.Position = "Senior Engineer"
	rec = doRequest(t, s, http.MethodPut, "/resume/experiences/"+created.ID, created)
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decodeBody[types.Experience](t, rec)
	assert.Equal(t, "Senior Engineer", updated.Position)
	assert.Equal(t, created.ID, updated.ID)

	// Delete
	rec = doRequest(t, s, http.MethodDelete, "/resume/experiences/"+created.ID, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doRequest(t, s, http.MethodGet, "/resume", nil)
	data := decodeBody[types.ResumeData](t, rec)
	assert.Empty(t, data.Experiences)
}

func TestExperience_EndBeforeStart(t *testing.T) {
	s := newTestServer(t)

	exp := types.Experience{
		Company:   "Acme Corp",
		Position:  "Engineer",
		StartDate: "2022-01",
		EndDate:   "2020-01",
	}
	rec := doRequest(t, s, http.MethodPost, "/resume/experiences", exp)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateExperience_NotFound(t *testing.T) {
	s := newTestServer(t)

	exp := types.Experience{
		Company:   "Acme Corp",
		Position:  "Engineer",
		StartDate: "2020-01",
		Current:   true,
	}
	rec := doRequest(t, s, http.MethodPut, "/resume/experiences/missing-id", exp)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRemoveSkill_NotFound(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodDelete, "/resume/skills/missing-id", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSkillCRUD(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodPost, "/resume/skills", types.Skill{Name: "Go", Level: "Advanced"})
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeBody[types.Skill](t, rec)
	require.NotEmpty(t, created.ID)

	rec = doRequest(t, s, http.MethodDelete, "/resume/skills/"+created.ID, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestSetTemplate(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodPut, "/resume/template", TemplateRequest{Template: "creative"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, s, http.MethodGet, "/resume", nil)
	data := decodeBody[types.ResumeData](t, rec)
	assert.Equal(t, types.TemplateCreative, data.Template)
}

func TestSetTemplate_Unknown(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodPut, "/resume/template", TemplateRequest{Template: "neon"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWizardNavigation(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodGet, "/wizard/step", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	step := decodeBody[StepResponse](t, rec)
	assert.Equal(t, string(types.StepPersonal), step.Step)
	assert.Equal(t, 0, step.Index)
	assert.Equal(t, len(types.StepOrder), step.Total)

	rec = doRequest(t, s, http.MethodPost, "/wizard/next", nil)
	step = decodeBody[StepResponse](t, rec)
	assert.Equal(t, string(types.StepExperience), step.Step)

	rec = doRequest(t, s, http.MethodPost, "/wizard/prev", nil)
	step = decodeBody[StepResponse](t, rec)
	assert.Equal(t, string(types.StepPersonal), step.Step)

	// Clamped at the first step
	rec = doRequest(t, s, http.MethodPost, "/wizard/prev", nil)
	step = decodeBody[StepResponse](t, rec)
	assert.Equal(t, string(types.StepPersonal), step.Step)
}

func TestWizardGoTo(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodPut, "/wizard/step", StepRequest{Step: string(types.StepPreview)})
	require.Equal(t, http.StatusOK, rec.Code)
	step := decodeBody[StepResponse](t, rec)
	assert.Equal(t, string(types.StepPreview), step.Step)
}

func TestWizardGoTo_UnknownStep(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodPut, "/wizard/step", StepRequest{Step: "payment"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEnhance_NoAPIKey(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodPost, "/enhance", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "no API key")
}

func TestRender(t *testing.T) {
	s := newTestServer(t)

	info := types.PersonalInfo{
		FullName: "Jane Doe",
		Email:    "jane@example.com",
		Phone:    "555-0100",
	}
	rec := doRequest(t, s, http.MethodPut, "/resume/personal", info)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, s, http.MethodGet, "/render", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "Jane Doe")
}

func TestExportHTML(t *testing.T) {
	s := newTestServer(t)

	info := types.PersonalInfo{
		FullName: "Jane Doe",
		Email:    "jane@example.com",
		Phone:    "555-0100",
	}
	rec := doRequest(t, s, http.MethodPut, "/resume/personal", info)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, s, http.MethodGet, "/export/html", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "Jane_Doe_Resume.html")
	assert.Contains(t, rec.Body.String(), "Jane Doe")
}

func TestResetResume(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodPost, "/resume/skills", types.Skill{Name: "Go", Level: "Advanced"})
	require.Equal(t, http.StatusCreated, rec.Code)
	rec = doRequest(t, s, http.MethodPut, "/wizard/step", StepRequest{Step: string(types.StepSkills)})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, s, http.MethodDelete, "/resume", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	data := decodeBody[types.ResumeData](t, rec)
	assert.Empty(t, data.Skills)

	rec = doRequest(t, s, http.MethodGet, "/wizard/step", nil)
	step := decodeBody[StepResponse](t, rec)
	assert.Equal(t, string(types.StepPersonal), step.Step)
}

func TestCORSPreflight(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/resume", strings.NewReader(""))
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
