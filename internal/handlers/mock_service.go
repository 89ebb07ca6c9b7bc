package handlers

import (
	"context"
	"net/http"

	"portfolio_admin/internal/models"
	"portfolio_admin/internal/service"
	"portfolio_admin/internal/upload"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	admin     models.Admin
	verifyErr error
	token     string
	issueErr  error
	principal models.Principal
	parseErr  error

	lastUsername   string
	lastPassword   string
	lastParseToken string
}

func (m *mockAuth) Verify(ctx context.Context, username, password string) (models.Admin, error) {
	m.lastUsername = username
	m.lastPassword = password
	return m.admin, m.verifyErr
}
func (m *mockAuth) IssueToken(admin models.Admin) (string, error) {
	return m.token, m.issueErr
}
func (m *mockAuth) ParseToken(token string) (models.Principal, error) {
	m.lastParseToken = token
	return m.principal, m.parseErr
}

type mockProjects struct {
	list      []models.Project
	listErr   error
	created   models.Project
	createErr error
	updated   models.Project
	updateErr error
	deleteErr error

	lastInput models.ProjectInput
	lastID    string
	calls     int
}

func (m *mockProjects) ListProjects(ctx context.Context) ([]models.Project, error) {
	m.calls++
	return m.list, m.listErr
}
func (m *mockProjects) CreateProject(ctx context.Context, in models.ProjectInput) (models.Project, error) {
	m.calls++
	m.lastInput = in
	return m.created, m.createErr
}
func (m *mockProjects) UpdateProject(ctx context.Context, id string, in models.ProjectInput) (models.Project, error) {
	m.calls++
	m.lastID = id
	m.lastInput = in
	return m.updated, m.updateErr
}
func (m *mockProjects) DeleteProject(ctx context.Context, id string) error {
	m.calls++
	m.lastID = id
	return m.deleteErr
}

type mockContact struct {
	submitted  models.ContactMessage
	submitErr  error
	list       []models.ContactMessage
	listErr    error
	updated    models.ContactMessage
	updateErr  error
	respondErr error
	stats      models.InboxStats
	statsErr   error

	lastInput    models.ContactInput
	lastID       string
	lastStatus   models.MessageStatus
	lastResponse string
}

func (m *mockContact) Submit(ctx context.Context, in models.ContactInput) (models.ContactMessage, error) {
	m.lastInput = in
	return m.submitted, m.submitErr
}
func (m *mockContact) ListMessages(ctx context.Context) ([]models.ContactMessage, error) {
	return m.list, m.listErr
}
func (m *mockContact) UpdateStatus(ctx context.Context, id string, status models.MessageStatus) (models.ContactMessage, error) {
	m.lastID = id
	m.lastStatus = status
	return m.updated, m.updateErr
}
func (m *mockContact) Respond(ctx context.Context, id, response string) error {
	m.lastID = id
	m.lastResponse = response
	return m.respondErr
}
func (m *mockContact) Stats(ctx context.Context) (models.InboxStats, error) {
	return m.stats, m.statsErr
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service, uploads *upload.Uploader) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(s, uploads, nil, RouterConfig{})
	return h.InitRoutes()
}

// validAuth accepts any token as the admin.
func validAuth() *mockAuth {
	return &mockAuth{principal: models.Principal{ID: 1, Username: "admin"}}
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}
