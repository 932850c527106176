package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"jobly/internal/auth"
	dom "jobly/internal/domain"
	"jobly/internal/handlers"
)

type sessionTable map[string]auth.Session

func (s sessionTable) Get(_ context.Context, id string) (auth.Session, bool, error) {
	sess, ok := s[id]
	return sess, ok, nil
}

func (s sessionTable) Create(context.Context, auth.Session) (string, error) { return "new", nil }
func (s sessionTable) Delete(context.Context, string) error { return nil }
func (s sessionTable) TTL() time.Duration { return time.Hour }

type okCompanies struct{}

func (okCompanies) Create(_ context.Context, c dom.Company) (dom.Company, error) { return c, nil }
func (okCompanies) List(context.Context, dom.CompanyFilter) ([]dom.Company, error) {
	return nil, nil
}
func (okCompanies) Get(_ context.Context, h string) (dom.Company, error) {
	return dom.Company{Handle: h}, nil
}
func (okCompanies) Update(_ context.Context, h string, _ dom.Patch) (dom.Company, error) {
	return dom.Company{Handle: h}, nil
}
func (okCompanies) Delete(context.Context, string) error { return nil }

type okJobs struct{}

func (okJobs) Create(_ context.Context, j dom.Job) (dom.Job, error) { return j, nil }
func (okJobs) List(context.Context, dom.JobFilter) ([]dom.Job, error) { return nil, nil }
func (okJobs) Get(_ context.Context, id int64) (dom.Job, error) { return dom.Job{ID: id}, nil }
func (okJobs) Update(_ context.Context, id int64, _ dom.Patch) (dom.Job, error) {
	return dom.Job{ID: id}, nil
}
func (okJobs) Delete(context.Context, int64) (string, error) { return "job", nil }

type okUsers struct{}

func (okUsers) Get(_ context.Context, u string) (dom.User, error) { return dom.User{Username: u}, nil }
func (okUsers) Apply(_ context.Context, u string, id int64) (dom.Application, error) {
	return dom.Application{Username: u, JobID: id}, nil
}
func (okUsers) Register(_ context.Context, u dom.User, _ string) (dom.User, error) { return u, nil }
func (okUsers) Authenticate(_ context.Context, u, _ string) (dom.User, error) {
	return dom.User{Username: u}, nil
}

func newTestAPI() *gin.Engine {
	gin.SetMode(gin.TestMode)
	sessions := sessionTable{
		"admin-sid": {Username: "admin", IsAdmin: true},
		"u1-sid":    {Username: "u1"},
	}
	r := gin.New()
	registerAPI(r.Group("/api/v1"), apiHandlers{
		sessions:  sessions,
		auth:      handlers.NewAuthHandler(sessions, okUsers{}),
		companies: handlers.NewCompanyHandler(okCompanies{}),
		jobs:      handlers.NewJobHandler(okJobs{}),
		users:     handlers.NewUserHandler(okUsers{}),
	})
	return r
}

func TestRoutes_Authorization(t *testing.T) {
	r := newTestAPI()
	companyBody := `{"handle":"new","name":"New","description":"d"}`
	jobBody := `{"title":"t","companyHandle":"c1"}`

	testCases := []struct {
		name    string
		method  string
		path    string
		body    string
		session string
		status  int
	}{
		{name: "list companies anonymous", method: http.MethodGet, path: "/api/v1/companies", status: http.StatusOK},
		{name: "get job anonymous", method: http.MethodGet, path: "/api/v1/jobs/1", status: http.StatusOK},
		{name: "create company anonymous", method: http.MethodPost, path: "/api/v1/companies", body: companyBody, status: http.StatusUnauthorized},
		{name: "create company user", method: http.MethodPost, path: "/api/v1/companies", body: companyBody, session: "u1-sid", status: http.StatusForbidden},
		{name: "create company admin", method: http.MethodPost, path: "/api/v1/companies", body: companyBody, session: "admin-sid", status: http.StatusCreated},
		{name: "unknown session", method: http.MethodDelete, path: "/api/v1/companies/c1", session: "stale", status: http.StatusUnauthorized},
		{name: "patch job user", method: http.MethodPatch, path: "/api/v1/jobs/1", body: `{"title":"x"}`, session: "u1-sid", status: http.StatusForbidden},
		{name: "create job admin", method: http.MethodPost, path: "/api/v1/jobs", body: jobBody, session: "admin-sid", status: http.StatusCreated},
		{name: "delete job admin", method: http.MethodDelete, path: "/api/v1/jobs/1", session: "admin-sid", status: http.StatusOK},
		{name: "get self", method: http.MethodGet, path: "/api/v1/users/u1", session: "u1-sid", status: http.StatusOK},
		{name: "get other user", method: http.MethodGet, path: "/api/v1/users/u2", session: "u1-sid", status: http.StatusForbidden},
		{name: "admin gets any user", method: http.MethodGet, path: "/api/v1/users/u2", session: "admin-sid", status: http.StatusOK},
		{name: "apply self", method: http.MethodPost, path: "/api/v1/users/u1/jobs/3", session: "u1-sid", status: http.StatusCreated},
		{name: "apply for other user", method: http.MethodPost, path: "/api/v1/users/u2/jobs/3", session: "u1-sid", status: http.StatusForbidden},
		{name: "apply anonymous", method: http.MethodPost, path: "/api/v1/users/u1/jobs/3", status: http.StatusUnauthorized},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			if tc.session != "" {
				req.AddCookie(&http.Cookie{Name: auth.SessionCookieName, Value: tc.session})
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tc.status, w.Code, w.Body.String())
		})
	}
}
