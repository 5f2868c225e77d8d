package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-optimizer/internal/config"
	"github.com/jonathan/resume-optimizer/internal/db"
	"github.com/jonathan/resume-optimizer/internal/optimizer"
)

// fakeStore is an in-memory UserStore and ResumeStore.
type fakeStore struct {
	mu      sync.Mutex
	users   map[uuid.UUID]*db.User
	emails  map[string]uuid.UUID
	resumes map[uuid.UUID]*db.Resume
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:   make(map[uuid.UUID]*db.User),
		emails:  make(map[string]uuid.UUID),
		resumes: make(map[uuid.UUID]*db.Resume),
	}
}

func (f *fakeStore) CreateUser(_ context.Context, email, passwordHash string) (uuid.UUID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := uuid.New()
	f.users[id] = &db.User{ID: id, Email: email, PasswordHash: passwordHash, CreatedAt: time.Now()}
	f.emails[email] = id
	return id, nil
}

func (f *fakeStore) GetUser(_ context.Context, id uuid.UUID) (*db.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.users[id], nil
}

func (f *fakeStore) GetUserByEmail(_ context.Context, email string) (*db.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	id, ok := f.emails[email]
	if !ok {
		return nil, nil
	}
	return f.users[id], nil
}

func (f *fakeStore) CreateResume(_ context.Context, userID uuid.UUID, originalText string) (uuid.UUID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := uuid.New()
	f.resumes[id] = &db.Resume{
		ID:           id,
		UserID:       userID,
		OriginalText: originalText,
		Status:       db.StatusPending,
		CreatedAt:    time.Now(),
	}
	return id, nil
}

func (f *fakeStore) GetResume(_ context.Context, id uuid.UUID) (*db.Resume, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.resumes[id]
	if !ok {
		return nil, nil
	}
	copied := *r
	return &copied, nil
}

func (f *fakeStore) SaveOptimizedResume(_ context.Context, id uuid.UUID, optimizedText, jobDescription string, keywordsAdded int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	r := f.resumes[id]
	now := time.Now()
	r.OptimizedText = &optimizedText
	r.JobDescription = &jobDescription
	r.KeywordsAdded = keywordsAdded
	r.Status = db.StatusOptimized
	r.UpdatedAt = &now
	return nil
}

func (f *fakeStore) MarkResumeFailed(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.resumes[id].Status = db.StatusFailed
	return nil
}

func (f *fakeStore) ListResumesByUser(_ context.Context, userID uuid.UUID) ([]db.Resume, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []db.Resume
	for _, r := range f.resumes {
		if r.UserID == userID {
			out = append(out, *r)
		}
	}
	return out, nil
}

// newTestServer wires a server around the fake store with no database.
func newTestServer(t *testing.T) (http.Handler, *fakeStore) {
	t.Helper()

	store := newFakeStore()
	engine, err := optimizer.New()
	require.NoError(t, err)

	s := &Server{
		resumes:   store,
		engine:    engine,
		validator: validator.New(),
	}
	s.jwtService = NewJWTService(&config.JWTConfig{Secret: "test-secret", ExpirationHours: 1})
	userService := NewUserService(store, &config.PasswordConfig{BcryptCost: 10})
	s.authHandler = NewAuthHandler(userService, s.jwtService)

	return s.routes(), store
}

func doJSON(t *testing.T, handler http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func registerUser(t *testing.T, handler http.Handler, email string) string {
	t.Helper()

	rec := doJSON(t, handler, "POST", "/auth/register", "", RegisterRequest{
		Email:    email,
		Password: "hunter2hunter2",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

const testResume = `JANE DOE

SUMMARY
Software engineer with five years of experience building web services.

SKILLS
Python | Go | PostgreSQL

EXPERIENCE
- Built backend services for a payments platform.
- Led a migration to cloud infrastructure.
`

const testJob = `We are looking for engineers with Docker and Kubernetes experience.
Docker containers and Kubernetes clusters are core to our stack.`

func TestHealth(t *testing.T) {
	handler, _ := newTestServer(t)

	rec := doJSON(t, handler, "GET", "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}

func TestRegisterAndLogin(t *testing.T) {
	handler, _ := newTestServer(t)

	token := registerUser(t, handler, "jane@example.com")
	assert.NotEmpty(t, token)

	// Duplicate registration conflicts
	rec := doJSON(t, handler, "POST", "/auth/register", "", RegisterRequest{
		Email:    "jane@example.com",
		Password: "hunter2hunter2",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)

	// Login with correct credentials
	rec = doJSON(t, handler, "POST", "/auth/login", "", LoginRequest{
		Email:    "jane@example.com",
		Password: "hunter2hunter2",
	})
	assert.Equal(t, http.StatusOK, rec.Code)

	// Wrong password
	rec = doJSON(t, handler, "POST", "/auth/login", "", LoginRequest{
		Email:    "jane@example.com",
		Password: "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRegister_Validation(t *testing.T) {
	handler, _ := newTestServer(t)

	tests := []struct {
		name string
		req  RegisterRequest
	}{
		{"missing email", RegisterRequest{Password: "hunter2hunter2"}},
		{"bad email", RegisterRequest{Email: "not-an-email", Password: "hunter2hunter2"}},
		{"short password", RegisterRequest{Email: "jane@example.com", Password: "short"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, handler, "POST", "/auth/register", "", tt.req)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestResumeWorkflow(t *testing.T) {
	handler, store := newTestServer(t)
	token := registerUser(t, handler, "jane@example.com")

	// Create
	rec := doJSON(t, handler, "POST", "/resumes", token, CreateResumeRequest{ResumeText: testResume})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created CreateResumeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, db.StatusPending, created.Status)

	// Optimize
	rec = doJSON(t, handler, "POST", "/resumes/"+created.ID.String()+"/optimize", token, OptimizeRequest{
		JobDescription: testJob,
		DensityLimit:   0.5,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var optimized OptimizeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &optimized))
	assert.Equal(t, db.StatusOptimized, optimized.Status)
	assert.Greater(t, optimized.KeywordsAdded, 0)
	require.NotNil(t, optimized.Report)

	// Get shows the stored result
	rec = doJSON(t, handler, "GET", "/resumes/"+created.ID.String(), token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var fetched db.Resume
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fetched))
	assert.Equal(t, db.StatusOptimized, fetched.Status)
	require.NotNil(t, fetched.OptimizedText)
	assert.Contains(t, *fetched.OptimizedText, "Docker")

	// Download returns plain text
	rec = doJSON(t, handler, "GET", "/resumes/"+created.ID.String()+"/download", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/plain")
	assert.Contains(t, rec.Body.String(), "Docker")

	// List includes it
	rec = doJSON(t, handler, "GET", "/resumes", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var listed []db.Resume
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	assert.Len(t, listed, 1)

	// Store was updated, not just the response
	stored := store.resumes[created.ID]
	assert.Equal(t, db.StatusOptimized, stored.Status)
}

func TestResume_RequiresAuth(t *testing.T) {
	handler, _ := newTestServer(t)

	rec := doJSON(t, handler, "POST", "/resumes", "", CreateResumeRequest{ResumeText: testResume})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, handler, "GET", "/resumes/"+uuid.NewString(), "not-a-valid-token", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestResume_OwnershipIsEnforced(t *testing.T) {
	handler, _ := newTestServer(t)
	janeToken := registerUser(t, handler, "jane@example.com")
	rivalToken := registerUser(t, handler, "rival@example.com")

	rec := doJSON(t, handler, "POST", "/resumes", janeToken, CreateResumeRequest{ResumeText: testResume})
	require.Equal(t, http.StatusCreated, rec.Code)
	var created CreateResumeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	// Another user's resume reads as not found
	rec = doJSON(t, handler, "GET", "/resumes/"+created.ID.String(), rivalToken, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestOptimize_Validation(t *testing.T) {
	handler, _ := newTestServer(t)
	token := registerUser(t, handler, "jane@example.com")

	rec := doJSON(t, handler, "POST", "/resumes", token, CreateResumeRequest{ResumeText: testResume})
	require.Equal(t, http.StatusCreated, rec.Code)
	var created CreateResumeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	path := "/resumes/" + created.ID.String() + "/optimize"

	// Neither job_description nor job_url
	rec = doJSON(t, handler, "POST", path, token, OptimizeRequest{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Both at once
	rec = doJSON(t, handler, "POST", path, token, OptimizeRequest{
		JobDescription: testJob,
		JobURL:         "https://example.com/jobs/1",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Density out of range
	rec = doJSON(t, handler, "POST", path, token, OptimizeRequest{
		JobDescription: testJob,
		DensityLimit:   1.5,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDownload_BeforeOptimization(t *testing.T) {
	handler, _ := newTestServer(t)
	token := registerUser(t, handler, "jane@example.com")

	rec := doJSON(t, handler, "POST", "/resumes", token, CreateResumeRequest{ResumeText: testResume})
	require.Equal(t, http.StatusCreated, rec.Code)
	var created CreateResumeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = doJSON(t, handler, "GET", "/resumes/"+created.ID.String()+"/download", token, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestGetResume_InvalidID(t *testing.T) {
	handler, _ := newTestServer(t)
	token := registerUser(t, handler, "jane@example.com")

	rec := doJSON(t, handler, "GET", "/resumes/not-a-uuid", token, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetResume_NotFound(t *testing.T) {
	handler, _ := newTestServer(t)
	token := registerUser(t, handler, "jane@example.com")

	rec := doJSON(t, handler, "GET", "/resumes/"+uuid.NewString(), token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateResume_Validation(t *testing.T) {
	handler, _ := newTestServer(t)
	token := registerUser(t, handler, "jane@example.com")

	rec := doJSON(t, handler, "POST", "/resumes", token, CreateResumeRequest{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
