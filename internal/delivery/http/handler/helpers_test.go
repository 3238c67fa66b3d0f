package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"twotier-webapp/internal/config"
	"twotier-webapp/internal/domain/entity"
	"twotier-webapp/internal/usecase"
)

// fakeUserRepo is an in-memory UserRepository with the same outcome
// semantics as the pq implementation.
type fakeUserRepo struct {
	users  map[int64]*entity.User
	nextID int64
	err    error // when set, every call fails with it
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*entity.User), nextID: 1}
}

func (r *fakeUserRepo) emailTaken(email string, exceptID int64) bool {
	for _, u := range r.users {
		if u.Email == email && u.ID != exceptID {
			return true
		}
	}
	return false
}

func (r *fakeUserRepo) FindAll(ctx context.Context) ([]entity.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make([]entity.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	u, ok := r.users[id]
	if !ok {
		return nil, entity.ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

func (r *fakeUserRepo) Create(ctx context.Context, name, email string) (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	if r.emailTaken(email, 0) {
		return 0, entity.ErrEmailTaken
	}
	id := r.nextID
	r.nextID++
	now := time.Now().UTC()
	r.users[id] = &entity.User{ID: id, Name: name, Email: email, CreatedAt: now, UpdatedAt: now}
	return id, nil
}

func (r *fakeUserRepo) Update(ctx context.Context, id int64, name, email string) error {
	if r.err != nil {
		return r.err
	}
	if r.emailTaken(email, id) {
		return entity.ErrEmailTaken
	}
	u, ok := r.users[id]
	if !ok {
		return entity.ErrUserNotFound
	}
	u.Name = name
	u.Email = email
	u.UpdatedAt = time.Now().UTC().Add(time.Millisecond)
	return nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id int64) error {
	if r.err != nil {
		return r.err
	}
	if _, ok := r.users[id]; !ok {
		return entity.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

// fakeLogRepo is an in-memory append-only EventLogRepository.
type fakeLogRepo struct {
	entries []entity.EventLog
	saveErr error
	findErr error
}

func (r *fakeLogRepo) Save(ctx context.Context, log *entity.EventLog) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	saved := *log
	saved.ID = int64(len(r.entries) + 1)
	saved.CreatedAt = time.Now().UTC()
	r.entries = append([]entity.EventLog{saved}, r.entries...)
	return nil
}

func (r *fakeLogRepo) FindAll(ctx context.Context, limit int, level string) ([]entity.EventLog, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	out := make([]entity.EventLog, 0)
	for _, e := range r.entries {
		if level != "" && e.Level != level {
			continue
		}
		out = append(out, e)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{
			Name:       "Two-Tier Web Application",
			Port:       8080,
			Env:        "production",
			InstanceID: "test-instance",
		},
		Database: config.DatabaseConfig{
			Host:   "db.internal",
			DBName: "webappdb",
		},
	}
}

func testRecorder(logs *fakeLogRepo) *usecase.EventRecorder {
	return usecase.NewEventRecorder(logs, testConfig(), zap.NewNop())
}

func newUserApp(t *testing.T, users *fakeUserRepo, logs *fakeLogRepo) *fiber.App {
	t.Helper()
	cfg := testConfig()
	app := fiber.New()
	h := NewUserHandler(users, testRecorder(logs), cfg)
	app.Get("/users", h.GetUsers)
	app.Post("/users", h.CreateUser)
	app.Get("/users/:id", h.GetUser)
	app.Put("/users/:id", h.UpdateUser)
	app.Delete("/users/:id", h.DeleteUser)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, target, body string) (int, map[string]interface{}) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp.StatusCode, decoded
}

func mustCreate(t *testing.T, app *fiber.App, name, email string) int64 {
	t.Helper()
	status, body := doJSON(t, app, http.MethodPost, "/users", `{"name":"`+name+`","email":"`+email+`"}`)
	require.Equal(t, http.StatusCreated, status)
	return int64(body["user_id"].(float64))
}
