package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"corecodecamp/internal/delivery/http/controllers"
	"corecodecamp/internal/delivery/http/helpers"
	"corecodecamp/internal/domain"
	"corecodecamp/internal/services"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// memCampRepo is an in-memory domain.CampRepository. Camps are stored by value so
// callers never share state with the store.
type memCampRepo struct {
	mu     sync.Mutex
	nextID int64
	camps  map[int64]domain.Camp
	talks  []domain.Talk
}

func newMemCampRepo() *memCampRepo {
	return &memCampRepo{nextID: 1, camps: map[int64]domain.Camp{}}
}

func (m *memCampRepo) List(ctx context.Context) ([]*domain.Camp, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []*domain.Camp{}
	for id := int64(1); id < m.nextID; id++ {
		if c, ok := m.camps[id]; ok {
			out = append(out, &c)
		}
	}
	return out, nil
}

func (m *memCampRepo) ListByEventDate(ctx context.Context, date time.Time) ([]*domain.Camp, error) {
	all, _ := m.List(ctx)
	out := []*domain.Camp{}
	for _, c := range all {
		if c.RunsOn(date) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *memCampRepo) GetByMoniker(ctx context.Context, moniker string) (*domain.Camp, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.camps {
		if c.Moniker == moniker {
			return &c, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *memCampRepo) Create(ctx context.Context, camp *domain.Camp) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.camps {
		if c.Moniker == camp.Moniker {
			return domain.ErrMonikerTaken
		}
	}
	camp.ID = m.nextID
	m.nextID++
	stored := *camp
	stored.Talks = nil
	m.camps[camp.ID] = stored
	return nil
}

func (m *memCampRepo) Update(ctx context.Context, camp *domain.Camp) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.camps[camp.ID]; !ok {
		return domain.ErrNoChanges
	}
	stored := *camp
	stored.Talks = nil
	m.camps[camp.ID] = stored
	return nil
}

func (m *memCampRepo) Delete(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.camps[id]; !ok {
		return domain.ErrNoChanges
	}
	for _, t := range m.talks {
		if t.CampID == id {
			return domain.ErrCampHasTalks
		}
	}
	delete(m.camps, id)
	return nil
}

func (m *memCampRepo) ListTalksByCampIDs(ctx context.Context, campIDs []int64) ([]*domain.Talk, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []*domain.Talk{}
	for _, t := range m.talks {
		for _, id := range campIDs {
			if t.CampID == id {
				t := t
				out = append(out, &t)
			}
		}
	}
	return out, nil
}

func (m *memCampRepo) GetTalk(ctx context.Context, campID, talkID int64) (*domain.Talk, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, t := range m.talks {
		if t.CampID == campID && t.ID == talkID {
			return &t, nil
		}
	}
	return nil, domain.ErrNotFound
}

type stubPinger struct{}

func (stubPinger) PingContext(ctx context.Context) error { return nil }

func newTestRouter(repo domain.CampRepository) http.Handler {
	svc := services.NewCampService(repo, nil, nil, testLogger, 5*time.Second)
	return NewRouter(testLogger, []string{"*"},
		controllers.NewCampController(testLogger, svc),
		controllers.NewHealthController(testLogger, stubPinger{}),
	)
}

func do(t *testing.T, h http.Handler, method, target, body string) (*httptest.ResponseRecorder, helpers.APIResponse) {
	t.Helper()
	var rdr io.Reader
	if body != "" {
		rdr = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, target, rdr)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	var envelope helpers.APIResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &envelope), "body: %s", rr.Body.String())
	return rr, envelope
}

func dataAs[T any](t *testing.T, envelope helpers.APIResponse) T {
	t.Helper()
	var out T
	raw, err := json.Marshal(envelope.Data)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func TestRouter_CampLifecycle(t *testing.T) {
	repo := newMemCampRepo()
	h := newTestRouter(repo)

	rr, env := do(t, h, http.MethodGet, "/api/camps", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, dataAs[[]controllers.CampModel](t, env))

	rr, env = do(t, h, http.MethodPost, "/api/camps",
		`{"moniker":"ATL2018","name":"Atlanta Code Camp","start_date":"2018-10-18","end_date":"2018-10-19","venue":"Atlanta Convention Center"}`)
	require.Equal(t, http.StatusCreated, rr.Code)
	location := rr.Header().Get("Location")
	assert.Equal(t, "/api/camps/ATL2018", location)

	rr, _ = do(t, h, http.MethodPost, "/api/camps",
		`{"moniker":"ATL2018","name":"Again","start_date":"2018-10-18"}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code, "duplicate moniker")

	rr, env = do(t, h, http.MethodPost, "/api/camps",
		`{"moniker":"search","name":"Search Camp","start_date":"2018-10-18"}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code, "moniker would be shadowed by the search route")
	assert.Empty(t, rr.Header().Get("Location"))
	require.NotNil(t, env.Error)
	assert.Equal(t, "could not use current moniker", env.Error.Message)
	_, err := repo.GetByMoniker(context.Background(), "search")
	assert.ErrorIs(t, err, domain.ErrNotFound, "nothing stored")

	rr, env = do(t, h, http.MethodGet, location, "")
	require.Equal(t, http.StatusOK, rr.Code)
	got := dataAs[controllers.CampModel](t, env)
	assert.Equal(t, "Atlanta Code Camp", got.Name)
	assert.Equal(t, "Atlanta Convention Center", got.Venue)

	rr, env = do(t, h, http.MethodGet, "/api/camps/search?theDate=2018-10-19", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, dataAs[[]controllers.CampModel](t, env), 1)

	rr, _ = do(t, h, http.MethodGet, "/api/camps/search?theDate=2018-10-20", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr, env = do(t, h, http.MethodPut, location, `{"name":"Atlanta Code Camp 2018"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	updated := dataAs[controllers.CampModel](t, env)
	assert.Equal(t, "Atlanta Code Camp 2018", updated.Name)
	assert.Equal(t, "2018-10-18", updated.StartDate)

	rr, _ = do(t, h, http.MethodPut, location, `{"name":"Atlanta Code Camp 2018"}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code, "identical update saves nothing")

	rr, env = do(t, h, http.MethodPut, location, `{"end_date":"2018-10-01"}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "end_date must not be before start_date", env.Error.Message)

	rr, _ = do(t, h, http.MethodPut, "/api/camps/NOPE", `{"name":"X"}`)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr, env = do(t, h, http.MethodDelete, location, "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "camp deleted", dataAs[controllers.DeleteCampResponse](t, env).Status)

	rr, _ = do(t, h, http.MethodGet, location, "")
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr, _ = do(t, h, http.MethodDelete, "/api/camps/UNKNOWN", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestRouter_TalksAndIncludeTalks(t *testing.T) {
	repo := newMemCampRepo()
	h := newTestRouter(repo)

	rr, _ := do(t, h, http.MethodPost, "/api/camps", `{"moniker":"SD2019","name":"San Diego","start_date":"2019-03-02"}`)
	require.Equal(t, http.StatusCreated, rr.Code)
	camp, err := repo.GetByMoniker(context.Background(), "SD2019")
	require.NoError(t, err)
	repo.talks = append(repo.talks, domain.Talk{
		ID: 1, CampID: camp.ID, Title: "Intro to Go", Level: 100,
		Speaker: &domain.Speaker{ID: 1, FirstName: "Shawn", LastName: "Wildermuth"},
	})

	rr, env := do(t, h, http.MethodGet, "/api/camps?includeTalks=true", "")
	require.Equal(t, http.StatusOK, rr.Code)
	camps := dataAs[[]controllers.CampModel](t, env)
	require.Len(t, camps, 1)
	require.Len(t, camps[0].Talks, 1)
	assert.Equal(t, "Shawn", camps[0].Talks[0].Speaker.FirstName)

	rr, env = do(t, h, http.MethodGet, "/api/camps/SD2019/talks/1", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Intro to Go", dataAs[controllers.TalkModel](t, env).Title)

	rr, _ = do(t, h, http.MethodGet, "/api/camps/SD2019/talks/2", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr, _ = do(t, h, http.MethodGet, "/api/camps?includeTalks=sometimes", "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr, env = do(t, h, http.MethodDelete, "/api/camps/SD2019", "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	require.NotNil(t, env.Error)
	assert.Contains(t, env.Error.Message, "talks")
}

func TestRouter_Health(t *testing.T) {
	h := newTestRouter(newMemCampRepo())
	rr, env := do(t, h, http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Nil(t, env.Error)
}

func TestRouter_CORSPreflight(t *testing.T) {
	h := newTestRouter(newMemCampRepo())
	req := httptest.NewRequest(http.MethodOptions, "/api/camps", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.NotEmpty(t, rr.Header().Get("Access-Control-Allow-Origin"))
}
