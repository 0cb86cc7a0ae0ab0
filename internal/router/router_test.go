package router_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/d60-Lab/questionsdb/config"
	"github.com/d60-Lab/questionsdb/internal/repository"
	"github.com/d60-Lab/questionsdb/internal/router"
	"github.com/d60-Lab/questionsdb/internal/service"
	"github.com/d60-Lab/questionsdb/internal/testutil"
	"github.com/d60-Lab/questionsdb/pkg/response"
)

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type listData struct {
	List      []struct{ ID int64 `json:"id"` } `json:"list"`
	Total     int                             `json:"total"`
	Truncated bool                            `json:"truncated"`
}

func (l listData) ids() []int64 {
	out := make([]int64, len(l.List))
	for i, v := range l.List {
		out[i] = v.ID
	}
	return out
}

func testConfig() *config.Config {
	return &config.Config{
		App:    config.AppConfig{Name: "questionsdb", Env: "test"},
		Server: config.ServerConfig{Port: 8080, Mode: gin.TestMode},
	}
}

func newEngine(t *testing.T, cfg *config.Config) (*gin.Engine, *gorm.DB) {
	t.Helper()
	db := testutil.NewDB(t)
	testutil.Seed(t, db)
	svc := service.NewServices(repository.NewRepositories(db))
	r := router.Setup(router.Options{Config: cfg, DB: db, Services: svc, Registry: prometheus.NewRegistry()})
	return r, db
}

func get(t *testing.T, r http.Handler, path string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	var env envelope
	if w.Header().Get("Content-Type") == "application/json; charset=utf-8" {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	}
	return w, env
}

func getList(t *testing.T, r http.Handler, path string) listData {
	t.Helper()
	w, env := get(t, r, path)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var l listData
	require.NoError(t, json.Unmarshal(env.Data, &l))
	return l
}

func TestRecordEndpoints(t *testing.T) {
	r, _ := newEngine(t, testConfig())

	w, env := get(t, r, "/api/v1/users/1")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, response.CodeSuccess, env.Code)
	var u struct {
		ID    int64  `json:"id"`
		FName string `json:"fname"`
		LName string `json:"lname"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &u))
	assert.Equal(t, int64(1), u.ID)
	assert.Equal(t, "Ada", u.FName)
	assert.Equal(t, "Lovelace", u.LName)

	for _, path := range []string{"/api/v1/questions/12", "/api/v1/replies/101", "/api/v1/follows/3", "/api/v1/likes/2"} {
		w, _ := get(t, r, path)
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}

func TestNotFoundAndBadRequest(t *testing.T) {
	r, _ := newEngine(t, testConfig())

	for _, path := range []string{
		"/api/v1/users/999",
		"/api/v1/questions/999",
		"/api/v1/questions/999/followers",
		"/api/v1/replies/999",
		"/api/v1/replies/100/parent",
		"/api/v1/follows/999",
		"/api/v1/likes/999",
	} {
		w, env := get(t, r, path)
		assert.Equal(t, http.StatusNotFound, w.Code, path)
		assert.Equal(t, response.CodeNotFound, env.Code, path)
	}

	for _, path := range []string{
		"/api/v1/users/abc",
		"/api/v1/users/0",
		"/api/v1/questions/-3",
		"/api/v1/users?fname=Ada",
		"/api/v1/rankings/most-followed?n=-1",
		"/api/v1/rankings/most-liked?n=x",
	} {
		w, env := get(t, r, path)
		assert.Equal(t, http.StatusBadRequest, w.Code, path)
		assert.Equal(t, response.CodeBadRequest, env.Code, path)
	}
}

func TestUserEndpoints(t *testing.T) {
	r, _ := newEngine(t, testConfig())

	byName := getList(t, r, "/api/v1/users?fname=Ada&lname=Lovelace")
	assert.Equal(t, []int64{1, 4}, byName.ids())
	assert.Equal(t, 2, byName.Total)

	assert.Equal(t, []int64{10, 11}, getList(t, r, "/api/v1/users/1/questions").ids())
	assert.Equal(t, []int64{100, 103}, getList(t, r, "/api/v1/users/2/replies").ids())
	assert.Equal(t, []int64{10, 12}, getList(t, r, "/api/v1/users/1/followed-questions").ids())
	assert.Equal(t, []int64{11}, getList(t, r, "/api/v1/users/1/liked-questions").ids())

	empty := getList(t, r, "/api/v1/users/5/questions")
	assert.NotNil(t, empty.List)
	assert.Empty(t, empty.List)
	assert.Equal(t, 0, empty.Total)
}

func TestQuestionEndpoints(t *testing.T) {
	r, _ := newEngine(t, testConfig())

	w, env := get(t, r, "/api/v1/questions/12/author")
	require.Equal(t, http.StatusOK, w.Code)
	var author struct{ ID int64 `json:"id"` }
	require.NoError(t, json.Unmarshal(env.Data, &author))
	assert.Equal(t, int64(2), author.ID)

	assert.Equal(t, []int64{100, 101, 102, 103, 104}, getList(t, r, "/api/v1/questions/10/replies").ids())
	assert.Equal(t, []int64{1, 2, 3}, getList(t, r, "/api/v1/questions/12/followers").ids())
	assert.Equal(t, []int64{2, 3}, getList(t, r, "/api/v1/questions/10/likers").ids())

	w, env = get(t, r, "/api/v1/questions/10/likes/count")
	require.Equal(t, http.StatusOK, w.Code)
	var count struct {
		QuestionID int64 `json:"question_id"`
		Count      int64 `json:"count"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &count))
	assert.Equal(t, int64(10), count.QuestionID)
	assert.Equal(t, int64(2), count.Count)

	w, env = get(t, r, "/api/v1/questions/13/likes/count")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(env.Data, &count))
	assert.Equal(t, int64(0), count.Count)
}

func TestRankingEndpoints(t *testing.T) {
	r, _ := newEngine(t, testConfig())

	assert.Equal(t, []int64{12, 10}, getList(t, r, "/api/v1/rankings/most-followed?n=2").ids())
	assert.Equal(t, []int64{12, 10, 11}, getList(t, r, "/api/v1/rankings/most-followed").ids())
	assert.Empty(t, getList(t, r, "/api/v1/rankings/most-followed?n=0").List)
	assert.Equal(t, []int64{10, 11}, getList(t, r, "/api/v1/rankings/most-liked?n=5").ids())
}

func TestReplyTreeEndpoints(t *testing.T) {
	r, db := newEngine(t, testConfig())

	assert.Equal(t, []int64{101, 102}, getList(t, r, "/api/v1/replies/100/children").ids())
	assert.Equal(t, []int64{101, 100}, getList(t, r, "/api/v1/replies/103/ancestors").ids())
	assert.Equal(t, []int64{101, 102, 103}, getList(t, r, "/api/v1/replies/100/descendants").ids())

	w, env := get(t, r, "/api/v1/replies/103/parent")
	require.Equal(t, http.StatusOK, w.Code)
	var parent struct{ ID int64 `json:"id"` }
	require.NoError(t, json.Unmarshal(env.Data, &parent))
	assert.Equal(t, int64(101), parent.ID)

	testutil.Exec(t, db,
		`INSERT INTO replies (id, body, question_id, parent_id, user_id) VALUES (200, 'a', 13, 201, 1)`,
		`INSERT INTO replies (id, body, question_id, parent_id, user_id) VALUES (201, 'b', 13, 200, 1)`,
	)
	loop := getList(t, r, "/api/v1/replies/200/ancestors")
	assert.True(t, loop.Truncated)
	assert.Equal(t, []int64{201}, loop.ids())
}

func TestQueryFailureIs500(t *testing.T) {
	r, db := newEngine(t, testConfig())
	testutil.Exec(t, db, `DROP TABLE question_follows`)

	w, env := get(t, r, "/api/v1/questions/10/followers")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, response.CodeInternalError, env.Code)
	assert.NotContains(t, w.Body.String(), "question_follows")
}

func TestRateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimit = config.RateLimitConfig{Enabled: true, RPS: 0.001, Burst: 1}
	r, _ := newEngine(t, cfg)

	w, _ := get(t, r, "/api/v1/users/1")
	assert.Equal(t, http.StatusOK, w.Code)
	w, env := get(t, r, "/api/v1/users/1")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, response.CodeTooMany, env.Code)

	// 系统接口不限流
	w, _ = get(t, r, "/health")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSystemEndpoints(t *testing.T) {
	r, _ := newEngine(t, testConfig())

	w, _ := get(t, r, "/health")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "questions_http_requests_total")
	assert.Contains(t, w.Body.String(), `route="/health"`)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/api/v1/rankings/most-followed")
}

func TestRequestIDIsEchoed(t *testing.T) {
	r, _ := newEngine(t, testConfig())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/1", nil)
	req.Header.Set("X-Request-ID", "req-42")
	r.ServeHTTP(w, req)
	assert.Equal(t, "req-42", w.Header().Get("X-Request-ID"))
}
