package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-prioritizer/internal/prioritize"
	prioritizeHTTP "task-prioritizer/internal/prioritize/delivery/http"
	"task-prioritizer/internal/prioritize/usecase"
	"task-prioritizer/pkg/datemath"
)

// ── Mocks ──────────────────────────────────────────────────────────────────

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockUseCase struct {
	analyzeInput  prioritize.AnalyzeInput
	analyzeOutput prioritize.AnalyzeOutput
	suggestInput  prioritize.SuggestInput
	suggestOutput prioritize.SuggestOutput
	err           error
	calls         int
}

func (m *mockUseCase) Analyze(ctx context.Context, input prioritize.AnalyzeInput) (prioritize.AnalyzeOutput, error) {
	m.calls++
	m.analyzeInput = input
	return m.analyzeOutput, m.err
}

func (m *mockUseCase) Suggest(ctx context.Context, input prioritize.SuggestInput) (prioritize.SuggestOutput, error) {
	m.calls++
	m.suggestInput = input
	return m.suggestOutput, m.err
}

// ── Helpers ────────────────────────────────────────────────────────────────

type errorBody struct {
	Error   string         `json:"error"`
	Details map[string]any `json:"details"`
}

func newRouter(uc prioritize.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := prioritizeHTTP.New(&mockLogger{}, uc)
	prioritizeHTTP.RegisterRoutes(r.Group(""), h)
	prioritizeHTTP.RegisterRoutes(r.Group("/api"), h)
	return r
}

func postAnalyze(r http.Handler, query, body string) *httptest.ResponseRecorder {
	target := "/api/tasks/analyze/"
	if query != "" {
		target += "?" + query
	}
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func getSuggest(r http.Handler, params url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/tasks/suggest?"+params.Encode(), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var body errorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

// ── Tests ──────────────────────────────────────────────────────────────────

func TestAnalyze_DecodesEntries(t *testing.T) {
	uc := &mockUseCase{}
	r := newRouter(uc)

	body := `[
		{"id": 7, "title": " Write report ", "due_date": "2024-05-03T18:00:00+07:00",
		 "estimated_hours": "2.5", "importance": 8.0, "dependencies": [1, "b"]},
		{"title": "Plain", "due_date": null}
	]`
	w := postAnalyze(r, "strategy=Fast&effort=0.9", body)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.Len(t, uc.analyzeInput.Tasks, 2)

	first := uc.analyzeInput.Tasks[0]
	assert.Equal(t, "7", first.ID)
	assert.Equal(t, "Write report", first.Title)
	assert.Equal(t, "2024-05-03", first.DueDate)
	assert.Equal(t, 2.5, first.EstimatedHours)
	assert.Equal(t, 8, first.Importance)
	assert.Equal(t, []string{"1", "b"}, first.Dependencies)

	second := uc.analyzeInput.Tasks[1]
	assert.Empty(t, second.ID)
	assert.Empty(t, second.DueDate)
	assert.Zero(t, second.EstimatedHours)
	assert.Zero(t, second.Importance)

	assert.Equal(t, prioritize.StrategyFast, uc.analyzeInput.Strategy)
	require.NotNil(t, uc.analyzeInput.Overrides.Effort)
	assert.Equal(t, 0.9, *uc.analyzeInput.Overrides.Effort)
	assert.Nil(t, uc.analyzeInput.Overrides.Urgency)
}

func TestAnalyze_ResponseShape(t *testing.T) {
	high := 61.5
	uc := &mockUseCase{
		analyzeOutput: prioritize.AnalyzeOutput{
			Tasks: []prioritize.ScoredTask{
				{ID: "T0", Title: "A", EstimatedHours: 1, Importance: 5, Score: 61.5, Explanation: "x"},
			},
			Analysis: prioritize.Analysis{
				Weights: prioritize.DefaultWeights(),
				Summary: prioritize.Summary{TotalTasks: 1, HighestScore: &high},
			},
		},
	}
	r := newRouter(uc)

	w := postAnalyze(r, "", `[{"title": "A"}]`)
	require.Equal(t, http.StatusOK, w.Code)

	var got map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))

	tasks := got["tasks"].([]any)
	require.Len(t, tasks, 1)
	task := tasks[0].(map[string]any)
	assert.Nil(t, task["due_date"])
	assert.Equal(t, []any{}, task["dependencies"])
	assert.Equal(t, 61.5, task["score"])

	analysis := got["analysis"].(map[string]any)
	assert.Equal(t, []any{}, analysis["cycles"])
	assert.Equal(t, 0.4, analysis["weights"].(map[string]any)["urgency"])
	summary := analysis["summary"].(map[string]any)
	assert.Equal(t, 1.0, summary["total_tasks"])
	assert.Equal(t, 61.5, summary["highest_score"])
}

func TestAnalyze_BadBody(t *testing.T) {
	tcs := map[string]struct {
		body    string
		message string
	}{
		"object body":    {body: `{"title": "A"}`, message: "Expected a JSON array of tasks."},
		"scalar body":    {body: `42`, message: "Expected a JSON array of tasks."},
		"malformed json": {body: `[{"title": }]`, message: "Malformed JSON body."},
		"empty body":     {body: ``, message: "Malformed JSON body."},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			uc := &mockUseCase{}
			w := postAnalyze(newRouter(uc), "", tc.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tc.message, decodeError(t, w).Error)
			assert.Zero(t, uc.calls)
		})
	}
}

func TestAnalyze_InvalidEntry(t *testing.T) {
	tcs := map[string]struct {
		entry  string
		field  string
		detail any
	}{
		"missing title":    {entry: `{"importance": 3}`, field: "title", detail: []any{"This field is required."}},
		"blank title":      {entry: `{"title": "   "}`, field: "title", detail: []any{"This field may not be blank."}},
		"null title":       {entry: `{"title": null}`, field: "title", detail: []any{"This field may not be null."}},
		"list title":       {entry: `{"title": ["a"]}`, field: "title", detail: []any{"Not a valid string."}},
		"importance high":  {entry: `{"title": "A", "importance": 11}`, field: "importance", detail: []any{"Ensure this value is less than or equal to 10."}},
		"importance zero":  {entry: `{"title": "A", "importance": 0}`, field: "importance", detail: []any{"Ensure this value is greater than or equal to 1."}},
		"importance float": {entry: `{"title": "A", "importance": 7.5}`, field: "importance", detail: []any{"A valid integer is required."}},
		"importance text":  {entry: `{"title": "A", "importance": "high"}`, field: "importance", detail: []any{"A valid integer is required."}},
		"hours text":       {entry: `{"title": "A", "estimated_hours": "soon"}`, field: "estimated_hours", detail: []any{"A valid number is required."}},
		"bad date":         {entry: `{"title": "A", "due_date": "05/01/2024"}`, field: "due_date", detail: []any{"Date has wrong format. Use one of these formats instead: YYYY-MM-DD."}},
		"numeric date":     {entry: `{"title": "A", "due_date": 20240501}`, field: "due_date", detail: []any{"Date has wrong format. Use one of these formats instead: YYYY-MM-DD."}},
		"deps string":      {entry: `{"title": "A", "dependencies": "B"}`, field: "dependencies", detail: []any{`Expected a list of items but got type "str".`}},
		"deps element":     {entry: `{"title": "A", "dependencies": ["B", {"id": 1}]}`, field: "dependencies", detail: map[string]any{"1": []any{"Not a valid string."}}},
		"not an object":    {entry: `["A"]`, field: "non_field_errors", detail: []any{"Invalid data. Expected a dictionary, but got list."}},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			uc := &mockUseCase{}
			w := postAnalyze(newRouter(uc), "", fmt.Sprintf(`[{"title": "ok"}, %s]`, tc.entry))

			require.Equal(t, http.StatusBadRequest, w.Code)
			body := decodeError(t, w)
			assert.Equal(t, "Invalid task at index 1", body.Error)
			assert.Equal(t, tc.detail, body.Details[tc.field])
			assert.Zero(t, uc.calls)
		})
	}
}

func TestAnalyze_WeightParams(t *testing.T) {
	tcs := map[string]struct {
		query  string
		field  string
		detail string
	}{
		"not a number": {query: "urgency=abc", field: "urgency", detail: "A valid number is required."},
		"empty value":  {query: "importance=", field: "importance", detail: "A valid number is required."},
		"nan":          {query: "effort=NaN", field: "effort", detail: "A valid number is required."},
		"negative":     {query: "dependencies=-0.5", field: "dependencies", detail: "Ensure this value is greater than or equal to 0."},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			uc := &mockUseCase{}
			w := postAnalyze(newRouter(uc), tc.query, `[{"title": "A"}]`)

			require.Equal(t, http.StatusBadRequest, w.Code)
			body := decodeError(t, w)
			assert.Equal(t, "Invalid weight parameters.", body.Error)
			assert.Equal(t, []any{tc.detail}, body.Details[tc.field])
			assert.Zero(t, uc.calls)
		})
	}
}

func TestAnalyze_UseCaseErrors(t *testing.T) {
	tcs := map[string]struct {
		err     error
		code    int
		message string
	}{
		"unknown strategy": {err: fmt.Errorf("%w: %q", prioritize.ErrUnknownStrategy, "yolo"), code: http.StatusBadRequest, message: "Unknown strategy."},
		"negative weight":  {err: prioritize.ErrNegativeWeight, code: http.StatusBadRequest, message: "Invalid weight parameters."},
		"too many tasks":   {err: fmt.Errorf("%w: 2 > 1", prioritize.ErrTooManyTasks), code: http.StatusBadRequest, message: "Too many tasks in one request."},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			w := postAnalyze(newRouter(&mockUseCase{err: tc.err}), "strategy=yolo", `[{"title": "A"}]`)

			assert.Equal(t, tc.code, w.Code)
			assert.Equal(t, tc.message, decodeError(t, w).Error)
		})
	}

	t.Run("unexpected error", func(t *testing.T) {
		w := postAnalyze(newRouter(&mockUseCase{err: errors.New("boom")}), "", `[{"title": "A"}]`)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "boom")
	})
}

func TestSuggest(t *testing.T) {
	t.Run("missing tasks", func(t *testing.T) {
		w := getSuggest(newRouter(&mockUseCase{}), url.Values{})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Provide tasks as JSON in `tasks` query parameter.", decodeError(t, w).Error)
	})

	t.Run("invalid json", func(t *testing.T) {
		w := getSuggest(newRouter(&mockUseCase{}), url.Values{"tasks": {"[{"}})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid JSON in `tasks` query parameter.", decodeError(t, w).Error)
	})

	t.Run("not an array", func(t *testing.T) {
		w := getSuggest(newRouter(&mockUseCase{}), url.Values{"tasks": {`{"title":"A"}`}})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "`tasks` must be a JSON array.", decodeError(t, w).Error)
	})

	t.Run("invalid entry", func(t *testing.T) {
		w := getSuggest(newRouter(&mockUseCase{}), url.Values{"tasks": {`[{"title":""}]`}})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid task at index 0", decodeError(t, w).Error)
	})

	t.Run("ok", func(t *testing.T) {
		uc := &mockUseCase{
			suggestOutput: prioritize.SuggestOutput{
				Suggestions: []prioritize.ScoredTask{{ID: "B", Title: "B", DueDate: "2024-05-02", Score: 80}},
			},
		}
		w := getSuggest(newRouter(uc), url.Values{
			"tasks":      {`[{"id":"A","title":"A"},{"id":"B","title":"B","due_date":"2024-05-02"}]`},
			"importance": {"2"},
		})

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Len(t, uc.suggestInput.Tasks, 2)
		require.NotNil(t, uc.suggestInput.Overrides.Importance)
		assert.Equal(t, 2.0, *uc.suggestInput.Overrides.Importance)
		assert.Zero(t, uc.suggestInput.TopN)

		var got map[string][]map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		require.Len(t, got["suggestions"], 1)
		assert.Equal(t, "2024-05-02", got["suggestions"][0]["due_date"])
	})
}

func TestAnalyze_EndToEnd(t *testing.T) {
	dm, err := datemath.NewParser("UTC")
	require.NoError(t, err)
	uc := usecase.New(&mockLogger{}, dm, nil, usecase.Config{})
	uc.SetClock(func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) })

	body := `[
		{"id": "future", "title": "Future", "due_date": "2024-05-06", "estimated_hours": 2},
		{"id": "past", "title": "Past due", "due_date": "2024-04-28", "estimated_hours": 2}
	]`
	w := postAnalyze(newRouter(uc), "", body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var got struct {
		Tasks []struct {
			ID          string  `json:"id"`
			Score       float64 `json:"score"`
			Explanation string  `json:"explanation"`
		} `json:"tasks"`
		Analysis struct {
			Summary struct {
				TotalTasks   int      `json:"total_tasks"`
				HighestScore *float64 `json:"highest_score"`
			} `json:"summary"`
		} `json:"analysis"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))

	require.Len(t, got.Tasks, 2)
	assert.Equal(t, "past", got.Tasks[0].ID)
	assert.Equal(t, 70.0, got.Tasks[0].Score)
	assert.Equal(t, 30.0, got.Tasks[1].Score)
	assert.Equal(t, "Urgency: 100% | Importance: 50% | Effort advantage: 50% | Blocks 0 other task(s)", got.Tasks[0].Explanation)
	assert.Equal(t, 2, got.Analysis.Summary.TotalTasks)
	require.NotNil(t, got.Analysis.Summary.HighestScore)
	assert.Equal(t, 70.0, *got.Analysis.Summary.HighestScore)
}
