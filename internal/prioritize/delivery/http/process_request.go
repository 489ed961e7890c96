package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"

	"task-prioritizer/internal/prioritize"
	pkgErrors "task-prioritizer/pkg/errors"
)

const (
	paramTasks    = "tasks"
	paramStrategy = "strategy"

	fieldNonField = "non_field_errors"

	maxBodyBytes = 1 << 20
)

const (
	msgRequired     = "This field is required."
	msgNull         = "This field may not be null."
	msgNotString    = "Not a valid string."
	msgNumber       = "A valid number is required."
	msgInteger      = "A valid integer is required."
	msgDateFormat   = "Date has wrong format. Use one of these formats instead: YYYY-MM-DD."
	msgNotList      = "Expected a list of items but got type \"%s\"."
	msgNotObject    = "Invalid data. Expected a dictionary, but got %s."
	msgNonNegative  = "Ensure this value is greater than or equal to 0."
	msgInvalidValue = "Invalid value."
)

// processAnalyzeReq decodes the task list body and the weight query parameters.
func (h *handler) processAnalyzeReq(c *gin.Context) (analyzeReq, error) {
	var req analyzeReq

	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return req, errBodyTooLarge
		}
		return req, errMalformedBody
	}

	raw, err := decodeJSON(body)
	if err != nil {
		return req, errMalformedBody
	}
	items, ok := raw.([]any)
	if !ok {
		return req, errExpectedArray
	}

	if req.Tasks, err = decodeTasks(items); err != nil {
		return req, err
	}
	if req.weightsReq, err = processWeightsQuery(c); err != nil {
		return req, err
	}
	return req, nil
}

// processSuggestReq decodes the `tasks` query parameter and the weight query parameters.
func (h *handler) processSuggestReq(c *gin.Context) (suggestReq, error) {
	var req suggestReq

	param := c.Query(paramTasks)
	if param == "" {
		return req, errMissingTasks
	}

	raw, err := decodeJSON([]byte(param))
	if err != nil {
		return req, errInvalidTasks
	}
	items, ok := raw.([]any)
	if !ok {
		return req, errTasksNotArray
	}

	if req.Tasks, err = decodeTasks(items); err != nil {
		return req, err
	}
	if req.weightsReq, err = processWeightsQuery(c); err != nil {
		return req, err
	}
	return req, nil
}

// processWeightsQuery reads `strategy` and the per-factor weight overrides.
// The strategy name itself is checked by the use case.
func processWeightsQuery(c *gin.Context) (weightsReq, error) {
	req := weightsReq{
		Strategy: prioritize.Strategy(strings.ToLower(strings.TrimSpace(c.Query(paramStrategy)))),
	}

	details := map[string]any{}
	targets := map[string]**float64{
		prioritize.FactorUrgency:      &req.Overrides.Urgency,
		prioritize.FactorImportance:   &req.Overrides.Importance,
		prioritize.FactorEffort:       &req.Overrides.Effort,
		prioritize.FactorDependencies: &req.Overrides.Dependencies,
	}

	for _, factor := range prioritize.Factors {
		raw, ok := c.GetQuery(factor)
		if !ok {
			continue
		}
		v, err := toFloat(raw)
		if err != nil {
			details[factor] = []string{msgNumber}
			continue
		}
		if v < 0 {
			details[factor] = []string{msgNonNegative}
			continue
		}
		*targets[factor] = &v
	}

	if len(details) > 0 {
		return req, pkgErrors.NewHTTPErrorWithDetails(http.StatusBadRequest, msgInvalidWeights, details)
	}
	return req, nil
}

// decodeJSON parses data keeping numbers as json.Number so integers and
// floats can be told apart.
func decodeJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, errors.New("unexpected data after top-level value")
	}
	return v, nil
}

// decodeTasks validates every entry in order and stops at the first invalid one.
func decodeTasks(items []any) ([]prioritize.Task, error) {
	tasks := make([]prioritize.Task, 0, len(items))
	for idx, item := range items {
		req, details := decodeTask(item)
		if len(details) > 0 {
			return nil, pkgErrors.NewHTTPErrorWithDetails(http.StatusBadRequest, fmt.Sprintf(msgInvalidTaskFmt, idx), details)
		}
		tasks = append(tasks, req.toTask())
	}
	return tasks, nil
}

// decodeTask converts one loosely typed entry into a taskReq. The returned
// details map is empty when the entry is valid.
func decodeTask(item any) (taskReq, map[string]any) {
	var req taskReq
	details := map[string]any{}

	m, ok := item.(map[string]any)
	if !ok {
		details[fieldNonField] = []string{fmt.Sprintf(msgNotObject, jsonTypeName(item))}
		return req, details
	}

	if v, ok := m[prioritize.KeyID]; ok && v != nil {
		if s, ok := scalarString(v); ok {
			req.ID = s
		} else {
			details[prioritize.KeyID] = []string{msgNotString}
		}
	}

	if v, ok := m[prioritize.KeyTitle]; ok {
		if v == nil {
			details[prioritize.KeyTitle] = []string{msgNull}
		} else if s, ok := scalarString(v); ok {
			req.Title = &s
		} else {
			details[prioritize.KeyTitle] = []string{msgNotString}
		}
	}

	if v, ok := m[prioritize.KeyDueDate]; ok && v != nil {
		if s, ok := v.(string); ok {
			req.DueDate = strings.TrimSpace(s)
		} else {
			details[prioritize.KeyDueDate] = []string{msgDateFormat}
		}
	}

	if v, ok := m[prioritize.KeyEstimatedHours]; ok {
		if hours, err := toFloat(v); err != nil {
			details[prioritize.KeyEstimatedHours] = []string{err.Error()}
		} else {
			req.EstimatedHours = &hours
		}
	}

	if v, ok := m[prioritize.KeyImportance]; ok {
		if importance, err := toInt(v); err != nil {
			details[prioritize.KeyImportance] = []string{err.Error()}
		} else {
			req.Importance = &importance
		}
	}

	if v, ok := m[prioritize.KeyDependencies]; ok {
		deps, depErr := toStringList(v)
		if depErr != nil {
			details[prioritize.KeyDependencies] = depErr
		} else {
			req.Dependencies = deps
		}
	}

	validateTask(&req, details)
	return req, details
}

// scalarString accepts strings and numbers; booleans, lists and objects are rejected.
func scalarString(v any) (string, bool) {
	switch s := v.(type) {
	case string:
		return strings.TrimSpace(s), true
	case json.Number:
		return s.String(), true
	default:
		return "", false
	}
}

var (
	errFieldNull    = errors.New(msgNull)
	errFieldNumber  = errors.New(msgNumber)
	errFieldInteger = errors.New(msgInteger)
)

// toFloat accepts JSON numbers and numeric strings.
func toFloat(v any) (float64, error) {
	var s string
	switch n := v.(type) {
	case nil:
		return 0, errFieldNull
	case json.Number:
		s = n.String()
	case string:
		s = strings.TrimSpace(n)
	default:
		return 0, errFieldNumber
	}
	if s == "" {
		return 0, errFieldNumber
	}

	f, err := cast.ToFloat64E(s)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, errFieldNumber
	}
	return f, nil
}

// toInt accepts integers, integral floats such as 7.0 and their string forms.
func toInt(v any) (int, error) {
	f, err := toFloat(v)
	if errors.Is(err, errFieldNull) {
		return 0, err
	}
	if err != nil || f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return 0, errFieldInteger
	}
	return int(f), nil
}

// toStringList returns either the converted list or the per-field error
// payload: a message list, or per-index messages for bad elements.
func toStringList(v any) ([]string, any) {
	if v == nil {
		return nil, []string{msgNull}
	}
	items, ok := v.([]any)
	if !ok {
		return nil, []string{fmt.Sprintf(msgNotList, jsonTypeName(v))}
	}

	out := make([]string, 0, len(items))
	bad := map[string]any{}
	for i, item := range items {
		s, ok := scalarString(item)
		if !ok {
			bad[fmt.Sprint(i)] = []string{msgNotString}
			continue
		}
		out = append(out, s)
	}
	if len(bad) > 0 {
		return nil, bad
	}
	return out, nil
}

// jsonTypeName names a decoded JSON value the way error messages refer to it.
func jsonTypeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "str"
	case bool:
		return "bool"
	case json.Number:
		return "number"
	case []any:
		return "list"
	default:
		return "object"
	}
}
