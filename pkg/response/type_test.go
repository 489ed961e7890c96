package response_test

import (
	"encoding/json"
	"testing"
	"time"

	"task-prioritizer/pkg/response"
)

func TestDateMarshalJSON(t *testing.T) {
	// Late in the day UTC; must not roll over into another date.
	tm := time.Date(2024, 5, 1, 23, 30, 0, 0, time.UTC)

	b, err := json.Marshal(response.Date(tm))
	if err != nil {
		t.Fatalf("unexpected error marshaling Date: %v", err)
	}

	if string(b) != `"2024-05-01"` {
		t.Errorf("expected \"2024-05-01\", got %s", b)
	}
}
