package datemath_test

import (
	"testing"
	"time"

	"task-prioritizer/pkg/datemath"
)

func TestNewParser(t *testing.T) {
	_, err := datemath.NewParser("Asia/Ho_Chi_Minh")
	if err != nil {
		t.Fatalf("unexpected error creating valid parser: %v", err)
	}

	_, err = datemath.NewParser("Invalid/Timezone")
	if err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestToday(t *testing.T) {
	parser, _ := datemath.NewParser("Asia/Ho_Chi_Minh") // UTC+7
	// 20:00 UTC on May 1 is already May 2 in Ho Chi Minh City.
	base := time.Date(2024, 5, 1, 20, 0, 0, 0, time.UTC)

	got := parser.Today(base)
	if got.Year() != 2024 || got.Month() != time.May || got.Day() != 2 {
		t.Errorf("Today() got = %v, want 2024-05-02", got)
	}
	if got.Hour() != 0 || got.Minute() != 0 {
		t.Errorf("Today() should be midnight, got %v", got)
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "ISO date",
			value: "2024-05-01",
			want:  time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "Surrounding whitespace",
			value: " 2024-12-31 ",
			want:  time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "RFC3339 keeps written date",
			value: "2024-05-01T23:30:00-05:00",
			want:  time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		},
		{name: "Empty", value: "", wantErr: true},
		{name: "Garbage", value: "next week", wantErr: true},
		{name: "Invalid day", value: "2024-02-30", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := datemath.ParseDate(tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && !got.Equal(tt.want) {
				t.Errorf("ParseDate() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDaysBetween(t *testing.T) {
	today := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		to   time.Time
		want int
	}{
		{"Same day", today, 0},
		{"Three days later", today.AddDate(0, 0, 3), 3},
		{"Overdue", today.AddDate(0, 0, -5), -5},
		{"Across month", time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), 31},
		{"Far future", time.Date(2400, 1, 1, 0, 0, 0, 0, time.UTC), 137210},
		{"End of calendar", time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC), 2913052},
		{"Far past", time.Date(1, 1, 1, 0, 0, 0, 0, time.UTC), -739006},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := datemath.DaysBetween(today, tt.to); got != tt.want {
				t.Errorf("DaysBetween() got = %d, want %d", got, tt.want)
			}
		})
	}

	// Wall-clock comparison ignores the location of each operand.
	loc, _ := time.LoadLocation("Asia/Ho_Chi_Minh")
	local := time.Date(2024, 5, 1, 0, 0, 0, 0, loc)
	if got := datemath.DaysBetween(local, today.AddDate(0, 0, 1)); got != 1 {
		t.Errorf("DaysBetween() across locations got = %d, want 1", got)
	}
}
