package schedule

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDayIgnoresTimeOfDay(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"2024-03-10", "2024-03-10"},
		{"2024-03-10T15:04:05Z", "2024-03-10"},
		{"  2024-12-01  ", "2024-12-01"},
	}
	for _, tc := range cases {
		day, err := ParseDay(tc.input)
		if err != nil {
			t.Fatalf("parse %q: %v", tc.input, err)
		}
		if day.String() != tc.want {
			t.Fatalf("parse %q: got %s want %s", tc.input, day, tc.want)
		}
	}
}

func TestParseDayRejectsGarbage(t *testing.T) {
	if _, err := ParseDay("not a date"); err == nil {
		t.Fatalf("expected error for invalid date")
	}
	if _, err := ParseDay(""); err == nil {
		t.Fatalf("expected error for empty date")
	}
}

func TestDayDisplayFormat(t *testing.T) {
	day := NewDay(2024, time.March, 5)
	if got := day.Display(); got != "05/03/2024" {
		t.Fatalf("display: got %s want 05/03/2024", got)
	}
}

func TestDayComparisons(t *testing.T) {
	a := NewDay(2024, time.May, 1)
	b := NewDay(2024, time.May, 2)
	if !a.Before(b) || b.Before(a) {
		t.Fatalf("expected %s before %s", a, b)
	}
	if !b.After(a) {
		t.Fatalf("expected %s after %s", b, a)
	}
	if !a.Equal(NewDay(2024, time.May, 1)) {
		t.Fatalf("expected equality for same date")
	}
	if a.Next() != b {
		t.Fatalf("next: got %s want %s", a.Next(), b)
	}
}

func TestDayJSONRoundTrip(t *testing.T) {
	day := NewDay(2024, time.February, 29)
	data, err := json.Marshal(day)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `"2024-02-29"` {
		t.Fatalf("marshal: got %s", data)
	}
	var decoded Day
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !decoded.Equal(day) {
		t.Fatalf("round trip: got %s want %s", decoded, day)
	}
}

func TestDayUnmarshalToleratesTimestamps(t *testing.T) {
	var decoded Day
	if err := json.Unmarshal([]byte(`"2024-03-10T08:30:00Z"`), &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.String() != "2024-03-10" {
		t.Fatalf("got %s want 2024-03-10", decoded)
	}
}
