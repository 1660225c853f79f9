package response_test

import (
	"encoding/json"
	"testing"
	"time"

	"voicetask/pkg/response"
)

func TestDateTimeRoundTrip(t *testing.T) {
	tm := time.Date(2026, 3, 14, 9, 26, 5, 0, time.UTC)

	b, err := json.Marshal(response.DateTime(tm))
	if err != nil {
		t.Fatalf("unexpected error marshaling DateTime: %v", err)
	}
	if string(b) != `"2026-03-14 09:26:05"` {
		t.Errorf("marshaled DateTime = %s, want %q", b, "2026-03-14 09:26:05")
	}

	var back response.DateTime
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unexpected error unmarshaling DateTime: %v", err)
	}
	if !time.Time(back).Equal(tm) {
		t.Errorf("round-tripped DateTime = %v, want %v", time.Time(back), tm)
	}
}

func TestDateTimeRejectsMalformed(t *testing.T) {
	var dt response.DateTime
	if err := json.Unmarshal([]byte(`"not a timestamp"`), &dt); err == nil {
		t.Error("expected an error for a malformed timestamp")
	}
}
