package signaling

import (
	"encoding/json"
	"testing"
)

func TestJoinRequestAcceptsBothWireForms(t *testing.T) {
	tests := []struct {
		name string
		data string
		want JoinRequest
	}{
		{"bare token", `"abc123"`, JoinRequest{RoomID: "abc123"}},
		{
			"object",
			`{"roomId":"abc123","userName":"anita","userRole":"patient"}`,
			JoinRequest{RoomID: "abc123", UserName: "anita", UserRole: "patient"},
		},
		{"object without metadata", `{"roomId":"abc123"}`, JoinRequest{RoomID: "abc123"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got JoinRequest
			if err := json.Unmarshal([]byte(tt.data), &got); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestJoinRequestRejectsGarbage(t *testing.T) {
	var got JoinRequest
	if err := json.Unmarshal([]byte(`42`), &got); err == nil {
		t.Error("expected an error for a numeric payload")
	}
}

func TestSignalPayloadSelectsBlobByEvent(t *testing.T) {
	payload := signalPayload{
		RoomID:    "abc123",
		Offer:     json.RawMessage(`{"sdp":"o"}`),
		Answer:    json.RawMessage(`{"sdp":"a"}`),
		Candidate: json.RawMessage(`{"candidate":"c"}`),
	}

	tests := []struct {
		event string
		want  string
	}{
		{EventOffer, `{"sdp":"o"}`},
		{EventAnswer, `{"sdp":"a"}`},
		{EventICECandidate, `{"candidate":"c"}`},
		{"bogus", ""},
	}
	for _, tt := range tests {
		if got := string(payload.blob(tt.event)); got != tt.want {
			t.Errorf("blob(%q) = %q, want %q", tt.event, got, tt.want)
		}
	}
}

func TestNewEventOmitsNilData(t *testing.T) {
	raw, err := json.Marshal(newEvent(EventReady, nil))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(raw) != `{"event":"ready"}` {
		t.Errorf("encoded = %s, want {\"event\":\"ready\"}", raw)
	}
}
