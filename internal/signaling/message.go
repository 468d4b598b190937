package signaling

import (
	"encoding/json"
	"log"
)

// Event is the JSON envelope for every frame on the wire, in both
// directions: {"event": "...", "data": ...}.
type Event struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// Client to server events.
const (
	EventJoinRoom         = "join-room"
	EventOffer            = "offer"
	EventAnswer           = "answer"
	EventICECandidate     = "ice-candidate"
	EventDoctorConnect    = "doctorConnect"
	EventEmergencyRequest = "emergencyRequest"
	EventUserMessage      = "user-message"
)

// Server to client events.
const (
	EventReady                 = "ready"
	EventRoomUsers             = "room-users"
	EventRoomFull              = "room-full"
	EventUserLeft              = "user-left"
	EventEmergencyNotification = "emergencyNotification"
	EventMessage               = "message"
)

// JoinRequest is the normalized join-room payload. Legacy clients send a
// bare room token string, newer ones an object with peer metadata; both
// forms are normalized here, at the transport boundary.
type JoinRequest struct {
	RoomID   string `json:"roomId"`
	UserName string `json:"userName"`
	UserRole string `json:"userRole"`
}

func (j *JoinRequest) UnmarshalJSON(data []byte) error {
	var token string
	if err := json.Unmarshal(data, &token); err == nil {
		*j = JoinRequest{RoomID: token}
		return nil
	}

	type plain JoinRequest
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*j = JoinRequest(p)
	return nil
}

// signalPayload carries a relayed handshake frame: the room token plus one
// opaque blob keyed by the event type. The blob is never inspected.
type signalPayload struct {
	RoomID    string          `json:"roomId"`
	Offer     json.RawMessage `json:"offer,omitempty"`
	Answer    json.RawMessage `json:"answer,omitempty"`
	Candidate json.RawMessage `json:"candidate,omitempty"`
}

// blob returns the opaque payload matching the event name.
func (p *signalPayload) blob(event string) json.RawMessage {
	switch event {
	case EventOffer:
		return p.Offer
	case EventAnswer:
		return p.Answer
	case EventICECandidate:
		return p.Candidate
	}
	return nil
}

// RoomUser is one member's metadata in a room-users roster.
type RoomUser struct {
	UserName string `json:"userName"`
	UserRole string `json:"userRole"`
}

// RoomUsersPayload is the roster sent after the second peer joins.
type RoomUsersPayload struct {
	Users []RoomUser `json:"users"`
}

// UserLeftPayload notifies remaining room members of a departure.
type UserLeftPayload struct {
	UserName string `json:"userName"`
}

// EmergencyRequestPayload is the patient-side SOS trigger.
type EmergencyRequestPayload struct {
	Name string `json:"name"`
}

// EmergencyNotification fans out to every registered doctor connection. The
// room token is server-generated so the doctor can join the call directly.
type EmergencyNotification struct {
	PatientName string `json:"patientName"`
	RoomID      string `json:"roomId"`
}

// ChatSendPayload is the client form of a chat message.
type ChatSendPayload struct {
	RoomID string `json:"roomId"`
	Text   string `json:"text"`
}

// ChatMessage is the broadcast form of a chat message. The timestamp is
// server-assigned (unix milliseconds), never taken from the sender.
type ChatMessage struct {
	Text      string `json:"text"`
	Sender    string `json:"sender"`
	Timestamp int64  `json:"timestamp"`
}

// newEvent builds an envelope around the given payload. A nil payload
// produces a bare event with no data field.
func newEvent(event string, data interface{}) *Event {
	if data == nil {
		return &Event{Event: event}
	}
	raw, err := json.Marshal(data)
	if err != nil {
		log.Printf("signaling: failed to encode %s payload: %v", event, err)
		return &Event{Event: event}
	}
	return &Event{Event: event, Data: raw}
}
