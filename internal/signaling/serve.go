package signaling

import (
	"encoding/json"
	"log"
	"time"

	"github.com/gorilla/websocket"
)

// ServeCall drives one call-namespace connection: it starts the write pump,
// reads frames until the connection drops, and then cleans up every piece
// of relay state the peer touched. Blocks until the connection is gone.
func (r *Relay) ServeCall(conn *websocket.Conn) {
	r.serve(conn, r.dispatchCall)
}

// ServeChat is ServeCall for the chat namespace.
func (r *Relay) ServeChat(conn *websocket.Conn) {
	r.serve(conn, r.dispatchChat)
}

func (r *Relay) serve(conn *websocket.Conn, dispatch func(*Peer, *Event)) {
	p := newPeer(conn)
	go p.writePump()

	defer func() {
		r.Disconnect(p)
		conn.Close()
	}()

	conn.SetReadLimit(maxMessageSize)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("signaling: unexpected close: %v", err)
			}
			return
		}

		var ev Event
		if err := json.Unmarshal(raw, &ev); err != nil {
			log.Printf("signaling: malformed frame: %v", err)
			continue
		}
		dispatch(p, &ev)
	}
}

// dispatchCall routes one inbound call-namespace event. Malformed payloads
// are skipped with a log line and produce no response (the only explicit
// failure signal in the protocol is room-full).
func (r *Relay) dispatchCall(p *Peer, ev *Event) {
	switch ev.Event {
	case EventJoinRoom:
		var req JoinRequest
		if err := json.Unmarshal(ev.Data, &req); err != nil || req.RoomID == "" {
			log.Printf("signaling: bad join-room payload: %v", err)
			return
		}
		r.JoinCall(p, req)

	case EventOffer, EventAnswer, EventICECandidate:
		var payload signalPayload
		if err := json.Unmarshal(ev.Data, &payload); err != nil || payload.RoomID == "" {
			log.Printf("signaling: bad %s payload: %v", ev.Event, err)
			return
		}
		r.Signal(p, ev.Event, payload)

	case EventDoctorConnect:
		var doctorID string
		if err := json.Unmarshal(ev.Data, &doctorID); err != nil || doctorID == "" {
			log.Printf("signaling: bad doctorConnect payload: %v", err)
			return
		}
		r.RegisterDoctor(doctorID, p)

	case EventEmergencyRequest:
		var req EmergencyRequestPayload
		if err := json.Unmarshal(ev.Data, &req); err != nil {
			log.Printf("signaling: bad emergencyRequest payload: %v", err)
			return
		}
		r.Emergency(req.Name)

	default:
		log.Printf("signaling: unknown call event %q", ev.Event)
	}
}

// dispatchChat routes one inbound chat-namespace event.
func (r *Relay) dispatchChat(p *Peer, ev *Event) {
	switch ev.Event {
	case EventJoinRoom:
		var req JoinRequest
		if err := json.Unmarshal(ev.Data, &req); err != nil || req.RoomID == "" {
			log.Printf("signaling: bad join-room payload: %v", err)
			return
		}
		r.JoinChat(p, req)

	case EventUserMessage:
		var payload ChatSendPayload
		if err := json.Unmarshal(ev.Data, &payload); err != nil || payload.RoomID == "" {
			log.Printf("signaling: bad user-message payload: %v", err)
			return
		}
		r.ChatMessage(p, payload)

	default:
		log.Printf("signaling: unknown chat event %q", ev.Event)
	}
}
