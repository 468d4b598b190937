// Package signaling implements the WebRTC signaling relay: two-party rooms
// for offer/answer/ICE exchange, a parallel chat namespace, and the
// emergency broadcast to connected doctors. All state is in-memory and
// connection-scoped; nothing here is ever persisted.
package signaling

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Relay owns all signaling state: call rooms, chat rooms and the doctor
// broadcast map. One instance is constructed at startup and injected into
// the websocket handlers; there is no package-level state.
//
// A single mutex serializes every state mutation and every queued delivery,
// which gives the same run-to-completion semantics per handler that a
// single-threaded event loop would.
type Relay struct {
	mu      sync.Mutex
	call    *roomSet
	chat    *roomSet
	doctors map[string]*Peer
}

func NewRelay() *Relay {
	return &Relay{
		call:    newRoomSet(),
		chat:    newRoomSet(),
		doctors: make(map[string]*Peer),
	}
}

// JoinCall adds the peer to a call room. The second join makes the room
// ready: both members receive ready followed by the room-users roster. A
// third join is rejected with room-full sent only to the rejected peer.
func (r *Relay) JoinCall(p *Peer, req JoinRequest) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.join(r.call, p, req)
}

// JoinChat is JoinCall for the chat namespace; independent rooms, same cap.
func (r *Relay) JoinChat(p *Peer, req JoinRequest) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.join(r.chat, p, req)
}

func (r *Relay) join(ns *roomSet, p *Peer, req JoinRequest) {
	p.UserName = req.UserName
	p.UserRole = req.UserRole

	members, ok := ns.join(req.RoomID, p)
	if !ok {
		p.deliver(newEvent(EventRoomFull, nil))
		return
	}
	if len(members) < maxRoomPeers {
		return
	}

	roster := RoomUsersPayload{}
	for _, m := range members {
		roster.Users = append(roster.Users, RoomUser{UserName: m.UserName, UserRole: m.UserRole})
	}
	for _, m := range members {
		m.deliver(newEvent(EventReady, nil))
	}
	for _, m := range members {
		m.deliver(newEvent(EventRoomUsers, roster))
	}
}

// Signal relays an offer, answer or ice-candidate payload verbatim to every
// other member of the room. The sender never receives its own payload. No
// validation, no acknowledgment: the payload is an opaque blob and delivery
// is fire-and-forget.
func (r *Relay) Signal(p *Peer, event string, payload signalPayload) {
	blob := payload.blob(event)

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, other := range r.call.others(payload.RoomID, p) {
		other.deliver(&Event{Event: event, Data: blob})
	}
}

// ChatMessage broadcasts a text message to every member of the chat room,
// including the sender, so the sender's UI renders its own message through
// the same path. The timestamp is assigned here, never taken from the
// client.
func (r *Relay) ChatMessage(p *Peer, payload ChatSendPayload) {
	msg := ChatMessage{
		Text:      payload.Text,
		Sender:    p.UserName,
		Timestamp: time.Now().UnixMilli(),
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range r.chat.members(payload.RoomID) {
		m.deliver(newEvent(EventMessage, msg))
	}
}

// RegisterDoctor puts the connection into the doctor broadcast map.
// Registering the same id again replaces the previous connection.
func (r *Relay) RegisterDoctor(doctorID string, p *Peer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.doctors[doctorID] = p
}

// Emergency fans an SOS out to every registered doctor connection, carrying
// a freshly generated room token the doctor can join to reach the patient.
// One-to-many, no acknowledgment, no retry.
func (r *Relay) Emergency(patientName string) {
	notification := EmergencyNotification{
		PatientName: patientName,
		RoomID:      uuid.NewString(),
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, doctor := range r.doctors {
		doctor.deliver(newEvent(EventEmergencyNotification, notification))
	}
}

// Disconnect removes the peer from every call room, every chat room and the
// doctor map, notifies remaining room members with user-left, and deletes
// rooms left empty. Closing the send channel here, under the lock, stops
// the peer's write pump; no later delivery can race it because all
// deliveries also run under the lock.
func (r *Relay) Disconnect(p *Peer) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, remaining := range r.call.remove(p) {
		for _, m := range remaining {
			m.deliver(newEvent(EventUserLeft, UserLeftPayload{UserName: p.UserName}))
		}
	}
	for _, remaining := range r.chat.remove(p) {
		for _, m := range remaining {
			m.deliver(newEvent(EventUserLeft, UserLeftPayload{UserName: p.UserName}))
		}
	}
	for id, doctor := range r.doctors {
		if doctor == p {
			delete(r.doctors, id)
		}
	}

	close(p.send)
}

// CallRoomSize reports the current membership of a call room.
func (r *Relay) CallRoomSize(roomID string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.call.members(roomID))
}
