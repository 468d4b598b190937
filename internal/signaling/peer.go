package signaling

import (
	"log"
	"time"

	"github.com/gorilla/websocket"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum inbound frame size. SDP offers are the largest frames and
	// stay well under this.
	maxMessageSize = 64 * 1024

	// Outbound queue size per peer.
	sendBuffer = 256
)

// Peer is one live connection in a namespace. The relay holds only
// non-owning references to it inside room lists and the doctor map; the
// connection itself is owned by the transport goroutines.
type Peer struct {
	conn *websocket.Conn
	send chan *Event

	// Metadata supplied at join time, echoed in rosters and leave notices.
	UserName string
	UserRole string
}

func newPeer(conn *websocket.Conn) *Peer {
	return &Peer{
		conn: conn,
		send: make(chan *Event, sendBuffer),
	}
}

// deliver queues an event for the peer. Delivery is fire-and-forget: when
// the peer's queue is full the event is dropped rather than blocking the
// relay. Must only be called while the relay lock is held, so no event can
// race the close of the send channel on disconnect.
func (p *Peer) deliver(ev *Event) {
	select {
	case p.send <- ev:
	default:
		log.Printf("signaling: peer %q send queue full, dropping %s", p.UserName, ev.Event)
	}
}

// writePump writes queued events to the connection and keeps it alive with
// pings. It exits when the send channel is closed or a write fails.
func (p *Peer) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		p.conn.Close()
	}()

	for {
		select {
		case ev, ok := <-p.send:
			p.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				p.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := p.conn.WriteJSON(ev); err != nil {
				return
			}

		case <-ticker.C:
			p.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := p.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
