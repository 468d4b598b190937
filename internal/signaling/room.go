package signaling

// maxRoomPeers is the membership cap per room: signaling is strictly
// two-party.
const maxRoomPeers = 2

// roomSet is one relay namespace: room tokens mapped to ordered member
// lists. Call signaling and chat each own an independent roomSet. The type
// has no lock of its own; the owning Relay serializes all access.
type roomSet struct {
	rooms map[string][]*Peer
}

func newRoomSet() *roomSet {
	return &roomSet{rooms: make(map[string][]*Peer)}
}

// join appends the peer to the room, creating it on first use. It reports
// false when the room is already full; the peer is not added then. Repeat
// joins by the same peer are appended like any other join, up to the cap.
func (rs *roomSet) join(roomID string, p *Peer) ([]*Peer, bool) {
	members := rs.rooms[roomID]
	if len(members) >= maxRoomPeers {
		return members, false
	}
	members = append(members, p)
	rs.rooms[roomID] = members
	return members, true
}

// members returns the room's current member list.
func (rs *roomSet) members(roomID string) []*Peer {
	return rs.rooms[roomID]
}

// others returns every room member except the given peer.
func (rs *roomSet) others(roomID string, p *Peer) []*Peer {
	var rest []*Peer
	for _, m := range rs.rooms[roomID] {
		if m != p {
			rest = append(rest, m)
		}
	}
	return rest
}

// remove deletes the peer from every room it is a member of and deletes any
// room left empty. It returns the remaining members per affected room so
// the caller can notify them. This is a linear scan over all rooms; room
// count is bounded by concurrent consultations.
func (rs *roomSet) remove(p *Peer) map[string][]*Peer {
	affected := make(map[string][]*Peer)
	for roomID, members := range rs.rooms {
		var rest []*Peer
		for _, m := range members {
			if m != p {
				rest = append(rest, m)
			}
		}
		if len(rest) == len(members) {
			continue
		}
		if len(rest) == 0 {
			delete(rs.rooms, roomID)
		} else {
			rs.rooms[roomID] = rest
		}
		affected[roomID] = rest
	}
	return affected
}
