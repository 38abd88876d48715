package ws

import "sync"

// Registry tracks which users hold an open channel in which room. A user
// appears at most once per room; joining again replaces the previous
// channel without tearing it down. Empty rooms are pruned eagerly.
type Registry struct {
	rooms map[string]map[string]*Client // roomID → userID → channel
	mu    sync.RWMutex
}

func NewRegistry() *Registry {
	return &Registry{
		rooms: make(map[string]map[string]*Client),
	}
}

// Join registers the channel for (roomID, userID) and reports whether a
// previous channel was replaced. The caller owns teardown of a superseded
// channel.
func (r *Registry) Join(roomID, userID string, client *Client) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	room, ok := r.rooms[roomID]
	if !ok {
		room = make(map[string]*Client)
		r.rooms[roomID] = room
	}

	_, replaced := room[userID]
	room[userID] = client

	return replaced
}

// Leave removes the (roomID, userID) entry and reports whether it existed.
// A room left without members is removed entirely.
func (r *Registry) Leave(roomID, userID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	room, ok := r.rooms[roomID]
	if !ok {
		return false
	}

	if _, ok := room[userID]; !ok {
		return false
	}

	delete(room, userID)
	if len(room) == 0 {
		delete(r.rooms, roomID)
	}

	return true
}

// Members returns a snapshot of the user ids currently in the room. The
// snapshot may be stale by the time the caller acts on it.
func (r *Registry) Members(roomID string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	room := r.rooms[roomID]
	members := make([]string, 0, len(room))
	for userID := range room {
		members = append(members, userID)
	}

	return members
}

func (r *Registry) Count(roomID string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.rooms[roomID])
}

func (r *Registry) client(roomID, userID string) (*Client, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.rooms[roomID][userID]
	return c, ok
}

type roomMember struct {
	userID string
	client *Client
}

// snapshot copies the room's membership so fan-out can write outside the
// lock. excludeUser may be empty.
func (r *Registry) snapshot(roomID, excludeUser string) []roomMember {
	r.mu.RLock()
	defer r.mu.RUnlock()

	room := r.rooms[roomID]
	members := make([]roomMember, 0, len(room))
	for userID, client := range room {
		if excludeUser != "" && userID == excludeUser {
			continue
		}
		members = append(members, roomMember{userID: userID, client: client})
	}

	return members
}
