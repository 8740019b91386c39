package web

import (
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/passagequiz/internal/workspace"
)

const (
	sessionName  = "passagequiz"
	sessionIDKey = "id"
)

// registry maps session IDs to in-memory workspaces. Nothing is persisted;
// a restart starts every browser from scratch.
type registry struct {
	ttl   time.Duration
	newWS func() *workspace.Workspace
	now   func() time.Time

	mu      sync.Mutex
	entries map[string]*entry
}

type entry struct {
	ws       *workspace.Workspace
	lastSeen time.Time
}

func newRegistry(ttl time.Duration, newWS func() *workspace.Workspace) *registry {
	return &registry{ttl: ttl, newWS: newWS, now: time.Now, entries: make(map[string]*entry)}
}

// get returns the workspace for id, creating it if needed, and evicts
// workspaces idle past the TTL.
func (r *registry) get(id string) *workspace.Workspace {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	for k, e := range r.entries {
		if k != id && now.Sub(e.lastSeen) > r.ttl {
			delete(r.entries, k)
		}
	}

	e, ok := r.entries[id]
	if !ok {
		e = &entry{ws: r.newWS()}
		r.entries[id] = e
	}
	e.lastSeen = now
	return e.ws
}

func (r *registry) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// workspace resolves the caller's workspace from the signed session
// cookie, issuing a new session ID when there is none.
func (s *Server) workspaceFor(w http.ResponseWriter, r *http.Request) *workspace.Workspace {
	sess, err := s.cookies.Get(r, sessionName)
	if err != nil {
		// A cookie signed with an old key decodes to a fresh session.
		s.log.Debug("session cookie rejected", "error", err)
	}

	id, _ := sess.Values[sessionIDKey].(string)
	if id == "" {
		id = uuid.NewString()
		sess.Values[sessionIDKey] = id
		if err := sess.Save(r, w); err != nil {
			s.log.Error("save session", "error", err)
		}
	}
	return s.workspaces.get(id)
}
