package cart

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
)

const SessionCookie = "noir_session"

// Manager hands out the per-session Store, building each lazily from
// its persisted mirror.
type Manager struct {
	mu      sync.Mutex
	stores  map[string]*Store
	storage Storage
}

func NewManager(storage Storage) *Manager {
	return &Manager{
		stores:  make(map[string]*Store),
		storage: storage,
	}
}

// StoreFor returns the cart store for a session key.
func (m *Manager) StoreFor(ctx context.Context, key string) *Store {
	m.mu.Lock()
	defer m.mu.Unlock()

	if store, ok := m.stores[key]; ok {
		return store
	}

	store := NewStore(ctx, key, m.storage)
	m.stores[key] = store
	return store
}

// SessionKey reads the session cookie, minting one when absent.
func SessionKey(w http.ResponseWriter, r *http.Request) string {
	if cookie, err := r.Cookie(SessionCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	key := uuid.New().String()
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    key,
		Path:     "/",
		Expires:  time.Now().Add(cartTTL),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return key
}
