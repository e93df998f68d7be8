// Package session holds the authenticated principal for one browser session.
// The credential pair (opaque bearer token + serialized profile) lives in
// cookies so it survives page reloads; Storage is injectable so tests and
// other frontends can swap the cookie jar out.
package session

import (
	"net/http"
	"net/url"
	"sync"
	"time"
)

// Options controls how persisted values are stored.
type Options struct {
	MaxAge   time.Duration
	Path     string
	SameSite http.SameSite
	Secure   bool
}

// DefaultOptions mirrors what the web client always used: one day expiry,
// Lax same-site policy, root path scope.
func DefaultOptions() Options {
	return Options{
		MaxAge:   24 * time.Hour,
		Path:     "/",
		SameSite: http.SameSiteLaxMode,
	}
}

// Storage persists named session values.
type Storage interface {
	Get(name string) (string, bool)
	Set(name, value string)
	Remove(name string)
}

// CookieStorage stores session values as cookies on one request/response
// pair. Values are query-escaped so JSON survives the cookie grammar.
type CookieStorage struct {
	w    http.ResponseWriter
	r    *http.Request
	opts Options
}

// NewCookieStorage builds cookie-backed storage for a single request.
func NewCookieStorage(w http.ResponseWriter, r *http.Request, opts Options) *CookieStorage {
	if opts.Path == "" {
		opts.Path = "/"
	}
	return &CookieStorage{w: w, r: r, opts: opts}
}

func (c *CookieStorage) Get(name string) (string, bool) {
	cookie, err := c.r.Cookie(name)
	if err != nil {
		return "", false
	}
	value, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		return "", false
	}
	return value, true
}

func (c *CookieStorage) Set(name, value string) {
	http.SetCookie(c.w, &http.Cookie{
		Name:     name,
		Value:    url.QueryEscape(value),
		Path:     c.opts.Path,
		MaxAge:   int(c.opts.MaxAge.Seconds()),
		SameSite: c.opts.SameSite,
		Secure:   c.opts.Secure,
	})
}

func (c *CookieStorage) Remove(name string) {
	http.SetCookie(c.w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     c.opts.Path,
		MaxAge:   -1,
		SameSite: c.opts.SameSite,
		Secure:   c.opts.Secure,
	})
}

// MemoryStorage is an in-memory Storage for tests and headless tooling.
type MemoryStorage struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStorage builds an empty in-memory storage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{values: make(map[string]string)}
}

func (m *MemoryStorage) Get(name string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[name]
	return v, ok
}

func (m *MemoryStorage) Set(name, value string) {
	m.mu.Lock()
	m.values[name] = value
	m.mu.Unlock()
}

func (m *MemoryStorage) Remove(name string) {
	m.mu.Lock()
	delete(m.values, name)
	m.mu.Unlock()
}
