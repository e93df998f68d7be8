package session

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/dronexpress/console-api/models"
)

// Cookie names shared with the original web client.
const (
	CookieAccessToken = "access_token"
	CookieUserProfile = "user"
)

// Fallbacks for derived fields when the profile is missing a value.
const (
	fallbackName  = "User"
	fallbackEmail = "- - - - - -"
)

// Store wraps a Storage with typed access to the session pair. Writes hit
// the storage before memory, so a reload always re-derives the same state.
type Store struct {
	mu      sync.Mutex
	storage Storage
	token   string
	profile *models.UserProfile
}

// NewStore builds a store and loads any persisted session from storage.
func NewStore(storage Storage) *Store {
	s := &Store{storage: storage}
	s.load()
	return s
}

// load re-derives in-memory state from storage. A profile cookie that fails
// to parse is treated as absent.
func (s *Store) load() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.profile = nil
	if token, ok := s.storage.Get(CookieAccessToken); ok {
		s.token = token
	}
	raw, ok := s.storage.Get(CookieUserProfile)
	if !ok {
		return
	}
	var profile models.UserProfile
	if err := json.Unmarshal([]byte(raw), &profile); err != nil {
		log.Printf("Discarding unparseable user profile cookie: %v", err)
		return
	}
	s.profile = &profile
}

// Login persists the credential pair and updates memory state. Storage is
// written first; memory only reflects what was durably stored.
func (s *Store) Login(profile models.UserProfile, token string) error {
	raw, err := json.Marshal(profile)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.storage.Set(CookieUserProfile, string(raw))
	s.storage.Set(CookieAccessToken, token)
	s.profile = &profile
	s.token = token
	return nil
}

// Logout clears both persisted values and memory state under one lock, so no
// accessor can observe one half cleared.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.storage.Remove(CookieAccessToken)
	s.storage.Remove(CookieUserProfile)
	s.token = ""
	s.profile = nil
}

// Token returns the bearer credential, empty when unauthenticated.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// Profile returns a copy of the persisted profile, nil when absent.
func (s *Store) Profile() *models.UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.profile == nil {
		return nil
	}
	copied := *s.profile
	return &copied
}

// IsAuthenticated reports whether both halves of the session pair are present.
func (s *Store) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token != "" && s.profile != nil
}

// UserID returns the authenticated user's id, zero when unauthenticated.
func (s *Store) UserID() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.profile == nil {
		return 0
	}
	return s.profile.ID
}

// Role returns the session role, defaulting to customer.
func (s *Store) Role() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.profile == nil || s.profile.Role == "" {
		return models.RoleCustomer
	}
	return s.profile.Role
}

// DisplayName returns the profile's full name with a generic fallback.
func (s *Store) DisplayName() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.profile == nil || s.profile.FullName == "" {
		return fallbackName
	}
	return s.profile.FullName
}

// Email returns the profile email with the placeholder the UI expects.
func (s *Store) Email() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.profile == nil || s.profile.Email == "" {
		return fallbackEmail
	}
	return s.profile.Email
}
