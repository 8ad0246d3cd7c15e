// Package credstore persists the bearer token and the cached user and
// company records across CLI invocations. It is the only code that touches
// the credential files.
package credstore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/workzen/workzen-cli/internal/hr"
)

const (
	tokenFile   = "token"
	userFile    = "user.json"
	companyFile = "company.json"
)

// Store is the persistence contract the API client and the session
// controller depend on. Reads report absence instead of failing; writes on
// a disabled store are skipped silently.
type Store interface {
	SaveToken(token string)
	Token() (string, bool)
	SaveUser(user hr.User)
	User() (hr.User, bool)
	SaveCompany(company hr.Company)
	Company() (hr.Company, bool)
	ClearAll()
}

// FileStore keeps credentials as files in a state directory, one record per
// file: the opaque token as plain text, user and company as JSON.
type FileStore struct {
	dir string
	mu  sync.Mutex
}

// NewFileStore creates a store rooted at dir. An empty dir yields a disabled
// store: reads return absent and writes are no-ops. This keeps callers safe
// in environments with no usable home directory.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// Enabled reports whether the store has a backing directory.
func (s *FileStore) Enabled() bool {
	return s.dir != ""
}

// SaveToken persists the bearer token. Written on successful login only.
func (s *FileStore) SaveToken(token string) {
	s.write(tokenFile, []byte(token))
}

// Token returns the persisted bearer token, if any.
func (s *FileStore) Token() (string, bool) {
	data, ok := s.read(tokenFile)
	if !ok {
		return "", false
	}
	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", false
	}
	return token, true
}

// SaveUser caches the user record.
func (s *FileStore) SaveUser(user hr.User) {
	data, err := json.Marshal(user)
	if err != nil {
		return
	}
	s.write(userFile, data)
}

// User returns the cached user record. A missing or malformed record
// degrades to absent; it never raises.
func (s *FileStore) User() (hr.User, bool) {
	var user hr.User
	data, ok := s.read(userFile)
	if !ok {
		return user, false
	}
	if err := json.Unmarshal(data, &user); err != nil {
		return hr.User{}, false
	}
	return user, true
}

// SaveCompany caches the company record.
func (s *FileStore) SaveCompany(company hr.Company) {
	data, err := json.Marshal(company)
	if err != nil {
		return
	}
	s.write(companyFile, data)
}

// Company returns the cached company record, absent when missing or
// malformed.
func (s *FileStore) Company() (hr.Company, bool) {
	var company hr.Company
	data, ok := s.read(companyFile)
	if !ok {
		return company, false
	}
	if err := json.Unmarshal(data, &company); err != nil {
		return hr.Company{}, false
	}
	return company, true
}

// ClearAll removes token, user, and company in one locked pass, so a
// concurrent reader sees either the full credential set or none of it.
func (s *FileStore) ClearAll() {
	if !s.Enabled() {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, name := range []string{tokenFile, userFile, companyFile} {
		_ = os.Remove(filepath.Join(s.dir, name))
	}
}

func (s *FileStore) write(name string, data []byte) {
	if !s.Enabled() {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return
	}
	_ = os.WriteFile(filepath.Join(s.dir, name), data, 0o600)
}

func (s *FileStore) read(name string) ([]byte, bool) {
	if !s.Enabled() {
		return nil, false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		return nil, false
	}
	return data, true
}
