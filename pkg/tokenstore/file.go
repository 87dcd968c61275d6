package tokenstore

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/shashiranjanraj/vendora/config"
	"github.com/shashiranjanraj/vendora/pkg/crypt"
	"github.com/shashiranjanraj/vendora/pkg/logger"
)

// File is a Store persisted to a single file. The token pair is encrypted
// with the application key before being written, so the file on disk never
// contains plaintext credentials.
type File struct {
	mu      sync.RWMutex
	path    string
	access  string
	refresh string
}

// tokenPair is the encrypted on-disk payload.
type tokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// NewFile opens (or creates) a file-backed store at path. An empty path uses
// TOKEN_FILE from config, falling back to vendora/tokens in the user config
// dir. An existing file that cannot be decrypted is treated as empty.
func NewFile(path string) (*File, error) {
	if path == "" {
		path = config.TokenFile()
	}
	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("tokenstore: resolve config dir: %w", err)
		}
		path = filepath.Join(dir, "vendora", "tokens")
	}

	f := &File{path: path}
	f.load()
	return f, nil
}

func (f *File) Access() string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.access
}

func (f *File) Refresh() string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.refresh
}

func (f *File) SetTokens(access, refresh string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.access = access
	f.refresh = refresh
	f.save()
}

func (f *File) SetAccess(access string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.access = access
	f.save()
}

func (f *File) Clear() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.access = ""
	f.refresh = ""

	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		logger.Warn("tokenstore: remove token file", "path", f.path, "error", err)
	}
}

// load reads and decrypts the token file. Missing or corrupt files leave the
// store empty; a corrupt file only costs the user a fresh login.
func (f *File) load() {
	raw, err := os.ReadFile(f.path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("tokenstore: read token file", "path", f.path, "error", err)
		}
		return
	}

	var pair tokenPair
	if err := crypt.DecryptJSON(string(raw), &pair); err != nil {
		logger.Warn("tokenstore: decrypt token file", "path", f.path, "error", err)
		return
	}

	f.access = pair.Access
	f.refresh = pair.Refresh
}

// save encrypts and writes the current pair. Caller holds the lock.
func (f *File) save() {
	enc, err := crypt.EncryptJSON(tokenPair{Access: f.access, Refresh: f.refresh})
	if err != nil {
		logger.Warn("tokenstore: encrypt tokens", "error", err)
		return
	}

	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		logger.Warn("tokenstore: create token dir", "path", f.path, "error", err)
		return
	}
	if err := os.WriteFile(f.path, []byte(enc), 0o600); err != nil {
		logger.Warn("tokenstore: write token file", "path", f.path, "error", err)
	}
}
