// Package web provides an HTTP API for processing payment instructions.
//
// The server exposes a single processing endpoint that accepts an
// instruction with its account snapshot and returns the transaction
// outcome, plus a health endpoint. A server may optionally be seeded
// with a default account set loaded from a JSON file; requests that
// omit their own accounts are evaluated against that set.
//
// SECURITY WARNING: This server has no authentication and should only be
// bound to localhost (127.0.0.1). Do not expose it to untrusted networks.
package web

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/paylexhq/paylex/ledger"
	"github.com/paylexhq/paylex/telemetry"
)

type Server struct {
	Port         int
	Host         string
	Version      string
	CommitSHA    string
	WatchEnabled bool

	ledger *ledger.Ledger

	mu       sync.RWMutex
	accounts []ledger.Account

	// accountsFile is the JSON file passed to New(), reloaded on change
	// when watching is enabled. Empty when the server has no default set.
	accountsFile string
}

func New(port int, accountsFile string) *Server {
	return NewWithVersion(port, accountsFile, "", "")
}

func NewWithVersion(port int, accountsFile, version, commitSHA string) *Server {
	return &Server{
		Port:         port,
		Host:         "127.0.0.1",
		Version:      version,
		CommitSHA:    commitSHA,
		ledger:       ledger.New(),
		accountsFile: accountsFile,
	}
}

func (s *Server) Start(ctx context.Context) error {
	collector := telemetry.FromContext(ctx)
	timer := collector.Start(fmt.Sprintf("web.start %s:%d", s.Host, s.Port))
	defer timer.End()

	if s.accountsFile != "" {
		loadTimer := timer.Child("web.load_accounts")
		err := s.reloadAccounts()
		loadTimer.End()

		if err != nil {
			return fmt.Errorf("failed to load accounts: %w", err)
		}

		if s.WatchEnabled {
			if err := s.startWatcher(ctx); err != nil {
				return fmt.Errorf("failed to start file watcher: %w", err)
			}
		}
	}

	setupTimer := timer.Child("web.setup_router")
	mux := s.setupRouter()
	setupTimer.End()

	addr := fmt.Sprintf("%s:%d", s.Host, s.Port)
	return http.ListenAndServe(addr, mux)
}

func (s *Server) setupRouter() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /payment-instructions", s.handleProcess)
	mux.HandleFunc("GET /health", s.handleHealth)

	return mux
}

// reloadAccounts loads or reloads the default account set from disk.
// Caller must NOT hold the mutex - this method acquires it internally.
func (s *Server) reloadAccounts() error {
	raw, err := os.ReadFile(s.accountsFile)
	if err != nil {
		return err
	}

	var accounts []ledger.Account
	if err := json.Unmarshal(raw, &accounts); err != nil {
		return fmt.Errorf("invalid accounts file %s: %w", s.accountsFile, err)
	}

	s.mu.Lock()
	s.accounts = accounts
	s.mu.Unlock()

	return nil
}

// defaultAccounts returns a copy of the configured default account set,
// or nil when the server has none.
func (s *Server) defaultAccounts() []ledger.Account {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.accounts == nil {
		return nil
	}
	return append([]ledger.Account(nil), s.accounts...)
}

// startWatcher watches the accounts file and reloads it on change.
func (s *Server) startWatcher(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}

	if err := watcher.Add(s.accountsFile); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", s.accountsFile, err)
	}

	go s.runWatcher(ctx, watcher)

	return nil
}

// runWatcher processes file system events with debouncing.
func (s *Server) runWatcher(ctx context.Context, watcher *fsnotify.Watcher) {
	var debounceTimer *time.Timer
	defer func() {
		if debounceTimer != nil {
			debounceTimer.Stop()
		}
		_ = watcher.Close()
	}()

	// Debounce timer - editors often write files in multiple steps
	const debounceDelay = 100 * time.Millisecond

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}

			// React to write/create/remove/rename events
			// (Remove/Rename are common in atomic saves)
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}

			if debounceTimer != nil {
				debounceTimer.Stop()
			}

			debounceTimer = time.AfterFunc(debounceDelay, func() {
				s.handleFileChange(watcher)
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.Printf("File watcher error: %v", err)
		}
	}
}

// handleFileChange reloads the account set and re-arms the watch, which
// is dropped by the kernel when the file is replaced atomically.
func (s *Server) handleFileChange(watcher *fsnotify.Watcher) {
	if err := s.reloadAccounts(); err != nil {
		log.Printf("Failed to reload accounts: %v", err)
		return
	}

	if err := watcher.Add(s.accountsFile); err != nil {
		log.Printf("Warning: failed to watch %s: %v", s.accountsFile, err)
	}

	log.Printf("Reloaded accounts from %s", s.accountsFile)
}

// handleHealth reports server liveness and build information.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSONResponse(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": s.Version,
	})
}

// writeJSONResponse writes a JSON response with the given status code.
// If encoding fails, it writes an error response.
func writeJSONResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}
