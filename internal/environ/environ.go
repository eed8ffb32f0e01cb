// Package environ manages shell variables and command history with
// write-through persistence, mirroring the filesystem snapshot model.
package environ

import (
	"regexp"
	"sort"
	"strings"

	"github.com/bytedance/sonic"
	"go.uber.org/zap"

	"github.com/vterm/vterm/internal/logging"
	"github.com/vterm/vterm/internal/state"
)

// DefaultHistoryMax bounds the history when no cap is configured.
const DefaultHistoryMax = 1000

var identPattern = regexp.MustCompile(`\$([A-Za-z_][A-Za-z0-9_]*)`)

// Snapshot is the durable representation of the environment.
type Snapshot struct {
	Variables map[string]string `json:"variables"`
	History   []string          `json:"history"`
}

// Store holds named variables plus a bounded, append-only command
// history. Both persist together after every mutation.
type Store struct {
	variables  map[string]string
	history    []string
	historyMax int
	store      state.Store
	log        *logging.Logger
}

// New creates a Store seeded with the default variables and merged with
// any persisted snapshot. A missing or corrupt snapshot only logs a
// warning. historyMax <= 0 selects DefaultHistoryMax.
func New(store state.Store, historyMax int, log *logging.Logger) *Store {
	if log == nil {
		log = logging.NewNop()
	}
	if historyMax <= 0 {
		historyMax = DefaultHistoryMax
	}
	s := &Store{
		variables: map[string]string{
			"PATH":  "/usr/bin:/bin",
			"HOME":  "/home/user",
			"USER":  "user",
			"SHELL": "/bin/vterm",
			"PS1":   "$ ",
		},
		historyMax: historyMax,
		store:      store,
		log:        log,
	}
	s.load()
	return s
}

func (s *Store) load() {
	if s.store == nil {
		return
	}
	data, found, err := s.store.Load()
	if err != nil {
		s.log.Warn("could not load environment snapshot", zap.Error(err))
		return
	}
	if !found {
		return
	}
	var snap Snapshot
	if err := sonic.Unmarshal(data, &snap); err != nil {
		s.log.Warn("corrupt environment snapshot, using defaults", zap.Error(err))
		return
	}
	for name, value := range snap.Variables {
		s.variables[name] = value
	}
	s.history = snap.History
	if len(s.history) > s.historyMax {
		s.history = s.history[len(s.history)-s.historyMax:]
	}
}

// Get returns a variable's value. ok is false for unbound names.
func (s *Store) Get(name string) (string, bool) {
	value, ok := s.variables[name]
	return value, ok
}

// Set upserts a variable and persists.
func (s *Store) Set(name, value string) {
	s.variables[name] = value
	s.persist()
}

// Variables returns a name-sorted copy of the mapping, for export-style
// enumeration.
func (s *Store) Variables() []string {
	names := make([]string, 0, len(s.variables))
	for name := range s.variables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Expand replaces every $IDENT occurrence with its bound value. Unbound
// names are left as the literal $IDENT text.
func (s *Store) Expand(text string) string {
	return identPattern.ReplaceAllStringFunc(text, func(match string) string {
		if value, ok := s.variables[match[1:]]; ok {
			return value
		}
		return match
	})
}

// RecordHistory appends a non-blank command line, evicting the oldest
// entry once the cap is exceeded, then persists.
func (s *Store) RecordHistory(line string) {
	if strings.TrimSpace(line) == "" {
		return
	}
	s.history = append(s.history, line)
	if len(s.history) > s.historyMax {
		s.history = s.history[len(s.history)-s.historyMax:]
	}
	s.persist()
}

// History returns a copy of the recorded lines, oldest first.
func (s *Store) History() []string {
	return append([]string(nil), s.history...)
}

// Save forces a snapshot write outside any mutation.
func (s *Store) Save() error {
	if s.store == nil {
		return nil
	}
	data, err := sonic.MarshalIndent(&Snapshot{Variables: s.variables, History: s.history}, "", "  ")
	if err != nil {
		return err
	}
	return s.store.Save(data)
}

func (s *Store) persist() {
	if err := s.Save(); err != nil {
		s.log.Warn("could not save environment snapshot", zap.Error(err))
	}
}
