// Package watch emits debounced change events for ontology files under a
// directory tree.
package watch

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	"github.com/c360studio/ontoview/source"
)

const (
	// eventChannelBuffer is the size of the watch event channel.
	eventChannelBuffer = 500

	defaultDebounce = 500 * time.Millisecond
)

// Options configures a Watcher.
type Options struct {
	// DebounceDelay is how long changes accumulate before being emitted.
	DebounceDelay time.Duration

	// Extensions lists file extensions to watch (e.g. [".ttl", ".nt"]).
	Extensions []string

	// ExcludeDirs lists directory names or glob patterns to skip.
	ExcludeDirs []string
}

// Operation indicates the type of file change.
type Operation string

// OpCreate, OpModify and OpDelete enumerate the change types.
const (
	OpCreate Operation = "create"
	OpModify Operation = "modify"
	OpDelete Operation = "delete"
)

// Event represents an ontology file change.
type Event struct {
	// Path is the file path relative to the watched root.
	Path string

	// AbsPath is the file path as reported by the file system.
	AbsPath string

	// Operation is the type of change.
	Operation Operation

	// Document holds the file content for create and modify events.
	Document source.Document
}

// Watcher watches a directory tree for ontology file changes.
type Watcher struct {
	root       string
	debounce   time.Duration
	watcher    *fsnotify.Watcher
	logger     *slog.Logger
	extensions map[string]bool
	excludes   []string

	// Debouncing: collect changes before emitting
	pendingMu sync.Mutex
	pending   map[string]fsnotify.Op

	// Hash-based change detection, keyed by relative path
	hashMu sync.RWMutex
	hashes map[string]string

	events        chan Event
	droppedEvents atomic.Int64
}

// New creates a watcher rooted at root.
func New(root string, opts Options, logger *slog.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if logger == nil {
		logger = slog.Default()
	}
	if opts.DebounceDelay <= 0 {
		opts.DebounceDelay = defaultDebounce
	}

	extensions := make(map[string]bool, len(opts.Extensions))
	for _, ext := range opts.Extensions {
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		extensions[strings.ToLower(ext)] = true
	}

	return &Watcher{
		root:       root,
		debounce:   opts.DebounceDelay,
		watcher:    fsw,
		logger:     logger,
		extensions: extensions,
		excludes:   opts.ExcludeDirs,
		pending:    make(map[string]fsnotify.Op),
		hashes:     make(map[string]string),
		events:     make(chan Event, eventChannelBuffer),
	}, nil
}

// Events returns the channel of change events. It is closed when the
// watcher stops.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Start adds watches for the tree and processes events until ctx is done
// or Stop is called.
func (w *Watcher) Start(ctx context.Context) error {
	if err := w.addWatchesRecursive(w.root); err != nil {
		return err
	}

	go w.processEvents(ctx)

	w.logger.Info("Ontology watcher started",
		"root", w.root,
		"debounce", w.debounce,
		"extensions", len(w.extensions))

	return nil
}

// Stop stops the watcher.
// The events channel is closed by processEvents when it exits.
func (w *Watcher) Stop() error {
	return w.watcher.Close()
}

// Scan reads every watched file currently in the tree and records its
// hash, so unchanged files are not reported again.
func (w *Watcher) Scan() ([]source.Document, error) {
	var docs []source.Document
	err := filepath.WalkDir(w.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != w.root && w.excluded(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if !w.matches(path) {
			return nil
		}

		doc, err := source.ReadDocument(path)
		if err != nil {
			return err
		}
		w.SetHash(w.rel(path), doc.Hash)
		docs = append(docs, doc)
		return nil
	})
	return docs, err
}

// SetHash records the content hash for a relative path.
func (w *Watcher) SetHash(path, hash string) {
	w.hashMu.Lock()
	defer w.hashMu.Unlock()
	w.hashes[path] = hash
}

// GetHash returns the recorded hash for a relative path.
func (w *Watcher) GetHash(path string) (string, bool) {
	w.hashMu.RLock()
	defer w.hashMu.RUnlock()
	hash, ok := w.hashes[path]
	return hash, ok
}

// DroppedEvents returns the number of events dropped due to channel overflow.
func (w *Watcher) DroppedEvents() int64 {
	return w.droppedEvents.Load()
}

func (w *Watcher) matches(path string) bool {
	return w.extensions[strings.ToLower(filepath.Ext(path))]
}

// excluded reports whether a directory name is hidden or matches an
// exclude pattern.
func (w *Watcher) excluded(name string) bool {
	if strings.HasPrefix(name, ".") && name != "." {
		return true
	}
	for _, pattern := range w.excludes {
		if ok, err := doublestar.Match(pattern, name); err == nil && ok {
			return true
		}
	}
	return false
}

func (w *Watcher) rel(path string) string {
	rel, err := filepath.Rel(w.root, path)
	if err != nil {
		return path
	}
	return rel
}

func (w *Watcher) addWatchesRecursive(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && w.excluded(d.Name()) {
			return filepath.SkipDir
		}

		if err := w.watcher.Add(path); err != nil {
			w.logger.Warn("Failed to watch directory", "path", path, "error", err)
		} else {
			w.logger.Debug("Watching directory", "path", path)
		}
		return nil
	})
}

func (w *Watcher) processEvents(ctx context.Context) {
	defer close(w.events)
	ticker := time.NewTicker(w.debounce)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleFSEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("Watcher error", "error", err)

		case <-ticker.C:
			w.flushPending(ctx)
		}
	}
}

func (w *Watcher) handleFSEvent(event fsnotify.Event) {
	path := event.Name

	if !w.matches(path) {
		if event.Has(fsnotify.Create) {
			if info, err := os.Stat(path); err == nil && info.IsDir() && !w.excluded(filepath.Base(path)) {
				if err := w.addWatchesRecursive(path); err != nil {
					w.logger.Warn("Failed to watch new directory", "path", path, "error", err)
				}
			}
		}
		return
	}

	relPath := w.rel(path)
	for _, dir := range strings.Split(filepath.Dir(relPath), string(filepath.Separator)) {
		if dir != "." && w.excluded(dir) {
			return
		}
	}

	w.pendingMu.Lock()
	w.pending[path] |= event.Op
	w.pendingMu.Unlock()

	w.logger.Debug("Ontology change detected", "path", relPath, "op", event.Op.String())
}

func (w *Watcher) flushPending(ctx context.Context) {
	w.pendingMu.Lock()
	if len(w.pending) == 0 {
		w.pendingMu.Unlock()
		return
	}
	toProcess := w.pending
	w.pending = make(map[string]fsnotify.Op)
	w.pendingMu.Unlock()

	for path := range toProcess {
		if ctx.Err() != nil {
			return
		}

		relPath := w.rel(path)
		event := Event{Path: relPath, AbsPath: path}

		doc, err := source.ReadDocument(path)
		if errors.Is(err, fs.ErrNotExist) {
			w.hashMu.Lock()
			_, known := w.hashes[relPath]
			delete(w.hashes, relPath)
			w.hashMu.Unlock()
			if known {
				event.Operation = OpDelete
				w.sendEvent(event)
			}
			continue
		}
		if err != nil {
			w.logger.Warn("Failed to read file for hash check", "path", relPath, "error", err)
			continue
		}

		oldHash, hadHash := w.GetHash(relPath)
		if hadHash && oldHash == doc.Hash {
			continue
		}
		w.SetHash(relPath, doc.Hash)

		event.Operation = OpModify
		if !hadHash {
			event.Operation = OpCreate
		}
		event.Document = doc
		w.sendEvent(event)
	}
}

func (w *Watcher) sendEvent(event Event) {
	select {
	case w.events <- event:
		w.logger.Debug("Sent watch event", "path", event.Path, "op", event.Operation)
	default:
		dropped := w.droppedEvents.Add(1)
		w.logger.Warn("Event channel full, dropping event", "path", event.Path, "total_dropped", dropped)
	}
}
