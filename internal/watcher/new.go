package watcher

import (
	"fmt"

	"github.com/Aosanori/minutes-flow/internal/logger"
	"github.com/fsnotify/fsnotify"
)

// New creates a new Watcher instance with concurrency control
func New(inputDir string, handler EventHandler, log logger.Logger, maxConcurrent int) (Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := watcher.Add(inputDir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	// A local LLM serves one request at a time, so default to sequential.
	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}

	return &implWatcher{
		inputDir:      inputDir,
		handler:       handler,
		logger:        log,
		watcher:       watcher,
		maxConcurrent: maxConcurrent,
		semaphore:     make(chan struct{}, maxConcurrent),
	}, nil
}
