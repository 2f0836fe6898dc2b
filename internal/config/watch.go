package config

import (
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const reloadDebounce = 100 * time.Millisecond

// Watcher reloads a config file whenever it changes on disk.
type Watcher struct {
	watcher *fsnotify.Watcher
	path    string
	// Reloaded receives the path after every successful reload.
	Reloaded chan string
	closeCh  chan struct{}
	done     chan struct{}
	once     sync.Once
}

// Watch starts watching path. The parent directory is watched so editors
// that replace the file on save are still picked up.
func Watch(path string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		_ = w.Close()
		return nil, err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, err
	}

	watcher := &Watcher{
		watcher:  w,
		path:     abs,
		Reloaded: make(chan string, 4),
		closeCh:  make(chan struct{}),
		done:     make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
		close(w.Reloaded)
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.done)

	// Editors often emit several events per save; reload once things settle.
	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(reloadDebounce)
			} else {
				timer.Reset(reloadDebounce)
			}
			fire = timer.C
		case <-fire:
			fire = nil
			if err := Load(w.path); err != nil {
				log.Printf("config: reload failed: %v", err)
				continue
			}
			log.Printf("config: reloaded %s", w.path)
			select {
			case w.Reloaded <- w.path:
			default:
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("config: watch error: %v", err)
		case <-w.closeCh:
			return
		}
	}
}
