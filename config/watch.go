package config

import (
	"fmt"
	"path"
	"time"

	"github.com/fsnotify/fsnotify"
	log "github.com/sirupsen/logrus"
)

const watchDebounce = 2 * time.Second

func watcherLoop(filePath string, watcher *fsnotify.Watcher, f func()) {
	var lastEvent = time.Now()
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if event.Name == filePath &&
				(event.Op == fsnotify.Write || event.Op == fsnotify.Create) &&
				time.Since(lastEvent) >= watchDebounce {
				lastEvent = time.Now()
				log.WithField("name", event.Name).Info("Config changed")
				f()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.WithField("error", fmt.Sprint(err)).Error("Config watcher")
		}
	}
}

// Watch invokes f whenever the config file is rewritten. The returned
// watcher should be closed when no longer needed.
func Watch(f func()) (*fsnotify.Watcher, error) {
	var watcher, err = fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	filePath := Path()
	go watcherLoop(filePath, watcher, f)
	err = watcher.Add(path.Dir(filePath))
	return watcher, err
}
