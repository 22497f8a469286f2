package skin

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"git.lost.host/meutraa/eotc/internal/logx"
)

// Watch reloads the skin whenever its file is written and hands the new
// skin to onChange. Files that fail to load are reported to log and the
// current skin is kept. It returns when ctx is done.
func Watch(ctx context.Context, filename string, log *logx.Logger, onChange func(*Skin)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	// Editors replace files, so watch the directory instead of the file
	if err := w.Add(filepath.Dir(filename)); err != nil {
		return err
	}
	target := filepath.Clean(filename)

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			s, err := Load(filename)
			if err != nil {
				log.Warnf("unable to reload skin: %v", err)
				continue
			}
			onChange(s)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Errorf("skin watcher: %v", err)
		}
	}
}
