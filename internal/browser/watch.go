package browser

import "github.com/fsnotify/fsnotify"

// Watch starts a filesystem watcher on dir so the listing can reload when
// entries appear, disappear, or are renamed. The caller owns the watcher
// and must Close it before watching a different directory.
func Watch(dir string) (*fsnotify.Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(dir); err != nil {
		_ = w.Close()
		return nil, err
	}
	return w, nil
}
