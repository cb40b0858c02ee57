package harness

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
)

func TestDebouncer_Trigger(t *testing.T) {
	d := NewDebouncer(50 * time.Millisecond)
	defer d.Stop()

	var calls atomic.Int32

	// Rapid triggers collapse into one callback.
	for i := 0; i < 5; i++ {
		d.Trigger(func() { calls.Add(1) })
		time.Sleep(5 * time.Millisecond)
	}

	time.Sleep(200 * time.Millisecond)

	if got := calls.Load(); got != 1 {
		t.Errorf("callback ran %d times, want 1", got)
	}
}

func TestDebouncer_Stop(t *testing.T) {
	d := NewDebouncer(50 * time.Millisecond)

	var calls atomic.Int32
	d.Trigger(func() { calls.Add(1) })
	d.Stop()

	time.Sleep(200 * time.Millisecond)

	if got := calls.Load(); got != 0 {
		t.Errorf("callback ran %d times after Stop, want 0", got)
	}
}

func TestScriptWatcher_ShouldProcessEvent(t *testing.T) {
	sw := &ScriptWatcher{config: DefaultWatcherConfig()}

	tests := []struct {
		name  string
		event fsnotify.Event
		want  bool
	}{
		{"script write", fsnotify.Event{Name: "a/test.mvir", Op: fsnotify.Write}, true},
		{"move script", fsnotify.Event{Name: "a/test.move", Op: fsnotify.Create}, true},
		{"wrong extension", fsnotify.Event{Name: "a/readme.md", Op: fsnotify.Write}, false},
		{"chmod only", fsnotify.Event{Name: "a/test.mvir", Op: fsnotify.Chmod}, false},
		{"hidden file", fsnotify.Event{Name: "a/.tmp.mvir", Op: fsnotify.Write}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sw.shouldProcessEvent(tt.event); got != tt.want {
				t.Errorf("shouldProcessEvent(%v) = %v, want %v", tt.event, got, tt.want)
			}
		})
	}
}
