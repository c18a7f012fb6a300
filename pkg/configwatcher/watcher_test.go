package configwatcher

import (
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
)

func sendEvent(t *testing.T, events chan<- fsnotify.Event) {
	t.Helper()
	select {
	case events <- fsnotify.Event{Name: "config.yaml", Op: fsnotify.Write}:
	case <-time.After(time.Second):
		t.Fatal("watch loop stopped consuming events")
	}
}

func waitReload(t *testing.T, reloaded <-chan struct{}) {
	t.Helper()
	select {
	case <-reloaded:
	case <-time.After(time.Second):
		t.Fatal("reload not triggered")
	}
}

func TestWatchLoopDebouncesBurstWrites(t *testing.T) {
	events := make(chan fsnotify.Event)
	errs := make(chan error)
	reloaded := make(chan struct{}, 8)

	go watchLoop(events, errs, 20*time.Millisecond, func() { reloaded <- struct{}{} })
	defer close(events)

	// 连续三次写入只触发一次重载
	sendEvent(t, events)
	sendEvent(t, events)
	sendEvent(t, events)
	waitReload(t, reloaded)

	select {
	case <-reloaded:
		t.Fatal("burst writes reloaded more than once")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestWatchLoopKeepsReloadingAfterFirstFire(t *testing.T) {
	events := make(chan fsnotify.Event)
	errs := make(chan error)
	reloaded := make(chan struct{}, 8)

	go watchLoop(events, errs, 20*time.Millisecond, func() { reloaded <- struct{}{} })
	defer close(events)

	sendEvent(t, events)
	waitReload(t, reloaded)

	// 定时器已触发过一次，后续写入必须照常生效
	sendEvent(t, events)
	waitReload(t, reloaded)

	sendEvent(t, events)
	waitReload(t, reloaded)
}

func TestWatchLoopIgnoresNonWriteEvents(t *testing.T) {
	events := make(chan fsnotify.Event)
	errs := make(chan error)
	reloaded := make(chan struct{}, 1)

	go watchLoop(events, errs, 20*time.Millisecond, func() { reloaded <- struct{}{} })
	defer close(events)

	events <- fsnotify.Event{Name: "config.yaml", Op: fsnotify.Chmod}

	select {
	case <-reloaded:
		t.Fatal("chmod event must not trigger a reload")
	case <-time.After(100 * time.Millisecond):
	}
}
