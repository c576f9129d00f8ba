package fs

import (
	"sync"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"

	"github.com/aretw0/arty/pkg/core"
)

func TestMapEventType(t *testing.T) {
	tests := []struct {
		op   fsnotify.Op
		want core.EventType
	}{
		{fsnotify.Create, core.EventCreate},
		{fsnotify.Write, core.EventModify},
		{fsnotify.Remove, core.EventDelete},
		{fsnotify.Rename, core.EventDelete},
		{fsnotify.Chmod, ""},
	}

	for _, tt := range tests {
		t.Run(tt.op.String(), func(t *testing.T) {
			got := mapEventType(fsnotify.Event{Name: "a.jpg", Op: tt.op})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDebouncer(t *testing.T) {
	t.Run("Coalesces Bursts Per Key", func(t *testing.T) {
		d := newDebouncer(20 * time.Millisecond)

		var mu sync.Mutex
		var got []core.Event
		emit := func(e core.Event) {
			mu.Lock()
			got = append(got, e)
			mu.Unlock()
		}

		d.add("a.jpg", core.Event{Type: core.EventCreate, Filename: "a.jpg"}, emit)
		d.add("a.jpg", core.Event{Type: core.EventModify, Filename: "a.jpg"}, emit)
		d.add("b.jpg", core.Event{Type: core.EventCreate, Filename: "b.jpg"}, emit)
		d.stopAndWait()

		mu.Lock()
		defer mu.Unlock()
		assert.ElementsMatch(t, []core.Event{
			{Type: core.EventModify, Filename: "a.jpg"},
			{Type: core.EventCreate, Filename: "b.jpg"},
		}, got)
	})

	t.Run("Drops Events After Stop", func(t *testing.T) {
		d := newDebouncer(time.Millisecond)
		d.stopAndWait()

		called := false
		d.add("a.jpg", core.Event{Filename: "a.jpg"}, func(core.Event) { called = true })
		time.Sleep(10 * time.Millisecond)
		assert.False(t, called)
	})
}
