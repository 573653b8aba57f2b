// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package worker runs functions on named goroutines with optional CPU
// pinning and one-shot joins.
package worker

import (
	"context"
	"fmt"
	"runtime"
	"runtime/pprof"
	"sync/atomic"

	"github.com/pkg/errors"

	"code.hybscloud.com/tagged"
)

// ErrNotJoinable is reported by Join on a Thread that was already joined.
var ErrNotJoinable = errors.New("worker: thread not joinable")

// Options configure a Thread.
type Options struct {
	// Name labels the goroutine in profiles (label "thread").
	Name string
	// Core pins the goroutine's OS thread to one CPU when set.
	Core tagged.Maybe[int]
}

// Thread is a goroutine that can be joined exactly once.
type Thread struct {
	name   string
	joined atomic.Uintptr
	done   chan struct{}
	err    error
}

// Spawn starts fn on a new goroutine.
//
// The goroutine carries the pprof label thread=<Name>. When Core is set the
// goroutine is locked to its OS thread and pinned to that CPU where the
// platform supports it; a failed pin is reported by Join.
// A panic in fn is recovered and reported by Join as an error.
func Spawn(ctx context.Context, opts Options, fn func(context.Context) error) *Thread {
	t := &Thread{name: opts.Name, done: make(chan struct{})}
	go func() {
		defer close(t.done)
		defer func() {
			if r := recover(); r != nil {
				t.err = errors.Errorf("worker %q panicked: %v", t.name, r)
			}
		}()
		if core, ok := opts.Core.Get(); ok {
			runtime.LockOSThread()
			defer runtime.UnlockOSThread()
			if err := setAffinity(core); err != nil {
				t.err = errors.Wrapf(err, "pinning %q to core %d", t.name, core)
				return
			}
		}
		pprof.Do(ctx, pprof.Labels("thread", t.name), func(ctx context.Context) {
			t.err = fn(ctx)
		})
	}()
	return t
}

// Name returns the thread's name.
func (t *Thread) Name() string {
	return t.name
}

// Joinable reports whether Join has not been called yet.
func (t *Thread) Joinable() bool {
	return t.joined.Load() == 0
}

// Join waits for the thread to finish and returns its outcome.
// Only the first call waits; later calls fail with ErrNotJoinable.
func (t *Thread) Join() tagged.Result[tagged.Void, error] {
	if t.joined.Add(1) != 1 {
		return tagged.Err[tagged.Void](ErrNotJoinable)
	}
	<-t.done
	if t.err != nil {
		return tagged.Err[tagged.Void](t.err)
	}
	return tagged.Done[error]()
}

// Done is closed when the thread finishes.
func (t *Thread) Done() <-chan struct{} {
	return t.done
}

func (t *Thread) String() string {
	return fmt.Sprintf("thread(%s)", t.name)
}
