package coroutine

import (
	"errors"
	"testing"

	"github.com/stealthrocket/generator/internal/gls"
)

func TestCoroutineSuspend(t *testing.T) {
	var steps []int
	var c *Coroutine
	c = New(func() error {
		for i := 0; i < 3; i++ {
			steps = append(steps, i)
			c.Suspend()
		}
		return nil
	}, nil)

	for i := 0; i < 3; i++ {
		if !c.Next() {
			t.Fatalf("coroutine completed early at step %d", i)
		}
		if len(steps) != i+1 {
			t.Errorf("coroutine advanced too far: want=%d got=%d", i+1, len(steps))
		}
	}
	if c.Next() {
		t.Error("coroutine did not complete")
	}
	if !c.Done() {
		t.Error("coroutine not marked done")
	}
	if c.Next() {
		t.Error("completed coroutine resumed")
	}
}

func TestCoroutineIsLazy(t *testing.T) {
	called := false
	c := New(func() error {
		called = true
		return nil
	}, nil)

	if called {
		t.Error("entry point called before Next")
	}
	if c.Owner() != gls.None {
		t.Errorf("unstarted coroutine has an owner: %v", c.Owner())
	}
	c.Next()
	if !called {
		t.Error("entry point not called by Next")
	}
}

func TestCoroutineError(t *testing.T) {
	want := errors.New("boom")
	c := New(func() error { return want }, nil)

	if c.Next() {
		t.Fatal("coroutine did not complete")
	}
	if err := c.Err(); err != want {
		t.Errorf("wrong error: want=%v got=%v", want, err)
	}
}

func TestCoroutinePanic(t *testing.T) {
	want := errors.New("boom")
	c := New(func() error { panic(want) }, nil)

	if c.Next() {
		t.Fatal("coroutine did not complete")
	}

	var perr *PanicError
	if !errors.As(c.Err(), &perr) {
		t.Fatalf("wrong error type: %T", c.Err())
	}
	if !errors.Is(perr, want) {
		t.Errorf("panic error does not unwrap to the panic value: %v", perr)
	}
	if len(perr.Stack()) == 0 {
		t.Error("panic error has no stack")
	}
}

func TestCoroutineStop(t *testing.T) {
	unwound := false
	var c *Coroutine
	c = New(func() error {
		defer func() { unwound = true }()
		c.Suspend()
		t.Error("coroutine resumed after stop")
		return nil
	}, nil)

	if !c.Next() {
		t.Fatal("coroutine completed early")
	}
	c.Stop()
	if !unwound {
		t.Error("deferred calls did not run on stop")
	}
	if !c.Done() {
		t.Error("stopped coroutine not marked done")
	}
	if c.Next() {
		t.Error("stopped coroutine resumed")
	}
	c.Stop()
}

func TestCoroutineStopBeforeStart(t *testing.T) {
	c := New(func() error {
		t.Error("entry point called after stop")
		return nil
	}, nil)
	c.Stop()
	if c.Next() {
		t.Error("stopped coroutine resumed")
	}
}

func TestCoroutineSuspendInDeferAfterStop(t *testing.T) {
	var c *Coroutine
	c = New(func() error {
		defer c.Suspend()
		c.Suspend()
		return nil
	}, nil)

	c.Next()
	c.Stop()

	var perr *PanicError
	if !errors.As(c.Err(), &perr) || !errors.Is(perr, ErrStopped) {
		t.Errorf("wrong error: want=%v got=%v", ErrStopped, c.Err())
	}
}

func TestCoroutineBind(t *testing.T) {
	var seen any
	var owner gls.G
	c := New(func() error {
		seen = gls.Current().Load()
		owner = gls.Current()
		return nil
	}, "bound")

	c.Next()
	if seen != "bound" {
		t.Errorf("wrong bound value: want=bound got=%v", seen)
	}
	if c.Owner() != owner {
		t.Errorf("wrong owner: want=%v got=%v", owner, c.Owner())
	}
	if v := owner.Load(); v != nil {
		t.Errorf("bound value not cleared on completion: %v", v)
	}
}

func BenchmarkCoroutine(b *testing.B) {
	var c *Coroutine
	c = New(func() error {
		for {
			c.Suspend()
		}
	}, nil)
	defer c.Stop()

	for i := 0; i < b.N; i++ {
		c.Next()
	}
}
