// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"testing"
)

// TestRegistryRegister tests backend registration.
func TestRegistryRegister(t *testing.T) {
	r := NewRegistry()

	factory := func(opts Options) (Surface, error) {
		return NewImageSurface(opts.Width, opts.Height), nil
	}

	r.Register("test", 50, factory, nil)

	entry, ok := r.Get("test")
	if !ok {
		t.Fatal("registered backend not found")
	}

	if entry.Name != "test" {
		t.Errorf("Name = %s, want test", entry.Name)
	}
	if entry.Priority != 50 {
		t.Errorf("Priority = %d, want 50", entry.Priority)
	}
	if !entry.Available() {
		t.Error("backend should be available (nil Available func)")
	}
}

// TestRegistryUnregister tests backend removal.
func TestRegistryUnregister(t *testing.T) {
	r := NewRegistry()

	r.Register("temp", 10, func(opts Options) (Surface, error) {
		return NewImageSurface(opts.Width, opts.Height), nil
	}, nil)

	if _, ok := r.Get("temp"); !ok {
		t.Fatal("backend should exist before unregister")
	}

	r.Unregister("temp")

	if _, ok := r.Get("temp"); ok {
		t.Error("backend should not exist after unregister")
	}
}

// TestRegistryList tests listing backends in priority order.
func TestRegistryList(t *testing.T) {
	r := NewRegistry()

	factory := func(opts Options) (Surface, error) {
		return NewImageSurface(opts.Width, opts.Height), nil
	}

	r.Register("low", 10, factory, nil)
	r.Register("high", 100, factory, nil)
	r.Register("mid", 50, factory, nil)

	got := r.List()
	want := []string{"high", "mid", "low"}
	if len(got) != len(want) {
		t.Fatalf("List() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("List()[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

// TestRegistryAvailable tests filtering unavailable backends.
func TestRegistryAvailable(t *testing.T) {
	r := NewRegistry()

	factory := func(opts Options) (Surface, error) {
		return NewImageSurface(opts.Width, opts.Height), nil
	}

	r.Register("yes", 10, factory, func() bool { return true })
	r.Register("no", 100, factory, func() bool { return false })

	got := r.Available()
	if len(got) != 1 || got[0] != "yes" {
		t.Errorf("Available() = %v, want [yes]", got)
	}
}

// TestRegistryNewByName tests explicit backend selection.
func TestRegistryNewByName(t *testing.T) {
	r := NewRegistry()

	r.Register("mem", 10, func(opts Options) (Surface, error) {
		return NewImageSurface(opts.Width, opts.Height), nil
	}, nil)

	s, err := r.NewByName("mem", Options{Width: 16, Height: 16})
	if err != nil {
		t.Fatalf("NewByName() = %v", err)
	}
	if s == nil {
		t.Fatal("NewByName() returned nil surface")
	}
}

// TestRegistryNotFound tests the missing-backend error.
func TestRegistryNotFound(t *testing.T) {
	r := NewRegistry()

	_, err := r.NewByName("missing", Options{Width: 16, Height: 16})
	if err == nil {
		t.Fatal("NewByName(missing) succeeded, want error")
	}

	var nf *BackendNotFoundError
	if !errors.As(err, &nf) {
		t.Errorf("error is %T, want *BackendNotFoundError", err)
	}
	if !errors.Is(err, ErrUnavailable) {
		t.Error("missing backend error should match ErrUnavailable")
	}
}

// TestRegistryUnavailable tests the unavailable-backend error.
func TestRegistryUnavailable(t *testing.T) {
	r := NewRegistry()

	r.Register("offline", 10, func(opts Options) (Surface, error) {
		return NewImageSurface(opts.Width, opts.Height), nil
	}, func() bool { return false })

	_, err := r.NewByName("offline", Options{Width: 16, Height: 16})
	if err == nil {
		t.Fatal("NewByName(offline) succeeded, want error")
	}

	var ua *BackendUnavailableError
	if !errors.As(err, &ua) {
		t.Errorf("error is %T, want *BackendUnavailableError", err)
	}
	if !errors.Is(err, ErrUnavailable) {
		t.Error("unavailable backend error should match ErrUnavailable")
	}
}

// TestRegistryNewSelectsByPriority tests auto-selection.
func TestRegistryNewSelectsByPriority(t *testing.T) {
	r := NewRegistry()

	r.Register("fallback", 10, func(opts Options) (Surface, error) {
		return NewImageSurface(opts.Width, opts.Height), nil
	}, nil)

	var preferredUsed bool
	r.Register("preferred", 100, func(opts Options) (Surface, error) {
		preferredUsed = true
		return NewImageSurface(opts.Width, opts.Height), nil
	}, nil)

	if _, err := r.New(Options{Width: 16, Height: 16}); err != nil {
		t.Fatalf("New() = %v", err)
	}
	if !preferredUsed {
		t.Error("New() did not pick the highest-priority backend")
	}
}

// TestRegistryEmpty tests auto-selection with no backends.
func TestRegistryEmpty(t *testing.T) {
	r := NewRegistry()

	_, err := r.New(Options{Width: 16, Height: 16})
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("New() on empty registry = %v, want ErrUnavailable", err)
	}
}

// TestRegistryGetReturnsCopy tests entry isolation.
func TestRegistryGetReturnsCopy(t *testing.T) {
	r := NewRegistry()

	r.Register("orig", 10, func(opts Options) (Surface, error) {
		return NewImageSurface(opts.Width, opts.Height), nil
	}, nil)

	entry, _ := r.Get("orig")
	entry.Priority = 999

	again, _ := r.Get("orig")
	if again.Priority != 10 {
		t.Errorf("Priority = %d after mutating a returned entry, want 10", again.Priority)
	}
}

// TestGlobalRegistryHasImageBackend tests the built-in registration.
func TestGlobalRegistryHasImageBackend(t *testing.T) {
	entry, ok := Get("image")
	if !ok {
		t.Fatal("image backend not registered in global registry")
	}
	if entry.Priority != 10 {
		t.Errorf("image backend priority = %d, want 10", entry.Priority)
	}

	s, err := NewByName("image", 32, 24)
	if err != nil {
		t.Fatalf("NewByName(image) = %v", err)
	}
	img, ok := s.(*ImageSurface)
	if !ok {
		t.Fatalf("image backend produced %T, want *ImageSurface", s)
	}
	defer img.Close()
	if img.Width() != 32 || img.Height() != 24 {
		t.Errorf("dimensions = %dx%d, want 32x24", img.Width(), img.Height())
	}
}
