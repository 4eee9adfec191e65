package record

import (
	"errors"
	"testing"

	"github.com/gogpu/gfx/driver"
)

func TestBuiltinStrategies(t *testing.T) {
	for _, name := range []string{"buffered", "deferred"} {
		if !IsRegistered(name) {
			t.Errorf("IsRegistered(%q) = false, want true", name)
		}
	}
}

func TestNewRecorderBuffered(t *testing.T) {
	r, err := NewRecorder("buffered", nil)
	if err != nil {
		t.Fatalf("NewRecorder(buffered) error = %v", err)
	}
	if _, ok := r.(*Buffered); !ok {
		t.Errorf("NewRecorder(buffered) = %T, want *Buffered", r)
	}
}

func TestNewRecorderDeferred(t *testing.T) {
	r, err := NewRecorder("deferred", &mockDeferredContext{})
	if err != nil {
		t.Fatalf("NewRecorder(deferred) error = %v", err)
	}
	if _, ok := r.(*Deferred); !ok {
		t.Errorf("NewRecorder(deferred) = %T, want *Deferred", r)
	}
}

func TestNewRecorderDeferredRequiresDeferredContext(t *testing.T) {
	_, err := NewRecorder("deferred", &mockContext{})
	if !errors.Is(err, ErrNotDeferred) {
		t.Errorf("NewRecorder(deferred, plain ctx) error = %v, want ErrNotDeferred", err)
	}
}

func TestNewRecorderUnknown(t *testing.T) {
	if _, err := NewRecorder("nonexistent", nil); err == nil {
		t.Error("NewRecorder(nonexistent) succeeded, want error")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("registrytest", func(driver.Context) (Recorder, error) {
		return NewBuffered(), nil
	})
	defer Unregister("registrytest")

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register did not panic")
		}
	}()
	Register("registrytest", func(driver.Context) (Recorder, error) {
		return NewBuffered(), nil
	})
}

func TestRegisterNilFactoryPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Register(nil) did not panic")
		}
	}()
	Register("nilfactory", nil)
}

func TestStrategiesSorted(t *testing.T) {
	names := Strategies()
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("Strategies() not sorted: %v", names)
			break
		}
	}
}
