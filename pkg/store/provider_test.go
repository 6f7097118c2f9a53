package store

import (
	"testing"
)

func TestProvider(t *testing.T) {
	t.Run("opens memory store", func(t *testing.T) {
		p := NewProvider(Config{Type: TypeMemory})
		if p.State() != StateUninitialized {
			t.Errorf("State() = %s, want uninitialized", p.State())
		}

		s, err := p.Open()
		if err != nil {
			t.Fatalf("Open() failed: %v", err)
		}
		if s == nil {
			t.Fatal("expected store")
		}
		if p.State() != StateReady {
			t.Errorf("State() = %s, want ready", p.State())
		}

		// Second open returns the same handle.
		again, err := p.Store()
		if err != nil {
			t.Fatalf("Store() failed: %v", err)
		}
		if again != s {
			t.Error("Store() returned a different handle")
		}
	})

	t.Run("failed init is recorded and not retried", func(t *testing.T) {
		p := NewProvider(Config{Type: "bogus"})

		_, err := p.Open()
		if err == nil {
			t.Fatal("expected error for bogus store type")
		}
		if p.State() != StateFailed {
			t.Errorf("State() = %s, want failed", p.State())
		}

		// Every subsequent access surfaces the recorded failure.
		_, err2 := p.Open()
		if err2 == nil {
			t.Fatal("expected recorded error on second open")
		}
		if err.Error() != err2.Error() {
			t.Errorf("second error %q differs from first %q", err2, err)
		}
	})

	t.Run("close resets ready provider", func(t *testing.T) {
		p := NewProvider(Config{Type: TypeMemory})
		if _, err := p.Open(); err != nil {
			t.Fatalf("Open() failed: %v", err)
		}
		if err := p.Close(); err != nil {
			t.Fatalf("Close() failed: %v", err)
		}
		if p.State() != StateUninitialized {
			t.Errorf("State() = %s, want uninitialized", p.State())
		}
	})
}

func TestConfigValidate(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()
	if cfg.Type != TypeSQLite {
		t.Errorf("Type = %s, want sqlite default", cfg.Type)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() failed: %v", err)
	}

	bad := Config{Type: "etcd"}
	if err := bad.Validate(); err == nil {
		t.Error("expected error for unsupported type")
	}
}
