package logger

import "testing"

func TestInitialize(t *testing.T) {
	t.Run("accepts valid config", func(t *testing.T) {
		if err := Initialize(Config{Level: "DEBUG", Format: "json", Output: "stderr"}); err != nil {
			t.Fatalf("Initialize() failed: %v", err)
		}
	})

	t.Run("defaults are valid", func(t *testing.T) {
		if err := Initialize(Config{}); err != nil {
			t.Fatalf("Initialize() failed: %v", err)
		}
	})

	t.Run("rejects unknown level", func(t *testing.T) {
		if err := Initialize(Config{Level: "LOUD"}); err == nil {
			t.Error("expected error for unknown level")
		}
	})

	t.Run("rejects unknown format", func(t *testing.T) {
		if err := Initialize(Config{Format: "xml"}); err == nil {
			t.Error("expected error for unknown format")
		}
	})
}
