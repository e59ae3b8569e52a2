package app

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetupLogging(t *testing.T) {
	if SetupLogging("") != nil {
		t.Error("SetupLogging(\"\") should not open a log file")
	}

	prev := log.Writer()
	t.Cleanup(func() { log.SetOutput(prev) })

	path := filepath.Join(t.TempDir(), "storefront.log")
	closer := SetupLogging(path)
	if closer == nil {
		t.Fatal("SetupLogging() returned nil for a file path")
	}

	log.Printf("theme applied: %s", "halloween")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	if !strings.Contains(string(data), "theme applied: halloween") {
		t.Errorf("log file content = %q", data)
	}
}
