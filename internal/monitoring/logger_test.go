package monitoring

import (
	"fmt"
	"testing"
)

func TestSetLogger(t *testing.T) {
	// Save original logger
	original := Logf
	defer func() { Logf = original }()

	called := false
	SetLogger(func(format string, v ...interface{}) {
		called = true
	})
	Logf("test message")
	if !called {
		t.Error("custom logger was not called")
	}

	// Nil installs a no-op that must not panic.
	SetLogger(nil)
	Logf("test message")
}

func TestPrefixed(t *testing.T) {
	original := Logf
	defer func() { Logf = original }()

	var got string
	SetLogger(func(format string, v ...interface{}) {
		got = fmt.Sprintf(format, v...)
	})

	ingestLog := Prefixed("ingest: ")
	ingestLog("dropped %d frames", 3)

	if got != "ingest: dropped 3 frames" {
		t.Errorf("prefixed log = %q", got)
	}
}
