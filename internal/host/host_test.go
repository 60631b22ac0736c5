//go:build headless

package host

import "testing"

func TestHeadlessBackendLifecycle(t *testing.T) {
	b, err := NewOtoBackend(44100)
	if err != nil {
		t.Fatalf("NewOtoBackend: %v", err)
	}
	if b.IsStarted() {
		t.Fatal("backend should start stopped")
	}
	b.Start()
	if !b.IsStarted() {
		t.Fatal("backend should report started after Start")
	}
	b.Stop()
	if b.IsStarted() {
		t.Fatal("backend should report stopped after Stop")
	}
	b.Close()
}
