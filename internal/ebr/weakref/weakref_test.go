package weakref

import "testing"

func TestWeak_AliveUntilKilled(t *testing.T) {
	v := 42
	w := New(&v)

	got, ok := w.Get()
	if !ok || got != &v {
		t.Fatalf("Get() before Kill = (%v, %v), want (%p, true)", got, ok, &v)
	}
	if !w.IsAlive() {
		t.Fatal("IsAlive() = false before Kill")
	}

	w.Kill()

	if got, ok := w.Get(); ok || got != nil {
		t.Fatalf("Get() after Kill = (%v, %v), want (nil, false)", got, ok)
	}
	if w.IsAlive() {
		t.Fatal("IsAlive() = true after Kill")
	}
}

func TestWeak_KillIsIdempotent(t *testing.T) {
	v := "x"
	w := New(&v)
	w.Kill()
	w.Kill()
	if w.IsAlive() {
		t.Fatal("IsAlive() = true after repeated Kill")
	}
}
