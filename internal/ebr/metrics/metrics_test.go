package metrics

import "testing"

func TestStats_RecordCollection_Accumulates(t *testing.T) {
	s := NewStats()

	s.RecordCollection(3, 1500, 7)
	s.RecordCollection(2, 500, 5)

	if got := s.Collections(); got != 2 {
		t.Fatalf("Collections() = %d, want 2", got)
	}
	if got := s.Reclaimed(); got != 5 {
		t.Fatalf("Reclaimed() = %d, want 5", got)
	}
	if got := s.LastScanNanos(); got != 500 {
		t.Fatalf("LastScanNanos() = %d, want 500 (most recent)", got)
	}
	if got := s.QueueLen(); got != 5 {
		t.Fatalf("QueueLen() = %d, want 5 (most recent)", got)
	}
}

func TestStats_String_IsNonEmpty(t *testing.T) {
	s := NewStats()
	if s.String() == "" {
		t.Fatal("String() returned empty string")
	}
}
