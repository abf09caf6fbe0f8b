package qmark

import "testing"

func TestQMark(t *testing.T) {
	score, err := QMark()
	if err != nil {
		t.Fatalf("QMark: %v", err)
	}
	if score <= 0 {
		t.Fatalf("score=%d, want positive", score)
	}
}
