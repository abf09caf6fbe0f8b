package protocol

import (
	"errors"
	"reflect"
	"testing"
)

func TestMessageRoundTrip(t *testing.T) {
	in := Message{
		Command: CmdQueue,
		Target:  NewID(KindClientQ, 12).String(),
		Path:    []string{"ctask(12)", "qtask(3)", "ctask(12)"},
	}
	out, err := DecodeMessage(in.Encode())
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !reflect.DeepEqual(out, in) {
		t.Fatalf("round trip mismatch: %+v != %+v", out, in)
	}
}

func TestExitMessage(t *testing.T) {
	if s := Exit().Encode(); s != "exit::" {
		t.Fatalf("want exit::, got %q", s)
	}
	m, err := DecodeMessage("exit::")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if m.Command != CmdExit || m.Target != "" || len(m.Path) != 0 {
		t.Fatalf("unexpected exit message: %+v", m)
	}
}

func TestDecodeEmptyPayload(t *testing.T) {
	m, err := DecodeMessage("queue:cq(0):")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(m.Path) != 0 {
		t.Fatalf("empty payload must decode to empty path, got %q", m.Path)
	}
}

func TestDecodeFieldCount(t *testing.T) {
	for _, text := range []string{"", "queue", "queue:cq(0)", "queue:cq(0):a:b"} {
		_, err := DecodeMessage(text)
		if err == nil {
			t.Fatalf("DecodeMessage(%q): expected error", text)
		}
		var fe *FormatError
		if !errors.As(err, &fe) {
			t.Fatalf("DecodeMessage(%q): want *FormatError, got %T", text, err)
		}
	}
}
