package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gowire/pbwire/wire"
)

func sampleWireBytes() []byte {
	var buf []byte
	buf = wire.AppendVarint(buf, uint64(wire.MakeTag(1, wire.Varint)))
	buf = wire.AppendVarint(buf, 7)
	return buf
}

func TestRunDumpsFromStdin(t *testing.T) {
	var out bytes.Buffer
	code := run(nil, bytes.NewReader(sampleWireBytes()), &out)
	if code != 0 {
		t.Fatalf("run() = %d, want 0; output: %s", code, out.String())
	}
	if !strings.Contains(out.String(), "field 1") {
		t.Errorf("output missing field annotation:\n%s", out.String())
	}
}

func TestRunStrictFailsOnGarbage(t *testing.T) {
	var out bytes.Buffer
	garbage := bytes.Repeat([]byte{0xFF}, 11)
	code := run([]string{"-strict"}, bytes.NewReader(garbage), &out)
	if code == 0 {
		t.Fatal("run() with -strict on unparseable input should return non-zero")
	}
}

func TestRunColorFlagAddsANSICodes(t *testing.T) {
	var out bytes.Buffer
	code := run([]string{"-color"}, bytes.NewReader(sampleWireBytes()), &out)
	if code != 0 {
		t.Fatalf("run() = %d, want 0; output: %s", code, out.String())
	}
	if !strings.Contains(out.String(), "\x1b[") {
		t.Errorf("output with -color should contain ANSI escape codes:\n%q", out.String())
	}
}

func TestRunRejectsUnknownFlag(t *testing.T) {
	var out bytes.Buffer
	code := run([]string{"-bogus"}, bytes.NewReader(nil), &out)
	if code != 2 {
		t.Errorf("run() with an unknown flag = %d, want 2", code)
	}
}
