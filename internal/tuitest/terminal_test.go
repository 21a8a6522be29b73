package tuitest

import (
	"bytes"
	"testing"
)

func TestResponderAnswersQueriesInOrder(t *testing.T) {
	var out bytes.Buffer
	tr := newTerminalResponder(&out)
	tr.Process([]byte("frame\x1b]11;?\x07more\x1b[6n"))

	want := "\x1b]11;rgb:0000/0000/0000\x07\x1b[1;1R"
	if out.String() != want {
		t.Fatalf("unexpected answers %q", out.String())
	}
}

func TestResponderHandlesSplitQuery(t *testing.T) {
	var out bytes.Buffer
	tr := newTerminalResponder(&out)
	tr.Process([]byte("text\x1b["))
	if out.Len() != 0 {
		t.Fatalf("partial query answered early: %q", out.String())
	}
	tr.Process([]byte("6n"))
	if out.String() != "\x1b[1;1R" {
		t.Fatalf("split query not answered: %q", out.String())
	}
}

func TestResponderAnswersEachQueryOnce(t *testing.T) {
	var out bytes.Buffer
	tr := newTerminalResponder(&out)
	tr.Process([]byte("\x1b[c"))
	tr.Process([]byte("plain output"))
	if out.String() != "\x1b[?62;22c" {
		t.Fatalf("unexpected answers %q", out.String())
	}
}
