package tuitest

import (
	"bytes"
	"io"
)

// reply pairs a terminal query with the answer a real terminal would give.
type reply struct {
	query  []byte
	answer []byte
}

// replies answer the probes termenv and bubbletea send on startup. Without
// them the program waits for a timeout before drawing its first frame.
var replies = []reply{
	{query: []byte("\x1b[6n"), answer: []byte("\x1b[1;1R")},
	{query: []byte("\x1b]10;?\x07"), answer: []byte("\x1b]10;rgb:cccc/cccc/cccc\x07")},
	{query: []byte("\x1b]10;?\x1b\\"), answer: []byte("\x1b]10;rgb:cccc/cccc/cccc\x1b\\")},
	{query: []byte("\x1b]11;?\x07"), answer: []byte("\x1b]11;rgb:0000/0000/0000\x07")},
	{query: []byte("\x1b]11;?\x1b\\"), answer: []byte("\x1b]11;rgb:0000/0000/0000\x1b\\")},
	{query: []byte("\x1b[c"), answer: []byte("\x1b[?62;22c")},
}

const (
	responderWindow = 256
	responderTail   = 64
)

type terminalResponder struct {
	w   io.Writer
	buf []byte
}

func newTerminalResponder(w io.Writer) *terminalResponder {
	return &terminalResponder{w: w, buf: make([]byte, 0, 2*responderWindow)}
}

// Process scans chunk for queries and writes their answers back. A short tail
// is kept so a query split across reads is still seen.
func (tr *terminalResponder) Process(chunk []byte) {
	tr.buf = append(tr.buf, chunk...)
	for tr.answerNext() {
	}
	if len(tr.buf) > responderWindow {
		tr.buf = append(tr.buf[:0], tr.buf[len(tr.buf)-responderTail:]...)
	}
}

// answerNext answers the earliest pending query and drops everything up to it.
func (tr *terminalResponder) answerNext() bool {
	first, at := -1, len(tr.buf)
	for i, r := range replies {
		if idx := bytes.Index(tr.buf, r.query); idx >= 0 && idx < at {
			first, at = i, idx
		}
	}
	if first < 0 {
		return false
	}
	tr.buf = tr.buf[at+len(replies[first].query):]
	_, _ = tr.w.Write(replies[first].answer)
	return true
}
