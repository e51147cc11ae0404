// Package logs keeps the most recent log lines in memory, for when the
// terminal is too busy being a game to show them.
package logs

import (
	"bytes"
	"fmt"
	"io"
)

// Logs represents a bounded buffer of log messages.
type Logs struct {
	Buffer []string
}

// Init initializes the log buffer, allocating the given capacity.
func (logs *Logs) Init(logCap int) {
	logs.Buffer = make([]string, 0, logCap)
}

// Log formats and appends a log message to the buffer, discarding the oldest
// message if full.
func (logs *Logs) Log(mess string, args ...interface{}) {
	if len(args) > 0 {
		mess = fmt.Sprintf(mess, args...)
	}
	if cap(logs.Buffer) == 0 {
		return
	}
	if len(logs.Buffer) < cap(logs.Buffer) {
		logs.Buffer = append(logs.Buffer, mess)
	} else {
		copy(logs.Buffer, logs.Buffer[1:])
		logs.Buffer[len(logs.Buffer)-1] = mess
	}
}

// Write logs every line of p, so that Logs can back a log.Logger.
func (logs *Logs) Write(p []byte) (int, error) {
	for _, line := range bytes.Split(bytes.TrimRight(p, "\n"), []byte("\n")) {
		logs.Log("%s", line)
	}
	return len(p), nil
}

// WriteTo writes the buffered messages to w, one per line, oldest first.
func (logs *Logs) WriteTo(w io.Writer) (n int64, err error) {
	for _, mess := range logs.Buffer {
		m, err := fmt.Fprintln(w, mess)
		n += int64(m)
		if err != nil {
			return n, err
		}
	}
	return n, nil
}
