package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"strings"
	"testing"
)

var configVars = []string{
	"SAFEPWDGEN_LENGTH",
	"SAFEPWDGEN_SPECIAL_CHARS",
	"SAFEPWDGEN_CLIPBOARD",
	"SAFEPWDGEN_LOG_LEVEL",
	"SAFEPWDGEN_LOG_FORMAT",
}

// clearConfigEnv unsets every config variable for the duration of the test.
func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, k := range configVars {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

type recordingSink struct {
	got []string
	err error
}

func (s *recordingSink) Deliver(password string) error {
	if s.err != nil {
		return s.err
	}
	s.got = append(s.got, password)
	return nil
}

type result struct {
	stdout string
	stderr string
	err    error
}

func execute(t *testing.T, stdin string, sink Sink, args ...string) result {
	t.Helper()

	var stdout, stderr bytes.Buffer
	a := &app{
		stdin:     strings.NewReader(stdin),
		stdout:    &stdout,
		stderr:    &stderr,
		clipboard: sink,
	}

	cmd := newRootCmd(a)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return result{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

var _ io.Writer = failingWriter{}

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o600)
}
