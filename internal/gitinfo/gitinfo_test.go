// Where: internal/gitinfo/gitinfo_test.go
// What: Tests for last-commit resolution.
// Why: Ensure missing repositories degrade to an empty version, not errors.
package gitinfo

import (
	"context"
	"errors"
	"testing"
)

type fakeRunner struct {
	output []byte
	err    error
	calls  int
}

func (f *fakeRunner) RunOutput(_ context.Context, _, _ string, _ ...string) ([]byte, error) {
	f.calls++
	return f.output, f.err
}

func TestLastCommit(t *testing.T) {
	tests := []struct {
		name   string
		output string
		err    error
		want   string
	}{
		{name: "clean hash", output: "abc1234567890def\n", want: "abc1234567890def"},
		{name: "not a repository", output: "fatal: not a git repository", err: errors.New("exit status 128"), want: ""},
		{name: "unborn head", output: "fatal: ambiguous argument 'HEAD'", err: errors.New("exit status 128"), want: ""},
		{name: "noise instead of hash", output: "warning: something\nabc", want: ""},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			runner := &fakeRunner{output: []byte(tc.output), err: tc.err}
			got, err := LastCommit(context.Background(), runner, t.TempDir())
			if err != nil {
				t.Fatalf("last commit: %v", err)
			}
			if got != tc.want {
				t.Fatalf("got %q want %q", got, tc.want)
			}
		})
	}
}

func TestLastCommitRequiresRunner(t *testing.T) {
	if _, err := LastCommit(context.Background(), nil, "."); err == nil {
		t.Fatal("expected error for nil runner")
	}
}

func TestLastCommitCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	runner := &fakeRunner{err: errors.New("signal: killed")}
	if _, err := LastCommit(ctx, runner, "."); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
