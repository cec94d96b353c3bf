// Where: internal/imagetag/tag_test.go
// What: Tests for tag derivation.
// Why: Lock in determinism, normalization, and fallback behavior.
package imagetag

import (
	"context"
	"testing"
)

func TestDerive(t *testing.T) {
	tests := []struct {
		name   string
		repo   string
		commit string
		want   string
	}{
		{name: "repo and commit", repo: "registry.example.com/train", commit: "abc1234567", want: "registry.example.com/train:abc1234"},
		{name: "spaces become hyphens", repo: "my repo", commit: "abc1234567", want: "my-repo:abc1234"},
		{name: "short commit kept whole", repo: "train", commit: "ab12", want: "train:ab12"},
		{name: "no commit no suffix", repo: "train", commit: "", want: "train"},
		{name: "empty repo falls back", repo: "", commit: "", want: "docker-project"},
		{name: "empty repo with commit", repo: "", commit: "deadbeefcafe", want: "docker-project:deadbee"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got := Derive(tc.repo, tc.commit)
			if got != tc.want {
				t.Fatalf("got %q want %q", got, tc.want)
			}
			if again := Derive(tc.repo, tc.commit); again != got {
				t.Fatalf("derivation not deterministic: %q then %q", got, again)
			}
		})
	}
}

type fixedRunner struct {
	output string
	err    error
}

func (f fixedRunner) RunOutput(_ context.Context, _, _ string, _ ...string) ([]byte, error) {
	return []byte(f.output), f.err
}

func TestResolverUsesLastCommit(t *testing.T) {
	resolver := Resolver{Runner: fixedRunner{output: "abc1234567\n"}}
	tag, err := resolver.Resolve(context.Background(), "train", t.TempDir())
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if tag != "train:abc1234" {
		t.Fatalf("unexpected tag: %q", tag)
	}
}
