// Where: internal/imagebuild/repo2docker_test.go
// What: Tests for legacy repo2docker output parsing.
// Why: The subprocess path signals success only through output markers.
package imagebuild

import (
	"context"
	"errors"
	"testing"
)

type fixedOutputRunner struct {
	output string
	err    error
}

func (f fixedOutputRunner) RunOutput(_ context.Context, _, _ string, _ ...string) ([]byte, error) {
	return []byte(f.output), f.err
}

func TestGenerateImage(t *testing.T) {
	tests := []struct {
		name    string
		output  string
		err     error
		want    string
		wantErr bool
	}{
		{
			name:   "freshly tagged",
			output: "Step 12/12 : CMD ...\nSuccessfully tagged r2d-train:latest\n",
			want:   "r2d-train",
		},
		{
			name:   "reused image",
			output: "Reusing existing image (r2d-abc123)\n",
			want:   "r2d-abc123",
		},
		{
			name:    "no marker",
			output:  "some unrelated output\n",
			wantErr: true,
		},
		{
			name:    "subprocess failure",
			output:  "",
			err:     errors.New("exit status 1"),
			wantErr: true,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			runner := fixedOutputRunner{output: tc.output, err: tc.err}
			got, err := GenerateImage(context.Background(), runner, t.TempDir(), "python train.py")
			if tc.wantErr {
				var buildErr *BuildError
				if !errors.As(err, &buildErr) {
					t.Fatalf("expected BuildError, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("generate image: %v", err)
			}
			if got != tc.want {
				t.Fatalf("got %q want %q", got, tc.want)
			}
		})
	}
}
