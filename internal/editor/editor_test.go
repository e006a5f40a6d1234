package editor

import (
	"context"
	"errors"
	"testing"

	"github.com/harrison/todos/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRunner struct {
	name string
	args []string
	err  error
}

func (f *fakeRunner) Run(_ context.Context, name string, args []string) error {
	f.name = name
	f.args = args
	return f.err
}

var target = models.Annotation{FilePath: "src/app.ts", Line: 12, Column: 6, Kind: models.KindTodo}

func TestArgs(t *testing.T) {
	tests := []struct {
		editor        string
		want          []string
		wantSupported bool
	}{
		{"vim", []string{"src/app.ts", "+call cursor(12, 6)"}, true},
		{"/usr/local/bin/nvim", []string{"src/app.ts", "+call cursor(12, 6)"}, true},
		{"code", []string{"--goto", "./src/app.ts:12:6"}, true},
		{"subl", []string{"src/app.ts:12:6"}, true},
		{"emacs", []string{"+12:6", "src/app.ts"}, true},
		{"nano", []string{"+12,6", "src/app.ts"}, true},
		{"ed", []string{"src/app.ts"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.editor, func(t *testing.T) {
			got, supported := Args(tt.editor, target)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantSupported, supported)
		})
	}
}

func TestArgs_CodeKeepsAbsolutePaths(t *testing.T) {
	a := target
	a.FilePath = "/repo/src/app.ts"

	got, _ := Args("code", a)
	assert.Equal(t, []string{"--goto", "/repo/src/app.ts:12:6"}, got)
}

func TestResolve(t *testing.T) {
	t.Setenv(EnvEditor, "")
	assert.Equal(t, DefaultEditor, Resolve(""))

	t.Setenv(EnvEditor, "nvim")
	assert.Equal(t, "nvim", Resolve(""))
	assert.Equal(t, "code", Resolve(" code "))
}

func TestLauncherOpen(t *testing.T) {
	t.Run("passes editor flags before location", func(t *testing.T) {
		runner := &fakeRunner{}
		l := &Launcher{Command: "code -r", Runner: runner}

		supported, err := l.Open(context.Background(), target)
		require.NoError(t, err)
		assert.True(t, supported)
		assert.Equal(t, "code", runner.name)
		assert.Equal(t, []string{"-r", "--goto", "./src/app.ts:12:6"}, runner.args)
	})

	t.Run("unsupported editor still opens the file", func(t *testing.T) {
		runner := &fakeRunner{}
		l := &Launcher{Command: "ed", Runner: runner}

		supported, err := l.Open(context.Background(), target)
		require.NoError(t, err)
		assert.False(t, supported)
		assert.Equal(t, []string{"src/app.ts"}, runner.args)
	})

	t.Run("runner failure is wrapped", func(t *testing.T) {
		boom := errors.New("exit status 1")
		l := &Launcher{Command: "vim", Runner: &fakeRunner{err: boom}}

		_, err := l.Open(context.Background(), target)
		require.Error(t, err)
		assert.ErrorIs(t, err, boom)
		assert.Contains(t, err.Error(), "failed to run editor vim")
	})

	t.Run("empty command", func(t *testing.T) {
		l := &Launcher{Command: "  ", Runner: &fakeRunner{}}
		_, err := l.Open(context.Background(), target)
		assert.Error(t, err)
	})
}
