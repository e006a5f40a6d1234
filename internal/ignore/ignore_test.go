package ignore

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/harrison/todos/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	input := `# dependencies
node_modules

src/generated
  dist  
# src/legacy
src/generated
`
	list, err := Parse(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, []string{"node_modules", "src/generated", "dist"}, list.Paths())
	assert.Equal(t, 3, list.Len())
	assert.True(t, list.Contains("dist"))
	assert.True(t, list.Contains("src/generated"))
	assert.False(t, list.Contains("src/legacy"))
	assert.False(t, list.Contains("# src/legacy"))
	assert.False(t, list.Contains(""))
}

func TestContainsIsExactMatch(t *testing.T) {
	list, err := Parse(strings.NewReader("src/vendor\n*.min.js\n"))
	require.NoError(t, err)

	assert.True(t, list.Contains("src/vendor"))
	assert.False(t, list.Contains("src/vendor/lib.js"))
	assert.False(t, list.Contains("./src/vendor"))
	assert.False(t, list.Contains("app.min.js"))
	assert.True(t, list.Contains("*.min.js"))
}

func TestLoad(t *testing.T) {
	t.Run("reads file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".gitignore")
		require.NoError(t, os.WriteFile(path, []byte("build\n#comment\n"), 0644))

		list, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"build"}, list.Paths())
	})

	t.Run("missing file is an io failure", func(t *testing.T) {
		list, err := Load(filepath.Join(t.TempDir(), ".gitignore"))
		assert.Nil(t, list)
		require.Error(t, err)
		assert.True(t, errors.Is(err, models.ErrIO))
		assert.Contains(t, err.Error(), ".gitignore")
	})

	t.Run("directory is an io failure", func(t *testing.T) {
		_, err := Load(t.TempDir())
		require.Error(t, err)
		assert.True(t, errors.Is(err, models.ErrIO))
	})
}

func TestLoadOptional(t *testing.T) {
	t.Run("missing file yields empty list", func(t *testing.T) {
		list, err := LoadOptional(filepath.Join(t.TempDir(), ".gitignore"))
		require.NoError(t, err)
		assert.Equal(t, 0, list.Len())
		assert.False(t, list.Contains("anything"))
	})

	t.Run("existing file is read", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".gitignore")
		require.NoError(t, os.WriteFile(path, []byte("dist\n"), 0644))

		list, err := LoadOptional(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"dist"}, list.Paths())
	})

	t.Run("other failures still abort", func(t *testing.T) {
		_, err := LoadOptional(t.TempDir())
		require.Error(t, err)
		assert.True(t, errors.Is(err, models.ErrIO))
	})
}

func TestNilListContainsNothing(t *testing.T) {
	var list *List
	assert.False(t, list.Contains("src"))
	assert.Nil(t, list.Paths())
	assert.Equal(t, 0, list.Len())
}
