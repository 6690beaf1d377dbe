package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jsvensson/colorsift"
	"github.com/jsvensson/colorsift/internal/format"
	"github.com/jsvensson/colorsift/internal/palette"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rgbList = "#0000ff\tBlue\n#ff0000\tRed\n#00ff00\tGreen\n"

// run executes the root command with stdin and returns stdout.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.Execute()
	return stdout.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestSortCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "original",
			args: []string{"sort", "--by", "original"},
			want: rgbList,
		},
		{
			name: "hue",
			args: []string{"sort", "--by", "hue"},
			want: "#ff0000\tRed\n#00ff00\tGreen\n#0000ff\tBlue\n",
		},
		{
			name: "selected",
			args: []string{"sort", "--by", "selected", "--ref", "1"},
			want: "#ff0000\tRed\n#0000ff\tBlue\n#00ff00\tGreen\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, rgbList, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestSortCommandErrors(t *testing.T) {
	_, err := run(t, rgbList, "sort", "--by", "selected")
	assert.ErrorIs(t, err, palette.ErrInvalidReference)

	_, err = run(t, rgbList, "sort", "--by", "selected", "--ref", "9")
	assert.ErrorIs(t, err, palette.ErrInvalidReference)

	_, err = run(t, rgbList, "sort", "--by", "rainbow")
	assert.ErrorIs(t, err, palette.ErrInvalidMode)

	_, err = run(t, "nope\tBroken\n#fff\tWhite", "sort", "--by", "hue")
	assert.ErrorIs(t, err, palette.ErrInvalidColor)
}

func TestSortCommandUsesConfig(t *testing.T) {
	cfg := writeFile(t, "colorsift.hcl", `sort = "hue"`)
	out, err := run(t, rgbList, "--config", cfg, "sort")
	require.NoError(t, err)
	assert.Equal(t, "#ff0000\tRed\n#00ff00\tGreen\n#0000ff\tBlue\n", out)
}

func TestBadConfig(t *testing.T) {
	cfg := writeFile(t, "colorsift.hcl", `step = 0`)
	_, err := run(t, rgbList, "--config", cfg, "sort")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading config")
}

func TestShiftCommand(t *testing.T) {
	in := "#101010\tA\n#202020\tB\n"

	out, err := run(t, in, "shift", "--seed", "7")
	require.NoError(t, err)
	assert.Equal(t, "#0f0f0f\tA\n#212121\tB\n", out)

	out, err = run(t, in, "shift", "--step", "4", "--times", "2")
	require.NoError(t, err)
	assert.Equal(t, "#080808\tA\n#282828\tB\n", out)
}

func TestShiftCommandSeedIsReproducible(t *testing.T) {
	in := "#808080\tA\n#808080\tB\n#000000\tC\n"

	first, err := run(t, in, "shift", "--seed", "42", "--times", "3")
	require.NoError(t, err)
	second, err := run(t, in, "shift", "--seed", "42", "--times", "3")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestShiftCommandErrors(t *testing.T) {
	_, err := run(t, "#101010\tA", "shift")
	assert.ErrorIs(t, err, palette.ErrNoNeighbor)

	_, err = run(t, rgbList, "shift", "--times", "0")
	assert.Error(t, err)

	_, err = run(t, rgbList, "shift", "--step", "0")
	assert.Error(t, err)
}

func TestExportCommand(t *testing.T) {
	want := palette.Parse(rgbList)

	t.Run("yaml to stdout", func(t *testing.T) {
		out, err := run(t, rgbList, "export", "--format", "yaml")
		require.NoError(t, err)
		got, err := format.Decode([]byte(out), format.KindYAML)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("hcl to file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "colors.hcl")
		out, err := run(t, rgbList, "export", "--format", "hcl", "--out", path)
		require.NoError(t, err)
		assert.Empty(t, out)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "palette {")

		got, err := colorsift.Load(path)
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, "#ff0000", got[1].Color)
		assert.Equal(t, "red", got[1].Label)
	})

	t.Run("text from file", func(t *testing.T) {
		path := writeFile(t, "colors.txt", rgbList)
		out, err := run(t, "", "export", path)
		require.NoError(t, err)
		assert.Equal(t, rgbList, out)
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := run(t, rgbList, "export", "--format", "toml")
		assert.Error(t, err)
	})
}

func TestFmtCommand(t *testing.T) {
	messy := "#FFF, White\n\n\n#000000\tBlack"
	want := "#ffffff\tWhite\n#000000\tBlack\n"

	t.Run("check", func(t *testing.T) {
		path := writeFile(t, "colors.txt", messy)
		out, err := run(t, "", "fmt", "--check", path)
		assert.ErrorIs(t, err, errNeedsFormatting)
		assert.Equal(t, path+"\n", out)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, messy, string(data), "check must not write")
	})

	t.Run("write", func(t *testing.T) {
		path := writeFile(t, "colors.txt", messy)
		_, err := run(t, "", "fmt", path)
		require.NoError(t, err)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, want, string(data))

		out, err := run(t, "", "fmt", "--check", path)
		require.NoError(t, err)
		assert.Empty(t, out)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := run(t, "", "fmt", filepath.Join(t.TempDir(), "nope.txt"))
		assert.Error(t, err)
	})
}

func TestInspectCommand(t *testing.T) {
	out, err := run(t, rgbList, "inspect", "--by", "hue")
	require.NoError(t, err)

	for _, s := range []string{"NEAREST", "#ff0000", "Green", "hsv(240, 100%, 100%)"} {
		assert.Contains(t, out, s)
	}
	assert.Less(t, strings.Index(out, "Red"), strings.Index(out, "Blue"))

	_, err = run(t, rgbList, "inspect", "--by", "selected")
	assert.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "dev\n", out)
}
