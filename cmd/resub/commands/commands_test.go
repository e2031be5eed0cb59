package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/resub/cmd/resub/opts"
)

func testContext(t *testing.T) context.Context {
	return zerolog.New(zerolog.NewTestWriter(t)).WithContext(context.Background())
}

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644), "writing input file")
	return path
}

func TestPreviewCmd(t *testing.T) {
	noColor := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = noColor }()

	tests := []struct {
		name     string
		content  string
		args     []string
		contains []string
	}{
		{
			name:     "views mode shows both sides",
			content:  "cat cat cat",
			args:     []string{"-p", "cat", "-r", "dog"},
			contains: []string{"original: cat cat cat", "replaced: dog dog dog", "matches:  3"},
		},
		{
			name:     "table mode lists matches",
			content:  "2024-12-08",
			args:     []string{"-p", `(\d{4})-(\d{2})-(\d{2})`, "-r", "$3/$2/$1", "--mode", "table"},
			contains: []string{"2024-12-08", "08/12/2024", "1 matches"},
		},
		{
			name:     "json mode emits the result",
			content:  "cat",
			args:     []string{"-p", "cat", "-r", "dog", "--mode", "json"},
			contains: []string{`"replaced": "dog"`, `"match_count": 1`},
		},
		{
			name:     "non global flags replace once",
			content:  "cat cat",
			args:     []string{"-p", "cat", "-r", "dog", "-f", ""},
			contains: []string{"replaced: dog cat"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeInput(t, tt.content)

			var buf bytes.Buffer
			cmd := NewPreviewCmd(&opts.RootOpts{Stdout: &buf})
			cmd.SetArgs(append(tt.args, path))

			require.NoError(t, cmd.ExecuteContext(testContext(t)), "preview should succeed")

			for _, want := range tt.contains {
				assert.Contains(t, buf.String(), want, "output should mention %q", want)
			}
		})
	}
}

func TestPreviewCmd_InvalidPattern(t *testing.T) {
	path := writeInput(t, "cat")

	var buf bytes.Buffer
	cmd := NewPreviewCmd(&opts.RootOpts{Stdout: &buf})
	cmd.SetArgs([]string{"-p", "[invalid", "-r", "x", path})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	err := cmd.ExecuteContext(testContext(t))
	require.Error(t, err, "an unparsable pattern should fail the command")
	assert.Contains(t, err.Error(), "invalid regular expression")
}

func TestPreviewCmd_UnknownMode(t *testing.T) {
	path := writeInput(t, "cat")

	var buf bytes.Buffer
	cmd := NewPreviewCmd(&opts.RootOpts{Stdout: &buf})
	cmd.SetArgs([]string{"-p", "cat", "--mode", "sideways", path})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	err := cmd.ExecuteContext(testContext(t))
	require.Error(t, err, "an unknown mode should fail the command")
	assert.Contains(t, err.Error(), "unknown render mode")
}

func TestMatchesCmd(t *testing.T) {
	t.Run("table is the default", func(t *testing.T) {
		path := writeInput(t, "cat cat")

		var buf bytes.Buffer
		cmd := NewMatchesCmd(&opts.RootOpts{Stdout: &buf})
		cmd.SetArgs([]string{"-p", "cat", "-r", "dog", path})

		require.NoError(t, cmd.ExecuteContext(testContext(t)), "matches should succeed")
		assert.Contains(t, buf.String(), "MATCH", "the table header should be printed")
		assert.Contains(t, buf.String(), "2 matches", "the footer should count matches")
	})

	t.Run("json emits raw records", func(t *testing.T) {
		path := writeInput(t, "cat")

		var buf bytes.Buffer
		cmd := NewMatchesCmd(&opts.RootOpts{Stdout: &buf})
		cmd.SetArgs([]string{"-p", "cat", "-r", "dog", "--json", path})

		require.NoError(t, cmd.ExecuteContext(testContext(t)), "matches should succeed")
		assert.Contains(t, buf.String(), `"matched_text": "cat"`)
		assert.Contains(t, buf.String(), `"substituted_text": "dog"`)
	})
}

func TestApplyCmd(t *testing.T) {
	t.Run("inline rule rewrites a tree", func(t *testing.T) {
		root := t.TempDir()
		path := filepath.Join(root, "a.txt")
		require.NoError(t, os.WriteFile(path, []byte("cat cat"), 0644))

		cmd := NewApplyCmd(&opts.RootOpts{Stdout: os.Stdout})
		cmd.SetArgs([]string{"-p", "cat", "-r", "dog", root})

		require.NoError(t, cmd.ExecuteContext(testContext(t)), "apply should succeed")

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "dog dog", string(data), "the file should be rewritten in place")
	})

	t.Run("dry run leaves files alone", func(t *testing.T) {
		root := t.TempDir()
		path := filepath.Join(root, "a.txt")
		require.NoError(t, os.WriteFile(path, []byte("cat"), 0644))

		cmd := NewApplyCmd(&opts.RootOpts{Stdout: os.Stdout})
		cmd.SetArgs([]string{"-p", "cat", "-r", "dog", "--dry-run", root})

		require.NoError(t, cmd.ExecuteContext(testContext(t)), "apply should succeed")

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "cat", string(data), "dry run should not write")
	})

	t.Run("rule set file drives the run", func(t *testing.T) {
		root := t.TempDir()
		path := filepath.Join(root, "a.txt")
		require.NoError(t, os.WriteFile(path, []byte("cat bird"), 0644))

		configPath := filepath.Join(t.TempDir(), "rules.yaml")
		rules := `rules:
  - find: cat
    replace: dog
    flags: g
  - find: bird
    replace: owl
    flags: g
`
		require.NoError(t, os.WriteFile(configPath, []byte(rules), 0644))

		cmd := NewApplyCmd(&opts.RootOpts{ConfigPath: configPath, Stdout: os.Stdout})
		cmd.SetArgs([]string{root})

		require.NoError(t, cmd.ExecuteContext(testContext(t)), "apply should succeed")

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "dog owl", string(data), "every rule in the set should run")
	})

	t.Run("missing rule set fails", func(t *testing.T) {
		cmd := NewApplyCmd(&opts.RootOpts{ConfigPath: filepath.Join(t.TempDir(), "nope.yaml"), Stdout: os.Stdout})
		cmd.SetArgs([]string{t.TempDir()})
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})

		err := cmd.ExecuteContext(testContext(t))
		require.Error(t, err, "a missing rule set file should fail the command")
		assert.Contains(t, err.Error(), "loading rule set")
	})
}
