package spec

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_YAMLMapping(t *testing.T) {
	content := []byte(`API_KEY: string
SERVICE_PORT: integer
DEBUG: " Boolean "
RATE: float
`)
	s, err := Parse("env.spec", content)
	require.NoError(t, err)

	want := []Entry{
		{Name: "API_KEY", Type: TypeString},
		{Name: "SERVICE_PORT", Type: TypeInteger},
		{Name: "DEBUG", Type: TypeBoolean},
		{Name: "RATE", Type: TypeFloat},
	}
	assert.Equal(t, want, s.Entries())
	assert.Equal(t, 4, s.Len())
}

func TestParse_BareNameDefaultsToString(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"yaml null value", "API_KEY:\n"},
		{"plain lines", "API_KEY\nDB_URL\n"},
		{"single bare name", "API_KEY"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Parse("env.spec", []byte(tt.content))
			require.NoError(t, err)
			require.NotZero(t, s.Len())
			for _, e := range s.Entries() {
				assert.Equal(t, TypeString, e.Type, "variable %s", e.Name)
			}
		})
	}
}

func TestParse_MixedLinesFallback(t *testing.T) {
	content := []byte(`# required by the API client
API_KEY

SERVICE_PORT: integer
DEBUG: boolean
`)
	s, err := Parse("env.spec", content)
	require.NoError(t, err)

	want := []Entry{
		{Name: "API_KEY", Type: TypeString},
		{Name: "SERVICE_PORT", Type: TypeInteger},
		{Name: "DEBUG", Type: TypeBoolean},
	}
	assert.Equal(t, want, s.Entries())
}

func TestParse_CommentsOnly(t *testing.T) {
	s, err := Parse("env.spec", []byte("# nothing declared\n\n"))
	require.NoError(t, err)
	assert.Zero(t, s.Len())
}

func TestParse_UnknownType(t *testing.T) {
	_, err := Parse("env.spec", []byte("PORT: number\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownType)
	assert.Contains(t, err.Error(), `"PORT"`)
	assert.Contains(t, err.Error(), "string, integer, float, boolean")
}

func TestParse_NonStringType(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"numeric type value", "PORT: 8080\n"},
		{"nested mapping", "PORT:\n  kind: integer\n"},
		{"sequence", "PORT: [integer]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse("env.spec", []byte(tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "must be a string")
		})
	}
}

func TestParse_EmptyName(t *testing.T) {
	_, err := Parse("env.spec", []byte(": integer\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyName)
}

func TestParse_DuplicateLastWins(t *testing.T) {
	content := []byte("A: string\nA: boolean\nB: integer\n")
	s, err := Parse("env.spec", content)
	require.NoError(t, err)

	// The duplicate keeps its first position but takes the last type.
	want := []Entry{
		{Name: "A", Type: TypeBoolean},
		{Name: "B", Type: TypeInteger},
	}
	assert.Equal(t, want, s.Entries())
}

func TestLoad_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "env.spec")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}

func TestLoad_TOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "env.spec.toml")
	content := `API_KEY = "string"
SERVICE_PORT = "Integer"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	s, err := Load(path)
	require.NoError(t, err)

	want := []Entry{
		{Name: "API_KEY", Type: TypeString},
		{Name: "SERVICE_PORT", Type: TypeInteger},
	}
	assert.Equal(t, want, s.Entries())
}

func TestLoad_TOMLNonStringType(t *testing.T) {
	path := filepath.Join(t.TempDir(), "env.spec.toml")
	require.NoError(t, os.WriteFile(path, []byte("PORT = 8080\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be a string")
}
