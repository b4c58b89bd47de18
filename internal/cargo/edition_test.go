package cargo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeManifest(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ManifestFile), []byte(content), 0o600))
}

func TestDetectEdition(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		setup func(t *testing.T, root string) string
		want  string
	}{
		{
			name: "package edition in same dir",
			setup: func(t *testing.T, root string) string {
				t.Helper()
				writeManifest(t, root, "[package]\nname = \"demo\"\nedition = \"2021\"\n")
				return root
			},
			want: "2021",
		},
		{
			name: "nearest manifest above src",
			setup: func(t *testing.T, root string) string {
				t.Helper()
				writeManifest(t, root, "[package]\nname = \"demo\"\nedition = \"2018\"\n")
				src := filepath.Join(root, "src", "bin")
				require.NoError(t, os.MkdirAll(src, 0o755))
				return src
			},
			want: "2018",
		},
		{
			name: "package without edition",
			setup: func(t *testing.T, root string) string {
				t.Helper()
				writeManifest(t, root, "[package]\nname = \"demo\"\n")
				return root
			},
			want: "",
		},
		{
			name: "edition inherited from workspace",
			setup: func(t *testing.T, root string) string {
				t.Helper()
				writeManifest(t, root, "[workspace]\nmembers = [\"crates/*\"]\n\n[workspace.package]\nedition = \"2024\"\n")
				member := filepath.Join(root, "crates", "one")
				writeManifest(t, member, "[package]\nname = \"one\"\nedition.workspace = true\n")
				return member
			},
			want: "2024",
		},
		{
			name: "inline table inheritance from root package",
			setup: func(t *testing.T, root string) string {
				t.Helper()
				writeManifest(t, root, "[package]\nname = \"root\"\nedition = { workspace = true }\n\n"+
					"[workspace.package]\nedition = \"2021\"\n")
				return root
			},
			want: "2021",
		},
		{
			name: "virtual manifest",
			setup: func(t *testing.T, root string) string {
				t.Helper()
				writeManifest(t, root, "[workspace]\nmembers = []\n")
				return root
			},
			want: "",
		},
		{
			name: "no manifest anywhere below root",
			setup: func(t *testing.T, root string) string {
				t.Helper()
				return root
			},
			want: "",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			dir := tt.setup(t, t.TempDir())

			got, err := DetectEdition(dir)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetectEdition_InvalidManifest(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writeManifest(t, dir, "[package\nedition = ")

	_, err := DetectEdition(dir)
	var invalid *InvalidManifestError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, filepath.Join(dir, ManifestFile), invalid.Path)
	assert.Contains(t, err.Error(), "failed to parse TOML")
}

func TestDetectEdition_ManifestIsDirectory(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, ManifestFile), 0o755))

	_, err := DetectEdition(dir)
	require.Error(t, err)
	var invalid *InvalidManifestError
	assert.NotErrorAs(t, err, &invalid)
}
