package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWithoutFileUsesDefaults(t *testing.T) {
	settings, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Empty(t, settings.File())
	assert.Equal(t, Defaults().Sources, settings.Sources)
	assert.Equal(t, ".", settings.Root)
	assert.Equal(t, "layers/vk_validation_error_database.txt", settings.Database)
	assert.Equal(t, []string{"build", "dbuild", "release"}, settings.Generated.Directories)
	assert.Equal(t, []string{"VkLayerTest", "VkPositiveLayerTest", "VkWsiEnabledLayerTest"}, settings.Tests.Groups)
	assert.Len(t, settings.AllowedDuplicates, 14)
	assert.Contains(t, settings.AllowedDuplicates, "VUID-vkCmdSetScissor-x-00595")
}

func TestLoadOverridesFromFile(t *testing.T) {
	empty := t.TempDir()
	dir := t.TempDir()
	content := `root: /work/layers
spec: registry/validusage.yaml
generated:
  directories: [out]
allowed_duplicates:
  - VUID-vkCmdDraw-None-00001
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName+".yaml"), []byte(content), 0o644))

	settings, err := Load(empty, dir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, FileName+".yaml"), settings.File())
	assert.Equal(t, "/work/layers", settings.Root)
	assert.Equal(t, "registry/validusage.yaml", settings.Spec)
	assert.Equal(t, []string{"out"}, settings.Generated.Directories)
	assert.Equal(t, "layers", settings.Generated.Subdirectory, "unset keys keep their default")
	assert.Equal(t, []string{"VUID-vkCmdDraw-None-00001"}, settings.AllowedDuplicates)
	assert.Equal(t, filepath.Join("/work/layers", "registry/validusage.yaml"), settings.Resolve(settings.Spec))
	assert.Equal(t, "/abs/db.txt", settings.Resolve("/abs/db.txt"))
}

func TestLoadResolvesRelativeRootAgainstFileDirectory(t *testing.T) {
	dir := t.TempDir()
	scripts := filepath.Join(dir, "scripts")
	require.NoError(t, os.MkdirAll(scripts, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(scripts, FileName+".yaml"), []byte("root: ..\n"), 0o644))

	settings, err := Load(scripts)
	require.NoError(t, err)
	assert.Equal(t, dir, settings.Root)
	assert.Equal(t, filepath.Join(dir, "layers", "db.txt"), settings.Resolve("layers/db.txt"))

	require.NoError(t, os.WriteFile(filepath.Join(scripts, FileName+".yaml"), []byte("spec: v.json\n"), 0o644))
	settings, err = Load(scripts)
	require.NoError(t, err)
	assert.Equal(t, scripts, settings.Root, "default root is the file's directory")
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName+".yaml"), []byte("sources: [unterminated\n"), 0o644))

	_, err := Load(dir)
	assert.Error(t, err)
}
