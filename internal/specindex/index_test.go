package specindex

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/n2code/vuidcheck/internal/record"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validUsageJSON = `{
  "version info": {"schema version": 2, "api version": "1.1.70"},
  "validation": {
    "vkCmdDraw": {
      "core": [
        {"vuid": "VUID-vkCmdDraw-None-00001", "text": "first"},
        {"vuid": "VUID-vkCmdDraw-None-00002", "text": "second"}
      ]
    },
    "vkCmdDispatch": {
      "core": [
        [{"vuid": "VUID-vkCmdDispatch-x-00003"}, [{"vuid": "VUID-vkCmdDispatch-y-00004"}]],
        {"vuid": "VUID-vkCmdDraw-None-00001"}
      ],
      "vuid": "VUID-vkCmdDispatch-top-00005",
      "nested": {"deeper": {"vuid": "VUID-vkCmdDispatch-deep-00006", "ignored": null}}
    }
  }
}`

func writeDocument(t *testing.T, name string, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadJSON(t *testing.T) {
	index, err := Load(writeDocument(t, "validusage.json", validUsageJSON), nil)
	require.NoError(t, err)

	assert.Equal(t, map[record.Identifier]struct{}{
		"VUID-vkCmdDraw-None-00001":     {},
		"VUID-vkCmdDraw-None-00002":     {},
		"VUID-vkCmdDispatch-x-00003":    {},
		"VUID-vkCmdDispatch-y-00004":    {},
		"VUID-vkCmdDispatch-top-00005":  {},
		"VUID-vkCmdDispatch-deep-00006": {},
	}, index.Identifiers())
	assert.Equal(t, 6, index.Count())
}

func TestExtractIdentifiersYieldsEveryOccurrenceInOrder(t *testing.T) {
	root, err := Decode("doc.json", []byte(validUsageJSON))
	require.NoError(t, err)

	all := slices.Collect(ExtractIdentifiers(root))
	assert.Equal(t, []string{
		"VUID-vkCmdDraw-None-00001",
		"VUID-vkCmdDraw-None-00002",
		"VUID-vkCmdDispatch-x-00003",
		"VUID-vkCmdDispatch-y-00004",
		"VUID-vkCmdDraw-None-00001",
		"VUID-vkCmdDispatch-top-00005",
		"VUID-vkCmdDispatch-deep-00006",
	}, all)

	again := slices.Collect(ExtractIdentifiers(root))
	assert.Equal(t, all, again, "sequence must be restartable")

	var first []string
	for id := range ExtractIdentifiers(root) {
		first = append(first, id)
		if len(first) == 2 {
			break
		}
	}
	assert.Len(t, first, 2)
}

func TestLoadYAML(t *testing.T) {
	const validUsageYAML = `
validation:
  vkCmdDraw:
    core:
      - vuid: VUID-vkCmdDraw-None-00001
        text: first
      - - vuid: VUID-vkCmdDraw-None-00002
shared: &shared
  vuid: VUID-vkCmdDraw-None-00003
alias: *shared
`
	index, err := Load(writeDocument(t, "validusage.yaml", validUsageYAML), nil)
	require.NoError(t, err)
	assert.Equal(t, map[record.Identifier]struct{}{
		"VUID-vkCmdDraw-None-00001": {},
		"VUID-vkCmdDraw-None-00002": {},
		"VUID-vkCmdDraw-None-00003": {},
	}, index.Identifiers())
}

func TestNonScalarIdentifierValuesAreIgnored(t *testing.T) {
	root, err := Decode("doc.json", []byte(`{"vuid": {"vuid": "VUID-hidden-x-00001"}, "other": {"vuid": null}}`))
	require.NoError(t, err)
	assert.Empty(t, slices.Collect(ExtractIdentifiers(root)))
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"), nil)
	assert.ErrorIs(t, err, ErrNotFound)

	for name, content := range map[string]string{
		"empty_object.json": "{}",
		"empty_array.json":  " [ ] ",
		"null.json":         "null",
		"empty_string.json": `""`,
		"empty_string.yaml": `''`,
		"nothing.json":      "",
		"nothing.yaml":      "",
		"empty_map.yml":     "{}",
	} {
		_, err := Load(writeDocument(t, name, content), nil)
		assert.ErrorIs(t, err, ErrEmptyDocument, name)
	}

	_, err = Load(writeDocument(t, "broken.json", `{"vuid": `), nil)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrEmptyDocument)

	_, err = Load(writeDocument(t, "trailing.json", `{"vuid": "VUID-a-b-00001"} {}`), nil)
	assert.Error(t, err)
}
