package testindex

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/n2code/vuidcheck/internal/record"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var groups = []string{"VkLayerTest", "VkPositiveLayerTest"}

func writeTests(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "layer_validation_tests.cpp")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644))
	return path
}

func TestParseDeclarationsAndReferences(t *testing.T) {
	file := writeTests(t,
		`m_errorMonitor->SetDesiredFailureMsg(kErrorBit, "VUID-orphan-before-00001");`,
		`TEST_F(VkLayerTest, DrawWithoutPipeline) {`,
		`    m_errorMonitor->SetDesiredFailureMsg(kErrorBit, "VUID-vkCmdDraw-None-00001");`,
		`    // m_errorMonitor->SetDesiredFailureMsg(kErrorBit, "VUID-vkCmdDraw-None-00009");`,
		`    m_errorMonitor->SetDesiredFailureMsg(kErrorBit, "VUID-vkCmdDraw-None-00002");`,
		`}`,
		`TEST_F(VkPositiveLayerTest, NothingChecked) {`,
		`}`,
		`TEST_F(VkUnrelatedTest, NotIndexed) {`,
		`    m_errorMonitor->SetDesiredFailureMsg(kErrorBit, "VUID-vkCmdDraw-None-00003");`,
		`}`,
	)

	index, err := Parse([]string{file}, groups, nil)
	require.NoError(t, err)

	assert.Equal(t, Index{
		"DrawWithoutPipeline": {"VUID-vkCmdDraw-None-00001", "VUID-vkCmdDraw-None-00002"},
		"NothingChecked":      {"VUID-vkCmdDraw-None-00003"}, //unrelated groups do not start a new test
	}, index)
	assert.Equal(t, []string{"DrawWithoutPipeline", "NothingChecked"}, index.Names())
	assert.True(t, index.References("DrawWithoutPipeline", "VUID-vkCmdDraw-None-00002"))
	assert.False(t, index.References("DrawWithoutPipeline", "VUID-orphan-before-00001"))
	assert.Equal(t, 3, index.Unique())
}

func TestParseNameOnNextLine(t *testing.T) {
	file := writeTests(t,
		`TEST_F(VkLayerTest,`,
		`       VeryLongTestNameThatDidNotFit) {`,
		`    m_errorMonitor->SetDesiredFailureMsg(kErrorBit, "VUID-vkCreateBuffer-size-00912");`,
		`}`,
	)

	index, err := Parse([]string{file}, groups, nil)
	require.NoError(t, err)
	assert.Equal(t, Index{"VeryLongTestNameThatDidNotFit": {"VUID-vkCreateBuffer-size-00912"}}, index)
}

func TestParseDeclarationSupersedesPendingName(t *testing.T) {
	file := writeTests(t,
		`TEST_F(VkLayerTest,`,
		`TEST_F(VkLayerTest, Other) {`,
		`    m_errorMonitor->SetDesiredFailureMsg(kErrorBit, "VUID-vkCmdDraw-None-00001");`,
		`}`,
	)

	index, err := Parse([]string{file}, groups, nil)
	require.NoError(t, err)
	assert.Equal(t, Index{"Other": {"VUID-vkCmdDraw-None-00001"}}, index)
}

func TestParseEmptyTestIsDeclared(t *testing.T) {
	file := writeTests(t, `TEST_F(VkPositiveLayerTest, Empty) {`, `}`)

	index, err := Parse([]string{file}, groups, nil)
	require.NoError(t, err)
	assert.True(t, index.Has("Empty"))
	assert.Empty(t, index["Empty"])
	assert.False(t, index.Has("Missing"))
}

func TestParseRejoinsBrokenIdentifiers(t *testing.T) {
	file := writeTests(t,
		`TEST_F(VkLayerTest, BrokenLiteral) {`,
		`    m_errorMonitor->SetDesiredFailureMsg(kErrorBit, "VUID-VkGraphicsPipelineCreateInfo-`+`"`,
		`                                         "pStages-00736");`,
		`}`,
	)

	index, err := Parse([]string{file}, groups, nil)
	require.NoError(t, err)
	assert.Equal(t, []record.Identifier{"VUID-VkGraphicsPipelineCreateInfo-pStages-00736"}, index["BrokenLiteral"])
}

func TestParseRedeclarationStartsOver(t *testing.T) {
	file := writeTests(t,
		`TEST_F(VkLayerTest, Twice) {`,
		`    Fail(kErrorBit, "VUID-a-b-00001");`,
		`}`,
		`TEST_F(VkLayerTest, Twice) {`,
		`    Fail(kErrorBit, "VUID-a-b-00002");`,
		`}`,
	)

	index, err := Parse([]string{file}, groups, nil)
	require.NoError(t, err)
	assert.Equal(t, []record.Identifier{"VUID-a-b-00002"}, index["Twice"])
}

func TestParseStateDoesNotLeakAcrossFiles(t *testing.T) {
	first := writeTests(t, `TEST_F(VkLayerTest, First) {`, `}`)
	second := writeTests(t, `Fail(kErrorBit, "VUID-a-b-00001");`, `TEST_F(VkLayerTest, Second) {`, `}`)

	index, err := Parse([]string{first, second}, groups, nil)
	require.NoError(t, err)
	assert.Empty(t, index["First"], "identifiers before the first declaration of a file are discarded")
	assert.Empty(t, index["Second"])
}

func TestParseMissingFile(t *testing.T) {
	_, err := Parse([]string{filepath.Join(t.TempDir(), "absent.cpp")}, groups, nil)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
