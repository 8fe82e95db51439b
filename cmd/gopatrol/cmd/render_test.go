package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderCommandStructure(t *testing.T) {
	assert.NotNil(t, renderCmd)
	assert.Equal(t, "render", renderCmd.Use)
	assert.NotEmpty(t, renderCmd.Short)
	assert.NotEmpty(t, renderCmd.Long)
	assert.NotNil(t, renderCmd.RunE)
}

func TestRenderCommandFlags(t *testing.T) {
	flags := renderCmd.Flags()

	inputFlag := flags.Lookup("input")
	assert.NotNil(t, inputFlag)
	assert.Equal(t, "i", inputFlag.Shorthand)
	assert.Equal(t, "", inputFlag.DefValue)

	noRulersFlag := flags.Lookup("no-rulers")
	assert.NotNil(t, noRulersFlag)
	assert.Equal(t, "false", noRulersFlag.DefValue)

	loopsFlag := flags.Lookup("loops")
	assert.NotNil(t, loopsFlag)
	assert.Equal(t, "false", loopsFlag.DefValue)
}

func TestRenderIsAddedToRoot(t *testing.T) {
	found := false
	for _, cmd := range rootCmd.Commands() {
		if cmd.Name() == "render" {
			found = true
			break
		}
	}
	assert.True(t, found, "render command should be added to root command")
}

func TestRenderCommandExample(t *testing.T) {
	// Verify the command has example usage documentation
	assert.Contains(t, renderCmd.Long, "Example:")
	assert.Contains(t, renderCmd.Long, "gopatrol render")
}

// ============================================================================
// CLI Execution Tests
// ============================================================================

// executeRender runs the render verb with output captured from the
// package-level writer.
func executeRender(t *testing.T, args ...string) (string, error) {
	t.Helper()

	origCfgFile := cfgFile
	origRenderInput := renderInput
	origRenderNoRulers := renderNoRulers
	origRenderLoops := renderLoops
	t.Cleanup(func() {
		cfgFile = origCfgFile
		renderInput = origRenderInput
		renderNoRulers = origRenderNoRulers
		renderLoops = origRenderLoops
		rootCmd.SetArgs(nil)
		resetOutputWriter()
	})

	var buf bytes.Buffer
	setOutputWriter(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestRenderCmd_Execute_SampleMap(t *testing.T) {
	mapFile := createTempTestMap(t, sampleMap)

	output, err := executeRender(t, "render", "--input", mapFile)
	require.NoError(t, err)

	assert.Contains(t, output, "test_map.txt")
	assert.Contains(t, output, "0123456789")
	assert.Contains(t, output, "legend:")
	assert.Contains(t, output, "X patrolled")
	assert.Contains(t, output, "Coverage: 41 positions in")
	assert.Equal(t, 40, strings.Count(output, "X")-strings.Count(output, "X patrolled"))
}

func TestRenderCmd_Execute_NoRulers(t *testing.T) {
	mapFile := createTempTestMap(t, sampleMap)

	output, err := executeRender(t, "render", "--input", mapFile, "--no-rulers")
	require.NoError(t, err)

	assert.NotContains(t, output, "legend:")
	assert.NotContains(t, output, "0123456789")
	assert.Contains(t, output, "Coverage: 41 positions in")
}

func TestRenderCmd_Execute_WithLoops(t *testing.T) {
	mapFile := createTempTestMap(t, sampleMap)

	output, err := executeRender(t, "render", "--input", mapFile, "--loops")
	require.NoError(t, err)

	assert.Contains(t, output, "O paradox obstacle")
	assert.Contains(t, output, "Paradox placements: 6")
	assert.Equal(t, 6, strings.Count(output, "O")-strings.Count(output, "O paradox obstacle"))
}

func TestRenderCmd_Execute_LoopingBaseline(t *testing.T) {
	mapFile := createTempTestMap(t, loopingMap)

	output, err := executeRender(t, "render", "--input", mapFile)
	require.NoError(t, err)

	assert.Contains(t, output, "Patrol loops after")
}

func TestRenderCmd_Execute_LoopsOnLoopingBaseline(t *testing.T) {
	mapFile := createTempTestMap(t, loopingMap)

	_, err := executeRender(t, "render", "--input", mapFile, "--loops")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "already loops")
}

func TestRenderCmd_Execute_MissingMap(t *testing.T) {
	_, err := executeRender(t, "render",
		"--input", "/tmp/nonexistent_gopatrol_map.txt")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read map")
}
