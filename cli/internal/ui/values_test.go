package ui

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/satishbabariya/rsdatabase/runtime/types"
)

func init() {
	color.NoColor = true
	pterm.DisableStyling()
}

var sample = []types.Value{
	types.TextValue("alpha"),
	types.IntegerValue(42),
	types.NullValue(),
	types.BlobValue([]byte{0xca, 0xfe}),
}

func TestParseFormat(t *testing.T) {
	for _, name := range []string{"list", "json", "table", "markdown", "JSON"} {
		_, err := ParseFormat(name)
		assert.NoError(t, err, name)
	}

	_, err := ParseFormat("csv")
	assert.Error(t, err)
}

func TestRenderValues_List(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderValues(&buf, FormatList, sample))
	assert.Equal(t, "alpha\n42\nNULL\nX'CAFE'\n", buf.String())
}

func TestRenderValues_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderValues(&buf, FormatJSON, sample))
	assert.JSONEq(t, `["alpha", 42, null, "yv4="]`, buf.String())
}

func TestRenderValues_JSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderValues(&buf, FormatJSON, []types.Value{}))
	assert.JSONEq(t, `[]`, buf.String())
}

func TestRenderValues_Table(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderValues(&buf, FormatTable, sample))

	out := buf.String()
	assert.Contains(t, out, "kind")
	assert.Contains(t, out, "alpha")
	assert.Contains(t, out, "INTEGER")
	assert.Contains(t, out, "X'CAFE'")
}

func TestMarkdownTable_EscapesPipes(t *testing.T) {
	md := markdownTable([]types.Value{types.TextValue("a|b")})
	assert.Contains(t, md, `| 1 | TEXT | a\|b |`)
}

func TestRenderValues_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, RenderValues(&buf, Format("xml"), sample))
}
