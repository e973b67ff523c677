package display

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseClassList(t *testing.T) {
	cl := ParseClassList("  px-3 py-1\tpx-3\nrounded ")

	assert.Equal(t, []string{"px-3", "py-1", "rounded"}, cl.Tokens())
	assert.Equal(t, "px-3 py-1 rounded", cl.String())
	assert.Equal(t, 3, cl.Len())
}

func TestClassList_AddRemove(t *testing.T) {
	var cl ClassList

	cl.Add("a", "b", "", "a")
	assert.Equal(t, "a b", cl.String())

	cl.Remove("a", "missing")
	assert.Equal(t, "b", cl.String())
	assert.False(t, cl.Contains("a"))

	cl.Remove()
	assert.Equal(t, "b", cl.String())
}

func TestClassList_Toggle(t *testing.T) {
	cl := ParseClassList("open")

	assert.False(t, cl.Toggle("open"))
	assert.Equal(t, "", cl.String())
	assert.True(t, cl.Toggle("open"))
	assert.True(t, cl.Contains("open"))
}

func TestClassList_TokensIsCopy(t *testing.T) {
	cl := ParseClassList("a b")
	tokens := cl.Tokens()
	tokens[0] = "z"

	assert.Equal(t, "a b", cl.String())
}
