package params

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	s, err := Parse(" efConstruction = 200, M=16 ,post=0")
	require.NoError(t, err)
	assert.Equal(t, []string{"efConstruction", "M", "post"}, s.Names())
	v, ok := s.Get("M")
	assert.True(t, ok)
	assert.Equal(t, "16", v)
	assert.Equal(t, "efConstruction=200,M=16,post=0", s.String())

	empty, err := Parse("  ")
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Len())

	_, err = Parse("a=1,b")
	assert.Error(t, err)
	_, err = Parse("a=1,a=2")
	assert.Error(t, err)
	_, err = Parse("=1")
	assert.Error(t, err)
}

func TestNew(t *testing.T) {
	s, err := New("a", "1", "b", "x")
	require.NoError(t, err)
	assert.Equal(t, 2, s.Len())
	_, err = New("a")
	assert.Error(t, err)
}

func TestFromYAML(t *testing.T) {
	s, err := FromYAML([]byte("base: 1.5\nbound: level\nbestFirst: true\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"base", "bound", "bestFirst"}, s.Names())

	empty, err := FromYAML(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Len())

	_, err = FromYAML([]byte("- a\n- b\n"))
	assert.Error(t, err)
	_, err = FromYAML([]byte("a:\n  nested: 1\n"))
	assert.Error(t, err)
}

func TestManager(t *testing.T) {
	s, err := Parse("n=3,f=0.5,b=yes,name=x,extra=1")
	require.NoError(t, err)
	m := NewManager(s)

	n, err := Required[int](m, "n")
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	f, err := Optional(m, "f", 1.0)
	require.NoError(t, err)
	assert.Equal(t, 0.5, f)

	b, err := Optional(m, "b", false)
	require.NoError(t, err)
	assert.True(t, b)

	name, err := Required[string](m, "name")
	require.NoError(t, err)
	assert.Equal(t, "x", name)

	def, err := Optional[float32](m, "absent", 2)
	require.NoError(t, err)
	assert.Equal(t, float32(2), def)

	_, err = Required[int](m, "absent")
	var mp *MissingParamError
	require.True(t, errors.As(err, &mp))

	err = m.CheckUnused()
	var ue *UnusedParamsError
	require.True(t, errors.As(err, &ue))
	assert.Equal(t, []string{"extra"}, ue.Names)

	_, err = Optional(m, "extra", 0)
	require.NoError(t, err)
	assert.NoError(t, m.CheckUnused())
}

func TestManager_BadValue(t *testing.T) {
	s, err := Parse("n=three")
	require.NoError(t, err)
	_, err = Required[int](NewManager(s), "n")
	assert.ErrorContains(t, err, `"n"`)
}

func TestManager_NilSet(t *testing.T) {
	m := NewManager(nil)
	v, err := Optional(m, "x", 7)
	require.NoError(t, err)
	assert.Equal(t, 7, v)
	assert.NoError(t, m.CheckUnused())
}

func TestMerge(t *testing.T) {
	s, err := FromYAML([]byte("base: 2\nbound: level\n"))
	require.NoError(t, err)
	extra, err := Parse("bestFirst=true")
	require.NoError(t, err)
	require.NoError(t, s.Merge(extra))
	assert.Equal(t, "base=2,bound=level,bestFirst=true", s.String())
	require.NoError(t, s.Merge(nil))

	dup, err := Parse("base=3")
	require.NoError(t, err)
	assert.Error(t, s.Merge(dup))
}
