package models

import (
	"testing"

	"github.com/segmentio/encoding/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringListValueScanRoundtrip(t *testing.T) {
	t.Parallel()

	l := StringList{"fantasy", "sci-fi"}
	v, err := l.Value()
	require.NoError(t, err)
	assert.Equal(t, `["fantasy","sci-fi"]`, v)

	var out StringList
	require.NoError(t, out.Scan(v))
	assert.Equal(t, l, out)
}

func TestStringListScanEmpty(t *testing.T) {
	t.Parallel()

	var out StringList
	require.NoError(t, out.Scan(nil))
	assert.Equal(t, StringList{}, out)

	require.NoError(t, out.Scan(""))
	assert.Equal(t, StringList{}, out)
}

func TestStringListMarshalNilAsEmptyArray(t *testing.T) {
	t.Parallel()

	var l StringList
	b, err := json.Marshal(l)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(b))
}
