package optional

import (
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBool(t *testing.T) {
	t.Parallel()

	var b Bool
	require.NoError(t, jsoniter.ConfigFastest.Unmarshal([]byte("null"), &b))
	assert.False(t, b.Valid)
	assert.True(t, b.ValueOrDefault(true))
	assert.False(t, b.ValueOrZero())

	require.NoError(t, jsoniter.ConfigFastest.Unmarshal([]byte("false"), &b))
	assert.True(t, b.Valid)
	assert.False(t, b.ValueOrDefault(true))

	buf, err := jsoniter.ConfigFastest.Marshal(BoolFrom(true))
	require.NoError(t, err)
	assert.Equal(t, "true", string(buf))
}

func TestString(t *testing.T) {
	t.Parallel()

	var s String
	require.NoError(t, jsoniter.ConfigFastest.Unmarshal([]byte("null"), &s))
	assert.False(t, s.Valid)
	assert.Equal(t, "", s.ValueOrZero())

	require.NoError(t, jsoniter.ConfigFastest.Unmarshal([]byte(`"coupon_delete"`), &s))
	assert.True(t, s.Valid)
	assert.Equal(t, "coupon_delete", s.String)
}
