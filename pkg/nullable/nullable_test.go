package nullable

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type patch struct {
	Description Value[string] `json:"description"`
}

func TestUnmarshalDistinguishesAbsentNullAndValue(t *testing.T) {
	var absent patch
	require.NoError(t, json.Unmarshal([]byte(`{}`), &absent))
	assert.False(t, absent.Description.Set)

	var null patch
	require.NoError(t, json.Unmarshal([]byte(`{"description":null}`), &null))
	assert.True(t, null.Description.Set)
	assert.True(t, null.Description.IsNull())

	var value patch
	require.NoError(t, json.Unmarshal([]byte(`{"description":"fast"}`), &value))
	assert.True(t, value.Description.Set)
	require.NotNil(t, value.Description.Value)
	assert.Equal(t, "fast", *value.Description.Value)
}

func TestUnmarshalRejectsWrongType(t *testing.T) {
	var p patch
	assert.Error(t, json.Unmarshal([]byte(`{"description":42}`), &p))
}

func TestMarshal(t *testing.T) {
	b, err := json.Marshal(patch{Description: Of("x")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"description":"x"}`, string(b))

	b, err = json.Marshal(patch{Description: Null[string]()})
	require.NoError(t, err)
	assert.JSONEq(t, `{"description":null}`, string(b))
}
