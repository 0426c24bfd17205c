package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeatureVectorUnmarshalDropsNulls(t *testing.T) {
	var fv FeatureVector
	require.NoError(t, json.Unmarshal([]byte(`{"age": null, "bmi": 22.5}`), &fv))

	// null эквивалентен отсутствию ключа, а не нулевому значению
	_, ok := fv["age"]
	assert.False(t, ok)
	assert.Equal(t, FeatureVector{"bmi": 22.5}, fv)
}

func TestFeatureVectorUnmarshalPlainValues(t *testing.T) {
	var fv FeatureVector
	require.NoError(t, json.Unmarshal([]byte(`{"age": 70, "sex": 1}`), &fv))

	assert.Equal(t, FeatureVector{"age": 70, "sex": 1}, fv)
}

func TestFeatureVectorUnmarshalRejectsNonNumeric(t *testing.T) {
	var fv FeatureVector
	err := json.Unmarshal([]byte(`{"age": "seventy"}`), &fv)
	assert.Error(t, err)
}
