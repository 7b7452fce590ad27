package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func TestParseArgType(t *testing.T) {
	for _, valid := range []string{"int", "float", "bool", "string"} {
		got, err := ParseArgType(valid)
		require.NoError(t, err)
		assert.Equal(t, ArgType(valid), got)
	}

	_, err := ParseArgType("str")
	assert.Error(t, err)
	_, err = ParseArgType("")
	assert.Error(t, err)
}

func TestCoerceArgBoolLiterals(t *testing.T) {
	for _, literal := range []string{"true", "TRUE", "True", "tRuE"} {
		got, err := CoerceArg(cty.StringVal(literal), ArgBool)
		require.NoError(t, err, "literal %q", literal)
		assert.True(t, got.True())
	}
	for _, literal := range []string{"false", "FALSE", "False"} {
		got, err := CoerceArg(cty.StringVal(literal), ArgBool)
		require.NoError(t, err, "literal %q", literal)
		assert.False(t, got.True())
	}

	// Anything that is not a true/false literal fails, including values
	// other languages would accept as truthy.
	for _, bad := range []string{"yes", "1", "on", "truthy", ""} {
		_, err := CoerceArg(cty.StringVal(bad), ArgBool)
		assert.Error(t, err, "literal %q", bad)
	}
}

func TestCoerceArgNumbers(t *testing.T) {
	got, err := CoerceArg(cty.StringVal("7"), ArgInt)
	require.NoError(t, err)
	n, _ := got.AsBigFloat().Int64()
	assert.Equal(t, int64(7), n)

	// A fractional value cannot become an int argument.
	_, err = CoerceArg(cty.StringVal("7.5"), ArgInt)
	assert.Error(t, err)
	_, err = CoerceArg(cty.NumberFloatVal(7.5), ArgInt)
	assert.Error(t, err)

	got, err = CoerceArg(cty.StringVal("21.5"), ArgFloat)
	require.NoError(t, err)
	f, _ := got.AsBigFloat().Float64()
	assert.InDelta(t, 21.5, f, 1e-9)

	_, err = CoerceArg(cty.StringVal("not-a-number"), ArgFloat)
	assert.Error(t, err)
}

func TestCoerceArgString(t *testing.T) {
	got, err := CoerceArg(cty.StringVal("dht22"), ArgString)
	require.NoError(t, err)
	assert.Equal(t, "dht22", got.AsString())

	// Numbers stringify rather than fail; the declared type wins.
	got, err = CoerceArg(cty.NumberIntVal(9600), ArgString)
	require.NoError(t, err)
	assert.Equal(t, "9600", got.AsString())
}

func TestCoerceArgNull(t *testing.T) {
	_, err := CoerceArg(cty.NullVal(cty.String), ArgString)
	assert.Error(t, err)
}
