package stations

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearch_PrefixBeforeSubstring(t *testing.T) {
	results := Search("New", 10)

	require.NotEmpty(t, results)
	assert.Equal(t, "NDLS", results[0].Code)
}

func TestSearch_CaseInsensitive(t *testing.T) {
	lower := Search("mumbai", 0)
	upper := Search("MUMBAI", 0)

	require.NotEmpty(t, lower)
	assert.Equal(t, lower, upper)
}

func TestSearch_ByCode(t *testing.T) {
	results := Search("HWH", 5)

	require.Len(t, results, 1)
	assert.Equal(t, "Howrah Junction", results[0].Name)
}

func TestSearch_ByCity(t *testing.T) {
	results := Search("Kochi", 5)

	require.Len(t, results, 1)
	assert.Equal(t, "ERS", results[0].Code)
}

func TestSearch_EmptyQuery(t *testing.T) {
	assert.Nil(t, Search("", 10))
	assert.Nil(t, Search("   ", 10))
}

func TestSearch_Limit(t *testing.T) {
	results := Search("Junction", 3)
	assert.Len(t, results, 3)
}

func TestAll_ReturnsCopy(t *testing.T) {
	all := All()
	require.NotEmpty(t, all)

	all[0].Code = "XXXX"
	assert.NotEqual(t, "XXXX", All()[0].Code)
}
