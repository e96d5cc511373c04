package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/class-coins-api/internal/models"
)

func TestRenderStandings(t *testing.T) {
	out, err := RenderStandings([]models.Student{
		{ID: "s1", Name: "Bob", Coins: 12, ClassID: "c1"},
		{ID: "s2", Name: "Ada", Coins: 5, ClassID: "c1"},
	})
	require.NoError(t, err)
	assert.Equal(t, "name,coins\nBob,12\nAda,5\n", string(out))
}

func TestRenderStandingsEmpty(t *testing.T) {
	out, err := RenderStandings(nil)
	require.NoError(t, err)
	assert.Equal(t, "name,coins\n", string(out))
}

func TestRenderStandingsQuotesCommas(t *testing.T) {
	out, err := RenderStandings([]models.Student{
		{ID: "s1", Name: `Ada, "the first"`, Coins: 1, ClassID: "c1"},
	})
	require.NoError(t, err)
	assert.Equal(t, "name,coins\n\"Ada, \"\"the first\"\"\",1\n", string(out))
}
