package locales

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	po, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "Legend", po.Get("LEGEND"))
	assert.Equal(t, "Path length", po.Get("PATH_LENGTH"))
	assert.Equal(t, "NOT_A_KEY", po.Get("NOT_A_KEY"))
}

func TestLoad_UnknownLanguage(t *testing.T) {
	_, err := Load("xx_XX")
	assert.ErrorIs(t, err, ErrUnknownLanguage)
}

func TestLanguages(t *testing.T) {
	assert.Equal(t, []string{DefaultLanguage}, Languages())
}
