package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadWords(t *testing.T) {
	words, err := readWords([]string{"adrese"}, strings.NewReader("ignored"))
	require.NoError(t, err)
	assert.Equal(t, []string{"adrese"}, words)

	words, err = readWords(nil, strings.NewReader("satıyorsunuz\n\n telefonları \n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"satıyorsunuz", "telefonları"}, words)
}

func TestStemCommand(t *testing.T) {
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	require.NoError(t, app.Run([]string{"turkstem", "stem", "--key", "cli-stem", "satıyorsunuz", "telefonları"}))
	assert.Equal(t, "satıyorsunuz\tsatıyor\ntelefonları\ttelefon\n", out.String())
}

func TestAnalyzeCommand(t *testing.T) {
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	require.NoError(t, app.Run([]string{"turkstem", "analyze", "--key", "cli-analyze", "Telefonları", "satıyorsunuz"}))
	assert.Equal(t, "telefon satıyor\n", out.String())
}

func TestDefaultsCommand(t *testing.T) {
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	require.NoError(t, app.Run([]string{"turkstem", "defaults", "average-stem-size"}))
	assert.Equal(t, "abiye\nakşamcı\ngazeteci\nkuaför\notogar\nsinema\ntaksici\ntelevizyon\n", out.String())

	assert.Error(t, newApp().Run([]string{"turkstem", "defaults", "stopwords"}))
}
