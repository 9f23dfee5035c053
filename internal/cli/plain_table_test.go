package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlainTableWriter_Render(t *testing.T) {
	var buf bytes.Buffer
	tw := NewPlainTableWriter(&buf, "current", "name", "endpoint")
	tw.AppendRow("*", "lab", "http://lab:9890")
	tw.AppendRow("", "production", "https://prod:9890")
	tw.Render()

	expected := "CURRENT   NAME         ENDPOINT\n" +
		"*         lab          http://lab:9890\n" +
		"          production   https://prod:9890\n"
	assert.Equal(t, expected, buf.String())
}

func TestPlainTableWriter_NoHeaders(t *testing.T) {
	var buf bytes.Buffer
	tw := NewPlainTableWriter(&buf, "name", "endpoint")
	tw.SetNoHeaders(true)
	tw.AppendRow("lab", "http://lab:9890", "extra")
	tw.Render()

	assert.Equal(t, "lab    http://lab:9890\n", buf.String())
}

func TestPlainTableWriter_EmptyWithoutHeaders(t *testing.T) {
	var buf bytes.Buffer
	tw := NewPlainTableWriter(&buf, "name")
	tw.SetNoHeaders(true)
	tw.Render()

	assert.Empty(t, buf.String())
}

func TestPlainTableWriter_WideRunes(t *testing.T) {
	var buf bytes.Buffer
	tw := NewPlainTableWriter(&buf, "name", "note")
	tw.AppendRow("日本", "x")
	tw.Render()

	assert.Equal(t, "NAME   NOTE\n日本   x\n", buf.String())
}
