package main_test

import (
	"bytes"
	"context"
	"testing"

	main "github.com/Abhishek-yadv/WebGenius/cmd/webgenius"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCLI_ShowsHelpWhenAsked(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--help"}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "webgenius")
	assert.Contains(t, stdout.String(), "url")
}

func TestCLI_ShowsHelpWhenNoArgumentsProvided(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{}, &stdout, &stderr)

	require.Error(t, err)
	assert.Contains(t, stdout.String(), "webgenius")
}

func TestCLI_RejectsURLWithoutSectionPath(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--http-only", "https://example.com"}, &stdout, &stderr)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "section path")
}

func TestCLI_RejectsNonHTTPScheme(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--http-only", "ftp://example.com/docs"}, &stdout, &stderr)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "http or https")
}

func TestCLI_RejectsUnknownEngine(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--engine", "asciidoc", "https://example.com/docs"}, &stdout, &stderr)

	require.Error(t, err)
}
