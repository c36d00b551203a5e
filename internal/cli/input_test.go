package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("  hello world  \n"))

	got, err := GetSimpleText(r, "Say something", &out)
	require.NoError(t, err)
	require.Equal(t, "hello world", got)
	require.Contains(t, out.String(), "Say something")
}

func TestGetSimpleText_EOFWithPartialLine(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("partial"))

	got, err := GetSimpleText(r, "Prompt", &out)
	require.NoError(t, err)
	require.Equal(t, "partial", got)
}

func TestGetSimpleText_EOFEmpty(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader(""))

	_, err := GetSimpleText(r, "Prompt", &out)
	require.Error(t, err)
}

func TestGetMultiline(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("line one\nline two\n\nignored\n"))

	got, err := GetMultiline(r, "Describe", &out)
	require.NoError(t, err)
	require.Equal(t, "line one\nline two", got)
}

func TestGetList(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("Go, SQL , ,Docker\n"))

	got, err := GetList(r, "Skills", &out)
	require.NoError(t, err)
	require.Equal(t, []string{"Go", "SQL", "Docker"}, got)
}

func TestGetPassword(t *testing.T) {
	orig := readPassword
	defer func() { readPassword = orig }()
	readPassword = func(fd int) ([]byte, error) { return []byte("s3cret"), nil }

	var out bytes.Buffer
	pw, err := GetPassword(&out)
	require.NoError(t, err)
	require.Equal(t, []byte("s3cret"), pw)
	require.Contains(t, out.String(), "Enter password")
}
