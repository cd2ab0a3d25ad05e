package shell

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func stubTerminal(t *testing.T, terminal bool) {
	t.Helper()
	old := isTerminal
	isTerminal = func(int) bool { return terminal }
	t.Cleanup(func() { isTerminal = old })
}

func TestGetPassword_Visible(t *testing.T) {
	stubTerminal(t, true)

	var out bytes.Buffer
	got, err := GetPassword(rdr("  secret pw \r\n"), &out, false)
	require.NoError(t, err)
	assert.Equal(t, "  secret pw ", got, "only the line terminator is stripped")
	assert.Equal(t, "Enter password: ", out.String())
}

func TestGetPassword_LastLineWithoutNewline(t *testing.T) {
	stubTerminal(t, false)

	var out bytes.Buffer
	got, err := GetPassword(rdr("lastline"), &out, true)
	require.NoError(t, err)
	assert.Equal(t, "lastline", got)
}

func TestGetPassword_EOF(t *testing.T) {
	stubTerminal(t, false)

	var out bytes.Buffer
	_, err := GetPassword(rdr(""), &out, false)
	require.ErrorIs(t, err, io.EOF)
}

func TestGetPassword_HiddenOnTerminal(t *testing.T) {
	stubTerminal(t, true)
	old := readPassword
	t.Cleanup(func() { readPassword = old })
	readPassword = func(int) ([]byte, error) { return []byte("Tr0ub4dor&3"), nil }

	var out bytes.Buffer
	got, err := GetPassword(rdr("ignored\n"), &out, true)
	require.NoError(t, err)
	assert.Equal(t, "Tr0ub4dor&3", got)
	assert.NotContains(t, out.String(), "Tr0ub4dor&3")
}

func TestGetPassword_Error(t *testing.T) {
	stubTerminal(t, true)
	old := readPassword
	t.Cleanup(func() { readPassword = old })
	readPassword = func(int) ([]byte, error) {
		return nil, errors.New("boom")
	}

	var out bytes.Buffer
	_, err := GetPassword(rdr(""), &out, true)
	require.Error(t, err)
}
