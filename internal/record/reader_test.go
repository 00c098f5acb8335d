package record_test

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sjr-generator/internal/record"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "input.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestOpenMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.csv")

	_, err := record.Open(path, "Issn", "SJR")
	require.ErrorIs(t, err, fs.ErrNotExist)
	assert.Contains(t, err.Error(), "absent.csv")
}

func TestOpenEmptyFile(t *testing.T) {
	path := writeCSV(t, "")

	_, err := record.Open(path, "Issn", "SJR")
	require.ErrorIs(t, err, record.ErrHeaderMissing)
}

func TestOpenMissingColumns(t *testing.T) {
	path := writeCSV(t, "Issn;Rank\n\"1234-5678\";\"17\"\n")

	_, err := record.Open(path, "Issn", "SJR")
	require.ErrorIs(t, err, record.ErrColumnMissing)
	assert.Contains(t, err.Error(), "SJR")
}

func TestOpenColumnMatchIsCaseSensitive(t *testing.T) {
	path := writeCSV(t, "issn;sjr\n")

	_, err := record.Open(path, "Issn", "SJR")
	require.ErrorIs(t, err, record.ErrColumnMissing)
	assert.Contains(t, err.Error(), "Issn, SJR")
}

func TestReadRows(t *testing.T) {
	path := writeCSV(t, "Issn;SJR;Title\n\"1234-5678\";\"3,2\";Journal A\n0987-654X;5\n")

	reader, err := record.Open(path, "Issn", "SJR")
	require.NoError(t, err)

	assert.Equal(t, []string{"Issn", "SJR", "Title"}, reader.Header())

	row, err := reader.Read()
	require.NoError(t, err)
	assert.Equal(t, record.Row{"Issn": "1234-5678", "SJR": "3,2", "Title": "Journal A"}, row)

	// Short rows are padded with empty strings
	row, err = reader.Read()
	require.NoError(t, err)
	assert.Equal(t, record.Row{"Issn": "0987-654X", "SJR": "5", "Title": ""}, row)

	_, err = reader.Read()
	require.ErrorIs(t, err, io.EOF)

	require.NoError(t, reader.Close())
}

func TestCloseAfterPartialRead(t *testing.T) {
	path := writeCSV(t, "Issn;SJR\n\"1234-5678\";\"1\"\n\"0987-654X\";\"2\"\n")

	reader, err := record.Open(path, "Issn", "SJR")
	require.NoError(t, err)

	_, err = reader.Read()
	require.NoError(t, err)

	require.NoError(t, reader.Close())
}
