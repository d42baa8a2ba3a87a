package dataset

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobposts-engine/internal/domain"
)

const bom = "\xef\xbb\xbf"

func TestRead_BOMAndMissing(t *testing.T) {
	in := bom + "Jobpost_RawTitle,MinSalary,IsRemote\nBack-End Dev,,1\nQA,abc\n"
	tbl, err := Read(strings.NewReader(in), Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{"Jobpost_RawTitle", "MinSalary", "IsRemote"}, tbl.Columns)
	require.Equal(t, 2, tbl.Len())

	s, ok := tbl.Get(0, "Jobpost_RawTitle").AsText()
	assert.True(t, ok)
	assert.Equal(t, "Back-End Dev", s)
	assert.True(t, tbl.Get(0, "MinSalary").IsMissing())
	// short row padded with missing
	assert.True(t, tbl.Get(1, "IsRemote").IsMissing())
}

func TestRead_QuotedEmbeddedList(t *testing.T) {
	in := "SoftwareSkills\n\"[{'TitleFa': 'Go'}, {'TitleFa': 'SQL'}]\"\n"
	tbl, err := Read(strings.NewReader(in), Options{})
	require.NoError(t, err)
	s, _ := tbl.Get(0, "SoftwareSkills").AsText()
	assert.Equal(t, "[{'TitleFa': 'Go'}, {'TitleFa': 'SQL'}]", s)
}

func TestRead_EmptyInput(t *testing.T) {
	tbl, err := Read(strings.NewReader(""), Options{})
	require.NoError(t, err)
	assert.Empty(t, tbl.Columns)
	assert.Equal(t, 0, tbl.Len())
}

func TestRead_CustomDelimiter(t *testing.T) {
	tbl, err := Read(strings.NewReader("a;b\n1;2\n"), Options{Comma: ';'})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, tbl.Columns)
	assert.Equal(t, "2", tbl.Get(0, "b").String())
}

func TestReadFile_NotExist(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "absent.csv"), Options{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestWrite_BOMAndRendering(t *testing.T) {
	tbl := domain.NewTable([]string{"MinSalary", "IsRemote", "Title"})
	tbl.AppendRow([]domain.Value{domain.Missing(), domain.Bool(true), domain.Text("a, b")})
	tbl.AppendRow([]domain.Value{domain.Number(12.5), domain.Bool(false), domain.Text("ارشد")})

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, tbl, Options{}))

	out := buf.String()
	require.True(t, strings.HasPrefix(out, bom))
	assert.Equal(t, bom+"MinSalary,IsRemote,Title\n,True,\"a, b\"\n12.5,False,ارشد\n", out)
}

func TestWriteFile_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "clean.csv")

	tbl := domain.NewTable([]string{"a", "b"})
	tbl.AppendRow([]domain.Value{domain.Text("x"), domain.Number(1)})
	require.NoError(t, WriteFile(path, tbl, Options{}))

	// overwrite in place
	tbl.AppendRow([]domain.Value{domain.Text("y"), domain.Missing()})
	require.NoError(t, WriteFile(path, tbl, Options{}))

	back, err := ReadFile(path, Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, back.Columns)
	require.Equal(t, 2, back.Len())
	assert.Equal(t, "1", back.Get(0, "b").String())
	assert.True(t, back.Get(1, "b").IsMissing())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.False(t, strings.HasSuffix(e.Name(), ".tmp"), "temp file left behind: %s", e.Name())
	}
}

func TestWriteFile_UnwritableDestination(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no", "such", "dir", "clean.csv")
	err := WriteFile(path, domain.NewTable([]string{"a"}), Options{})
	assert.Error(t, err)
}

func TestRead_NAValues(t *testing.T) {
	in := "a,b,c\nNA,null,N/A\nna,Null,x\n"
	tbl, err := Read(strings.NewReader(in), Options{NA: []string{"NA", "null", "N/A"}})
	require.NoError(t, err)

	assert.True(t, tbl.Get(0, "a").IsMissing())
	assert.True(t, tbl.Get(0, "b").IsMissing())
	assert.True(t, tbl.Get(0, "c").IsMissing())
	// matching is exact
	assert.Equal(t, "na", tbl.Get(1, "a").String())
	assert.Equal(t, "Null", tbl.Get(1, "b").String())
}

func TestRead_LongRows(t *testing.T) {
	type long struct{ line, fields int }
	var got []long
	opt := Options{OnLongRow: func(line, fields int) { got = append(got, long{line, fields}) }}

	tbl, err := Read(strings.NewReader("a,b\n1,2\n3,4,5\n6\n7,8,9,10\n"), opt)
	require.NoError(t, err)

	assert.Equal(t, []long{{3, 3}, {5, 4}}, got)
	require.Equal(t, 4, tbl.Len())
	assert.Len(t, tbl.Rows[1], 2)
	assert.Equal(t, "4", tbl.Get(1, "b").String())
	assert.True(t, tbl.Get(2, "b").IsMissing())
}

func TestWriteFile_Mode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clean.csv")
	require.NoError(t, WriteFile(path, domain.NewTable([]string{"a"}), Options{}))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())
}
