package export

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"adminconsole/internal/listing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleTable(rows int) listing.Table {
	t := listing.Table{Headers: []string{"Role Name", "Description", "Permissions"}}
	for i := 0; i < rows; i++ {
		t.Rows = append(t.Rows, []string{"Editor", "Can edit content", "read, write"})
	}
	return t
}

func TestSpreadsheet_WritesHeaderAndRows(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Spreadsheet{}.Encode(&buf, "Roles", sampleTable(3)))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Equal(t, []string{"Roles"}, f.GetSheetList())
	rows, err := f.GetRows("Roles")
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"Role Name", "Description", "Permissions"}, rows[0])
	assert.Equal(t, []string{"Editor", "Can edit content", "read, write"}, rows[3])
}

func TestSpreadsheet_LongTitleIsTruncated(t *testing.T) {
	var buf bytes.Buffer
	title := strings.Repeat("x", 40)
	require.NoError(t, Spreadsheet{}.Encode(&buf, title, sampleTable(0)))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()
	assert.Equal(t, []string{strings.Repeat("x", 31)}, f.GetSheetList())
}

func TestDocument_ProducesPDF(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Document{}.Encode(&buf, "Users", sampleTable(80)))

	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
	assert.Greater(t, buf.Len(), 1000)
}

func TestDocument_NonLatinNames(t *testing.T) {
	table := listing.Table{
		Headers: []string{"Tên", "Email", "Vai trò"},
		Rows: [][]string{
			{"Nguyễn Văn An", "an@example.vn", "Quản trị viên"},
			{"Зоя Иванова", "zoya@example.ru", "Пользователь"},
			{"Zoë Ångström-Løvås", "zoe@example.se", "User"},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, Document{}.Encode(&buf, "Người dùng", table))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestFit_KeepsUTF8Intact(t *testing.T) {
	pdf := newPDF("fit")
	pdf.SetFont(fontFamily, "", fontSize)
	require.NoError(t, pdf.Error())

	for _, name := range []string{"Nguyễn Văn An", "Зоя Иванова"} {
		assert.Equal(t, name, fit(pdf, name, 100), "short names are not rewritten")
		assert.Greater(t, pdf.GetStringWidth(name), 0.0)
	}

	long := "Zoë Ångström-Løvås Nguyễn Thị Minh Khai Зоя Иванова"
	got := fit(pdf, long, 30)
	require.True(t, utf8.ValidString(got))
	require.True(t, strings.HasSuffix(got, ellipsis))
	assert.True(t, strings.HasPrefix(long, strings.TrimSuffix(got, ellipsis)))
	assert.LessOrEqual(t, pdf.GetStringWidth(got), 30-2*pdf.GetCellMargin())
	assert.NotContains(t, got, string(utf8.RuneError))
}

func TestDocument_EmptyTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Document{}.Encode(&buf, "Users", listing.Table{}))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestTargets(t *testing.T) {
	targets := Targets()
	require.Contains(t, targets, listing.FormatSpreadsheet)
	require.Contains(t, targets, listing.FormatDocument)
	assert.Equal(t, "pdf", targets[listing.FormatDocument].Extension)

	encoders := Encoders(targets)
	assert.Len(t, encoders, 2)
	assert.IsType(t, Spreadsheet{}, encoders[listing.FormatSpreadsheet])
}
