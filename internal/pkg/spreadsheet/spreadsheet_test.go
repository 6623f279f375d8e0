package spreadsheet

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func buildWorkbook(t *testing.T, rows [][]any) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func TestRead_XLSX(t *testing.T) {
	data := buildWorkbook(t, [][]any{
		{"ID", "Nome", "Departamento", "Hora Início"},
		{"E1", "Ana", "RH", "09:00"},
		{nil, nil, nil, nil},
		{"E2", "Bruno", nil, "22:00"},
	})

	rows, err := Read(data, "ponto.xlsx", ContentTypeXLSX)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, Row{"ID": "E1", "Nome": "Ana", "Departamento": "RH", "Hora Início": "09:00"}, rows[0])
	assert.Equal(t, Row{"ID": "E2", "Nome": "Bruno", "Hora Início": "22:00"}, rows[1])
	_, ok := rows[1]["Departamento"]
	assert.False(t, ok, "empty cells must be absent")
}

func TestRead_NumbersAreRaw(t *testing.T) {
	data := buildWorkbook(t, [][]any{
		{"ID", "Data"},
		{101, 46036},
	})

	rows, err := Read(data, "ponto.xlsx", ContentTypeXLSX)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "101", rows[0]["ID"])
	assert.Equal(t, "46036", rows[0]["Data"])
}

func TestRead_XLS(t *testing.T) {
	data, err := os.ReadFile("testdata/ponto.xls")
	require.NoError(t, err)
	require.Equal(t, FormatXLS, DetectFormat(data, "upload", ""))

	rows, err := Read(data, "ponto.xls", ContentTypeXLS)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, Row{
		"ID":           "E1",
		"Nome":         "Ana",
		"Departamento": "RH",
		"Data":         "2026-01-05T00:00:00Z",
		"Entrada":      "0.375",
		"Saída":        "0.75",
		"Turno":        "morning",
	}, rows[0])
	assert.Equal(t, Row{"Nome": "Bruno", "Departamento": "TI", "Data": "46028"}, rows[1])
	assert.Equal(t, Row{"ID": "E3", "Nome": "Carla"}, rows[2])
}

func TestRead_MalformedXLS(t *testing.T) {
	data := append(append([]byte{}, oleMagic...), make([]byte, 600)...)

	var err error
	assert.NotPanics(t, func() {
		_, err = Read(data, "ponto.xls", ContentTypeXLS)
	})
	assert.ErrorContains(t, err, "open xls: not an excel file")
}

func TestRead_HeaderOnly(t *testing.T) {
	data := buildWorkbook(t, [][]any{{"ID", "Nome"}})

	rows, err := Read(data, "ponto.xlsx", ContentTypeXLSX)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestRead_Invalid(t *testing.T) {
	_, err := Read([]byte("not a workbook"), "notes.txt", "text/plain")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = Read([]byte("PK\x03\x04garbage"), "broken.xlsx", ContentTypeXLSX)
	assert.Error(t, err)
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name        string
		data        []byte
		filename    string
		contentType string
		want        Format
	}{
		{"ole signature", append([]byte{}, oleMagic...), "x.xlsx", "", FormatXLS},
		{"zip signature", []byte("PK\x03\x04rest"), "x.xls", "", FormatXLSX},
		{"xls extension", nil, "Ponto.XLS", "", FormatXLS},
		{"xlsx extension", nil, "ponto.xlsx", "", FormatXLSX},
		{"content type fallback", nil, "upload", ContentTypeXLS, FormatXLS},
		{"unknown", nil, "upload", "text/csv", FormatUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectFormat(tt.data, tt.filename, tt.contentType))
		})
	}
}

func TestHeaderKeys(t *testing.T) {
	assert.Equal(t,
		[]string{"ID", "__EMPTY", "ID_1", "Nome", "__EMPTY_1"},
		headerKeys([]string{"ID", "", "ID", " Nome ", ""}),
	)
}
