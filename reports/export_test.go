package reports

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/Neeto7/neetocafebackoffice/models"
)

func sampleSummary() Summary {
	created := time.Date(2024, 3, 10, 9, 30, 0, 0, time.Local)
	return Rollup(
		[]models.OrderHistory{
			{TableNumber: "4", CustomerName: "Sari", Subtotal: 40000, CreatedAt: created},
		},
		[]models.Expense{
			{Description: "Beans", Amount: 70000, CreatedAt: created},
		},
	)
}

func TestWriteExcelLayout(t *testing.T) {
	data, err := WriteExcel(sampleSummary(), "daily", "2024-03-10")
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	title, err := f.GetCellValue(sheetName, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Financial Report", title)

	net, err := f.GetCellValue(sheetName, "B6")
	require.NoError(t, err)
	assert.Equal(t, "-30000", net, "net profit stays negative")

	header, err := f.GetCellValue(sheetName, "B9")
	require.NoError(t, err)
	assert.Equal(t, "Customer", header)
}

func TestWritePDFProducesDocument(t *testing.T) {
	data, err := WritePDF(sampleSummary(), "monthly", "2024-03-01")
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}
