package loader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestDecodeCSV(t *testing.T) {
	content := []byte("Product,Qty,Rate\nWidget,2,10\nGadget,3,20\n")

	table, err := Decode(content, "sales.csv")
	require.NoError(t, err)
	assert.Equal(t, []string{"product", "qty", "rate"}, table.Columns)
	assert.Equal(t, 2, table.NumRows())
	assert.Equal(t, []string{"Widget", "Gadget"}, table.Column("product"))
	assert.Equal(t, []string{"10", "20"}, table.Column("rate"))
}

func TestDecodeCSVRaggedRows(t *testing.T) {
	content := []byte("Product,Amount\nWidget,10\nGadget\n")

	table, err := Decode(content, "sales.csv")
	require.NoError(t, err)
	assert.Equal(t, 2, table.NumRows())
	assert.Equal(t, []string{"10", ""}, table.Column("amount"))
}

func TestDecodeCSVBlankHeaderCells(t *testing.T) {
	content := []byte("Product,,Amount\nWidget,x,10\n")

	table, err := Decode(content, "sales.csv")
	require.NoError(t, err)
	assert.Equal(t, []string{"product", "col1", "amount"}, table.Columns)
}

func TestDecodeXLSX(t *testing.T) {
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]interface{}{"Product", "Amount"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]interface{}{"Widget", 100}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A3", &[]interface{}{"Gadget", 250}))
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	table, err := Decode(buf.Bytes(), "sales.xlsx")
	require.NoError(t, err)
	assert.Equal(t, []string{"product", "amount"}, table.Columns)
	assert.Equal(t, []string{"100", "250"}, table.Column("amount"))
}

func TestDecodeUnsupportedExtension(t *testing.T) {
	_, err := Decode([]byte("hello"), "notes.txt")
	assert.Error(t, err)
}

func TestDecodeMalformedWorkbook(t *testing.T) {
	_, err := Decode([]byte("not a zip archive"), "broken.xlsx")
	assert.Error(t, err)
}

func TestDecodeEmptyCSV(t *testing.T) {
	table, err := Decode(nil, "empty.csv")
	require.NoError(t, err)
	assert.Equal(t, 0, table.NumRows())
}
