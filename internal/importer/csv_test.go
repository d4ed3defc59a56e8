package importer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const header = "id,name,description,stock,price\n"

func TestReadParsesCatalog(t *testing.T) {
	data := header +
		"1,Widget,A widget,2,6.99\n" +
		"2,Gadget,A gadget,0,12.50\n"

	items, err := Read(strings.NewReader(data))

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, 1, items[0].ID)
	assert.Equal(t, "Widget", items[0].Name)
	assert.Equal(t, "A widget", items[0].Description)
	assert.Equal(t, 2, items[0].Stock)
	assert.True(t, items[0].Price.Equal(decimal.RequireFromString("6.99")))
	assert.Equal(t, 0, items[1].Stock)
}

func TestReadHeaderOnly(t *testing.T) {
	items, err := Read(strings.NewReader(header))

	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestReadRejectsDuplicateIDs(t *testing.T) {
	data := header +
		"1,Widget,first,2,6.99\n" +
		"1,Gadget,second,3,1.00\n"

	_, err := Read(strings.NewReader(data))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate product id 1")
}

func TestReadRejectsDuplicateNamesCaseInsensitively(t *testing.T) {
	data := header +
		"1,Widget,first,2,6.99\n" +
		"2,wIDGET,second,3,1.00\n"

	_, err := Read(strings.NewReader(data))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate product name")
}

func TestReadRejectsMalformedRows(t *testing.T) {
	tests := []struct {
		name string
		row  string
	}{
		{name: "bad id", row: "x,Widget,desc,2,6.99"},
		{name: "empty name", row: "1, ,desc,2,6.99"},
		{name: "bad stock", row: "1,Widget,desc,two,6.99"},
		{name: "negative stock", row: "1,Widget,desc,-1,6.99"},
		{name: "bad price", row: "1,Widget,desc,2,cheap"},
		{name: "negative price", row: "1,Widget,desc,2,-6.99"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(header + tt.row + "\n"))
			assert.Error(t, err)
		})
	}
}

func TestReadRejectsWrongFieldCount(t *testing.T) {
	_, err := Read(strings.NewReader(header + "1,Widget,desc,2\n"))

	assert.Error(t, err)
}

func TestImportReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stock.csv")
	data := header + "1,Widget,A widget,2,6.99\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	items, err := New(path).Import()

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Widget", items[0].Name)
}

func TestImportMissingFile(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing.csv")).Import()

	assert.Error(t, err)
}
