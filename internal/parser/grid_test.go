package parser

import (
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestLoadGridFromReader(t *testing.T) {
	t.Parallel()

	f := excelize.NewFile()
	defer f.Close()

	_ = f.SetCellValue("Sheet1", "A1", "VILLA NO.")
	_ = f.SetCellValue("Sheet1", "B1", "GUEST NAME")
	_ = f.SetCellValue("Sheet1", "A2", 12)
	_ = f.SetCellValue("Sheet1", "B2", "Smith, John")

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write workbook: %v", err)
	}

	grid, err := LoadGridFromReader(buf)
	if err != nil {
		t.Fatalf("load grid: %v", err)
	}

	if got := grid.Cell(0, 0); got != "VILLA NO." {
		t.Fatalf("cell(0,0): got=%q", got)
	}
	if got := grid.Cell(1, 0); got != "12" {
		t.Fatalf("cell(1,0): got=%q", got)
	}
	// 越界访问返回空串
	if got := grid.Cell(5, 5); got != "" {
		t.Fatalf("out of range cell: got=%q", got)
	}
}
