package parser

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// Grid 规整后的单元格矩阵，行列均从 0 开始
// 引擎只处理 Grid，不接触原始文件字节
type Grid [][]string

// Cell 读取单元格原始文本，越界返回空串
func (g Grid) Cell(row, col int) string {
	if row < 0 || row >= len(g) {
		return ""
	}
	if col < 0 || col >= len(g[row]) {
		return ""
	}
	return g[row][col]
}

// LoadGrid 从 Excel 文件的第一个 Sheet 读取单元格矩阵
func LoadGrid(f *excelize.File) (Grid, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	return Grid(rows), nil
}

// LoadGridFromReader 从上传的文件流读取单元格矩阵
func LoadGridFromReader(r io.Reader) (Grid, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	return LoadGrid(f)
}
