// Package export flattens a finalized menu document into the two XLSX
// layouts the point-of-sale import expects.
package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/Erictomm2002/Menu-Scanner/internal/menu"
)

// menuHeaders is the POS import template: one row per item, most columns
// deliberately left empty for the downstream importer to fill.
var menuHeaders = []string{
	"Tên",                                // A - item name
	"Giá",                                // B - price
	"Mã món",                             // C
	"Mã barcode",                         // D
	"Món ăn kèm",                         // E
	"Không cập nhật số lượng món ăn kèm", // F
	"Nhóm",                               // G - category id, uppercased
	"Loại món",                           // H
	"Mô tả",                              // I - description
	"SKU",                                // J
	"Đơn vị",                             // K
	"Đơn vị tính thứ 2",                  // L
	"VAT (%)",                            // M
	"Thời gian chế biến (phút)",          // N
	"Cho phép sửa giá khi bán",           // O
	"Cấu hình món ảo",                    // P
	"Cấu hình món dịch vụ",               // Q
	"Cấu hình món ăn là vé buffet",       // R
	"Ngày",                               // S
	"Giờ",                                // T
	"Hình ảnh",                           // U
	"Công thức inQR cho máy pha trà",     // V
}

var menuColWidths = []float64{
	30, 15, 15, 15, 20, 35, 25, 15, 40, 15, 15, 20, 12, 25, 25, 20, 25, 30, 12, 12, 20, 35,
}

const (
	nameCol        = 0
	priceCol       = 1
	groupCol       = 6
	descriptionCol = 8
)

// GenerateMenu renders the full menu layout: sheet "Menu" with one row per
// item plus a "Template" instruction sheet.
func GenerateMenu(doc *menu.MenuData) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Menu"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	if err := writeHeaderRow(f, sheet, menuHeaders, menuColWidths); err != nil {
		return nil, err
	}

	row := 2
	for _, cat := range doc.Categories {
		for _, item := range cat.Items {
			cells := make([]interface{}, len(menuHeaders))
			for i := range cells {
				cells[i] = ""
			}
			cells[nameCol] = item.Name
			cells[priceCol] = item.Price
			cells[groupCol] = strings.ToUpper(cat.ID)
			cells[descriptionCol] = item.Description

			if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", row), &cells); err != nil {
				return nil, err
			}
			row++
		}
	}

	if err := writeMenuTemplateSheet(f); err != nil {
		return nil, err
	}

	return writeBuffer(f)
}

// writeMenuTemplateSheet documents the columns the importer actually reads.
func writeMenuTemplateSheet(f *excelize.File) error {
	const sheet = "Template"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	rows := [][]interface{}{
		{"Cột", "Bắt buộc", "Mô tả", "Ví dụ"},
		{"Tên", "Có", "Tên món ăn", "Phở bò tái"},
		{"Giá", "Có", "Giá bán của món", "50000"},
		{"Nhóm", "Có", "Mã nhóm món (category)", "cat_1"},
		{"Mô tả", "Không", "Mô tả chi tiết về món ăn", "Phở bò tái với nước dùng đậm đà"},
		{"Mã món", "Không", "Mã định danh món ăn", "PHO001"},
		{"Mã barcode", "Không", "Mã vạch của món", "1234567890"},
	}
	widths := []float64{20, 12, 50, 35}

	return writeInstructionSheet(f, sheet, rows, widths)
}

// writeHeaderRow writes a styled bold header row and sets column widths.
func writeHeaderRow(f *excelize.File, sheet string, headers []string, widths []float64) error {
	cells := make([]interface{}, len(headers))
	for i, h := range headers {
		cells[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &cells); err != nil {
		return err
	}

	for i, w := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, col, col, w); err != nil {
			return err
		}
	}

	style, err := headerStyle(f)
	if err != nil {
		return err
	}
	lastCol, err := excelize.ColumnNumberToName(len(headers))
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, "A1", lastCol+"1", style)
}

func headerStyle(f *excelize.File) (int, error) {
	return f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"0560A6"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
}

// writeInstructionSheet writes a small header+rows sheet with the shared
// header styling.
func writeInstructionSheet(f *excelize.File, sheet string, rows [][]interface{}, widths []float64) error {
	for i, row := range rows {
		cells := row
		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", i+1), &cells); err != nil {
			return err
		}
	}

	for i, w := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, col, col, w); err != nil {
			return err
		}
	}

	style, err := headerStyle(f)
	if err != nil {
		return err
	}
	lastCol, err := excelize.ColumnNumberToName(len(rows[0]))
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, "A1", lastCol+"1", style)
}

func writeBuffer(f *excelize.File) ([]byte, error) {
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
