package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/Erictomm2002/Menu-Scanner/internal/menu"
)

// GenerateCategories renders the category-list layout: sheet "Nhóm món"
// with one name/id row per category in document order, plus a "Hướng dẫn"
// instruction sheet.
func GenerateCategories(doc *menu.MenuData) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Nhóm món"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	if err := writeHeaderRow(f, sheet, []string{"name", "id"}, []float64{35, 25}); err != nil {
		return nil, err
	}

	for i, cat := range doc.Categories {
		cells := []interface{}{cat.CategoryName, cat.ID}
		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", i+2), &cells); err != nil {
			return nil, err
		}
	}

	if err := writeCategoryGuideSheet(f); err != nil {
		return nil, err
	}

	return writeBuffer(f)
}

func writeCategoryGuideSheet(f *excelize.File) error {
	const sheet = "Hướng dẫn"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	rows := [][]interface{}{
		{"Trường", "Bắt buộc", "Mô tả", "Ví dụ"},
		{"Tên nhóm món", "Có", "Tên hiển thị của nhóm món", "Món chính, Món phụ, Đồ uống"},
		{"Mã nhóm món", "Có", "Mã định danh duy nhất cho nhóm món", "cat_1234567890, MAIN_DISH"},
	}
	widths := []float64{20, 12, 50, 35}

	return writeInstructionSheet(f, sheet, rows, widths)
}
