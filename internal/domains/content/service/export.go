package service

import (
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"vitrine-backend/internal/domains/content/model"
)

var exportHeaders = []string{
	"ID",
	"Nom",
	"Titre",
	"Contenu",
	"Description",
	"Image",
	"Visible",
	"Créé le",
	"Modifié le",
}

// ExportItems builds an xlsx workbook of the listing view (same filter, same order).
// It returns the workbook and the number of exported rows.
func (s *contentService) ExportItems(ctx context.Context, category model.Category, filter model.ListFilter) (*excelize.File, int, error) {
	// 1. Same projection as the listing screen
	result, err := s.ListItems(ctx, category, filter)
	if err != nil {
		return nil, 0, err
	}

	// 2. Build the workbook
	f, err := buildItemsExcelFile(category, result.Items)
	if err != nil {
		return nil, 0, fmt.Errorf("build %s workbook: %w", category, err)
	}

	return f, len(result.Items), nil
}

// ExportFileName returns "<slug>-YYYYMMDD.xlsx".
func ExportFileName(category model.Category, now time.Time) string {
	return fmt.Sprintf("%s-%s.xlsx", category.Slug(), now.Format("20060102"))
}

func buildItemsExcelFile(category model.Category, items []model.Item) (*excelize.File, error) {
	f := excelize.NewFile()

	sheetName := category.Title()
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		f.Close()
		return nil, err
	}

	// Row 1: header
	for colIdx, header := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(colIdx+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err == nil {
		lastCell, _ := excelize.CoordinatesToCellName(len(exportHeaders), 1)
		f.SetCellStyle(sheetName, "A1", lastCell, headerStyle)
	}

	// Data rows from row 2
	for i, item := range items {
		rowNum := i + 2
		cell := func(col int) string {
			name, _ := excelize.CoordinatesToCellName(col, rowNum)
			return name
		}

		f.SetCellValue(sheetName, cell(1), item.ID)
		f.SetCellValue(sheetName, cell(2), item.Name)
		f.SetCellValue(sheetName, cell(3), item.Title)
		f.SetCellValue(sheetName, cell(4), item.Content)
		f.SetCellValue(sheetName, cell(5), item.Description)
		f.SetCellValue(sheetName, cell(6), item.ImageURL)
		if item.Visible {
			f.SetCellValue(sheetName, cell(7), "Oui")
		} else {
			f.SetCellValue(sheetName, cell(7), "Non")
		}
		f.SetCellValue(sheetName, cell(8), item.CreatedAt.Format(time.RFC3339))
		f.SetCellValue(sheetName, cell(9), item.UpdatedAt.Format(time.RFC3339))
	}

	return f, nil
}
