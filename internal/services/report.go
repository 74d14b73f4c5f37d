package services

import (
	"context"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// ReportService renders the current inventory as an xlsx workbook.
type ReportService struct {
	inventory *InventoryService
	logger    *zap.Logger
}

func NewReportService(inventory *InventoryService, logger *zap.Logger) *ReportService {
	return &ReportService{inventory: inventory, logger: logger}
}

var equipmentReportHeader = []string{
	"Name", "Serial Number", "Model", "Manufacturer", "Department", "Category",
	"Status", "Location", "Purchase Date", "Warranty Expiry",
	"Last Maintenance", "Next Maintenance", "Notes",
}

func (s *ReportService) EquipmentWorkbook(_ context.Context) (*excelize.File, error) {
	departments := s.inventory.Departments()
	categories := s.inventory.Categories()
	equipment := s.inventory.Equipment()

	departmentNames := make(map[string]string, len(departments))
	for _, dept := range departments {
		departmentNames[dept.ID] = dept.Name
	}
	categoryNames := make(map[string]string, len(categories))
	for _, cat := range categories {
		categoryNames[cat.ID] = cat.Name
	}

	f := excelize.NewFile()
	const sheet = "Equipment"
	f.SetSheetName("Sheet1", sheet)

	for col, title := range equipmentReportHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return nil, err
		}
	}

	for row, eq := range equipment {
		values := []interface{}{
			eq.Name, eq.SerialNumber, eq.Model, eq.Manufacturer,
			departmentNames[eq.DepartmentID], categoryNames[eq.CategoryID],
			string(eq.Status), eq.Location, eq.PurchaseDate, eq.WarrantyExpiry,
			eq.LastMaintenanceDate, eq.NextMaintenanceDate, eq.Notes,
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, err
			}
		}
	}

	s.logger.Info("equipment report generated", zap.Int("rows", len(equipment)))
	return f, nil
}
