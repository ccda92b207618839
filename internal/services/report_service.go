package services

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/fleet_inventory/internal/models"
	"github.com/fleet_inventory/internal/repositories"
)

// DashboardCounts is the summary shown on the control panel.
type DashboardCounts struct {
	TotalPhones       int64 `json:"totalPhones"`
	TotalChips        int64 `json:"totalChips"`
	ActiveAssignments int64 `json:"activeAssignments"`
}

// ReportService exposes the dashboard counts and the inventory export.
type ReportService interface {
	GetDashboardCounts() (*DashboardCounts, error)
	// ExportInventory renders the full phone and chip inventory as an
	// .xlsx workbook with one sheet per asset kind.
	ExportInventory() ([]byte, error)
}

// reportService is the ReportService implementation.
type reportService struct {
	phoneRepo      repositories.PhoneRepository
	chipRepo       repositories.ChipRepository
	assignmentRepo repositories.AssignmentRepository
}

// NewReportService creates a new reportService instance.
func NewReportService(phoneRepo repositories.PhoneRepository, chipRepo repositories.ChipRepository, assignmentRepo repositories.AssignmentRepository) ReportService {
	return &reportService{phoneRepo: phoneRepo, chipRepo: chipRepo, assignmentRepo: assignmentRepo}
}

// GetDashboardCounts collects the simple inventory counts.
func (s *reportService) GetDashboardCounts() (*DashboardCounts, error) {
	phones, err := s.phoneRepo.CountPhones()
	if err != nil {
		return nil, err
	}
	chips, err := s.chipRepo.CountChips()
	if err != nil {
		return nil, err
	}
	active, err := s.assignmentRepo.CountActiveAssignments()
	if err != nil {
		return nil, err
	}
	return &DashboardCounts{
		TotalPhones:       phones,
		TotalChips:        chips,
		ActiveAssignments: active,
	}, nil
}

var phoneExportHeader = []string{"ID", "IMEI", "Brand", "Model", "Acquisition Date", "Status"}
var chipExportHeader = []string{"ID", "Number", "ICCID", "Carrier", "Line Type", "Activation Date", "Registration Date", "Current State"}

// ExportInventory builds the workbook: a Phones sheet and a Chips sheet,
// bold header row, one row per asset.
func (s *reportService) ExportInventory() ([]byte, error) {
	phones, err := s.phoneRepo.GetAllPhones()
	if err != nil {
		return nil, err
	}
	chips, err := s.chipRepo.GetAllChips()
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	// Note: no deferred Close; WriteToBuffer needs the file open.

	if err := writePhoneSheet(f, phones); err != nil {
		f.Close()
		return nil, err
	}
	if err := writeChipSheet(f, chips); err != nil {
		f.Close()
		return nil, err
	}
	f.DeleteSheet("Sheet1")

	buf, err := f.WriteToBuffer()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writePhoneSheet(f *excelize.File, phones []models.Phone) error {
	const sheetName = "Phones"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)

	if err := writeHeaderRow(f, sheetName, phoneExportHeader); err != nil {
		return err
	}

	for i, phone := range phones {
		row := []interface{}{
			phone.ID,
			phone.Imei,
			phone.Brand,
			phone.Model,
			formatDate(phone.AcquisitionDate),
			phone.Status,
		}
		if err := writeDataRow(f, sheetName, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func writeChipSheet(f *excelize.File, chips []models.Chip) error {
	const sheetName = "Chips"
	if _, err := f.NewSheet(sheetName); err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}

	if err := writeHeaderRow(f, sheetName, chipExportHeader); err != nil {
		return err
	}

	for i, chip := range chips {
		row := []interface{}{
			chip.ID,
			chip.Number,
			chip.Iccid,
			chip.Carrier,
			chip.LineType,
			formatDate(chip.ActivationDate),
			formatDate(chip.RegistrationDate),
			chip.CurrentState,
		}
		if err := writeDataRow(f, sheetName, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func writeHeaderRow(f *excelize.File, sheetName string, headers []string) error {
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("failed to convert coordinates: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			return fmt.Errorf("failed to set header cell %s: %w", cell, err)
		}
		if err := f.SetCellStyle(sheetName, cell, cell, headerStyle); err != nil {
			return fmt.Errorf("failed to set header style: %w", err)
		}
	}
	return nil
}

func writeDataRow(f *excelize.File, sheetName string, rowNum int, values []interface{}) error {
	for col, value := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, rowNum)
		if err != nil {
			return fmt.Errorf("failed to convert coordinates: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, value); err != nil {
			return fmt.Errorf("failed to set cell %s: %w", cell, err)
		}
	}
	return nil
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}
