package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"
)

// ExportUsersToExcel writes the user registry to an xlsx report and returns
// its path.
func (s *Storage) ExportUsersToExcel(ctx context.Context) (string, error) {
	users, err := s.ListUsers(ctx)
	if err != nil {
		return "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Users"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return "", fmt.Errorf("failed to create sheet: %w", err)
	}

	headers := []string{"Chat ID", "Username", "First Name", "Phone", "Visits", "First Seen", "Last Seen"}
	for col, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cell, header)
	}

	for row, u := range users {
		data := []interface{}{
			u.ChatID,
			u.Username,
			u.FirstName,
			u.Phone,
			u.Visits,
			u.CreatedAt.Format("2006-01-02 15:04"),
			u.UpdatedAt.Format("2006-01-02 15:04"),
		}
		for col, value := range data {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, value)
		}
	}

	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetCellStyle(sheet, "A1", "G1", style)
	f.SetActiveSheet(index)

	return s.saveReport(f, fmt.Sprintf("users_%s.xlsx", time.Now().Format("20060102_1504")))
}

// ExportLeadsToExcel writes the lead archive to an xlsx report and returns
// its path.
func (s *Storage) ExportLeadsToExcel(ctx context.Context) (string, error) {
	leads, err := s.ListLeads(ctx)
	if err != nil {
		return "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Leads"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return "", fmt.Errorf("failed to create sheet: %w", err)
	}

	headers := []string{"ID", "Chat ID", "City", "Summary", "Total (грн)", "Created At"}
	for col, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cell, header)
	}

	for row, lead := range leads {
		data := []interface{}{
			lead.ID,
			lead.ChatID,
			lead.City,
			lead.Summary,
			lead.Total,
			lead.CreatedAt.Format("2006-01-02 15:04"),
		}
		for col, value := range data {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, value)
		}
	}

	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetCellStyle(sheet, "A1", "F1", style)
	f.SetActiveSheet(index)

	return s.saveReport(f, fmt.Sprintf("leads_%s.xlsx", time.Now().Format("20060102_1504")))
}

func (s *Storage) saveReport(f *excelize.File, filename string) (string, error) {
	if err := os.MkdirAll(s.reportsDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create reports directory: %w", err)
	}
	path := filepath.Join(s.reportsDir, filename)
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("failed to save Excel file: %w", err)
	}
	return path, nil
}
