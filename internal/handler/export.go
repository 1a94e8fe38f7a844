package handler

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/Churchillk/WealthTracker/internal/models"
	"github.com/Churchillk/WealthTracker/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// ExportHandler exports a user's ledger (incomes and expenses merged,
// newest first) as CSV or XLSX.
type ExportHandler struct {
	DB *gorm.DB
}

func NewExportHandler(db *gorm.DB) *ExportHandler {
	return &ExportHandler{DB: db}
}

// ledgerRow is one export line, income or expense.
type ledgerRow struct {
	Kind     string
	Name     string
	Category string
	Amount   float64
	Date     time.Time
	Note     string
}

func (h *ExportHandler) ledger(userID uint) ([]ledgerRow, error) {
	var incomes []models.Income
	if err := h.DB.Where("user_id = ?", userID).Find(&incomes).Error; err != nil {
		return nil, err
	}
	var expenses []models.Expense
	if err := h.DB.Where("user_id = ?", userID).Find(&expenses).Error; err != nil {
		return nil, err
	}

	rows := make([]ledgerRow, 0, len(incomes)+len(expenses))
	for _, in := range incomes {
		rows = append(rows, ledgerRow{
			Kind:     "income",
			Name:     in.Wallet,
			Category: in.Wallet,
			Amount:   in.Amount,
			Date:     in.Date,
			Note:     in.Description,
		})
	}
	for _, ex := range expenses {
		rows = append(rows, ledgerRow{
			Kind:     "expense",
			Name:     ex.Name,
			Category: ex.Category,
			Amount:   ex.Worth,
			Date:     ex.Date,
			Note:     ex.Description,
		})
	}

	// newest first
	sort.Slice(rows, func(i, j int) bool { return rows[i].Date.After(rows[j].Date) })
	return rows, nil
}

var exportHeaders = []string{"Kind", "Name", "Category", "Amount", "Date", "Note"}

// ExportCSV writes the ledger as a CSV attachment.
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	rows, err := h.ledger(user.ID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to load ledger")
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"ledger_%s.csv\"",
		time.Now().Format("20060102")))

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	writer.Write(exportHeaders)
	for _, r := range rows {
		writer.Write([]string{
			r.Kind,
			r.Name,
			r.Category,
			strconv.FormatFloat(r.Amount, 'f', 2, 64),
			r.Date.Format("2006-01-02"),
			r.Note,
		})
	}
}

// ExportXLSX writes the ledger as an XLSX attachment.
func (h *ExportHandler) ExportXLSX(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	rows, err := h.ledger(user.ID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to load ledger")
		return
	}

	f := excelize.NewFile()
	sheetName := "Ledger"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to create sheet")
		return
	}
	f.SetActiveSheet(index)

	for i, header := range exportHeaders {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
	}

	for idx, r := range rows {
		row := idx + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), r.Kind)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), r.Name)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), r.Category)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), r.Amount)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), r.Date.Format("2006-01-02"))
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), r.Note)
	}

	f.SetColWidth(sheetName, "A", "A", 10)
	f.SetColWidth(sheetName, "B", "C", 15)
	f.SetColWidth(sheetName, "D", "D", 12)
	f.SetColWidth(sheetName, "E", "E", 12)
	f.SetColWidth(sheetName, "F", "F", 30)

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"ledger_%s.xlsx\"",
		time.Now().Format("20060102")))

	if err := f.Write(c.Writer); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to write workbook")
	}
}
