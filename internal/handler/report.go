package handler

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"github.com/dev-dtechby/AdarshColony-754-sub001/internal/reconcile"
	"github.com/dev-dtechby/AdarshColony-754-sub001/internal/store"
	"github.com/dev-dtechby/AdarshColony-754-sub001/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ReportHandler serves the reconciliation views and their file exports.
type ReportHandler struct {
	Engine   *reconcile.Engine
	Payments *store.PaymentStore
}

func NewReportHandler(engine *reconcile.Engine, payments *store.PaymentStore) *ReportHandler {
	return &ReportHandler{Engine: engine, Payments: payments}
}

// ContractorLedger returns the contractor's running position, optionally
// scoped to one site via ?site_id=.
func (h *ReportHandler) ContractorLedger(c *gin.Context) {
	if _, ok := requireUser(c); !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	siteID, ok := queryID(c, "site_id")
	if !ok {
		return
	}
	summary, err := h.Engine.ContractorLedger(id, siteID)
	if err != nil {
		fail(c, err)
		return
	}
	util.Success(c, util.Response{"ledger": summary})
}

// SiteProfit returns expense vs received vs profit for every active site.
func (h *ReportHandler) SiteProfit(c *gin.Context) {
	if _, ok := requireUser(c); !ok {
		return
	}
	rows, err := h.Engine.SiteProfit()
	if err != nil {
		fail(c, err)
		return
	}
	util.Success(c, util.Response{"items": rows, "total": len(rows)})
}

// ExportSiteProfitCSV streams the site profit report as CSV.
func (h *ReportHandler) ExportSiteProfitCSV(c *gin.Context) {
	if _, ok := requireUser(c); !ok {
		return
	}
	rows, err := h.Engine.SiteProfit()
	if err != nil {
		fail(c, err)
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"site_profit_%s.csv\"",
		time.Now().Format("20060102")))

	// UTF-8 BOM so Excel opens the file correctly
	c.Writer.Write([]byte{0xEF, 0xBB, 0xBF})

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	writer.Write([]string{"Site", "Department", "Total Expense", "Total Received", "Profit"})
	for _, r := range rows {
		writer.Write([]string{
			r.SiteName,
			r.DepartmentName,
			r.TotalExpense.StringFixed(2),
			r.TotalReceived.StringFixed(2),
			r.Profit.StringFixed(2),
		})
	}
}

// ExportSiteProfitXLSX streams the site profit report as XLSX.
func (h *ReportHandler) ExportSiteProfitXLSX(c *gin.Context) {
	if _, ok := requireUser(c); !ok {
		return
	}
	rows, err := h.Engine.SiteProfit()
	if err != nil {
		fail(c, err)
		return
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	headers := []string{"Site", "Department", "Total Expense", "Total Received", "Profit"}
	for i, hd := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, hd)
	}
	for ri, r := range rows {
		values := []interface{}{
			r.SiteName,
			r.DepartmentName,
			r.TotalExpense.StringFixed(2),
			r.TotalReceived.StringFixed(2),
			r.Profit.StringFixed(2),
		}
		for ci, v := range values {
			cell, _ := excelize.CoordinatesToCellName(ci+1, ri+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"site_profit_%s.xlsx\"",
		time.Now().Format("20060102")))
	if err := f.Write(c.Writer); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "write workbook failed")
	}
}

// ExportContractorXLSX streams the contractor statement: the summary row
// plus every active payment that contributes to paid-to-date.
func (h *ReportHandler) ExportContractorXLSX(c *gin.Context) {
	if _, ok := requireUser(c); !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	siteID, ok := queryID(c, "site_id")
	if !ok {
		return
	}
	summary, err := h.Engine.ContractorLedger(id, siteID)
	if err != nil {
		fail(c, err)
		return
	}
	payments, err := h.Payments.List(store.PaymentFilter{
		ContractorID: &id,
		SiteID:       siteID,
	})
	if err != nil {
		fail(c, err)
		return
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	f.SetCellValue(sheet, "A1", "Contractor")
	f.SetCellValue(sheet, "B1", summary.ContractorName)
	f.SetCellValue(sheet, "A2", "Contract Value")
	f.SetCellValue(sheet, "B2", summary.ContractValue.StringFixed(2))
	f.SetCellValue(sheet, "A3", "Paid To Date")
	f.SetCellValue(sheet, "B3", summary.PaidToDate.StringFixed(2))
	f.SetCellValue(sheet, "A4", "Balance")
	f.SetCellValue(sheet, "B4", summary.Balance.StringFixed(2))

	f.SetCellValue(sheet, "A6", "Date")
	f.SetCellValue(sheet, "B6", "Contract")
	f.SetCellValue(sheet, "C6", "Amount")
	f.SetCellValue(sheet, "D6", "Note")
	row := 7
	for _, p := range payments {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), p.PaymentDate.Format("2006-01-02"))
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), p.ContractID)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), p.Amount.StringFixed(2))
		if p.Note != nil {
			f.SetCellValue(sheet, fmt.Sprintf("D%d", row), *p.Note)
		}
		row++
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"contractor_%d_%s.xlsx\"",
		id, time.Now().Format("20060102")))
	if err := f.Write(c.Writer); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "write workbook failed")
	}
}
