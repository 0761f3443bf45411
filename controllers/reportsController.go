package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Neeto7/neetocafebackoffice/models"
	"github.com/Neeto7/neetocafebackoffice/reports"
)

// GetReport returns the income/expense rollup for the selected window.
func (ctl *Controller) GetReport(c *gin.Context) {
	summary, mode, date, ok := ctl.buildReport(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"mode":    mode,
		"date":    date,
		"summary": summary,
	})
}

// ExportReportExcel streams the rollup as a spreadsheet download.
func (ctl *Controller) ExportReportExcel(c *gin.Context) {
	summary, mode, date, ok := ctl.buildReport(c)
	if !ok {
		return
	}

	data, err := reports.WriteExcel(summary, mode, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate spreadsheet"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=report-%s-%s.xlsx", mode, date))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

// ExportReportPDF streams the rollup as a PDF download.
func (ctl *Controller) ExportReportPDF(c *gin.Context) {
	summary, mode, date, ok := ctl.buildReport(c)
	if !ok {
		return
	}

	data, err := reports.WritePDF(summary, mode, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate PDF"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=report-%s-%s.pdf", mode, date))
	c.Data(http.StatusOK, "application/pdf", data)
}

// buildReport derives the window from the query, fetches the rows and folds
// them. Rerunning it over an unchanged row set yields the same figures.
func (ctl *Controller) buildReport(c *gin.Context) (reports.Summary, string, string, bool) {
	mode := c.DefaultQuery("mode", "daily")
	date := c.DefaultQuery("date", time.Now().Format("2006-01-02"))

	start, end, err := reports.Window(mode, date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return reports.Summary{}, "", "", false
	}

	var rows []models.OrderHistory
	if err := ctl.DB.Where("created_at BETWEEN ? AND ?", start, end).
		Order("created_at desc").Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return reports.Summary{}, "", "", false
	}

	var expenses []models.Expense
	if err := ctl.DB.Where("created_at BETWEEN ? AND ?", start, end).
		Order("created_at desc").Find(&expenses).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return reports.Summary{}, "", "", false
	}

	return reports.Rollup(rows, expenses), mode, date, true
}
