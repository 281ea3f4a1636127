package controllers

import (
	"bytes"
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/Arjun-316/FurniMart/config"
	"github.com/Arjun-316/FurniMart/models"
	"github.com/Arjun-316/FurniMart/utils"
)

// ExportReturnsReport downloads the seller's return and refund activity
// for a period as an Excel workbook.
func ExportReturnsReport(c *gin.Context) {
	utils.LogInfo("ExportReturnsReport called")
	sellerVal, exists := c.Get("seller")
	if !exists {
		utils.LogError("Seller not found in context")
		utils.Unauthorized(c, "Unauthorized")
		return
	}
	seller := sellerVal.(models.Seller)

	period := c.DefaultQuery("period", "week")
	utils.LogDebug("Generating returns report for period: %s", period)

	now := time.Now()
	var startDate, endDate time.Time
	switch period {
	case "day":
		startDate = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		endDate = time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 999999999, now.Location())
	case "week":
		endDate = time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 999999999, now.Location())
		startDate = endDate.AddDate(0, 0, -6)
		startDate = time.Date(startDate.Year(), startDate.Month(), startDate.Day(), 0, 0, 0, 0, startDate.Location())
	case "month":
		startDate = now.AddDate(0, 0, -30).Truncate(24 * time.Hour)
		endDate = now.Add(24 * time.Hour)
	default:
		utils.LogError("Invalid period specified: %s", period)
		utils.BadRequest(c, "Invalid period", "Period must be day, week, or month")
		return
	}

	var returns []models.ReturnRequest
	if err := config.DB.Where("seller_id = ? AND created_at >= ? AND created_at <= ?", seller.ID, startDate, endDate).
		Preload("OrderItem").
		Order("created_at DESC").
		Find(&returns).Error; err != nil {
		utils.LogError("Failed to fetch returns for seller ID: %d: %v", seller.ID, err)
		utils.InternalServerError(c, "Failed to fetch return requests", nil)
		return
	}
	utils.LogDebug("Retrieved %d return requests for report", len(returns))

	var summary struct {
		Total        int
		Pending      int
		Approved     int
		Rejected     int
		TotalRefunds float64
	}
	for i := range returns {
		summary.Total++
		switch returns[i].ApprovalBadge() {
		case models.ReturnBadgePendingApproval:
			summary.Pending++
		case models.ReturnBadgeRefundApproved:
			summary.Approved++
			if returns[i].RefundAmount != nil {
				summary.TotalRefunds += *returns[i].RefundAmount
			}
		case models.ReturnBadgeRejected:
			summary.Rejected++
		}
	}
	summary.TotalRefunds = math.Round(summary.TotalRefunds*100) / 100

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Returns")
	if err != nil {
		utils.LogError("Failed to create worksheet: %v", err)
		utils.InternalServerError(c, "Failed to generate report", nil)
		return
	}

	header := sheet.AddRow()
	for _, title := range []string{"Return ID", "Order ID", "Item", "Reason", "Pickup Date", "Badge", "Refund Amount", "Requested At"} {
		header.AddCell().SetString(title)
	}

	for i := range returns {
		r := &returns[i]
		row := sheet.AddRow()
		row.AddCell().SetInt(int(r.ID))
		row.AddCell().SetInt(int(r.OrderID))
		row.AddCell().SetString(r.OrderItem.ProductName)
		row.AddCell().SetString(r.Reason)
		row.AddCell().SetString(r.PickupDate.Format(utils.PickupDateLayout))
		row.AddCell().SetString(r.ApprovalBadge())
		if r.RefundAmount != nil {
			row.AddCell().SetString(fmt.Sprintf("%.2f", *r.RefundAmount))
		} else {
			row.AddCell().SetString("-")
		}
		row.AddCell().SetString(r.CreatedAt.Format("2006-01-02 15:04:05"))
	}

	sheet.AddRow() // spacer
	summaryRow := sheet.AddRow()
	summaryRow.AddCell().SetString("Total")
	summaryRow.AddCell().SetInt(summary.Total)
	pendingRow := sheet.AddRow()
	pendingRow.AddCell().SetString("Pending Approval")
	pendingRow.AddCell().SetInt(summary.Pending)
	approvedRow := sheet.AddRow()
	approvedRow.AddCell().SetString("Refund Approved")
	approvedRow.AddCell().SetInt(summary.Approved)
	rejectedRow := sheet.AddRow()
	rejectedRow.AddCell().SetString("Rejected")
	rejectedRow.AddCell().SetInt(summary.Rejected)
	refundsRow := sheet.AddRow()
	refundsRow.AddCell().SetString("Total Refunded")
	refundsRow.AddCell().SetString(fmt.Sprintf("%.2f", summary.TotalRefunds))

	var buf bytes.Buffer
	if err := file.Write(&buf); err != nil {
		utils.LogError("Failed to write workbook: %v", err)
		utils.InternalServerError(c, "Failed to generate report", nil)
		return
	}
	utils.LogInfo("Returns report generated for seller ID: %d, period: %s", seller.ID, period)

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=returns-report-%s.xlsx", period))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
