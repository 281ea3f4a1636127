package controllers

import (
	"fmt"

	"github.com/Arjun-316/FurniMart/models"
	"github.com/Arjun-316/FurniMart/utils"
	"github.com/gin-gonic/gin"
)

type OrderItemMinimal struct {
	ItemID      uint    `json:"item_id"`
	ProductID   uint    `json:"product_id"`
	ProductName string  `json:"product_name"`
	Variant     string  `json:"variant,omitempty"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Discount    float64 `json:"discount"`
	Total       float64 `json:"total"`
}

type OrderSummaryResponse struct {
	ID            uint    `json:"id"`
	OrderUID      string  `json:"order_uid"`
	Status        string  `json:"status"`
	PaymentStatus string  `json:"payment_status"`
	PaymentMethod string  `json:"payment_method"`
	FinalTotal    float64 `json:"final_total"`
	ItemsCount    int     `json:"items_count"`
	CreatedAt     string  `json:"created_at"`
}

func orderItemsMinimal(items []models.OrderItem) []OrderItemMinimal {
	out := make([]OrderItemMinimal, 0, len(items))
	for _, item := range items {
		out = append(out, OrderItemMinimal{
			ItemID:      item.ID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Variant:     item.Variant,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Discount:    item.Discount,
			Total:       item.Total,
		})
	}
	return out
}

func orderSummary(order *models.Order) OrderSummaryResponse {
	return OrderSummaryResponse{
		ID:            order.ID,
		OrderUID:      order.OrderUID,
		Status:        order.Status,
		PaymentStatus: order.PaymentStatus,
		PaymentMethod: order.PaymentMethod,
		FinalTotal:    order.FinalTotal,
		ItemsCount:    len(order.OrderItems),
		CreatedAt:     order.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

// orderDetail shapes the full order payload with derived lifecycle steps.
func orderDetail(order *models.Order) gin.H {
	return gin.H{
		"id":             order.ID,
		"order_uid":      order.OrderUID,
		"status":         order.Status,
		"payment_status": order.PaymentStatus,
		"payment_method": order.PaymentMethod,
		"items_total":    fmt.Sprintf("%.2f", order.ItemsTotal),
		"discount":       fmt.Sprintf("%.2f", order.Discount),
		"final_total":    fmt.Sprintf("%.2f", order.FinalTotal),
		"created_at":     order.CreatedAt,
		"updated_at":     order.UpdatedAt,
		"shipping_address": gin.H{
			"line1":       order.Address.Line1,
			"line2":       order.Address.Line2,
			"city":        order.Address.City,
			"state":       order.Address.State,
			"country":     order.Address.Country,
			"postal_code": order.Address.PostalCode,
			"phone":       order.Address.Phone,
		},
		"items":          orderItemsMinimal(order.OrderItems),
		"status_history": order.StatusHistory,
		"steps":          utils.DeriveSteps(order),
	}
}

// returnRequestResponse shapes a return request with its derived badge.
func returnRequestResponse(r *models.ReturnRequest) gin.H {
	resp := gin.H{
		"id":                 r.ID,
		"order_id":           r.OrderID,
		"order_item_id":      r.OrderItemID,
		"reason":             r.Reason,
		"reason_description": r.ReasonDescription,
		"pickup_date":        r.PickupDate.Format(utils.PickupDateLayout),
		"seller_approval":    r.SellerApproval,
		"seller_notes":       r.SellerNotes,
		"badge":              r.ApprovalBadge(),
		"customer_name":      r.CustomerName,
		"customer_email":     r.CustomerEmail,
		"created_at":         r.CreatedAt,
		"updated_at":         r.UpdatedAt,
	}
	if r.RefundAmount != nil {
		resp["refund_amount"] = fmt.Sprintf("%.2f", *r.RefundAmount)
	}
	return resp
}
