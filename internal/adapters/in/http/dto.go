package http

import (
	"time"

	"procurement/internal/core/application/usecases/queries"
)

// ErrorResponse is the error body returned by every endpoint.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreatePurchaseRequest is the body for submitting a new order.
type CreatePurchaseRequest struct {
	ItemName     string  `json:"item_name"`
	VendorName   string  `json:"vendor_name"`
	ItemLink     string  `json:"item_link"`
	Purpose      string  `json:"purpose"`
	Notes        string  `json:"notes"`
	Quantity     int     `json:"quantity"`
	Price        float64 `json:"price"`
	ShippingCost float64 `json:"shipping_cost"`
	Subteam      string  `json:"subteam"`
	Subproject   string  `json:"subproject"`
	Urgency      string  `json:"urgency"`
}

// CreatePurchaseResponse returns the identifier of the new order.
type CreatePurchaseResponse struct {
	ID int64 `json:"id"`
}

// RejectPurchaseRequest is the body for rejecting an order.
type RejectPurchaseRequest struct {
	Reason string `json:"reason"`
}

// AdvanceStatusRequest is the body for moving an order along the fulfillment
// pipeline. ArrivalPhotoID is required when status is "Arrived".
type AdvanceStatusRequest struct {
	Status         string `json:"status"`
	ArrivalPhotoID string `json:"arrival_photo_id,omitempty"`
}

// PurchaseSummaryResponse is one row of a listing response.
type PurchaseSummaryResponse struct {
	ID             int64     `json:"id"`
	RequesterID    int64     `json:"requester_id"`
	ItemName       string    `json:"item_name"`
	VendorName     string    `json:"vendor_name"`
	Quantity       int       `json:"quantity"`
	Price          float64   `json:"price"`
	ShippingCost   float64   `json:"shipping_cost"`
	TotalCost      float64   `json:"total_cost"`
	Subteam        string    `json:"subteam"`
	Subproject     string    `json:"subproject,omitempty"`
	Urgency        string    `json:"urgency"`
	ApprovalStatus string    `json:"approval_status"`
	Status         string    `json:"status"`
	IsDeleted      bool      `json:"is_deleted"`
	CreatedAt      time.Time `json:"created_at"`
}

// ListPurchasesResponse is a page of orders plus paging metadata.
type ListPurchasesResponse struct {
	Items      []PurchaseSummaryResponse `json:"items"`
	Total      int64                     `json:"total"`
	Page       int                       `json:"page"`
	PerPage    int                       `json:"per_page"`
	TotalPages int                       `json:"total_pages"`
}

// PurchaseDetailResponse is the full detail of a single order.
type PurchaseDetailResponse struct {
	ID                     int64      `json:"id"`
	RequesterID            int64      `json:"requester_id"`
	ItemName               string     `json:"item_name"`
	VendorName             string     `json:"vendor_name"`
	ItemLink               string     `json:"item_link,omitempty"`
	Purpose                string     `json:"purpose,omitempty"`
	Notes                  string     `json:"notes,omitempty"`
	Quantity               int        `json:"quantity"`
	Price                  float64    `json:"price"`
	ShippingCost           float64    `json:"shipping_cost"`
	TotalCost              float64    `json:"total_cost"`
	Subteam                string     `json:"subteam"`
	Subproject             string     `json:"subproject,omitempty"`
	Urgency                string     `json:"urgency"`
	IsUrgent               bool       `json:"is_urgent"`
	IsSpecialLarge         bool       `json:"is_special_large"`
	ApprovalStatus         string     `json:"approval_status"`
	Status                 string     `json:"status"`
	CanBePurchased         bool       `json:"can_be_purchased"`
	NeedsExecutiveApproval bool       `json:"needs_executive_approval"`
	SubleadEmail           string     `json:"sublead_email,omitempty"`
	ExecEmail              string     `json:"exec_email,omitempty"`
	ArrivalPhotoID         string     `json:"arrival_photo_id,omitempty"`
	IsDeleted              bool       `json:"is_deleted"`
	PurchaseDate           *time.Time `json:"purchase_date,omitempty"`
	ShippedAt              *time.Time `json:"shipped_at,omitempty"`
	ArrivedAt              *time.Time `json:"arrived_at,omitempty"`
	CreatedAt              time.Time  `json:"created_at"`
	UpdatedAt              time.Time  `json:"updated_at"`
}

// StatisticsResponse is the aggregate summary of the visible orders.
type StatisticsResponse struct {
	TotalOrders     int     `json:"total_orders"`
	PendingApproval int     `json:"pending_approval"`
	ApprovedOrders  int     `json:"approved_orders"`
	PurchasedOrders int     `json:"purchased_orders"`
	ShippedOrders   int     `json:"shipped_orders"`
	ArrivedOrders   int     `json:"arrived_orders"`
	TotalValue      float64 `json:"total_value"`
}

func toSummaryResponse(s queries.PurchaseSummary) PurchaseSummaryResponse {
	return PurchaseSummaryResponse{
		ID:             s.ID,
		RequesterID:    s.RequesterID,
		ItemName:       s.ItemName,
		VendorName:     s.VendorName,
		Quantity:       s.Quantity,
		Price:          s.Price.Float64(),
		ShippingCost:   s.ShippingCost.Float64(),
		TotalCost:      s.TotalCost.Float64(),
		Subteam:        s.Subteam,
		Subproject:     s.Subproject,
		Urgency:        s.Urgency,
		ApprovalStatus: s.ApprovalStatus,
		Status:         s.Status,
		IsDeleted:      s.IsDeleted,
		CreatedAt:      s.CreatedAt,
	}
}

func toDetailResponse(d queries.GetPurchaseResponse) PurchaseDetailResponse {
	return PurchaseDetailResponse{
		ID:                     d.ID,
		RequesterID:            d.RequesterID,
		ItemName:               d.ItemName,
		VendorName:             d.VendorName,
		ItemLink:               d.ItemLink,
		Purpose:                d.Purpose,
		Notes:                  d.Notes,
		Quantity:               d.Quantity,
		Price:                  d.Price.Float64(),
		ShippingCost:           d.ShippingCost.Float64(),
		TotalCost:              d.TotalCost.Float64(),
		Subteam:                d.Subteam,
		Subproject:             d.Subproject,
		Urgency:                d.Urgency,
		IsUrgent:               d.IsUrgent,
		IsSpecialLarge:         d.IsSpecialLarge,
		ApprovalStatus:         d.ApprovalStatus,
		Status:                 d.Status,
		CanBePurchased:         d.CanBePurchased,
		NeedsExecutiveApproval: d.NeedsExecutiveApproval,
		SubleadEmail:           d.SubleadEmail,
		ExecEmail:              d.ExecEmail,
		ArrivalPhotoID:         d.ArrivalPhotoID,
		IsDeleted:              d.IsDeleted,
		PurchaseDate:           d.PurchaseDate,
		ShippedAt:              d.ShippedAt,
		ArrivedAt:              d.ArrivedAt,
		CreatedAt:              d.CreatedAt,
		UpdatedAt:              d.UpdatedAt,
	}
}
