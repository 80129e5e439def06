// Package purchaserepo provides data transfer objects and mapping functions
// for purchase order persistence. It implements the repository pattern for
// the Purchase aggregate, converting between the domain model and its
// relational representation.
package purchaserepo

import (
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/purchase"
)

// PurchaseDTO represents the database structure for persisting purchase
// orders. Status columns store their display strings; monetary amounts are
// stored as integer cents. The version column backs optimistic locking.
type PurchaseDTO struct {
	ID             int64  `gorm:"primaryKey;autoIncrement"`
	Version        int64  `gorm:"not null"`
	RequesterID    int64  `gorm:"index;not null"`
	ItemName       string `gorm:"not null"`
	VendorName     string `gorm:"not null"`
	ItemLink       string
	Purpose        string
	Notes          string
	Quantity       int    `gorm:"not null"`
	PriceCents     int64  `gorm:"not null"`
	ShippingCents  int64  `gorm:"not null"`
	Subteam        string `gorm:"index;not null"`
	Subproject     string
	Urgency        string  `gorm:"not null"`
	ApprovalStatus string  `gorm:"index;not null"`
	Status         string  `gorm:"index;not null"`
	SubleadEmail   string
	ExecEmail      string
	ArrivalPhotoID *string `gorm:"type:uuid"`
	IsDeleted      bool    `gorm:"index;not null"`
	PurchaseDate   *time.Time
	ShippedAt      *time.Time
	ArrivedAt      *time.Time
	CreatedAt      time.Time `gorm:"index;not null"`
	UpdatedAt      time.Time `gorm:"not null"`
}

// TableName specifies the database table name for purchase orders.
func (PurchaseDTO) TableName() string {
	return "purchases"
}

// fromDomain converts a purchase aggregate to its database representation.
func fromDomain(aggregate *purchase.Purchase) PurchaseDTO {
	s := aggregate.Snapshot()

	var photoID *string
	if s.ArrivalPhoto != nil {
		id := s.ArrivalPhoto.String()
		photoID = &id
	}

	return PurchaseDTO{
		ID:             s.ID,
		Version:        s.Version,
		RequesterID:    s.RequesterID,
		ItemName:       s.ItemName,
		VendorName:     s.VendorName,
		ItemLink:       s.ItemLink,
		Purpose:        s.Purpose,
		Notes:          s.Notes,
		Quantity:       s.Quantity,
		PriceCents:     s.Price.Cents(),
		ShippingCents:  s.ShippingCost.Cents(),
		Subteam:        s.Subteam,
		Subproject:     s.Subproject,
		Urgency:        s.Urgency.String(),
		ApprovalStatus: s.ApprovalStatus.String(),
		Status:         s.Status.String(),
		SubleadEmail:   s.SubleadEmail,
		ExecEmail:      s.ExecEmail,
		ArrivalPhotoID: photoID,
		IsDeleted:      s.IsDeleted,
		PurchaseDate:   s.PurchaseDate,
		ShippedAt:      s.ShippedAt,
		ArrivedAt:      s.ArrivedAt,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}

// toDomain converts a database DTO to a purchase aggregate using
// RestorePurchase, revalidating the persisted enum state on the way in.
func toDomain(dto PurchaseDTO) (*purchase.Purchase, error) {
	price, err := kernel.NewMoney(dto.PriceCents)
	if err != nil {
		return nil, err
	}
	shipping, err := kernel.NewMoney(dto.ShippingCents)
	if err != nil {
		return nil, err
	}
	status, err := purchase.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}
	approval, err := purchase.ApprovalStatusFromString(dto.ApprovalStatus)
	if err != nil {
		return nil, err
	}
	urgency, err := purchase.UrgencyFromString(dto.Urgency)
	if err != nil {
		return nil, err
	}

	var photo *kernel.ArtifactRef
	if dto.ArrivalPhotoID != nil && *dto.ArrivalPhotoID != "" {
		ref, refErr := kernel.ArtifactRefFromString(*dto.ArrivalPhotoID)
		if refErr != nil {
			return nil, refErr
		}
		photo = &ref
	}

	return purchase.RestorePurchase(purchase.Snapshot{
		ID:             dto.ID,
		Version:        dto.Version,
		RequesterID:    dto.RequesterID,
		ItemName:       dto.ItemName,
		VendorName:     dto.VendorName,
		ItemLink:       dto.ItemLink,
		Purpose:        dto.Purpose,
		Notes:          dto.Notes,
		Quantity:       dto.Quantity,
		Price:          price,
		ShippingCost:   shipping,
		Subteam:        dto.Subteam,
		Subproject:     dto.Subproject,
		Urgency:        urgency,
		ApprovalStatus: approval,
		Status:         status,
		SubleadEmail:   dto.SubleadEmail,
		ExecEmail:      dto.ExecEmail,
		ArrivalPhoto:   photo,
		IsDeleted:      dto.IsDeleted,
		PurchaseDate:   dto.PurchaseDate,
		ShippedAt:      dto.ShippedAt,
		ArrivedAt:      dto.ArrivedAt,
		CreatedAt:      dto.CreatedAt,
		UpdatedAt:      dto.UpdatedAt,
	})
}
