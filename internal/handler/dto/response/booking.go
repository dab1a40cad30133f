package response

import (
	"time"

	"kost-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ContactResponse struct {
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}

type BookingResponse struct {
	ID                  uuid.UUID       `json:"id"`
	PropertyID          uuid.UUID       `json:"propertyId"`
	PropertyTitle       string          `json:"propertyTitle"`
	PropertyAddress     string          `json:"propertyAddress"`
	PropertyCity        string          `json:"propertyCity"`
	TenantID            uuid.UUID       `json:"tenantId"`
	CheckInDate         string          `json:"checkInDate"`
	EndDate             string          `json:"endDate"`
	Duration            int             `json:"duration"`
	DurationUnit        string          `json:"durationUnit"`
	DurationLabel       string          `json:"durationLabel"`
	TotalPrice          MoneyResponse   `json:"totalPrice"`
	DiscountTier        string          `json:"discountTier"`
	Status              string          `json:"status"`
	PaymentStatus       string          `json:"paymentStatus"`
	PaymentMethodID     string          `json:"paymentMethodId"`
	SettlementReference string          `json:"settlementReference"`
	Contact             ContactResponse `json:"contact"`
	Note                *string         `json:"note,omitempty"`
	CreatedAt           time.Time       `json:"createdAt"`
}

type BookingListResponse struct {
	Items      []*BookingResponse `json:"items"`
	NextCursor *string            `json:"nextCursor,omitempty"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:              v.ID,
		PropertyID:      v.PropertyID,
		PropertyTitle:   v.PropertyTitle,
		PropertyAddress: v.PropertyAddress,
		PropertyCity:    v.PropertyCity,
		TenantID:        v.TenantID,
		CheckInDate:     v.CheckInDate.Format(time.DateOnly),
		EndDate:         v.EndDate.Format(time.DateOnly),
		Duration:        v.Duration,
		DurationUnit:    v.DurationUnit,
		DurationLabel:   v.DurationLabel,
		TotalPrice: MoneyResponse{
			Amount: v.TotalPrice,
			Text:   v.TotalPriceText,
		},
		DiscountTier:        v.DiscountTier,
		Status:              v.Status,
		PaymentStatus:       v.PaymentStatus,
		PaymentMethodID:     v.PaymentMethodID,
		SettlementReference: v.SettlementReference,
		Contact: ContactResponse{
			FullName:    v.ContactName,
			Email:       v.ContactEmail,
			PhoneNumber: v.ContactPhone,
		},
		Note:      v.Note,
		CreatedAt: v.CreatedAt,
	}
}

func FromBookingList(items []*queries.BookingView, next *queries.Cursor) *BookingListResponse {
	res := &BookingListResponse{Items: make([]*BookingResponse, len(items))}
	for i, it := range items {
		res.Items[i] = FromBookingView(it)
	}
	if next != nil {
		res.NextCursor = &next.After
	}
	return res
}
