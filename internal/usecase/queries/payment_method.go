package queries

import (
	"kost-booking/internal/domain/payment"
)

//go:generate mockgen -source=payment_method.go -destination=../../../tests/mock/queries/payment_method.go -package=queriesmock

type PaymentMethodQueries interface {
	Groups() []payment.Group
}

type paymentMethodQueriesImpl struct {
	catalog *payment.Catalog
}

func NewPaymentMethodQueries(catalog *payment.Catalog) PaymentMethodQueries {
	return &paymentMethodQueriesImpl{catalog: catalog}
}

func (q *paymentMethodQueriesImpl) Groups() []payment.Group {
	return q.catalog.Groups()
}
