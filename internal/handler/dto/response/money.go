package response

import "kost-booking/internal/domain/shared/money"

type MoneyResponse struct {
	Amount int64  `json:"amount"`
	Text   string `json:"text"`
}

func FromMoney(m money.Money) MoneyResponse {
	return MoneyResponse{Amount: m.Amount(), Text: m.Format()}
}
