package response

import (
	"kost-booking/internal/domain/payment"

	"github.com/jinzhu/copier"
)

type PaymentMethodResponse struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Type        string `json:"type"`
	IconURL     string `json:"iconUrl"`
}

type PaymentMethodGroupResponse struct {
	Type    string                  `json:"type"`
	Methods []PaymentMethodResponse `json:"methods"`
}

func FromPaymentMethod(m payment.Method) (PaymentMethodResponse, error) {
	var res PaymentMethodResponse
	if err := copier.Copy(&res, &m); err != nil {
		return PaymentMethodResponse{}, err
	}
	res.Type = string(m.Type)
	return res, nil
}

func FromPaymentGroups(groups []payment.Group) ([]PaymentMethodGroupResponse, error) {
	res := make([]PaymentMethodGroupResponse, len(groups))
	for i, g := range groups {
		methods := make([]PaymentMethodResponse, len(g.Methods))
		for j, m := range g.Methods {
			mr, err := FromPaymentMethod(m)
			if err != nil {
				return nil, err
			}
			methods[j] = mr
		}
		res[i] = PaymentMethodGroupResponse{Type: string(g.Type), Methods: methods}
	}
	return res, nil
}
