package response

import "lounge-pos/internal/usecase/queries"

type PricingResponse struct {
	SinglePrice string `json:"singlePrice"`
	MultiPrice  string `json:"multiPrice"`
	RoomPrice   string `json:"roomPrice"`
}

func FromPricingView(v queries.PricingView) (PricingResponse, error) {
	var res PricingResponse
	if err := copyView(&res, &v); err != nil {
		return PricingResponse{}, err
	}
	return res, nil
}
