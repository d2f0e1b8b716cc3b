package response

import (
	"lounge-pos/internal/usecase/queries"

	"github.com/google/uuid"
)

type DrinkResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Price    string    `json:"price"`
	Stock    int       `json:"stock"`
	LowStock bool      `json:"lowStock"`
}

func FromDrinkView(v *queries.DrinkView) (DrinkResponse, error) {
	var res DrinkResponse
	if err := copyView(&res, v); err != nil {
		return DrinkResponse{}, err
	}
	return res, nil
}

func FromDrinkViews(vs []queries.DrinkView) ([]DrinkResponse, error) {
	out := make([]DrinkResponse, 0, len(vs))
	for i := range vs {
		res, err := FromDrinkView(&vs[i])
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return out, nil
}
