package response

type LoginResponse struct {
	AccessToken string `json:"accessToken"`
	Operator    string `json:"operator"`
	ExpiresIn   int64  `json:"expiresIn"` // seconds
}

type MeResponse struct {
	Operator string `json:"operator"`
}
