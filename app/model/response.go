package model

type ErrorResponse struct {
	Message string `json:"message"`
}

type LoginResponse struct {
	Token     string `json:"token"`
	AdminName string `json:"adminName"`
}

type ConfirmResponse struct {
	Message    string     `json:"message"`
	Petitioner Petitioner `json:"petitioner"`
}
