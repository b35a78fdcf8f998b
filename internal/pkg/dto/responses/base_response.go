package responses

type MessageDTO struct {
	Message string `json:"message"`
}
