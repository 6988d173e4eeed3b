package response

type HealthResponse struct {
	Status     string `json:"status"`
	Activities int    `json:"activities"`
}
