package response

import "github.com/Kunalsharma76/github-copilot-exercise/internal/dto"

type ActivitiesResponse map[string]dto.ActivityDTO

type MessageResponse struct {
	Message string `json:"message"`
}
