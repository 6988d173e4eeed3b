package mapper

import (
	"github.com/Kunalsharma76/github-copilot-exercise/internal/domain"
	"github.com/Kunalsharma76/github-copilot-exercise/internal/dto"
	"github.com/Kunalsharma76/github-copilot-exercise/internal/response"
)

// Activity mappers
func MapDomainActivityToDTO(activity *domain.Activity) dto.ActivityDTO {
	participants := make([]string, len(activity.Participants))
	copy(participants, activity.Participants)
	return dto.ActivityDTO{
		Description:     activity.Description,
		Schedule:        activity.Schedule,
		MaxParticipants: activity.MaxParticipants,
		Participants:    participants,
	}
}

func MapDomainDirectoryToDTO(dir domain.Directory) response.ActivitiesResponse {
	result := make(response.ActivitiesResponse, len(dir))
	for name, a := range dir {
		result[name] = MapDomainActivityToDTO(&a)
	}
	return result
}
