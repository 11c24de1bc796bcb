package get_testimonials

import "github.com/m04kA/SMC-DetailingService/internal/domain"

type TestimonialsResponse struct {
	Testimonials []TestimonialResponse `json:"testimonials"`
}

type TestimonialResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	Content   string `json:"content"`
	Rating    int    `json:"rating"`
	AvatarURL string `json:"avatar,omitempty"`
}

func fromDomain(items []domain.Testimonial) []TestimonialResponse {
	result := make([]TestimonialResponse, 0, len(items))
	for _, item := range items {
		result = append(result, TestimonialResponse{
			ID:        item.ID,
			Name:      item.Name,
			Role:      item.Role,
			Content:   item.Content,
			Rating:    item.Rating,
			AvatarURL: item.AvatarURL,
		})
	}
	return result
}
