package catalog

import "github.com/m04kA/SMC-DetailingService/internal/domain"

func defaultTestimonials() []domain.Testimonial {
	return []domain.Testimonial{
		{
			ID:        "t1",
			Name:      "Marcus Chen",
			Role:      "Tesla Model S Owner",
			Content:   "Burrell & Co. transformed my car. The maintenance wash keeps it looking fresh, and the mobile service is so convenient.",
			Rating:    5,
			AvatarURL: "https://picsum.photos/100/100?random=5",
		},
		{
			ID:        "t2",
			Name:      "Sarah Jenkins",
			Role:      "Range Rover Owner",
			Content:   "With two kids and a dog, my interior was a disaster. The Full Interior Detail performed a miracle. It looks brand new again.",
			Rating:    5,
			AvatarURL: "https://picsum.photos/100/100?random=6",
		},
		{
			ID:        "t3",
			Name:      "David Thorne",
			Role:      "Porsche 911 Enthusiast",
			Content:   "Professional, punctual, and meticulous. They treated my 911 with the respect it deserves during the exterior detail.",
			Rating:    5,
			AvatarURL: "https://picsum.photos/100/100?random=7",
		},
	}
}
