package domain

// MaxRating is the top of the testimonial rating scale
const MaxRating = 5

// Testimonial is a customer review shown on the site
type Testimonial struct {
	ID        string
	Name      string
	Role      string // e.g. "Tesla Model S Owner"
	Content   string
	Rating    int // 1..MaxRating
	AvatarURL string
}
