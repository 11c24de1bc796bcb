package get_testimonials

import "github.com/m04kA/SMC-DetailingService/internal/domain"

type TestimonialSource interface {
	Testimonials() []domain.Testimonial
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
