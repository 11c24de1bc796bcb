package send_inquiry

import sendInquiry "github.com/m04kA/SMC-DetailingService/internal/usecase/send_inquiry"

// InquiryRequest HTTP request model
type InquiryRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email,omitempty"`
	Message string `json:"message"`
}

// InquiryResponse HTTP response model
type InquiryResponse struct {
	Message string `json:"message"`
}

func (r InquiryRequest) ToUseCaseRequest() sendInquiry.Request {
	return sendInquiry.Request{
		Name:    r.Name,
		Phone:   r.Phone,
		Email:   r.Email,
		Message: r.Message,
	}
}
