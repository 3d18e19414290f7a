package dto

// ParseInquiryRequest submits raw email text (subject and body) for extraction.
type ParseInquiryRequest struct {
	EmailContent string `json:"emailContent" binding:"required"`
	Model        string `json:"model"`
}
