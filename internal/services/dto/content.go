package dto

// SetDocumentRequest — HTML-содержимое сайтового документа (terms, privacy, about_us)
type SetDocumentRequest struct {
	HTMLContent string `json:"html_content" binding:"required"`
}
