package entity

// Footer holds the company footer document rendered on every page,
// including the WhatsApp contact used for the floating chat button.
type Footer struct {
	WhatsApp        string `json:"whatsapp"`
	WhatsAppMessage string `json:"whatsapp_message"`
	Email           string `json:"email"`
	Instagram       string `json:"instagram"`
	AboutUs         string `json:"about_us"`
	Careers         string `json:"careers"`
	ContactUs       string `json:"contact_us"`
}
