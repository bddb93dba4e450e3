package model

// FooterModel is the Firestore-specific struct for the single
// company_documents/footer document.
type FooterModel struct {
	WhatsApp        string `firestore:"whatsapp"`
	WhatsAppMessage string `firestore:"whatsapp_message"`
	Email           string `firestore:"email"`
	Instagram       string `firestore:"instagram"`
	AboutUs         string `firestore:"about_us"`
	Careers         string `firestore:"careers"`
	ContactUs       string `firestore:"contact_us"`
}
