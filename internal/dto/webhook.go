package dto

// TwilioWebhookRequest is the form-encoded payload Twilio posts for each
// inbound WhatsApp message. From is the only structurally required field;
// everything else degrades gracefully.
type TwilioWebhookRequest struct {
	From             string `form:"From" binding:"required,whatsappaddr"`
	Body             string `form:"Body"`
	NumMedia         int    `form:"NumMedia"`
	MediaURL0        string `form:"MediaUrl0"`
	MediaContentType string `form:"MediaContentType0"`
	MessageSid       string `form:"MessageSid"`
}

// PhoneNumber strips the channel prefix from From, e.g.
// "whatsapp:+256700000001" -> "+256700000001".
func (r TwilioWebhookRequest) PhoneNumber() string {
	for i := 0; i < len(r.From); i++ {
		if r.From[i] == ':' {
			return r.From[i+1:]
		}
	}
	return r.From
}
