package domain

// MediaRecord is a site photo (or other attachment) received over WhatsApp.
// It is stored unattached to any expense; the owner is nudged to follow up
// with an amount.
type MediaRecord struct {
	MediaID     string `json:"mediaID"`
	ProjectID   string `json:"projectID"`
	ProfileID   string `json:"profileID"`
	MediaURL    string `json:"mediaURL"`
	ContentType string `json:"contentType"`
	Caption     string `json:"caption"`
	AuditFields
}
