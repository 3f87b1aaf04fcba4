package models

// Attachment is a single file carried by an outbound email. Inline
// attachments are referenced from the HTML body by their ContentID.
type Attachment struct {
	Filename    string
	Content     []byte
	ContentID   string
	ContentType string
	Inline      bool
}

// RenderedDocument is a renderer's output: a subject/body/attachments bundle
// ready to hand to the mail transport.
type RenderedDocument struct {
	Subject     string
	HTMLBody    string
	Attachments []Attachment
}
