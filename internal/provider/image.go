package provider

// Image is a base64-encoded image ready to be sent inline to a vision model.
type Image struct {
	Data     string
	MIMEType string
}
