package model

// NotificationField is a titled section of a digest message.
type NotificationField struct {
	Name   string
	Value  string
	Inline bool
}

// Notification is a digest message for one handle, independent of the transport.
type Notification struct {
	Title       string
	URL         string
	Description string
	Color       int
	Fields      []NotificationField
}
