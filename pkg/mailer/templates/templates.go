// Package templates renders email bodies for the worker. Templates are
// compiled once at init; rendering failures surface to the consumer so
// the message can be nacked.
package templates

import (
	"bytes"
	"html/template"
)

var contactTmpl = template.Must(template.New("contact").Parse(`<!doctype html>
<html>
  <body style="font-family:sans-serif">
    <h2>New contact message</h2>
    <p><strong>From:</strong> {{.FromName}} &lt;{{.FromEmail}}&gt;</p>
    <p><strong>Received:</strong> {{.SubmittedAt}}</p>
    <hr>
    <p>{{.Message}}</p>
  </body>
</html>`))

// ContactData feeds the contact email template.
type ContactData struct {
	FromName    string
	FromEmail   string
	Message     string
	SubmittedAt string
}

// RenderContact renders the HTML body for a contact message email.
func RenderContact(data ContactData) (string, error) {
	var buf bytes.Buffer
	if err := contactTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
