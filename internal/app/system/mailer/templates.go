// internal/app/system/mailer/templates.go
package mailer

import (
	"fmt"
	"html"
)

// ContactNotificationData is the data for the inquiry notification sent to
// the site operators.
type ContactNotificationData struct {
	Name        string
	Email       string
	Phone       string
	Country     string
	InquiryType string
	Message     string
}

// ContactNotification builds plain text and HTML bodies for a new contact
// inquiry notification.
func ContactNotification(d ContactNotificationData) (textBody, htmlBody string) {
	textBody = "New contact inquiry\n\n" +
		"Name: " + d.Name + "\n" +
		"Email: " + d.Email + "\n"
	if d.Phone != "" {
		textBody += "Phone: " + d.Phone + "\n"
	}
	textBody += "Country: " + d.Country + "\n" +
		"Type: " + d.InquiryType + "\n\n" +
		d.Message + "\n"

	htmlBody = "<h2>New contact inquiry</h2>" +
		"<p><strong>Name:</strong> " + html.EscapeString(d.Name) + "<br>" +
		"<strong>Email:</strong> " + html.EscapeString(d.Email) + "<br>"
	if d.Phone != "" {
		htmlBody += "<strong>Phone:</strong> " + html.EscapeString(d.Phone) + "<br>"
	}
	htmlBody += "<strong>Country:</strong> " + html.EscapeString(d.Country) + "<br>" +
		"<strong>Type:</strong> " + html.EscapeString(d.InquiryType) + "</p>" +
		"<p>" + html.EscapeString(d.Message) + "</p>"

	return textBody, htmlBody
}

// NewsletterWelcomeData is the data for the welcome email sent to a new
// newsletter subscriber.
type NewsletterWelcomeData struct {
	SiteName string
	Email    string
}

// NewsletterWelcome builds plain text and HTML bodies for the subscription
// welcome email.
func NewsletterWelcome(d NewsletterWelcomeData) (textBody, htmlBody string) {
	textBody = fmt.Sprintf(
		"Welcome to the %s newsletter!\n\n"+
			"You are now subscribed with %s. Expect course guides, partner "+
			"offers, and seasonal deals.\n\n"+
			"If you did not sign up, reply to this email and we will remove "+
			"you from the list.",
		d.SiteName, d.Email)

	htmlBody = fmt.Sprintf(
		"<h2>Welcome to the %s newsletter!</h2>"+
			"<p>You are now subscribed with <strong>%s</strong>. Expect course "+
			"guides, partner offers, and seasonal deals.</p>"+
			"<p>If you did not sign up, reply to this email and we will remove "+
			"you from the list.</p>",
		html.EscapeString(d.SiteName), html.EscapeString(d.Email))

	return textBody, htmlBody
}
