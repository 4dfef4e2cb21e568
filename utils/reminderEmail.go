package utils

import (
	"log"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"

	"OncoCare/models"
)

// SendAppointmentReminderEmail sends a plain/HTML reminder for an upcoming
// appointment to the given address.
func SendAppointmentReminderEmail(email string, appointment *models.Appointment) error {
	fromEmail := os.Getenv("SMTP_USER")

	m := gomail.NewMessage()
	m.SetHeader("From", fromEmail)
	m.SetHeader("To", email)
	m.SetHeader("Subject", "Upcoming appointment reminder: "+appointment.Title)

	textBody := "Reminder: " + appointment.Title + " on " + appointment.Date +
		" at " + appointment.Time + ", " + appointment.Location.Name + "."
	m.SetBody("text/plain", textBody)

	htmlBody := `
	<!DOCTYPE html>
	<html>
	<head>
		<title>Appointment Reminder</title>
		<style>
			body {
				font-family: Arial, sans-serif;
				background-color: #f4f4f4;
				margin: 0;
				padding: 0;
			}
			.container {
				background-color: #ffffff;
				margin: 20px auto;
				padding: 20px;
				border-radius: 8px;
				box-shadow: 0 2px 4px rgba(0, 0, 0, 0.1);
				max-width: 600px;
			}
			h1 {
				color: #333333;
			}
			p {
				color: #666666;
			}
			.when {
				font-weight: bold;
				color: #007bff;
			}
		</style>
	</head>
	<body>
		<div class="container">
			<h1>Appointment Reminder</h1>
			<p>` + appointment.Title + `</p>
			<p class="when">` + appointment.Date + ` at ` + appointment.Time + `</p>
			<p>Location: ` + appointment.Location.Name + `</p>
			<p>If you need to reschedule, please do so from the app.</p>
		</div>
	</body>
	</html>
	`
	m.AddAlternative("text/html", htmlBody)

	smtpHost := os.Getenv("SMTP_HOST")
	smtpPortStr := os.Getenv("SMTP_PORT")
	smtpUser := os.Getenv("SMTP_USER")
	smtpPass := os.Getenv("SMTP_PASS")

	smtpPort, err := strconv.Atoi(smtpPortStr)
	if err != nil {
		log.Printf("Invalid SMTP_PORT value: %v", err)
		return err
	}

	d := gomail.NewDialer(smtpHost, smtpPort, smtpUser, smtpPass)
	return d.DialAndSend(m)
}
