package services

import (
	"fmt"
	"log"
	"strconv"

	"gopkg.in/gomail.v2"

	"oldphone-deals-api/configs"
)

const verificationEmailTemplate = `
    <h1>Email Verification Required</h1>
    <p>Please verify your email address by clicking the link below:</p>
    <a href="%s">Verify Email</a>
    <p>If you did not request this change, please ignore this email.</p>
`

const passwordResetTemplate = `
    <h1>Password Reset Request</h1>
    <p>You have requested to reset your password. Click the link below to set a new password:</p>
    <a href="%s">Reset Password</a>
    <p>If you did not request this change, please ignore this email.</p>
`

const passwordChangeConfirmationTemplate = `
    <h1>Password Change Confirmation</h1>
    <p>Your password has been successfully changed.</p>
    <p>If you did not make this change, please contact our support team immediately.</p>
`

const emailChangeConfirmationTemplate = `
    <h1>Confirm Email Address Change</h1>
    <p>A request has been made to change your email address to: <strong>%s</strong></p>
    <p>To confirm this change, please click the link below:</p>
    <a href="%s">Confirm Email Change</a>
    <p>This link will expire in 5 minutes.</p>
    <p>If you did not request this change, please ignore this email and your email will remain unchanged.</p>
`

const emailChangeNotificationTemplate = `
    <h1>Email Address Change Notification</h1>
    <p>This email is to notify you that a request has been made to change your email address.</p>
    <p>If you did not make this request, please contact support immediately.</p>
`

func sendMail(to, subject, html string) error {
	port, err := strconv.Atoi(configs.EnvSMTPPort())
	if err != nil {
		port = 587
	}
	dialer := gomail.NewDialer(configs.EnvSMTPHost(), port, configs.EnvSMTPUser(), configs.EnvSMTPPass())

	m := gomail.NewMessage()
	m.SetHeader("From", configs.EnvSMTPUser())
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", html)

	return dialer.DialAndSend(m)
}

func SendVerificationEmail(email, token string) error {
	link := configs.EnvClientURL() + "/verify-email/" + token
	return sendMail(email, "Verify your email address", fmt.Sprintf(verificationEmailTemplate, link))
}

func SendPasswordResetEmail(email, token string) error {
	link := configs.EnvClientURL() + "/reset-password/" + token
	return sendMail(email, "Reset Your Password", fmt.Sprintf(passwordResetTemplate, link))
}

func SendPasswordChangeConfirmation(email string) error {
	return sendMail(email, "Password Change Confirmation", passwordChangeConfirmationTemplate)
}

func SendEmailChangeConfirmation(currentEmail, newEmail, token string) error {
	link := configs.EnvClientURL() + "/confirm-email-change/" + token
	return sendMail(currentEmail, "Confirm Email Address Change",
		fmt.Sprintf(emailChangeConfirmationTemplate, newEmail, link))
}

func SendEmailChangeNotification(email string) error {
	return sendMail(email, "Your email address is being changed", emailChangeNotificationTemplate)
}

// SendAsync dispatches a mail after the response has been sent; failures
// are logged and never surfaced to the caller.
func SendAsync(send func() error) {
	go func() {
		if err := send(); err != nil {
			log.Printf("failed to send email: %v", err)
		}
	}()
}
