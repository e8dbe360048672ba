package domain

type NotificationChannel string

const (
	ChannelEmail NotificationChannel = "EMAIL"
	ChannelSMS   NotificationChannel = "SMS"
	ChannelWeb   NotificationChannel = "WEB"
)

type NotificationCategory string

const (
	CategoryVerification NotificationCategory = "VERIFICATION"
	CategoryGeneral      NotificationCategory = "GENERAL"
	CategoryMarketing    NotificationCategory = "MARKETING"
	CategorySystemAlert  NotificationCategory = "SYSTEM_ALERT"
)

// NotificationTemplate selects how a verification message is delivered.
type NotificationTemplate struct {
	Channel      NotificationChannel
	Subject      string
	TemplateName string
}

// TemplateFor maps a verification type onto its delivery channel, subject
// line and template. New types extend this switch.
func TemplateFor(t VerificationType) NotificationTemplate {
	tmpl := NotificationTemplate{
		Channel:      ChannelEmail,
		Subject:      "Action Required: Verification Needed",
		TemplateName: "generic-verification",
	}

	switch t {
	case VerificationPhone, VerificationPhoneNumberChange:
		tmpl.Channel = ChannelSMS
	case VerificationEmail:
		tmpl.Subject, tmpl.TemplateName = "Verify Your Email", "email-verification"
	case VerificationPasswordReset:
		tmpl.Subject, tmpl.TemplateName = "Reset Your Password", "password-reset"
	case VerificationTwoFactor:
		tmpl.Subject, tmpl.TemplateName = "Two-Factor Authentication Code", "two-factor-authentication"
	case VerificationAccountDeletion:
		tmpl.Subject, tmpl.TemplateName = "Confirm Account Deletion Request", "account-deletion"
	case VerificationEmailChange:
		tmpl.Subject, tmpl.TemplateName = "Confirm Email Address Change", "email-change"
	}

	return tmpl
}

// Template variable names understood by the notification service.
const (
	VarVerificationCode = "verificationCode"
	VarUserName         = "userName"
	VarVerificationType = "verificationType"
	VarVerificationLink = "verificationLink"
)

type NotificationRequest struct {
	ID           string
	Recipient    string
	Subject      string
	TemplateName string
	Variables    map[string]string
	Channel      NotificationChannel
	Category     NotificationCategory
}

// NewVerificationNotification builds the message carrying code to user.
// SMS messages go to the mobile number, everything else to the email address.
func NewVerificationNotification(user User, code VerificationCode, link string) NotificationRequest {
	tmpl := TemplateFor(code.Type)

	recipient := user.Email
	if tmpl.Channel == ChannelSMS {
		recipient = user.Mobile
	}

	return NotificationRequest{
		Recipient:    recipient,
		Subject:      tmpl.Subject,
		TemplateName: tmpl.TemplateName,
		Variables: map[string]string{
			VarVerificationCode: code.Code,
			VarUserName:         user.Username,
			VarVerificationType: string(code.Type),
			VarVerificationLink: link,
		},
		Channel:  tmpl.Channel,
		Category: CategoryVerification,
	}
}
