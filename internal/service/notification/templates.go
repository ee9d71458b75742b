package notification

import (
	"strings"
	"text/template"

	"swiftrider/internal/entities"
)

const signature = `

Best regards,
The SwiftRider Team
`

type emailTemplate struct {
	subject *template.Template
	body    *template.Template
}

var funcs = template.FuncMap{
	"title": func(s string) string {
		if s == "" {
			return s
		}
		return strings.ToUpper(s[:1]) + s[1:]
	},
}

func mustTemplate(kind entities.NotificationKind, subject, body string) emailTemplate {
	return emailTemplate{
		subject: template.Must(template.New(kind.String() + "_subject").Funcs(funcs).Option("missingkey=zero").Parse(subject)),
		body:    template.Must(template.New(kind.String() + "_body").Funcs(funcs).Option("missingkey=zero").Parse(body + signature)),
	}
}

// Шаблоны получают Notification.Data, ключи совпадают с тем, что кладут сервисы.
var templates = map[entities.NotificationKind]emailTemplate{
	entities.NotificationWelcome: mustTemplate(entities.NotificationWelcome,
		`Welcome to SwiftRider {{title .role}}!`,
		`Hello {{.name}},

Thank you for registering as a {{.role}} on our platform. We're excited to have you on board!

As a {{.role}}, you can now:
{{- if eq .role "rider"}}
- Accept delivery requests
- Earn money by completing deliveries
- Manage your availability
{{- else}}
- Request delivery services
- Track your deliveries in real-time
- Make secure payments
{{- end}}

If you have any questions, please don't hesitate to contact our support team.`),

	entities.NotificationDeliveryAccepted: mustTemplate(entities.NotificationDeliveryAccepted,
		`Your Delivery Has Been Accepted`,
		`Hello {{.customerName}},

Great news! Your delivery request #{{.deliveryId}} has been accepted by {{.riderName}}.

Rider details:
- Name: {{.riderName}}
- Phone: {{.riderPhone}}

You can track your delivery in real-time from your dashboard.`),

	entities.NotificationDeliveryPickedUp: mustTemplate(entities.NotificationDeliveryPickedUp,
		`Your Package Has Been Picked Up`,
		`Hello {{.customerName}},

Your package for delivery #{{.deliveryId}} has been picked up by the rider and is on its way to the destination.

You can track the delivery in real-time from your dashboard.`),

	entities.NotificationDeliveryCompleted: mustTemplate(entities.NotificationDeliveryCompleted,
		`Your Delivery Has Been Completed`,
		`Hello {{.customerName}},

Your delivery #{{.deliveryId}} has been successfully completed.

Thank you for using SwiftRider for your delivery needs!`),

	entities.NotificationDeliveryCancelled: mustTemplate(entities.NotificationDeliveryCancelled,
		`Your Delivery Has Been Cancelled`,
		`Hello {{.customerName}},

Your delivery #{{.deliveryId}} has been cancelled.

If this was unexpected or you need assistance, please contact our support team.`),

	entities.NotificationPaymentSuccess: mustTemplate(entities.NotificationPaymentSuccess,
		`Payment Successful`,
		`Hello {{.customerName}},

Your payment of ₦{{.amount}} for delivery #{{.deliveryId}} was successful.
Transaction reference: {{.transactionReference}}

Thank you for your payment!`),

	entities.NotificationPaymentFailed: mustTemplate(entities.NotificationPaymentFailed,
		`Payment Failed`,
		`Hello {{.customerName}},

Your payment of ₦{{.amount}} for delivery #{{.deliveryId}} failed.

Please try again or contact your bank if the issue persists.`),
}
