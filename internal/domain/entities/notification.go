package entities

type NotificationType string

const (
	NotificationInvoiceGenerated        NotificationType = "INVOICE_GENERATED"
	NotificationPaymentSuccessful       NotificationType = "PAYMENT_SUCCESSFUL"
	NotificationInsuranceClaimSubmitted NotificationType = "INSURANCE_CLAIM_SUBMITTED"
	NotificationInsuranceClaimApproved  NotificationType = "INSURANCE_CLAIM_APPROVED"
)

// Notification is the event handed to the notification service.
//
// AuthToken is the caller's bearer token, forwarded by HTTP dispatchers. It is never
// serialized into the payload.
type Notification struct {
	Type        NotificationType  `json:"notification_type"`
	RecipientID string            `json:"recipient_id"`
	Data        map[string]string `json:"data"`
	AuthToken   string            `json:"-"`
}
