package domain

import "errors"

var (
	MessageSuccessCreatePaymentIntent = "payment intent created successfully"
	MessageSuccessWebhook             = "notification processed"
	MessageSuccessWebhookDuplicate    = "notification already processed"

	MessageFailedCreatePaymentIntent = "failed to create payment intent"
	MessageFailedWebhook             = "failed to process notification"

	ErrPaymentNotFound       = errors.New("payment not found")
	ErrInvalidSignature      = errors.New("invalid notification signature")
	ErrPaymentGateway        = errors.New("payment provider is unavailable, try again later")
	ErrDuplicateNotification = errors.New("notification already processed")
)

type (
	PaymentIntentResponse struct {
		OrderID      string  `json:"order_id"`
		ClientSecret string  `json:"clientSecret"`
		RedirectURL  string  `json:"redirect_url"`
		Amount       float64 `json:"amount"`
	}

	// MidtransNotification is the body Midtrans posts to the webhook.
	MidtransNotification struct {
		TransactionID     string `json:"transaction_id"`
		TransactionStatus string `json:"transaction_status"`
		FraudStatus       string `json:"fraud_status"`
		StatusCode        string `json:"status_code"`
		SignatureKey      string `json:"signature_key"`
		OrderID           string `json:"order_id" validate:"required"`
		GrossAmount       string `json:"gross_amount"`
		PaymentType       string `json:"payment_type"`
		CustomField1      string `json:"custom_field1"`
		CustomField2      string `json:"custom_field2"`
	}
)
