package utils

import (
	"fmt"
	"lms/config"
	"time"

	"github.com/go-resty/resty/v2"
)

// PaymentGateway is the slice of the PayPal REST API the order workflow
// uses. Swapped for a stub in tests.
type PaymentGateway interface {
	CreatePayment(courseTitle string, courseID uint, amount float64, receiptTag string) (*PaymentSession, error)
	ExecutePayment(paymentID, payerID string) error
}

// PaymentClient is the gateway used by the order controller. Initialized
// by InitPayPal at startup.
var PaymentClient PaymentGateway

// PaymentSession is the result of creating a payment at the gateway
type PaymentSession struct {
	PaymentID  string
	ApproveURL string
}

// PayPalService talks to the PayPal REST API (v1 payments)
type PayPalService struct {
	client   *resty.Client
	clientID string
	secret   string
}

// InitPayPal wires the live gateway client from configuration
func InitPayPal() {
	PaymentClient = NewPayPalService(
		config.AppConfig.PayPalBaseURL,
		config.AppConfig.PayPalClientID,
		config.AppConfig.PayPalSecret,
	)
}

func NewPayPalService(baseURL, clientID, secret string) *PayPalService {
	return &PayPalService{
		client:   resty.New().SetBaseURL(baseURL).SetTimeout(15 * time.Second),
		clientID: clientID,
		secret:   secret,
	}
}

type paypalTokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

type paypalLink struct {
	Href   string `json:"href"`
	Rel    string `json:"rel"`
	Method string `json:"method"`
}

type paypalPaymentResponse struct {
	ID    string       `json:"id"`
	State string       `json:"state"`
	Links []paypalLink `json:"links"`
}

type paypalErrorResponse struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

// getAccessToken exchanges client credentials for a bearer token
func (s *PayPalService) getAccessToken() (string, error) {
	if s.clientID == "" || s.secret == "" {
		return "", fmt.Errorf("payment gateway is not configured")
	}

	var tokenResp paypalTokenResponse
	resp, err := s.client.R().
		SetBasicAuth(s.clientID, s.secret).
		SetFormData(map[string]string{"grant_type": "client_credentials"}).
		SetResult(&tokenResp).
		Post("/v1/oauth2/token")
	if err != nil {
		return "", fmt.Errorf("failed to reach payment gateway: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("payment gateway auth failed: %s", resp.Status())
	}

	return tokenResp.AccessToken, nil
}

// CreatePayment creates a redirect-flow payment and returns the payment id
// plus the approval URL the client must follow.
func (s *PayPalService) CreatePayment(courseTitle string, courseID uint, amount float64, receiptTag string) (*PaymentSession, error) {
	accessToken, err := s.getAccessToken()
	if err != nil {
		return nil, err
	}

	total := fmt.Sprintf("%.2f", amount)
	payload := map[string]interface{}{
		"intent": "sale",
		"payer": map[string]string{
			"payment_method": "paypal",
		},
		"redirect_urls": map[string]string{
			"return_url": config.AppConfig.ClientURL + "/payment-return",
			"cancel_url": config.AppConfig.ClientURL + "/payment-cancel",
		},
		"transactions": []map[string]interface{}{
			{
				"item_list": map[string]interface{}{
					"items": []map[string]interface{}{
						{
							"name":     courseTitle,
							"sku":      fmt.Sprintf("%d", courseID),
							"price":    total,
							"currency": "USD",
							"quantity": 1,
						},
					},
				},
				"amount": map[string]string{
					"currency": "USD",
					"total":    total,
				},
				"description":    courseTitle,
				"invoice_number": receiptTag,
			},
		},
	}

	var paymentResp paypalPaymentResponse
	var errResp paypalErrorResponse
	resp, err := s.client.R().
		SetAuthToken(accessToken).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		SetResult(&paymentResp).
		SetError(&errResp).
		Post("/v1/payments/payment")
	if err != nil {
		return nil, fmt.Errorf("failed to reach payment gateway: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("payment gateway rejected payment: %s %s", errResp.Name, errResp.Message)
	}

	session := &PaymentSession{PaymentID: paymentResp.ID}
	for _, link := range paymentResp.Links {
		if link.Rel == "approval_url" {
			session.ApproveURL = link.Href
			break
		}
	}
	if session.ApproveURL == "" {
		return nil, fmt.Errorf("payment gateway returned no approval url")
	}

	return session, nil
}

// ExecutePayment captures a previously approved payment
func (s *PayPalService) ExecutePayment(paymentID, payerID string) error {
	accessToken, err := s.getAccessToken()
	if err != nil {
		return err
	}

	var errResp paypalErrorResponse
	resp, err := s.client.R().
		SetAuthToken(accessToken).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"payer_id": payerID}).
		SetError(&errResp).
		Post("/v1/payments/payment/" + paymentID + "/execute")
	if err != nil {
		return fmt.Errorf("failed to reach payment gateway: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("payment gateway capture failed: %s %s", errResp.Name, errResp.Message)
	}

	return nil
}
