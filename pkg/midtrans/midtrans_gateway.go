package midtrans

import (
	"context"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"math"
	"strconv"

	"foodbridge-backend/domain"

	mt "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

const (
	StatusCapture    = "capture"
	StatusSettlement = "settlement"
	StatusPending    = "pending"
	StatusDeny       = "deny"
	StatusCancel     = "cancel"
	StatusExpire     = "expire"
	StatusFailure    = "failure"

	FraudAccept = "accept"
)

type (
	PaymentGateway interface {
		CreateTransaction(ctx context.Context, req ChargeRequest) (*ChargeResponse, error)
		VerifySignature(n domain.MidtransNotification) bool
	}

	ChargeItem struct {
		ID       string
		Name     string
		Price    float64
		Quantity int
	}

	ChargeRequest struct {
		OrderID       string
		BucketID      uint
		UserID        uint
		CustomerName  string
		CustomerEmail string
		Items         []ChargeItem
	}

	ChargeResponse struct {
		Token       string
		RedirectURL string
	}

	snapGateway struct {
		client    snap.Client
		serverKey string
	}
)

func NewSnapGateway(serverKey string, isProd bool) PaymentGateway {
	env := mt.Sandbox
	if isProd {
		env = mt.Production
	}

	g := &snapGateway{serverKey: serverKey}
	g.client.New(serverKey, env)
	return g
}

func (g *snapGateway) CreateTransaction(_ context.Context, req ChargeRequest) (*ChargeResponse, error) {
	snapReq := BuildSnapRequest(req)

	res, mErr := g.client.CreateTransaction(snapReq)
	if mErr != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrPaymentGateway, mErr.GetMessage())
	}
	return &ChargeResponse{
		Token:       res.Token,
		RedirectURL: res.RedirectURL,
	}, nil
}

func (g *snapGateway) VerifySignature(n domain.MidtransNotification) bool {
	return VerifySignature(n, g.serverKey)
}

// BuildSnapRequest converts prices to whole rupiah. The gross amount is the
// sum of the item lines so Midtrans accepts the item details.
func BuildSnapRequest(req ChargeRequest) *snap.Request {
	items := make([]mt.ItemDetails, 0, len(req.Items))
	var gross int64
	for _, it := range req.Items {
		price := int64(math.Round(it.Price))
		items = append(items, mt.ItemDetails{
			ID:    it.ID,
			Name:  truncate(it.Name, 50),
			Price: price,
			Qty:   int32(it.Quantity),
		})
		gross += price * int64(it.Quantity)
	}

	return &snap.Request{
		TransactionDetails: mt.TransactionDetails{
			OrderID:  req.OrderID,
			GrossAmt: gross,
		},
		CustomerDetail: &mt.CustomerDetails{
			FName: req.CustomerName,
			Email: req.CustomerEmail,
		},
		Items:        &items,
		CustomField1: strconv.FormatUint(uint64(req.BucketID), 10),
		CustomField2: strconv.FormatUint(uint64(req.UserID), 10),
	}
}

// SignatureKey is sha512(order_id + status_code + gross_amount + server_key) in hex.
func SignatureKey(orderID, statusCode, grossAmount, serverKey string) string {
	sum := sha512.Sum512([]byte(orderID + statusCode + grossAmount + serverKey))
	return hex.EncodeToString(sum[:])
}

func VerifySignature(n domain.MidtransNotification, serverKey string) bool {
	if n.SignatureKey == "" {
		return false
	}
	expected := SignatureKey(n.OrderID, n.StatusCode, n.GrossAmount, serverKey)
	return subtle.ConstantTimeCompare([]byte(expected), []byte(n.SignatureKey)) == 1
}

// IsSuccess reports a settled payment. A capture only counts once fraud
// screening accepted it.
func IsSuccess(transactionStatus, fraudStatus string) bool {
	switch transactionStatus {
	case StatusSettlement:
		return true
	case StatusCapture:
		return fraudStatus == FraudAccept
	}
	return false
}

func IsFailure(transactionStatus string) bool {
	switch transactionStatus {
	case StatusDeny, StatusCancel, StatusExpire, StatusFailure:
		return true
	}
	return false
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
