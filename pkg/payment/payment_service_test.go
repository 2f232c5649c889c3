package payment

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"foodbridge-backend/domain"
	"foodbridge-backend/entities"
	"foodbridge-backend/internal/testutil"
	"foodbridge-backend/internal/utils/cache"
	"foodbridge-backend/internal/utils/events"
	"foodbridge-backend/pkg/bucket"
	"foodbridge-backend/pkg/midtrans"
	"foodbridge-backend/pkg/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const serverKey = "SB-server-key"

type fakeGateway struct {
	requests []midtrans.ChargeRequest
	err      error
}

func (g *fakeGateway) CreateTransaction(_ context.Context, req midtrans.ChargeRequest) (*midtrans.ChargeResponse, error) {
	if g.err != nil {
		return nil, g.err
	}
	g.requests = append(g.requests, req)
	return &midtrans.ChargeResponse{Token: "snap-token-" + req.OrderID, RedirectURL: "https://app.sandbox.midtrans.com/snap/v2/" + req.OrderID}, nil
}

func (g *fakeGateway) VerifySignature(n domain.MidtransNotification) bool {
	return midtrans.VerifySignature(n, serverKey)
}

// memoryDeduper stands in for redis.
type memoryDeduper struct {
	keys map[string]bool
}

func (d *memoryDeduper) Seen(_ context.Context, service, id string) (bool, error) {
	return d.keys[cache.DedupKey(service, id)], nil
}

func (d *memoryDeduper) Mark(_ context.Context, service, id string) error {
	d.keys[cache.DedupKey(service, id)] = true
	return nil
}

type fixture struct {
	svc       PaymentService
	db        *gorm.DB
	gateway   *fakeGateway
	deduper   *memoryDeduper
	publisher *testutil.RecordingPublisher
	buyer     *entities.User
	bucketSvc bucket.BucketService
}

func newFixture(t *testing.T, deduper cache.Deduper) *fixture {
	db := testutil.NewTestDB(t)
	gateway := &fakeGateway{}
	publisher := &testutil.RecordingPublisher{}
	mem, _ := deduper.(*memoryDeduper)
	bucketRepository := bucket.NewBucketRepository(db)

	return &fixture{
		svc: NewPaymentService(
			NewPaymentRepository(db),
			bucketRepository,
			user.NewUserRepository(db),
			gateway,
			deduper,
			publisher,
		),
		db:        db,
		gateway:   gateway,
		deduper:   mem,
		publisher: publisher,
		buyer:     testutil.SeedUser(t, db, entities.RoleBuyer),
		bucketSvc: bucket.NewBucketService(bucketRepository),
	}
}

func (f *fixture) fillBucket(t *testing.T) {
	restaurant := testutil.SeedRestaurant(t, f.db)
	rice := testutil.SeedProduct(t, f.db, restaurant.ID, 15000, 10)
	tea := testutil.SeedProduct(t, f.db, restaurant.ID, 5000, 10)
	ctx := context.Background()
	_, err := f.bucketSvc.AddItem(ctx, f.buyer.ID, domain.AddBucketItemRequest{ProductID: rice.ID, Quantity: 2})
	require.NoError(t, err)
	_, err = f.bucketSvc.AddItem(ctx, f.buyer.ID, domain.AddBucketItemRequest{ProductID: tea.ID, Quantity: 3})
	require.NoError(t, err)
}

func (f *fixture) payment(t *testing.T, orderID string) entities.Payment {
	var p entities.Payment
	require.NoError(t, f.db.Where("order_id = ?", orderID).First(&p).Error)
	return p
}

func (f *fixture) bucketStatus(t *testing.T, id uint) string {
	var b entities.FoodBucket
	require.NoError(t, f.db.First(&b, id).Error)
	return b.Status
}

func notification(orderID, trxID, status, bucketID string) domain.MidtransNotification {
	n := domain.MidtransNotification{
		TransactionID:     trxID,
		TransactionStatus: status,
		StatusCode:        "200",
		OrderID:           orderID,
		GrossAmount:       "45000.00",
		CustomField1:      bucketID,
	}
	n.SignatureKey = midtrans.SignatureKey(n.OrderID, n.StatusCode, n.GrossAmount, serverKey)
	return n
}

func TestCreatePaymentIntent(t *testing.T) {
	f := newFixture(t, &memoryDeduper{keys: map[string]bool{}})
	f.fillBucket(t)
	ctx := context.Background()

	res, err := f.svc.CreatePaymentIntent(ctx, f.buyer.ID)
	require.NoError(t, err)
	assert.Equal(t, float64(2*15000+3*5000), res.Amount)
	assert.Equal(t, "snap-token-"+res.OrderID, res.ClientSecret)

	require.Len(t, f.gateway.requests, 1)
	charge := f.gateway.requests[0]
	assert.Equal(t, f.buyer.ID, charge.UserID)
	assert.Equal(t, f.buyer.Email, charge.CustomerEmail)
	assert.Len(t, charge.Items, 2)

	p := f.payment(t, res.OrderID)
	assert.Equal(t, entities.PaymentPending, p.Status)
	assert.Equal(t, res.Amount, p.Amount)
	assert.Equal(t, charge.BucketID, p.FoodBucketID)
	assert.Equal(t, entities.FoodBucketPendingPayment, f.bucketStatus(t, p.FoodBucketID))

	// the bucket left the active state, a second checkout has nothing to pay
	_, err = f.svc.CreatePaymentIntent(ctx, f.buyer.ID)
	assert.ErrorIs(t, err, domain.ErrFoodBucketNotFound)
}

func TestCreatePaymentIntent_EmptyBucket(t *testing.T) {
	f := newFixture(t, cache.NewNoopDeduper())
	require.NoError(t, f.db.Create(&entities.FoodBucket{UserID: f.buyer.ID, Status: entities.FoodBucketActive}).Error)

	_, err := f.svc.CreatePaymentIntent(context.Background(), f.buyer.ID)
	assert.ErrorIs(t, err, domain.ErrEmptyFoodBucket)
	assert.Empty(t, f.gateway.requests)
}

func TestCreatePaymentIntent_GatewayError(t *testing.T) {
	f := newFixture(t, cache.NewNoopDeduper())
	f.fillBucket(t)
	f.gateway.err = errors.New("midtrans unavailable")

	_, err := f.svc.CreatePaymentIntent(context.Background(), f.buyer.ID)
	require.Error(t, err)

	var count int64
	require.NoError(t, f.db.Model(&entities.Payment{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
	_, err = f.bucketSvc.GetFoodBucket(context.Background(), f.buyer.ID)
	assert.NoError(t, err)
}

func TestHandleNotification_SettlementIsAppliedOnce(t *testing.T) {
	f := newFixture(t, &memoryDeduper{keys: map[string]bool{}})
	f.fillBucket(t)
	ctx := context.Background()
	intent, err := f.svc.CreatePaymentIntent(ctx, f.buyer.ID)
	require.NoError(t, err)
	bucketID := f.payment(t, intent.OrderID).FoodBucketID

	n := notification(intent.OrderID, "trx-1", midtrans.StatusSettlement, "")
	duplicate, err := f.svc.HandleNotification(ctx, n)
	require.NoError(t, err)
	assert.False(t, duplicate)

	assert.Equal(t, entities.PaymentPaid, f.payment(t, intent.OrderID).Status)
	assert.Equal(t, entities.FoodBucketPaid, f.bucketStatus(t, bucketID))
	assert.Equal(t, []string{events.EventPaymentPaid}, f.publisher.Types())

	// replay caught by the cache
	duplicate, err = f.svc.HandleNotification(ctx, n)
	require.NoError(t, err)
	assert.True(t, duplicate)

	// replay caught by the ledger when the cache has forgotten the key
	f.deduper.keys = map[string]bool{}
	duplicate, err = f.svc.HandleNotification(ctx, n)
	require.NoError(t, err)
	assert.True(t, duplicate)
	assert.Len(t, f.publisher.Events, 1)

	var ledger int64
	require.NoError(t, f.db.Model(&entities.ProcessedEvent{}).Count(&ledger).Error)
	assert.Equal(t, int64(1), ledger)
}

func TestHandleNotification_FailureReopensBucket(t *testing.T) {
	f := newFixture(t, cache.NewNoopDeduper())
	f.fillBucket(t)
	ctx := context.Background()
	intent, err := f.svc.CreatePaymentIntent(ctx, f.buyer.ID)
	require.NoError(t, err)
	p := f.payment(t, intent.OrderID)

	_, err = f.svc.HandleNotification(ctx, notification(intent.OrderID, "trx-2", midtrans.StatusExpire, itoa(p.FoodBucketID)))
	require.NoError(t, err)

	assert.Equal(t, entities.PaymentFailed, f.payment(t, intent.OrderID).Status)
	assert.Equal(t, entities.FoodBucketActive, f.bucketStatus(t, p.FoodBucketID))
	assert.Equal(t, []string{events.EventPaymentFailed}, f.publisher.Types())
}

func TestHandleNotification_LateFailureKeepsPaid(t *testing.T) {
	f := newFixture(t, cache.NewNoopDeduper())
	f.fillBucket(t)
	ctx := context.Background()
	intent, err := f.svc.CreatePaymentIntent(ctx, f.buyer.ID)
	require.NoError(t, err)
	p := f.payment(t, intent.OrderID)

	capture := notification(intent.OrderID, "trx-3", midtrans.StatusCapture, "")
	capture.FraudStatus = midtrans.FraudAccept
	_, err = f.svc.HandleNotification(ctx, capture)
	require.NoError(t, err)

	_, err = f.svc.HandleNotification(ctx, notification(intent.OrderID, "trx-3", midtrans.StatusCancel, ""))
	require.NoError(t, err)

	assert.Equal(t, entities.PaymentPaid, f.payment(t, intent.OrderID).Status)
	assert.Equal(t, entities.FoodBucketPaid, f.bucketStatus(t, p.FoodBucketID))
	assert.Equal(t, []string{events.EventPaymentPaid}, f.publisher.Types())
}

func TestHandleNotification_Rejections(t *testing.T) {
	f := newFixture(t, cache.NewNoopDeduper())
	ctx := context.Background()

	bad := notification("FB-x", "trx-4", midtrans.StatusSettlement, "")
	bad.SignatureKey = "forged"
	_, err := f.svc.HandleNotification(ctx, bad)
	assert.ErrorIs(t, err, domain.ErrInvalidSignature)

	_, err = f.svc.HandleNotification(ctx, notification("FB-unknown", "trx-5", midtrans.StatusSettlement, ""))
	assert.ErrorIs(t, err, domain.ErrPaymentNotFound)

	var ledger int64
	require.NoError(t, f.db.Model(&entities.ProcessedEvent{}).Count(&ledger).Error)
	assert.Equal(t, int64(0), ledger)
}

func TestHandleNotification_PendingIsRecordedOnly(t *testing.T) {
	f := newFixture(t, cache.NewNoopDeduper())
	f.fillBucket(t)
	ctx := context.Background()
	intent, err := f.svc.CreatePaymentIntent(ctx, f.buyer.ID)
	require.NoError(t, err)

	duplicate, err := f.svc.HandleNotification(ctx, notification(intent.OrderID, "trx-6", midtrans.StatusPending, ""))
	require.NoError(t, err)
	assert.False(t, duplicate)
	assert.Equal(t, entities.PaymentPending, f.payment(t, intent.OrderID).Status)
	assert.Empty(t, f.publisher.Events)
}

func TestHandleNotification_UsesStoredBucket(t *testing.T) {
	f := newFixture(t, cache.NewNoopDeduper())
	f.fillBucket(t)
	ctx := context.Background()
	intent, err := f.svc.CreatePaymentIntent(ctx, f.buyer.ID)
	require.NoError(t, err)
	p := f.payment(t, intent.OrderID)

	victim := testutil.SeedUser(t, f.db, entities.RoleBuyer)
	other := &entities.FoodBucket{UserID: victim.ID, Status: entities.FoodBucketActive}
	require.NoError(t, f.db.Create(other).Error)

	n := notification(intent.OrderID, "trx-7", midtrans.StatusSettlement, itoa(other.ID))
	duplicate, err := f.svc.HandleNotification(ctx, n)
	require.NoError(t, err)
	assert.False(t, duplicate)

	assert.Equal(t, entities.FoodBucketPaid, f.bucketStatus(t, p.FoodBucketID))
	assert.Equal(t, entities.FoodBucketActive, f.bucketStatus(t, other.ID))
}

func itoa(v uint) string {
	return strconv.FormatUint(uint64(v), 10)
}
