package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"gametrade/internal/gateway"
	dbm "gametrade/internal/models/db_models"
	rqm "gametrade/internal/models/request_models"
	"gametrade/pkg/utils"
)

// fakeTxnRepo mirrors the semantics of the gorm-backed repository against
// in-memory maps, including the exactly-once guards, so the state machine
// tests exercise the real orchestration.
type fakeTxnRepo struct {
	listings map[uuid.UUID]*dbm.Listing
	txns     map[uuid.UUID]*dbm.Transaction
}

func newFakeTxnRepo() *fakeTxnRepo {
	return &fakeTxnRepo{
		listings: make(map[uuid.UUID]*dbm.Listing),
		txns:     make(map[uuid.UUID]*dbm.Transaction),
	}
}

func (f *fakeTxnRepo) addListing(listing *dbm.Listing) {
	if listing.ID == uuid.Nil {
		listing.ID = uuid.New()
	}
	f.listings[listing.ID] = listing
}

func (f *fakeTxnRepo) CreatePending(ctx context.Context, buyerID uuid.UUID, listingID uuid.UUID, quantity int) (*dbm.Transaction, error) {
	listing, ok := f.listings[listingID]
	if !ok {
		return nil, utils.ErrListingNotFound
	}
	if listing.Status != dbm.ListingStatusActive {
		return nil, utils.ErrListingUnavailable
	}
	if listing.UserID == buyerID {
		return nil, utils.ErrSelfPurchase
	}
	if listing.Quantity < quantity {
		return nil, utils.ErrOutOfStock
	}

	txn := &dbm.Transaction{
		Amount:        listing.Price * float64(quantity),
		Quantity:      quantity,
		Currency:      listing.Currency,
		Status:        dbm.TxnStatusPending,
		PaymentStatus: dbm.PaymentStatusPending,
		BuyerID:       buyerID,
		SellerID:      listing.UserID,
		ListingID:     listing.ID,
	}
	txn.ID = uuid.New()
	f.txns[txn.ID] = txn
	return txn, nil
}

func (f *fakeTxnRepo) AttachPaymentIntent(ctx context.Context, txnID uuid.UUID, intentID string, snapshot []byte) error {
	txn, ok := f.txns[txnID]
	if !ok {
		return utils.ErrTransactionNotFound
	}
	txn.StripePaymentIntentID = &intentID
	return nil
}

func (f *fakeTxnRepo) ReserveListing(ctx context.Context, listingID uuid.UUID) error {
	listing, ok := f.listings[listingID]
	if !ok {
		return utils.ErrListingNotFound
	}
	if listing.Status != dbm.ListingStatusActive {
		return utils.ErrListingUnavailable
	}
	listing.Status = dbm.ListingStatusPending
	return nil
}

func (f *fakeTxnRepo) Complete(ctx context.Context, txnID uuid.UUID) error {
	txn, ok := f.txns[txnID]
	if !ok {
		return utils.ErrTransactionNotFound
	}
	if txn.Terminal() {
		return utils.ErrTransactionFinal
	}
	listing := f.listings[txn.ListingID]
	if listing.Quantity < txn.Quantity {
		return utils.ErrOutOfStock
	}

	now := time.Now().Unix()
	txn.Status = dbm.TxnStatusCompleted
	txn.PaymentStatus = dbm.PaymentStatusPaid
	txn.CompletedAt = &now

	listing.Quantity -= txn.Quantity
	if listing.Quantity == 0 {
		listing.Status = dbm.ListingStatusSold
	} else {
		listing.Status = dbm.ListingStatusActive
	}
	return nil
}

func (f *fakeTxnRepo) Cancel(ctx context.Context, txnID uuid.UUID, paymentStatus dbm.PaymentStatus) error {
	txn, ok := f.txns[txnID]
	if !ok {
		return utils.ErrTransactionNotFound
	}
	if txn.Terminal() {
		return utils.ErrTransactionFinal
	}
	txn.Status = dbm.TxnStatusCancelled
	txn.PaymentStatus = paymentStatus

	listing := f.listings[txn.ListingID]
	if listing.Status != dbm.ListingStatusPending {
		return nil
	}
	// Another outstanding transaction holds the reservation; leave it.
	for _, other := range f.txns {
		if other.ListingID == txn.ListingID && other.ID != txn.ID && other.Status == dbm.TxnStatusPending {
			return nil
		}
	}
	listing.Status = dbm.ListingStatusActive
	return nil
}

func (f *fakeTxnRepo) GetByID(ctx context.Context, id uuid.UUID) (*dbm.Transaction, error) {
	txn, ok := f.txns[id]
	if !ok {
		return nil, nil
	}
	return txn, nil
}

func (f *fakeTxnRepo) GetByPaymentIntentID(ctx context.Context, intentID string) (*dbm.Transaction, error) {
	for _, txn := range f.txns {
		if txn.StripePaymentIntentID != nil && *txn.StripePaymentIntentID == intentID {
			return txn, nil
		}
	}
	return nil, nil
}

func (f *fakeTxnRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]dbm.Transaction, error) {
	var out []dbm.Transaction
	for _, txn := range f.txns {
		if txn.BuyerID == userID || txn.SellerID == userID {
			out = append(out, *txn)
		}
	}
	return out, nil
}

// fakeGateway records calls and optionally fails or runs a hook, so tests
// can inject races into the window where no row lock is held.
type fakeGateway struct {
	createErr   error
	cancelErr   error
	createCalls int
	cancelCalls int
	onCreate    func()
}

func (f *fakeGateway) CreatePaymentIntent(ctx context.Context, transactionID uuid.UUID, amount float64) (*gateway.PaymentIntent, error) {
	f.createCalls++
	if f.onCreate != nil {
		f.onCreate()
	}
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &gateway.PaymentIntent{
		ID:           fmt.Sprintf("pi_%d", f.createCalls),
		ClientSecret: fmt.Sprintf("pi_%d_secret_test", f.createCalls),
		AmountMinor:  utils.ToMinorUnits(amount),
		Status:       "requires_payment_method",
	}, nil
}

func (f *fakeGateway) CancelPaymentIntent(ctx context.Context, intentID string) error {
	f.cancelCalls++
	return f.cancelErr
}

func (f *fakeGateway) DecodeWebhookEvent(payload []byte, signatureHeader string) (*gateway.WebhookEvent, error) {
	return nil, utils.ErrWebhookSignature
}

// fakeReviewRepo keeps reviews in a slice and tracks score recomputation.
type fakeReviewRepo struct {
	reviews []*dbm.Review
}

func (f *fakeReviewRepo) CreateAndScore(ctx context.Context, review *dbm.Review) error {
	review.ID = uuid.New()
	f.reviews = append(f.reviews, review)
	return nil
}

func (f *fakeReviewRepo) ExistsForTransaction(ctx context.Context, transactionID uuid.UUID, reviewerID uuid.UUID) (bool, error) {
	for _, r := range f.reviews {
		if r.TransactionID == transactionID && r.ReviewerID == reviewerID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeReviewRepo) ListByReviewee(ctx context.Context, revieweeID uuid.UUID, page, pageSize int) ([]dbm.Review, error) {
	var out []dbm.Review
	for _, r := range f.reviews {
		if r.RevieweeID == revieweeID {
			out = append(out, *r)
		}
	}
	return out, nil
}

type fakeListingRepo struct {
	listings map[uuid.UUID]*dbm.Listing
	modLogs  []*dbm.ModerationLog
}

func newFakeListingRepo() *fakeListingRepo {
	return &fakeListingRepo{listings: make(map[uuid.UUID]*dbm.Listing)}
}

func (f *fakeListingRepo) Create(ctx context.Context, listing *dbm.Listing, images []dbm.ListingImage) error {
	if listing.ID == uuid.Nil {
		listing.ID = uuid.New()
	}
	for i := range images {
		images[i].ListingID = listing.ID
		listing.Images = append(listing.Images, images[i])
	}
	f.listings[listing.ID] = listing
	return nil
}

func (f *fakeListingRepo) GetByID(ctx context.Context, id uuid.UUID) (*dbm.Listing, error) {
	listing, ok := f.listings[id]
	if !ok {
		return nil, nil
	}
	return listing, nil
}

func (f *fakeListingRepo) List(ctx context.Context, filter rqm.ListingFilter) ([]dbm.Listing, error) {
	var out []dbm.Listing
	status := filter.Status
	if status == "" {
		status = string(dbm.ListingStatusActive)
	}
	for _, l := range f.listings {
		if string(l.Status) == status {
			out = append(out, *l)
		}
	}
	return out, nil
}

func (f *fakeListingRepo) SetStatus(ctx context.Context, id uuid.UUID, status dbm.ListingStatus, logEntry *dbm.ModerationLog) error {
	listing, ok := f.listings[id]
	if !ok {
		return utils.ErrListingNotFound
	}
	listing.Status = status
	if logEntry != nil {
		logEntry.ListingID = id
		logEntry.Action = status
		f.modLogs = append(f.modLogs, logEntry)
	}
	return nil
}

// fakeCatalogRepo backs the category and game catalog tests.
type fakeCatalogRepo struct {
	categories map[uuid.UUID]*dbm.Category
	games      []*dbm.Game
}

func newFakeCatalogRepo() *fakeCatalogRepo {
	return &fakeCatalogRepo{categories: make(map[uuid.UUID]*dbm.Category)}
}

func (f *fakeCatalogRepo) ListGames(ctx context.Context) ([]dbm.Game, error) {
	var out []dbm.Game
	for _, g := range f.games {
		out = append(out, *g)
	}
	return out, nil
}

func (f *fakeCatalogRepo) CreateGame(ctx context.Context, game *dbm.Game) error {
	game.ID = uuid.New()
	f.games = append(f.games, game)
	return nil
}

func (f *fakeCatalogRepo) ListServiceTypes(ctx context.Context) ([]dbm.ServiceType, error) {
	return nil, nil
}

func (f *fakeCatalogRepo) CreateServiceType(ctx context.Context, st *dbm.ServiceType) error {
	st.ID = uuid.New()
	return nil
}

func (f *fakeCatalogRepo) ListCategories(ctx context.Context) ([]dbm.Category, error) {
	var out []dbm.Category
	for _, c := range f.categories {
		out = append(out, *c)
	}
	return out, nil
}

func (f *fakeCatalogRepo) GetCategoryByID(ctx context.Context, id uuid.UUID) (*dbm.Category, error) {
	c, ok := f.categories[id]
	if !ok {
		return nil, nil
	}
	return c, nil
}

func (f *fakeCatalogRepo) GetCategoryByName(ctx context.Context, name string) (*dbm.Category, error) {
	for _, c := range f.categories {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCatalogRepo) CreateCategory(ctx context.Context, category *dbm.Category) error {
	category.ID = uuid.New()
	f.categories[category.ID] = category
	return nil
}

type fakeUserRepo struct {
	users map[uuid.UUID]*dbm.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*dbm.User)}
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*dbm.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*dbm.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	return u, nil
}

func (f *fakeUserRepo) Insert(ctx context.Context, user *dbm.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	f.users[user.ID] = user
	return nil
}
