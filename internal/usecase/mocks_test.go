package usecase

import (
	"context"
	"io"

	"github.com/google/uuid"

	"kikao-backend/internal/data/entity"
	"kikao-backend/internal/data/repository"
	"kikao-backend/pkg/googleauth"
	"kikao-backend/pkg/mpesa"
)

// Function-field fakes for the repository interfaces and collaborators.
// Unset fields panic, which makes an unexpected call an immediate failure.

type fakeUserRepo struct {
	CreateFn         func(ctx context.Context, user *entity.User) error
	FindByIDFn       func(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByProviderFn func(ctx context.Context, provider entity.AuthProvider, providerUserID string) (*entity.User, error)
	UpdateBusinessFn func(ctx context.Context, userID uuid.UUID, info entity.BusinessInfo) (*entity.User, error)
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	return f.CreateFn(ctx, user)
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return f.FindByIDFn(ctx, id)
}

func (f *fakeUserRepo) FindByProvider(ctx context.Context, provider entity.AuthProvider, providerUserID string) (*entity.User, error) {
	return f.FindByProviderFn(ctx, provider, providerUserID)
}

func (f *fakeUserRepo) UpdateBusiness(ctx context.Context, userID uuid.UUID, info entity.BusinessInfo) (*entity.User, error) {
	return f.UpdateBusinessFn(ctx, userID, info)
}

type fakeListingRepo struct {
	CreateAggregateFn func(ctx context.Context, listing *entity.Listing, rate *entity.Rate, comp *entity.Compartment) (*entity.ListingAggregate, error)
	UpdateAggregateFn func(ctx context.Context, upd *entity.ListingUpdate) (*entity.ListingAggregate, error)
	DeleteFn          func(ctx context.Context, id uuid.UUID) error
	FindByIDFn        func(ctx context.Context, id uuid.UUID) (*entity.ListingAggregate, error)
	FindAllFn         func(ctx context.Context) ([]*entity.ListingAggregate, error)
	FindByUserIDFn    func(ctx context.Context, userID uuid.UUID) ([]*entity.ListingAggregate, error)
	FilterFn          func(ctx context.Context, filters entity.ListingFilters) ([]*entity.ListingAggregate, error)
}

func (f *fakeListingRepo) CreateAggregate(ctx context.Context, listing *entity.Listing, rate *entity.Rate, comp *entity.Compartment) (*entity.ListingAggregate, error) {
	return f.CreateAggregateFn(ctx, listing, rate, comp)
}

func (f *fakeListingRepo) UpdateAggregate(ctx context.Context, upd *entity.ListingUpdate) (*entity.ListingAggregate, error) {
	return f.UpdateAggregateFn(ctx, upd)
}

func (f *fakeListingRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return f.DeleteFn(ctx, id)
}

func (f *fakeListingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.ListingAggregate, error) {
	return f.FindByIDFn(ctx, id)
}

func (f *fakeListingRepo) FindAll(ctx context.Context) ([]*entity.ListingAggregate, error) {
	return f.FindAllFn(ctx)
}

func (f *fakeListingRepo) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.ListingAggregate, error) {
	return f.FindByUserIDFn(ctx, userID)
}

func (f *fakeListingRepo) Filter(ctx context.Context, filters entity.ListingFilters) ([]*entity.ListingAggregate, error) {
	return f.FilterFn(ctx, filters)
}

type fakeBookmarkRepo struct {
	CreateFn          func(ctx context.Context, bookmark *entity.Bookmark) error
	FindByIDFn        func(ctx context.Context, id uuid.UUID) (*entity.Bookmark, error)
	FindByUserIDFn    func(ctx context.Context, userID uuid.UUID) ([]*entity.Bookmark, error)
	FindByListingIDFn func(ctx context.Context, listingID uuid.UUID) ([]*entity.Bookmark, error)
	DeleteFn          func(ctx context.Context, id uuid.UUID) error
}

func (f *fakeBookmarkRepo) Create(ctx context.Context, bookmark *entity.Bookmark) error {
	return f.CreateFn(ctx, bookmark)
}

func (f *fakeBookmarkRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Bookmark, error) {
	return f.FindByIDFn(ctx, id)
}

func (f *fakeBookmarkRepo) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Bookmark, error) {
	return f.FindByUserIDFn(ctx, userID)
}

func (f *fakeBookmarkRepo) FindByListingID(ctx context.Context, listingID uuid.UUID) ([]*entity.Bookmark, error) {
	return f.FindByListingIDFn(ctx, listingID)
}

func (f *fakeBookmarkRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return f.DeleteFn(ctx, id)
}

type fakeReviewRepo struct {
	CreateFn          func(ctx context.Context, review *entity.Review) error
	FindByIDFn        func(ctx context.Context, id uuid.UUID) (*entity.Review, error)
	FindByListingIDFn func(ctx context.Context, listingID uuid.UUID) ([]*entity.Review, error)
	DeleteFn          func(ctx context.Context, id uuid.UUID) error
}

func (f *fakeReviewRepo) Create(ctx context.Context, review *entity.Review) error {
	return f.CreateFn(ctx, review)
}

func (f *fakeReviewRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	return f.FindByIDFn(ctx, id)
}

func (f *fakeReviewRepo) FindByListingID(ctx context.Context, listingID uuid.UUID) ([]*entity.Review, error) {
	return f.FindByListingIDFn(ctx, listingID)
}

func (f *fakeReviewRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return f.DeleteFn(ctx, id)
}

type fakePaymentRepo struct {
	CreateFn                  func(ctx context.Context, payment *entity.Payment) error
	FindByCheckoutRequestIDFn func(ctx context.Context, checkoutRequestID string) (*entity.Payment, error)
	FindByTransactionIDFn     func(ctx context.Context, transactionID string) (*entity.Payment, error)
	FindByUserIDFn            func(ctx context.Context, userID uuid.UUID, limit, offset int, status *entity.PaymentStatus) ([]*entity.Payment, error)
	ReconcileFn               func(ctx context.Context, checkoutRequestID string, rec entity.PaymentReconciliation) (*entity.Payment, error)
}

func (f *fakePaymentRepo) Create(ctx context.Context, payment *entity.Payment) error {
	return f.CreateFn(ctx, payment)
}

func (f *fakePaymentRepo) FindByCheckoutRequestID(ctx context.Context, checkoutRequestID string) (*entity.Payment, error) {
	return f.FindByCheckoutRequestIDFn(ctx, checkoutRequestID)
}

func (f *fakePaymentRepo) FindByTransactionID(ctx context.Context, transactionID string) (*entity.Payment, error) {
	return f.FindByTransactionIDFn(ctx, transactionID)
}

func (f *fakePaymentRepo) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int, status *entity.PaymentStatus) ([]*entity.Payment, error) {
	return f.FindByUserIDFn(ctx, userID, limit, offset, status)
}

func (f *fakePaymentRepo) Reconcile(ctx context.Context, checkoutRequestID string, rec entity.PaymentReconciliation) (*entity.Payment, error) {
	return f.ReconcileFn(ctx, checkoutRequestID, rec)
}

func testRepository() *repository.Repository {
	return &repository.Repository{
		User:     &fakeUserRepo{},
		Listing:  &fakeListingRepo{},
		Bookmark: &fakeBookmarkRepo{},
		Review:   &fakeReviewRepo{},
		Payment:  &fakePaymentRepo{},
	}
}

type fakeGoogleVerifier struct {
	VerifyFn func(ctx context.Context, rawToken string) (*googleauth.Profile, error)
}

func (f *fakeGoogleVerifier) Verify(ctx context.Context, rawToken string) (*googleauth.Profile, error) {
	return f.VerifyFn(ctx, rawToken)
}

type fakeGateway struct {
	STKPushFn func(ctx context.Context, phoneNumber string, amount int, accountRef string) (*mpesa.STKPushResponse, error)
}

func (f *fakeGateway) STKPush(ctx context.Context, phoneNumber string, amount int, accountRef string) (*mpesa.STKPushResponse, error) {
	return f.STKPushFn(ctx, phoneNumber, amount, accountRef)
}

type fakeImageStore struct {
	UploadFn func(ctx context.Context, filename, contentType string, r io.Reader) (string, error)
}

func (f *fakeImageStore) Upload(ctx context.Context, filename, contentType string, r io.Reader) (string, error) {
	return f.UploadFn(ctx, filename, contentType, r)
}

type fakeNotifier struct {
	sent chan string
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{sent: make(chan string, 1)}
}

func (f *fakeNotifier) SendWelcome(username, to string) error {
	f.sent <- to
	return nil
}

type fakeGenerator struct {
	CompleteFn func(ctx context.Context, prompt string) (string, error)
}

func (f *fakeGenerator) Complete(ctx context.Context, prompt string) (string, error) {
	return f.CompleteFn(ctx, prompt)
}
