package usecase

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"findhere/internal/domain/entity"
	"findhere/internal/domain/service"
	"findhere/pkg/errors"
)

type fakeListingRepo struct {
	mu       sync.Mutex
	listings map[string]*entity.Listing
	views    map[string]int
	nextID   int
	listErr  error
}

func newFakeListingRepo(listings ...*entity.Listing) *fakeListingRepo {
	r := &fakeListingRepo{listings: map[string]*entity.Listing{}, views: map[string]int{}}
	for _, l := range listings {
		r.listings[l.ID] = l
	}
	return r
}

func (r *fakeListingRepo) Create(_ context.Context, l *entity.Listing) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if l.ID == "" {
		r.nextID++
		l.ID = fmt.Sprintf("listing-%d", r.nextID)
	}
	if l.CreatedAt.IsZero() {
		l.CreatedAt = time.Now()
	}
	r.listings[l.ID] = l
	return nil
}

func (r *fakeListingRepo) GetByID(_ context.Context, id string) (*entity.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.listings[id]
	if !ok {
		return nil, errors.NotFound("Listing", nil)
	}
	cp := *l
	return &cp, nil
}

func (r *fakeListingRepo) GetByIDs(_ context.Context, ids []string) (map[string]*entity.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := map[string]*entity.Listing{}
	for _, id := range ids {
		if l, ok := r.listings[id]; ok {
			out[id] = l
		}
	}
	return out, nil
}

func (r *fakeListingRepo) Update(_ context.Context, l *entity.Listing) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listings[l.ID] = l
	return nil
}

func (r *fakeListingRepo) UpdateStatus(_ context.Context, id, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.listings[id]
	if !ok {
		return errors.NotFound("Listing", nil)
	}
	l.Status = status
	return nil
}

func (r *fakeListingRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.listings, id)
	return nil
}

func (r *fakeListingRepo) IncrementViews(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.views[id]++
	return nil
}

func (r *fakeListingRepo) viewCount(id string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.views[id]
}

func (r *fakeListingRepo) sorted(keep func(*entity.Listing) bool) []*entity.Listing {
	out := []*entity.Listing{}
	for _, l := range r.listings {
		if keep(l) {
			out = append(out, l)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func (r *fakeListingRepo) ListActive(_ context.Context) ([]*entity.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.listErr != nil {
		return nil, r.listErr
	}
	return r.sorted(func(l *entity.Listing) bool { return l.Status == entity.ListingStatusActive }), nil
}

func (r *fakeListingRepo) ListByOwner(_ context.Context, userID string) ([]*entity.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sorted(func(l *entity.Listing) bool { return l.UserID == userID }), nil
}

type fakeCategoryRepo struct {
	categories []*entity.Category
	err        error
}

func (r *fakeCategoryRepo) GetByID(_ context.Context, id string) (*entity.Category, error) {
	for _, c := range r.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, errors.NotFound("Category", nil)
}

func (r *fakeCategoryRepo) List(_ context.Context) ([]*entity.Category, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.categories, nil
}

type fakeProfileRepo struct {
	mu       sync.Mutex
	profiles map[string]*entity.Profile
	err      error
}

func newFakeProfileRepo(profiles ...*entity.Profile) *fakeProfileRepo {
	r := &fakeProfileRepo{profiles: map[string]*entity.Profile{}}
	for _, p := range profiles {
		r.profiles[p.ID] = p
	}
	return r
}

func (r *fakeProfileRepo) GetByID(_ context.Context, id string) (*entity.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	p, ok := r.profiles[id]
	if !ok {
		return nil, errors.NotFound("Profile", nil)
	}
	return p, nil
}

func (r *fakeProfileRepo) GetByIDs(_ context.Context, ids []string) (map[string]*entity.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	out := map[string]*entity.Profile{}
	for _, id := range ids {
		if p, ok := r.profiles[id]; ok {
			out[id] = p
		}
	}
	return out, nil
}

func (r *fakeProfileRepo) Upsert(_ context.Context, p *entity.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profiles[p.ID] = p
	return nil
}

type fakeFavoriteRepo struct {
	favorites []*entity.Favorite
}

func (r *fakeFavoriteRepo) Add(_ context.Context, f *entity.Favorite) error {
	for _, existing := range r.favorites {
		if existing.UserID == f.UserID && existing.ListingID == f.ListingID {
			return errors.Conflict("Listing already in favorites")
		}
	}
	f.ID = f.UserID + "_" + f.ListingID
	r.favorites = append(r.favorites, f)
	return nil
}

func (r *fakeFavoriteRepo) Remove(_ context.Context, userID, listingID string) error {
	for i, f := range r.favorites {
		if f.UserID == userID && f.ListingID == listingID {
			r.favorites = append(r.favorites[:i], r.favorites[i+1:]...)
			return nil
		}
	}
	return errors.NotFound("Favorite", nil)
}

func (r *fakeFavoriteRepo) Exists(_ context.Context, userID, listingID string) (bool, error) {
	for _, f := range r.favorites {
		if f.UserID == userID && f.ListingID == listingID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeFavoriteRepo) ListByUser(_ context.Context, userID string) ([]*entity.Favorite, error) {
	out := []*entity.Favorite{}
	for i := len(r.favorites) - 1; i >= 0; i-- {
		if r.favorites[i].UserID == userID {
			out = append(out, r.favorites[i])
		}
	}
	return out, nil
}

type fakeInquiryRepo struct {
	inquiries map[string]*entity.Inquiry
	order     []string
}

func newFakeInquiryRepo() *fakeInquiryRepo {
	return &fakeInquiryRepo{inquiries: map[string]*entity.Inquiry{}}
}

func (r *fakeInquiryRepo) Create(_ context.Context, i *entity.Inquiry) error {
	i.ID = fmt.Sprintf("inquiry-%d", len(r.order)+1)
	r.inquiries[i.ID] = i
	r.order = append(r.order, i.ID)
	return nil
}

func (r *fakeInquiryRepo) GetByID(_ context.Context, id string) (*entity.Inquiry, error) {
	i, ok := r.inquiries[id]
	if !ok {
		return nil, errors.NotFound("Inquiry", nil)
	}
	cp := *i
	return &cp, nil
}

func (r *fakeInquiryRepo) list(match func(*entity.Inquiry) bool) []*entity.Inquiry {
	out := []*entity.Inquiry{}
	for _, id := range r.order {
		if match(r.inquiries[id]) {
			out = append(out, r.inquiries[id])
		}
	}
	return out
}

func (r *fakeInquiryRepo) ListBySeller(_ context.Context, sellerID string) ([]*entity.Inquiry, error) {
	return r.list(func(i *entity.Inquiry) bool { return i.SellerID == sellerID }), nil
}

func (r *fakeInquiryRepo) ListByBuyer(_ context.Context, buyerID string) ([]*entity.Inquiry, error) {
	return r.list(func(i *entity.Inquiry) bool { return i.BuyerID == buyerID }), nil
}

func (r *fakeInquiryRepo) UpdateStatus(_ context.Context, id, status string) error {
	i, ok := r.inquiries[id]
	if !ok {
		return errors.NotFound("Inquiry", nil)
	}
	i.Status = status
	return nil
}

type fakeConversationRepo struct {
	conversations map[string]*entity.Conversation
	messages      map[string][]*entity.ConversationMessage
	createErr     error
}

func newFakeConversationRepo() *fakeConversationRepo {
	return &fakeConversationRepo{
		conversations: map[string]*entity.Conversation{},
		messages:      map[string][]*entity.ConversationMessage{},
	}
}

func (r *fakeConversationRepo) Create(_ context.Context, c *entity.Conversation) error {
	if r.createErr != nil {
		return r.createErr
	}
	c.ID = fmt.Sprintf("conv-%d", len(r.conversations)+1)
	r.conversations[c.ID] = c
	return nil
}

func (r *fakeConversationRepo) GetByID(_ context.Context, id string) (*entity.Conversation, error) {
	c, ok := r.conversations[id]
	if !ok {
		return nil, errors.NotFound("Conversation", nil)
	}
	return c, nil
}

func (r *fakeConversationRepo) ListByUser(_ context.Context, userID string) ([]*entity.Conversation, error) {
	out := []*entity.Conversation{}
	for _, c := range r.conversations {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeConversationRepo) AddMessage(_ context.Context, m *entity.ConversationMessage) error {
	if _, ok := r.conversations[m.ConversationID]; !ok {
		return errors.NotFound("Conversation", nil)
	}
	r.messages[m.ConversationID] = append(r.messages[m.ConversationID], m)
	return nil
}

func (r *fakeConversationRepo) ListMessages(_ context.Context, id string) ([]*entity.ConversationMessage, error) {
	return r.messages[id], nil
}

type fakeOrderRepo struct {
	orders []*entity.Order
	err    error
}

func (r *fakeOrderRepo) Create(_ context.Context, o *entity.Order) error {
	if r.err != nil {
		return r.err
	}
	o.ID = fmt.Sprintf("order-%d", len(r.orders)+1)
	r.orders = append(r.orders, o)
	return nil
}

func (r *fakeOrderRepo) GetByID(_ context.Context, id string) (*entity.Order, error) {
	for _, o := range r.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, errors.NotFound("Order", nil)
}

func (r *fakeOrderRepo) ListByBuyer(_ context.Context, buyerID string) ([]*entity.Order, error) {
	out := []*entity.Order{}
	for _, o := range r.orders {
		if o.BuyerID == buyerID {
			out = append(out, o)
		}
	}
	return out, nil
}

type fakeCache struct {
	catalog     *entity.Catalog
	sets        int
	invalidated int
}

func (c *fakeCache) Get(context.Context) (*entity.Catalog, bool) {
	return c.catalog, c.catalog != nil
}

func (c *fakeCache) Set(_ context.Context, catalog *entity.Catalog) {
	c.catalog = catalog
	c.sets++
}

func (c *fakeCache) Invalidate(context.Context) {
	c.catalog = nil
	c.invalidated++
}

type notification struct {
	userID  string
	msgType string
	data    interface{}
}

type fakeNotifier struct {
	sent   []notification
	online bool
}

func (n *fakeNotifier) Notify(userID, msgType string, data interface{}) bool {
	n.sent = append(n.sent, notification{userID, msgType, data})
	return n.online
}

type fakeCompleter struct {
	reply    string
	err      error
	received []service.ChatMessage
}

func (c *fakeCompleter) Complete(_ context.Context, messages []service.ChatMessage) (string, error) {
	c.received = messages
	return c.reply, c.err
}

type fakeLimiter struct {
	allow    bool
	wait     time.Duration
	subjects []string
}

func (l *fakeLimiter) Allow(subject, _ string) (bool, time.Duration) {
	l.subjects = append(l.subjects, subject)
	return l.allow, l.wait
}

type fakePayments struct {
	req service.PaymentIntentRequest
	err error
}

func (p *fakePayments) CreatePaymentIntent(_ context.Context, req service.PaymentIntentRequest) (*service.PaymentIntent, error) {
	p.req = req
	if p.err != nil {
		return nil, p.err
	}
	return &service.PaymentIntent{ID: "pi_1", ClientSecret: "pi_1_secret"}, nil
}

type fakeImages struct {
	uploaded []string
	deleted  []string
}

func (s *fakeImages) UploadFile(_ context.Context, file io.Reader, contentType, folder string) (string, error) {
	if _, err := io.ReadAll(file); err != nil {
		return "", err
	}
	url := "https://storage.googleapis.com/bucket/" + folder + "/img"
	s.uploaded = append(s.uploaded, url)
	return url, nil
}

func (s *fakeImages) DeleteFile(_ context.Context, url string) error {
	s.deleted = append(s.deleted, url)
	return nil
}

func (s *fakeImages) Close() error { return nil }

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }

type fakeReviewRepo struct {
	reviews []*entity.Review
}

func (r *fakeReviewRepo) Create(_ context.Context, review *entity.Review) error {
	for _, existing := range r.reviews {
		if existing.ReviewerID == review.ReviewerID && existing.ListingID == review.ListingID {
			return errors.Conflict("You have already reviewed this listing")
		}
	}
	review.ID = review.ReviewerID + "_" + review.ListingID
	r.reviews = append(r.reviews, review)
	return nil
}

func (r *fakeReviewRepo) ListByReviewedUser(_ context.Context, userID string) ([]*entity.Review, error) {
	out := []*entity.Review{}
	for i := len(r.reviews) - 1; i >= 0; i-- {
		if r.reviews[i].ReviewedUserID == userID {
			out = append(out, r.reviews[i])
		}
	}
	return out, nil
}
