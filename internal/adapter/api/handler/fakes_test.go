package handler

import (
	"context"
	"io"
	"sort"
	"sync"

	"findhere/internal/domain/entity"
	"findhere/pkg/errors"
)

type memListings struct {
	mu       sync.Mutex
	listings map[string]*entity.Listing
}

func newMemListings(listings ...*entity.Listing) *memListings {
	m := &memListings{listings: map[string]*entity.Listing{}}
	for _, l := range listings {
		m.listings[l.ID] = l
	}
	return m
}

func (m *memListings) Create(_ context.Context, l *entity.Listing) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	l.ID = "new-listing"
	m.listings[l.ID] = l
	return nil
}

func (m *memListings) GetByID(_ context.Context, id string) (*entity.Listing, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	l, ok := m.listings[id]
	if !ok {
		return nil, errors.NotFound("Listing", nil)
	}
	cp := *l
	return &cp, nil
}

func (m *memListings) GetByIDs(_ context.Context, ids []string) (map[string]*entity.Listing, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := map[string]*entity.Listing{}
	for _, id := range ids {
		if l, ok := m.listings[id]; ok {
			out[id] = l
		}
	}
	return out, nil
}

func (m *memListings) Update(_ context.Context, l *entity.Listing) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listings[l.ID] = l
	return nil
}

func (m *memListings) UpdateStatus(_ context.Context, id, status string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listings[id].Status = status
	return nil
}

func (m *memListings) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.listings, id)
	return nil
}

func (m *memListings) IncrementViews(context.Context, string) error {
	return nil
}

func (m *memListings) list(keep func(*entity.Listing) bool) []*entity.Listing {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []*entity.Listing{}
	for _, l := range m.listings {
		if keep(l) {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (m *memListings) ListActive(context.Context) ([]*entity.Listing, error) {
	return m.list(func(l *entity.Listing) bool { return l.Status == entity.ListingStatusActive }), nil
}

func (m *memListings) ListByOwner(_ context.Context, userID string) ([]*entity.Listing, error) {
	return m.list(func(l *entity.Listing) bool { return l.UserID == userID }), nil
}

type memCategories []*entity.Category

func (m memCategories) GetByID(_ context.Context, id string) (*entity.Category, error) {
	for _, c := range m {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, errors.NotFound("Category", nil)
}

func (m memCategories) List(context.Context) ([]*entity.Category, error) {
	return m, nil
}

type memProfiles map[string]*entity.Profile

func (m memProfiles) GetByID(_ context.Context, id string) (*entity.Profile, error) {
	p, ok := m[id]
	if !ok {
		return nil, errors.NotFound("Profile", nil)
	}
	return p, nil
}

func (m memProfiles) GetByIDs(_ context.Context, ids []string) (map[string]*entity.Profile, error) {
	out := map[string]*entity.Profile{}
	for _, id := range ids {
		if p, ok := m[id]; ok {
			out[id] = p
		}
	}
	return out, nil
}

func (m memProfiles) Upsert(_ context.Context, p *entity.Profile) error {
	m[p.ID] = p
	return nil
}

type memImages struct {
	contentType string
	bytes       int
}

func (s *memImages) UploadFile(_ context.Context, file io.Reader, contentType, folder string) (string, error) {
	data, err := io.ReadAll(file)
	if err != nil {
		return "", err
	}
	s.contentType = contentType
	s.bytes = len(data)
	return "https://storage.googleapis.com/test-bucket/" + folder + "/photo.png", nil
}

func (s *memImages) DeleteFile(context.Context, string) error {
	return nil
}

func (s *memImages) Close() error {
	return nil
}

type memReviews struct {
	reviews []*entity.Review
}

func (m *memReviews) Create(_ context.Context, r *entity.Review) error {
	r.ID = r.ReviewerID + "_" + r.ListingID
	m.reviews = append(m.reviews, r)
	return nil
}

func (m *memReviews) ListByReviewedUser(_ context.Context, userID string) ([]*entity.Review, error) {
	out := []*entity.Review{}
	for _, r := range m.reviews {
		if r.ReviewedUserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}
