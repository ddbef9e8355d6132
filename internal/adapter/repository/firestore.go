package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"findhere/pkg/errors"
)

const (
	listingsCollection      = "listings"
	categoriesCollection    = "categories"
	profilesCollection      = "profiles"
	favoritesCollection     = "favorites"
	inquiriesCollection     = "inquiries"
	conversationsCollection = "conversations"
	messagesCollection      = "messages"
	ordersCollection        = "orders"
	reviewsCollection       = "reviews"
)

// getAllBatch is the largest number of document refs sent in one GetAll call.
const getAllBatch = 30

func IsNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}

func isAlreadyExists(err error) bool {
	return status.Code(err) == codes.AlreadyExists
}

// collect drains a query into typed values. what names the entity for error
// messages.
func collect[T any](ctx context.Context, q firestore.Query, what string) ([]*T, error) {
	iter := q.Documents(ctx)
	defer iter.Stop()

	out := make([]*T, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate "+what, err)
		}

		var v T
		if err := doc.DataTo(&v); err != nil {
			return nil, errors.Internal("Failed to parse "+what+" data", err)
		}
		out = append(out, &v)
	}
	return out, nil
}

// getByIDs fetches documents in batches and returns the ones that exist keyed
// by document id.
func getByIDs[T any](ctx context.Context, client *firestore.Client, collection string, ids []string) (map[string]*T, error) {
	out := make(map[string]*T, len(ids))
	seen := make(map[string]bool, len(ids))
	unique := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		unique = append(unique, id)
	}

	for i := 0; i < len(unique); i += getAllBatch {
		end := i + getAllBatch
		if end > len(unique) {
			end = len(unique)
		}

		refs := make([]*firestore.DocumentRef, 0, end-i)
		for _, id := range unique[i:end] {
			refs = append(refs, client.Collection(collection).Doc(id))
		}

		docs, err := client.GetAll(ctx, refs)
		if err != nil {
			return nil, errors.Internal("Failed to batch fetch "+collection, err)
		}

		for _, doc := range docs {
			if doc == nil || !doc.Exists() {
				continue
			}
			var v T
			if err := doc.DataTo(&v); err != nil {
				continue
			}
			out[doc.Ref.ID] = &v
		}
	}
	return out, nil
}
