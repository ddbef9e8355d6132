package firebase

import (
	"context"
	"fmt"

	fbapp "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// FirebaseAuthClient verifies Firebase ID tokens sent by the web client.
type FirebaseAuthClient struct {
	client *auth.Client
}

func NewFirebaseAuthClient(client *auth.Client) *FirebaseAuthClient {
	return &FirebaseAuthClient{
		client: client,
	}
}

// NewApp initializes the Admin SDK for projectID.
func NewApp(ctx context.Context, projectID string, opts ...option.ClientOption) (*fbapp.App, error) {
	app, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: projectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("error initializing firebase app: %w", err)
	}
	return app, nil
}

// VerifyToken returns the uid the token was issued for.
func (f *FirebaseAuthClient) VerifyToken(ctx context.Context, token string) (string, error) {
	result, err := f.client.VerifyIDToken(ctx, token)
	if err != nil {
		return "", err
	}

	return result.UID, nil
}

// Email returns the email on the user's auth record, used to seed a profile.
func (f *FirebaseAuthClient) Email(ctx context.Context, uid string) (string, error) {
	user, err := f.client.GetUser(ctx, uid)
	if err != nil {
		return "", err
	}
	return user.Email, nil
}
