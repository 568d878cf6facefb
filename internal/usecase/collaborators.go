package usecase

import (
	"context"
	"io"

	"kikao-backend/pkg/googleauth"
	"kikao-backend/pkg/mpesa"
)

// Collaborator interfaces for everything the services reach outside the
// database for. Defined here so tests can substitute fakes.

type GoogleVerifier interface {
	Verify(ctx context.Context, rawToken string) (*googleauth.Profile, error)
}

type PaymentGateway interface {
	STKPush(ctx context.Context, phoneNumber string, amount int, accountRef string) (*mpesa.STKPushResponse, error)
}

type ImageStore interface {
	Upload(ctx context.Context, filename, contentType string, r io.Reader) (string, error)
}

// Notifier sends fire-and-forget notifications. Failures are logged and
// never surface to the request that triggered them.
type Notifier interface {
	SendWelcome(username, to string) error
}

type DescriptionGenerator interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// UploadedImage is one multipart file part read into memory by the handler.
type UploadedImage struct {
	Filename    string
	ContentType string
	Data        []byte
}
