// Package googleauth verifies Google ID tokens presented by the mobile and
// web clients during sign-in.
package googleauth

import (
	"context"
	"fmt"

	"google.golang.org/api/idtoken"

	"kikao-backend/pkg/utils"
)

// Profile is the verified identity extracted from a Google ID token.
type Profile struct {
	Subject string
	Email   string
	Name    string
	Picture string
}

type Verifier struct {
	clientID string
}

func NewVerifier(cfg utils.GoogleConfig) *Verifier {
	return &Verifier{clientID: cfg.ClientID}
}

func (v *Verifier) Verify(ctx context.Context, rawToken string) (*Profile, error) {
	payload, err := idtoken.Validate(ctx, rawToken, v.clientID)
	if err != nil {
		return nil, fmt.Errorf("validate google id token: %w", err)
	}

	profile := &Profile{Subject: payload.Subject}

	if email, ok := payload.Claims["email"].(string); ok {
		profile.Email = email
	}
	if name, ok := payload.Claims["name"].(string); ok {
		profile.Name = name
	}
	if picture, ok := payload.Claims["picture"].(string); ok {
		profile.Picture = picture
	}

	if profile.Email == "" {
		return nil, fmt.Errorf("google token does not carry an email claim")
	}

	return profile, nil
}
