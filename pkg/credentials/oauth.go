package credentials

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"time"
	"tracker/pkg/serrors"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// DefaultTokenLifetime is assumed when a token carries no expiry at all.
const DefaultTokenLifetime = time.Hour

// OAuthConfig describes a client-credentials grant.
type OAuthConfig struct {
	TokenURL       string
	ClientID       string
	ClientSecret   string
	Scopes         []string
	EndpointParams url.Values
	AuthStyle      oauth2.AuthStyle
}

// ClientCredentials returns a Fetcher performing the client-credentials
// exchange with httpClient (http.DefaultClient when nil).
//
// The token expiry comes from expires_in; when absent and the token is a JWT
// its exp claim is used, otherwise DefaultTokenLifetime. A 4xx response from
// the token endpoint is reported as serrors.ErrUnauthorized.
func ClientCredentials(cfg OAuthConfig, httpClient *http.Client) Fetcher {
	cc := clientcredentials.Config{
		ClientID:       cfg.ClientID,
		ClientSecret:   cfg.ClientSecret,
		TokenURL:       cfg.TokenURL,
		Scopes:         cfg.Scopes,
		EndpointParams: cfg.EndpointParams,
		AuthStyle:      cfg.AuthStyle,
	}

	return func(ctx context.Context) (Token, error) {
		if httpClient != nil {
			ctx = context.WithValue(ctx, oauth2.HTTPClient, httpClient)
		}

		tok, err := cc.Token(ctx)
		if err != nil {
			return Token{}, classifyTokenError(ctx, err)
		}

		expiresAt := tok.Expiry
		if expiresAt.IsZero() {
			expiresAt = expiryFromJWT(tok.AccessToken)
		}
		if expiresAt.IsZero() {
			expiresAt = time.Now().Add(DefaultTokenLifetime)
		}

		return Token{Value: tok.AccessToken, ExpiresAt: expiresAt}, nil
	}
}

func classifyTokenError(ctx context.Context, err error) error {
	var re *oauth2.RetrieveError
	if errors.As(err, &re) && re.Response != nil {
		switch code := re.Response.StatusCode; {
		case code == http.StatusTooManyRequests:
			return serrors.Wrap(serrors.ErrRateLimited, err, "token exchange rate limited")
		case code >= 400 && code < 500:
			return serrors.Wrap(serrors.ErrUnauthorized, err, "token exchange rejected")
		}
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return serrors.Wrap(serrors.ErrTimeout, err, "token exchange timed out")
	}

	return serrors.Wrap(serrors.ErrUnavailable, err, "could not exchange client credentials")
}

// expiryFromJWT reads the exp claim without verifying the signature. The
// token is only inspected for its lifetime, never trusted.
func expiryFromJWT(token string) time.Time {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}

	return exp.Time
}
