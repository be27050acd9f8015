package ednevnik

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"go.opentelemetry.io/otel/codes"
)

const (
	loginPagePath   = "/pocetna/prijava"
	loginSubmitPath = "/pocetna/posalji/"

	invalidCredentialsPhrase = "Krivo korisničko ime i/ili lozinka"
)

// Login performs the login handshake: the login page is fetched first so the
// session holds a token, which is then submitted along with the credentials.
//
// It returns ErrInvalidCredentials when the portal rejects the credentials and
// a *LoginError for anything else. Sessions that expire later are not renewed,
// call Login again.
func (c *Client) Login(ctx context.Context) error {
	ctx, span := tracer.Start(ctx, "client:Login")
	defer span.End()

	loginError := func(err error) error {
		c.tel.ReportBroken(report_client_login, err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return &LoginError{Err: err}
	}

	_, err := c.transport.request(ctx, loginPagePath, nil)
	if err != nil {
		return loginError(fmt.Errorf("login page: %w", err))
	}

	token, ok := c.session.Token()
	if !ok {
		c.tel.ReportWarning(report_client_login, fmt.Errorf("login page did not set a token"))
	}

	res, err := c.transport.request(ctx, loginSubmitPath, url.Values{
		"csrf_token":    {token},
		"user_login":    {c.email},
		"user_password": {c.password},
	})
	if err != nil {
		return loginError(fmt.Errorf("submit credentials: %w", err))
	}

	if strings.Contains(res.String(), invalidCredentialsPhrase) {
		span.SetStatus(codes.Error, ErrInvalidCredentials.Error())
		return ErrInvalidCredentials
	}
	return nil
}
