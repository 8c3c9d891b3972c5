package client

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/fittrack/internal/client/models"
	"github.com/go-resty/resty/v2"
)

func (c *RESTClient) Register(ctx context.Context, in models.RegisterInput) (*models.User, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	resp, err := c.send(ctx, http.MethodPost, "/auth/register", func(r *resty.Request) {
		r.SetBody(in)
	})
	if err != nil {
		return nil, err
	}
	return decode[models.User](resp)
}

// Login exchanges credentials for an access token. The body is form-encoded,
// not JSON, as the token endpoint expects.
func (c *RESTClient) Login(ctx context.Context, username, password string) (string, error) {
	resp, err := c.send(ctx, http.MethodPost, "/auth/login", func(r *resty.Request) {
		r.SetHeader("Content-Type", "application/x-www-form-urlencoded").
			SetFormData(map[string]string{
				"username": username,
				"password": password,
			})
	})
	if err != nil {
		return "", err
	}
	tok, err := decode[models.Token](resp)
	if err != nil {
		return "", err
	}
	return tok.AccessToken, nil
}

func (c *RESTClient) CurrentUser(ctx context.Context) (*models.User, error) {
	resp, err := c.send(ctx, http.MethodGet, "/auth/me", nil)
	if err != nil {
		return nil, err
	}
	return decode[models.User](resp)
}
