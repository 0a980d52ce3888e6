package auth

import (
	"context"

	"github.com/ory/client-go"
)

func GetOryAPIClient(url string) *client.APIClient {
	cfg := client.NewConfiguration()
	cfg.Servers = client.ServerConfigurations{
		{URL: url},
	}

	ory := client.NewAPIClient(cfg)
	return ory
}

type oryIdentityClient struct {
	ory *client.APIClient
}

func NewOryIdentityClient(ory *client.APIClient) *oryIdentityClient {
	return &oryIdentityClient{
		ory: ory,
	}
}

func (c *oryIdentityClient) GetIdentityFromSessionToken(ctx context.Context, token string) (string, error) {
	session, _, err := c.ory.FrontendAPI.ToSession(ctx).XSessionToken(token).Execute()
	if err != nil {
		return "", err
	}
	return session.Identity.Id, nil
}

func (c *oryIdentityClient) GetIdentityFromCookie(ctx context.Context, cookie string) (string, error) {
	session, _, err := c.ory.FrontendAPI.ToSession(ctx).Cookie(cookie).Execute()
	if err != nil {
		return "", err
	}
	return session.Identity.Id, nil
}
