package caronsale

import (
	"context"
	"errors"
	"net/http"
	"net/url"
)

const authenticationPath = "/api/v1/authentication/"

// Authenticate exchanges the configured credentials for a fresh auth header.
// Failures are logged once, classified, and returned unchanged.
func (c *Client) Authenticate(ctx context.Context) (*AuthHeader, error) {
	c.log.Info("getting authentication for user", "user", c.creds.UserEmail)

	var resp authenticationResponse
	err := c.do(ctx, opAuthenticate, request{
		method: http.MethodPut,
		path:   authenticationPath + url.PathEscape(c.creds.UserEmail),
		body: authenticationRequest{
			Password: c.creds.Password,
			Meta:     nil,
		},
	}, &resp)
	if err == nil && resp.Token == "" {
		err = errors.New("authentication response carried no token")
	}
	if err != nil {
		c.logError(opAuthenticate.name, err)
		return nil, err
	}

	return &AuthHeader{
		AuthToken: resp.Token,
		UserID:    resp.UserID,
	}, nil
}
