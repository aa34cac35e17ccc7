package caronsale

import (
	"context"
	"net/http"
	"net/url"
)

const buyerAuctionsPath = "/api/v2/auction/buyer/"

// RunningAuctions authenticates and fetches the first page of running
// auctions visible to the buyer. A nil page with a nil error means the API
// answered with a JSON null.
func (c *Client) RunningAuctions(ctx context.Context) (*AuctionPage, error) {
	// Authenticate has already logged its own failure.
	auth, err := c.Authenticate(ctx)
	if err != nil {
		return nil, err
	}

	c.log.Info("retrieving auctions")

	// A null filter is omitted from the query string entirely.
	query := url.Values{}
	query.Set("count", "false")

	header := http.Header{}
	header.Set("authtoken", auth.AuthToken)
	header.Set("userid", auth.UserID)

	var page *AuctionPage
	if err := c.do(ctx, opGetAuctions, request{
		method: http.MethodGet,
		path:   buyerAuctionsPath,
		query:  query,
		header: header,
	}, &page); err != nil {
		c.logError(opGetAuctions.name, err)
		return nil, err
	}

	return page, nil
}
