package caronsale

// Auction is a single running auction as returned by the buyer listing.
// Numeric fields the API omits decode as zero.
type Auction struct {
	ID                     int     `json:"id"`
	UUID                   string  `json:"uuid"`
	Label                  string  `json:"label"`
	State                  int     `json:"state"`
	EndingTime             string  `json:"endingTime"`
	RemainingTimeInSeconds int     `json:"remainingTimeInSeconds"`
	MinimumRequiredAsk     float64 `json:"minimumRequiredAsk"`
	CurrentHighestBidValue float64 `json:"currentHighestBidValue"`
	StartingBidValue       float64 `json:"startingBidValue"`
	NumBids                int     `json:"numBids"`
	LocationCity           string  `json:"locationCity"`
	LocationCountryCode    string  `json:"locationCountryCode"`
	HotBid                 bool    `json:"hotBid"`
	IsLive                 bool    `json:"isLive"`
	IsMinAskReached        bool    `json:"isMinAskReached"`
	AmIHighestBidder       bool    `json:"amIHighestBidder"`
}

// AuctionPage is one page of the buyer auction listing. Total is nil when
// the response did not carry a total.
type AuctionPage struct {
	Items []Auction `json:"items"`
	Page  int       `json:"page"`
	Total *int      `json:"total"`
}

// AuthHeader is the token/user pair sent with every authenticated request.
type AuthHeader struct {
	AuthToken string `json:"authtoken"`
	UserID    string `json:"userid"`
}

type authenticationRequest struct {
	Password string `json:"password"`
	Meta     any    `json:"meta"`
}

type authenticationResponse struct {
	Token            string `json:"token"`
	Authenticated    bool   `json:"authenticated"`
	UserID           string `json:"userId"`
	InternalUserID   int    `json:"internalUserId"`
	InternalUserUUID string `json:"internalUserUUID"`
	Type             int    `json:"type"`
	Privileges       string `json:"privileges"`
}

type errorResponse struct {
	Message string `json:"message"`
}
