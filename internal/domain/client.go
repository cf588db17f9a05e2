package domain

// ClientName identifies a PPPoE client as extracted from log text.
// The legacy free-text patterns and the <pppoe-NAME> tag convention may
// disagree on the exact string for the same physical client; no
// canonicalization is attempted.
type ClientName string

type ActiveClient struct {
	IP       string
	Uptime   string
	CallerID string
	Service  string
}

// ActiveClientSet is a point-in-time snapshot of the device's active
// PPP sessions, valid only at fetch time.
type ActiveClientSet map[ClientName]ActiveClient
