package openrtb

// BidRequest is the subset of an OpenRTB bid request relevant to ads.cert
// verification.
type BidRequest struct {
	ID     string         `json:"id"`
	Test   int            `json:"test,omitempty"`
	AT     int            `json:"at,omitempty"`
	TMax   int            `json:"tmax,omitempty"`
	Cur    []string       `json:"cur,omitempty"`
	Source *Source        `json:"source,omitempty"`
	Site   *Site          `json:"site,omitempty"`
	App    *App           `json:"app,omitempty"`
	Device *Device        `json:"device,omitempty"`
	Imp    []Imp          `json:"imp,omitempty"`
	Ext    map[string]any `json:"ext,omitempty"`
}

// Source carries the inventory chain and ads.cert signature fields.
type Source struct {
	// FD indicates whether the upstream entity is the final decision maker
	FD int `json:"fd,omitempty"`

	// TID is the transaction ID common across all participants
	TID string `json:"tid,omitempty"`

	// PChain is the payment ID chain
	PChain string `json:"pchain,omitempty"`

	// Cert is the URL of the signer's public key (ads.cert)
	Cert string `json:"cert,omitempty"`

	// DS is the digital signature over the digest (ads.cert)
	DS string `json:"ds,omitempty"`

	// DSMap names the digested fields in signing order (ads.cert)
	DSMap string `json:"dsmap,omitempty"`

	Ext map[string]any `json:"ext,omitempty"`
}

// Site describes the website in a site-based request.
type Site struct {
	ID     string `json:"id,omitempty"`
	Domain string `json:"domain,omitempty"`
	Page   string `json:"page,omitempty"`
}

// App describes the application in an app-based request.
type App struct {
	ID     string `json:"id,omitempty"`
	Bundle string `json:"bundle,omitempty"`
}

// Device describes the user's device.
type Device struct {
	UA   string `json:"ua,omitempty"`
	IP   string `json:"ip,omitempty"`
	IPv6 string `json:"ipv6,omitempty"`
}

// Imp describes an impression being offered.
type Imp struct {
	ID       string  `json:"id"`
	BidFloor float64 `json:"bidfloor,omitempty"`
	Banner   *Banner `json:"banner,omitempty"`
}

// Banner describes a banner impression.
type Banner struct {
	W int `json:"w,omitempty"`
	H int `json:"h,omitempty"`
}
