package dto

// DeviceInfo is the metadata a client reports about itself. The
// values supplied at verification time win over the ones seen at
// login, since a verified client may report more detail.
type DeviceInfo struct {
	UA       string `json:"ua"`
	Platform string `json:"platform"`
	Screen   string `json:"screen"`
	Timezone string `json:"timezone"`
}
