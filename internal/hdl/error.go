package hdl

import "errors"

var ErrInternal = errors.New("internal error")
var ErrDecodeRequest = errors.New("decode request")
var ErrMissingDeviceHash = errors.New("missing device hash header")
var ErrForbidden = errors.New("forbidden")

var ErrToRetrievePathArg = errors.New("error to retrieve path argument")
var ErrFailedToGetUUID = errors.New("failed to get uid from context")
var ErrFailedToParseUUID = errors.New("failed to parse uid")

// Machine-readable codes for 401 responses, so clients can route to
// the correct recovery screen instead of a generic failure page.
const (
	CodeSessionExpired = "SESSION_EXPIRED"
	CodeDeviceMismatch = "DEVICE_MISMATCH"
	CodeInvalidCode    = "INVALID_CODE"
	CodeCodeExpired    = "CODE_EXPIRED"
)
