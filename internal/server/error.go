package server

import "github.com/AlinaLB/celfie-lock/api"

var (
	errRequestBodyDecode = api.Error{Error: "Error reading request body"}
	errInvalidImage      = api.Error{Code: "invalid_image", Error: "Invalid image supplied in request body"}
	errEncode            = api.Error{Code: "encode_error", Error: "An error occurred while encoding the image"}
	errMessageTooLarge   = api.Error{Code: "capacity_exceeded", Error: "Message is too large for the supplied image"}
)
