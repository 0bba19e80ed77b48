package server

import "errors"

// errNoTransports is returned when the config enables neither HTTP nor gRPC.
var errNoTransports = errors.New("no transport address configured")
