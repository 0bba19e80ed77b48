// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoTransports is returned by NewHandlers when the server config has
// neither an HTTP nor a gRPC address. The daemon cannot start without one.
var errNoTransports = errors.New("no handlers: neither http nor grpc address is set")
