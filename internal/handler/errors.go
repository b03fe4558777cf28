package handler

import "errors"

// errNoHandlersAreCreated means neither an HTTP nor a gRPC address is
// configured.
var errNoHandlersAreCreated = errors.New("no handlers are created")
