package domain

import "errors"

var ErrTransportUnavailable = errors.New("device transport unavailable")
