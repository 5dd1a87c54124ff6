package export

import "errors"

// ErrUnknownFormat indicates a format name outside dot, json, edgelist.
var ErrUnknownFormat = errors.New("export: unknown format")

// ErrNilGraph indicates a nil *core.Graph argument.
var ErrNilGraph = errors.New("export: graph is nil")
