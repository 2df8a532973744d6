package quotes

import _ "embed"

// defaultCollection is the built-in quote collection, bundled into the binary.
//
//go:embed quotes.json
var defaultCollection []byte
