package assets

import (
	_ "embed"
)

//go:embed icon.svg
var Icon []byte

//go:embed WHATSNEW.md
var WhatsNew string
