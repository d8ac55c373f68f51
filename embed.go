package postgen

import "embed"

// EmbeddedAssets contains the editor stylesheet served under /public/.
//
//go:embed embedded/*
var EmbeddedAssets embed.FS
