package swagger

import "embed"

// swaggerDocs provides embedded access to the swagger assets.
//
//go:embed docs/*
var swaggerDocs embed.FS
