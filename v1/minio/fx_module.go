package minio

import (
	"go.uber.org/fx"
)

// FXModule provides a connected *MinioClient.
//
// Dependencies required by this module:
// - a minio.Config
// - a logger.Logger
var FXModule = fx.Module("minio",
	fx.Provide(NewClient),
)
