package minio

// Config holds the MinIO (or any S3-compatible) connection settings used to
// read card exports from object storage.
type Config struct {
	Connection ConnectionConfig `yaml:"connection"`
}

// ConnectionConfig contains MinIO server connection details.
type ConnectionConfig struct {
	// Endpoint is the server address without scheme, e.g. "localhost:9000".
	Endpoint        string `yaml:"endpoint" envconfig:"MINIO_ENDPOINT"`
	AccessKeyID     string `yaml:"access_key_id" envconfig:"MINIO_ACCESS_KEY_ID"`
	SecretAccessKey string `yaml:"secret_access_key" envconfig:"MINIO_SECRET_ACCESS_KEY"`
	UseSSL          bool   `yaml:"use_ssl" envconfig:"MINIO_USE_SSL"`

	// BucketName is used when a location names only an object key.
	BucketName string `yaml:"bucket_name" envconfig:"MINIO_BUCKET_NAME"`
	Region     string `yaml:"region" envconfig:"MINIO_REGION"`
}

// Enabled reports whether an endpoint is configured.
func (c Config) Enabled() bool {
	return c.Connection.Endpoint != ""
}
