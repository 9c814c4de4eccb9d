package config

// StorageConfig selects where photos are kept
type StorageConfig struct {
	Driver string        `mapstructure:"driver"`
	Local  LocalStorage  `mapstructure:"local"`
	S3     S3StorageConf `mapstructure:"s3"`
}

// LocalStorage ...
type LocalStorage struct {
	RootDir string `mapstructure:"root_dir"`
}

// S3StorageConf ...
type S3StorageConf struct {
	Bucket   string `mapstructure:"bucket"`
	Region   string `mapstructure:"region"`
	Prefix   string `mapstructure:"prefix"`
	Endpoint string `mapstructure:"endpoint"`
}

// NotificationConfig ...
type NotificationConfig struct {
	Driver      string `mapstructure:"driver"`
	Region      string `mapstructure:"region"`
	SenderID    string `mapstructure:"sender_id"`
	MessageType string `mapstructure:"message_type"`
}
