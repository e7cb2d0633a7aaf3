package config

import (
	"encoding/json"
	"os"

	"github.com/dearfuture/letters/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Only fields
// present in the file overlay the runtime Config.
type JsonConfig struct {
	StorageBackend *string `json:"storage_backend"`
	DataDir        *string `json:"data_dir"`
	DatabaseDSN    *string `json:"database_dsn"`
	S3AccessKey    *string `json:"s3_access_key"`
	S3SecretKey    *string `json:"s3_secret_key"`
	S3Bucket       *string `json:"s3_bucket"`
	S3Region       *string `json:"s3_region"`
	S3BaseEndpoint *string `json:"s3_base_endpoint"`
	S3ObjectKey    *string `json:"s3_object_key"`
	UserID         *string `json:"user_id"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// The file path comes from the -c/-config flags (flagx.JsonConfigFlags);
// when absent, no JSON is loaded. Read or unmarshal errors panic (caller
// may recover). Intended usage is defaults -> parseJson -> parseFlags,
// where later stages override earlier ones.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	overlay := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}

	overlay(&cfg.StorageBackend, jc.StorageBackend)
	overlay(&cfg.DataDir, jc.DataDir)
	overlay(&cfg.DatabaseDSN, jc.DatabaseDSN)
	overlay(&cfg.S3AccessKey, jc.S3AccessKey)
	overlay(&cfg.S3SecretKey, jc.S3SecretKey)
	overlay(&cfg.S3Bucket, jc.S3Bucket)
	overlay(&cfg.S3Region, jc.S3Region)
	overlay(&cfg.S3BaseEndpoint, jc.S3BaseEndpoint)
	overlay(&cfg.S3ObjectKey, jc.S3ObjectKey)
	overlay(&cfg.UserID, jc.UserID)
}
