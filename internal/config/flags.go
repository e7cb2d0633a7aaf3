package config

import (
	"flag"
	"os"

	"github.com/dearfuture/letters/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-b string   storage backend: memory|file|sqlite|postgres|s3
//	-f string   data directory for on-device state
//	-d string   PostgreSQL DSN
//	-n string   acting user id
//	-u string   S3 access key
//	-p string   S3 secret key
//	-t string   S3 bucket name
//	-g string   S3 region
//	-e string   S3 base endpoint (e.g., "http://127.0.0.1:9000/")
//	-k string   S3 object key for the serialized state
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:],
		[]string{"-b", "-f", "-d", "-n", "-u", "-p", "-t", "-g", "-e", "-k"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.StorageBackend, "b", config.StorageBackend, "storage backend (memory|file|sqlite|postgres|s3)")
	fs.StringVar(&config.DataDir, "f", config.DataDir, "data directory for on-device state")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.UserID, "n", config.UserID, "acting user id")
	fs.StringVar(&config.S3AccessKey, "u", config.S3AccessKey, "S3 access key")
	fs.StringVar(&config.S3SecretKey, "p", config.S3SecretKey, "S3 secret key")
	fs.StringVar(&config.S3Bucket, "t", config.S3Bucket, "S3 bucket")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")
	fs.StringVar(&config.S3ObjectKey, "k", config.S3ObjectKey, "S3 object key")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
