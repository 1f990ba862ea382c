package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli"

	"github.com/df07/go-mc-raytracer/pkg/output"
)

// LoadEnv reads the env file named by the global env-file flag, if present.
// Variables that are already set are kept.
func LoadEnv(ctx *cli.Context) error {
	path := ctx.GlobalString("env-file")
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// getEnv returns the value of key, or fallback when it is unset
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// s3ConfigFromEnv reads the object store settings from the environment
func s3ConfigFromEnv(bucket string) output.S3Config {
	return output.S3Config{
		AccessKey: os.Getenv("S3_ACCESS_KEY"),
		SecretKey: os.Getenv("S3_SECRET_KEY"),
		Endpoint:  os.Getenv("S3_ENDPOINT"),
		Region:    getEnv("S3_REGION", "us-east-1"),
		Bucket:    bucket,
		ACL:       os.Getenv("S3_ACL"),
	}
}
