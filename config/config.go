package config

import (
	"context"
	"errors"
	"log"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/spf13/viper"
)

var (
	Environment        string
	Port               string
	MongoURI           string
	MongoDBName        string
	JWTSecret          string
	AdminPassword      string
	AWSRegion          string
	AWSBucketName      string
	AWSAccessKeyID     string
	AWSSecretAccessKey string

	// singleton lock
	loadConfigOnce sync.Once
)

var AWSConfig aws.Config

// LoadConfig loads configuration from .env or config.yaml using Viper.
// JWT_SECRET, ADMIN_PASSWORD and MONGO_URI are mandatory: there is no
// fallback secret baked into the binary, the process must refuse to start
// without them.
func LoadConfig() error {
	var loadError error
	loadConfigOnce.Do(func() {
		// Try to load config from .env first, then fallback to config.yaml
		viper.SetConfigFile(".env")
		viper.AutomaticEnv()

		if err := viper.ReadInConfig(); err != nil {
			viper.SetConfigFile("config.yaml")
			if err := viper.ReadInConfig(); err != nil {
				log.Println("No config file found, relying on environment variables")
			}
		}

		Environment = viper.GetString("ENVIRONMENT")
		Port = viper.GetString("PORT")
		MongoURI = viper.GetString("MONGO_URI")
		MongoDBName = viper.GetString("MONGO_DB_NAME")
		JWTSecret = viper.GetString("JWT_SECRET")
		AdminPassword = viper.GetString("ADMIN_PASSWORD")
		AWSAccessKeyID = viper.GetString("AWS_ACCESS_KEY_ID")
		AWSSecretAccessKey = viper.GetString("AWS_SECRET_ACCESS_KEY")
		AWSRegion = viper.GetString("AWS_REGION")
		AWSBucketName = viper.GetString("AWS_BUCKET_NAME")

		if Port == "" {
			Port = "8080"
		}
		if MongoDBName == "" {
			MongoDBName = "db_campus"
		}

		switch {
		case JWTSecret == "":
			loadError = errors.New("JWT_SECRET is not configured")
		case AdminPassword == "":
			loadError = errors.New("ADMIN_PASSWORD is not configured")
		case MongoURI == "":
			loadError = errors.New("MONGO_URI is not configured")
		}
		if loadError != nil {
			return
		}

		log.Println("✅ Configuration loaded!")
	})

	return loadError
}

// LoadAWSConfig builds the shared AWS SDK config with static credentials
func LoadAWSConfig() error {
	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(AWSRegion),
		config.WithCredentialsProvider(
			aws.NewCredentialsCache(
				credentials.NewStaticCredentialsProvider(AWSAccessKeyID, AWSSecretAccessKey, ""),
			),
		),
	)
	if err != nil {
		return err
	}
	AWSConfig = cfg
	log.Printf("✅ AWS SDK configured, region: %s", cfg.Region)
	return nil
}
