package main

import (
	"context"
	"database/sql"
	"log"
	"os"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/streadway/amqp"

	"github.com/sriram2907/Resume-organiser-HR/internal/blobstore"
	"github.com/sriram2907/Resume-organiser-HR/internal/database"
	"github.com/sriram2907/Resume-organiser-HR/internal/ingest"
)

func main() {
	_ = godotenv.Load()
	dbUrl := os.Getenv("DB_URL")
	if dbUrl == "" {
		log.Fatal("empty DB_URL in environment")
	}

	db, err := sql.Open("postgres", dbUrl)
	if err != nil {
		log.Fatal("error opening db. err: ", err)
	}

	dbqueries := database.New(db)

	r2AccountId := os.Getenv("R2_ACCOUNT_ID")
	if r2AccountId == "" {
		log.Fatal("empty R2_ACCOUNT_ID in environment")
	}
	r2Bucket := os.Getenv("R2_BUCKET")
	if r2Bucket == "" {
		log.Fatal("empty R2_BUCKET in environment")
	}
	r2SecretKey := os.Getenv("R2_SECRET_KEY")
	if r2SecretKey == "" {
		log.Fatal("empty R2_SECRET_KEY in environment")
	}
	r2AccessKey := os.Getenv("R2_ACCESS_KEY")
	if r2AccessKey == "" {
		log.Fatal("empty R2_ACCESS_KEY in environment")
	}
	r2Config := blobstore.R2Config{
		AccountID: r2AccountId,
		AccessKey: r2AccessKey,
		SecretKey: r2SecretKey,
		Bucket:    r2Bucket,
	}
	awsConfig, err := config.LoadDefaultConfig(context.TODO(),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(r2Config.AccessKey, r2Config.SecretKey, "")),
		config.WithRegion("auto"),
	)
	if err != nil {
		log.Fatal("error creating aws config", err)
	}
	blobs := blobstore.NewR2(awsConfig, r2Config)

	// Events are optional; the API runs fine without a broker.
	var rabbitConn *amqp.Connection
	if rabbitmqUrl := os.Getenv("RABBITMQ_URL"); rabbitmqUrl != "" {
		rabbitConn, err = amqp.Dial(rabbitmqUrl)
		if err != nil {
			log.Printf("rabbitmq unavailable, resume events disabled. err: %v", err)
			rabbitConn = nil
		}
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	apiConfig := &ApiConfig{
		DB:         dbqueries,
		Blobs:      blobs,
		Pipeline:   ingest.New(blobs, &dbRecordStore{q: dbqueries}),
		RabbitConn: rabbitConn,
		Port:       port,
	}

	app := apiConfig.NewApp()
	log.Println("Server running on port " + apiConfig.Port)
	log.Fatal(app.Listen(":" + apiConfig.Port))
}
