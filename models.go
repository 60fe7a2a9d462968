package main

import (
	"github.com/streadway/amqp"

	"github.com/sriram2907/Resume-organiser-HR/internal/blobstore"
	"github.com/sriram2907/Resume-organiser-HR/internal/database"
	"github.com/sriram2907/Resume-organiser-HR/internal/ingest"
)

type ApiConfig struct {
	DB         *database.Queries
	Blobs      *blobstore.R2Store
	Pipeline   *ingest.Pipeline
	RabbitConn *amqp.Connection
	Port       string
}
