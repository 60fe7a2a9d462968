package main

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/streadway/amqp"

	"github.com/sriram2907/Resume-organiser-HR/internal/ingest"
)

// publishResumeEvent notifies downstream consumers about an ingestion or a
// deletion. Publishing is best-effort: a missing broker or a publish failure
// never fails the request.
func (cfg *ApiConfig) publishResumeEvent(eventType string, rec *ingest.Record) {
	if cfg.RabbitConn == nil {
		return
	}

	ch, err := cfg.RabbitConn.Channel()
	if err != nil {
		log.Println("failed to open rabbitmq channel:", err)
		return
	}
	defer ch.Close()

	body, _ := json.Marshal(map[string]any{
		"type":      eventType,
		"resume_id": rec.ID,
		"name":      rec.Name,
		"file_type": rec.FileType,
		"timestamp": time.Now(),
	})
	routingKey := fmt.Sprintf("resume.%s", rec.ID)

	err = ch.Publish(
		"resume_events", // exchange
		routingKey,
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
	if err != nil {
		log.Println("failed to publish resume event:", err)
	}
}
