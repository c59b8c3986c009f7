package points

import (
	"context"
	"fmt"
	"os"

	"github.com/segmentio/kafka-go"
)

type KafkaTrips struct {
	reader *kafka.Reader
}

func GetNewReader(topic string) (reader *KafkaTrips, err error) {
	// config
	kafkaurl := os.Getenv("KAFKA_TRIPS_URL")
	if kafkaurl == "" {
		return nil, fmt.Errorf("env KAFKA_TRIPS_URL is not set")
	}
	kafkaport := os.Getenv("KAFKA_TRIPS_PORT")
	if kafkaport == "" {
		return nil, fmt.Errorf("env KAFKA_TRIPS_PORT is not set")
	}

	kafkaconfig := kafka.ReaderConfig{
		Brokers: []string{kafkaurl + ":" + kafkaport},
		Topic:   topic,
		GroupID: "trips_loyalty",
	}
	return &KafkaTrips{kafka.NewReader(kafkaconfig)}, nil
}

func (k *KafkaTrips) GetNewMessage(ctx context.Context) (tripJson string, err error) {
	msg, err := k.reader.ReadMessage(ctx)
	if err != nil {
		return "", err
	}
	return string(msg.Value), nil
}

func (k *KafkaTrips) CloseReader() {
	k.reader.Close()
}
