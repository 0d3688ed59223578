package kafka

import (
	"time"

	"github.com/IBM/sarama"
)

type Config struct {
	Addrs     []string `yaml:"addrs" envconfig:"KAFKA_ADDRS"`
	LoanTopic string   `yaml:"loanTopic" envconfig:"KAFKA_LOAN_TOPIC" default:"loan-events"`
}

type EventType string

const (
	EventCheckout EventType = "CHECKOUT"
	EventReturn   EventType = "RETURN"
)

// EventLoan is the payload published to the loan stats topic on every
// successful checkout and return.
type EventLoan struct {
	ID       string    `json:"id"`
	Type     EventType `json:"type"`
	LoanID   int64     `json:"loanId"`
	BookID   int64     `json:"bookId"`
	UserID   int64     `json:"userId"`
	Username string    `json:"username"`
	At       time.Time `json:"at"`
}

func NewProducer(cfg Config) (sarama.SyncProducer, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Producer.RequiredAcks = sarama.WaitForAll
	defaultCfg.Producer.Return.Successes = true

	return sarama.NewSyncProducer(cfg.Addrs, defaultCfg)
}
