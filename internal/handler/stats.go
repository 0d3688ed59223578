package handler

import (
	"encoding/json"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/elovate/library-api/internal/model"
	"github.com/elovate/library-api/pkg/kafka"
)

type StatsLog interface {
	Log(ev kafka.EventLoan) error
}

type statsLog struct {
	producer sarama.SyncProducer
	topic    string
}

func NewStatsLog(producer sarama.SyncProducer, topic string) *statsLog {
	return &statsLog{
		producer: producer,
		topic:    topic,
	}
}

func (l *statsLog) Log(ev kafka.EventLoan) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	msg := &sarama.ProducerMessage{Topic: l.topic, Value: sarama.StringEncoder(data)}
	if _, _, err = l.producer.SendMessage(msg); err != nil {
		return err
	}
	return nil
}

// logLoanEvent is fire-and-forget: stats must never fail a request.
func (h *Handler) logLoanEvent(t kafka.EventType, loan model.Loan, username string) {
	if h.stats == nil {
		return
	}
	ev := kafka.EventLoan{
		ID:       uuid.NewString(),
		Type:     t,
		LoanID:   loan.ID,
		BookID:   loan.BookID,
		UserID:   loan.UserID,
		Username: username,
		At:       time.Now().UTC(),
	}
	if err := h.stats.Log(ev); err != nil {
		h.log.Warn("stats log", zap.Error(err))
	}
}
