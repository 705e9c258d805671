package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"barberbook/config"
	"barberbook/models"
	"barberbook/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeBookingReminder = "booking:reminder"

// ReminderPayload is the task body for a scheduled booking reminder.
type ReminderPayload struct {
	BookingID    string `json:"bookingId"`
	BarberID     string `json:"barberId"`
	CustomerName string `json:"customerName"`
	Start        string `json:"start"`
}

func reminderRedisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}
}

// AsynqReminderScheduler enqueues booking reminders a fixed lead time before
// the appointment starts.
type AsynqReminderScheduler struct {
	Client *asynq.Client
	Lead   time.Duration
}

// NewAsynqReminderScheduler builds the scheduler on the reminder queue DB.
func NewAsynqReminderScheduler(lead time.Duration) *AsynqReminderScheduler {
	return &AsynqReminderScheduler{
		Client: asynq.NewClient(reminderRedisOpt()),
		Lead:   lead,
	}
}

// ScheduleReminder enqueues a reminder task. Bookings starting inside the
// lead window get no reminder.
func (s *AsynqReminderScheduler) ScheduleReminder(booking models.Booking) error {
	startAt, err := time.Parse(models.DateTimeLayout, booking.Start)
	if err != nil {
		return fmt.Errorf("invalid booking start %q: %w", booking.Start, err)
	}
	fireAt := startAt.Add(-s.Lead)
	if !fireAt.After(time.Now()) {
		return nil
	}

	payload, err := json.Marshal(ReminderPayload{
		BookingID:    booking.ID,
		BarberID:     booking.BarberID,
		CustomerName: booking.CustomerName,
		Start:        booking.Start,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal reminder payload: %w", err)
	}

	task := asynq.NewTask(TypeBookingReminder, payload)
	if _, err := s.Client.Enqueue(task, asynq.ProcessAt(fireAt)); err != nil {
		return fmt.Errorf("failed to enqueue reminder for booking %s: %w", booking.ID, err)
	}
	return nil
}

// InitReminderWorker runs the async reminder worker in the background.
func InitReminderWorker() {
	srv := asynq.NewServer(
		reminderRedisOpt(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeBookingReminder, handleReminderTask)

	go func() {
		log.Println("[ReminderWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Println("[ReminderWorker] max retry attempts reached; reminders disabled")
					return
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleReminderTask(ctx context.Context, task *asynq.Task) error {
	var p ReminderPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		log.Printf("[ReminderHandler] invalid payload: %v", err)
		return err
	}

	utils.GetLogger().Info("booking reminder due",
		zap.String("bookingID", p.BookingID),
		zap.String("barberID", p.BarberID),
		zap.String("customerName", p.CustomerName),
		zap.String("start", p.Start),
	)
	return nil
}
