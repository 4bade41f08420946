package notify

import (
	"fmt"
	"net/smtp"
	"time"

	"github.com/contatoscormecial-rgb/zap/internal/config"
	"github.com/contatoscormecial-rgb/zap/internal/models"
	"github.com/contatoscormecial-rgb/zap/internal/repository"
	"github.com/jordan-wright/email"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Digest emails each user their reminders due today
type Digest struct {
	cfg  *config.Config
	repo *repository.Repository
	log  *logrus.Logger
	cron *cron.Cron
}

// NewDigest creates a new reminder digest sender
func NewDigest(cfg *config.Config, repo *repository.Repository, log *logrus.Logger) *Digest {
	return &Digest{
		cfg:  cfg,
		repo: repo,
		log:  log,
		cron: cron.New(),
	}
}

// Start schedules the digest job. The schedule comes from configuration,
// a standard cron expression.
func (d *Digest) Start() error {
	_, err := d.cron.AddFunc(d.cfg.DigestSchedule, func() {
		if err := d.Run(time.Now()); err != nil {
			d.log.Errorf("Reminder digest failed: %v", err)
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule reminder digest: %w", err)
	}
	d.cron.Start()
	d.log.Infof("Reminder digest scheduled: %s", d.cfg.DigestSchedule)
	return nil
}

// Stop halts the scheduler and waits for a running job to finish
func (d *Digest) Stop() {
	ctx := d.cron.Stop()
	<-ctx.Done()
}

// Run sends one digest email per user with reminders due on the given day.
func (d *Digest) Run(now time.Time) error {
	day := models.NewDate(now.Year(), now.Month(), now.Day())
	due, err := d.repo.DueReminders(day)
	if err != nil {
		return err
	}
	if len(due) == 0 {
		d.log.Debugf("No reminders due on %s", day)
		return nil
	}

	// DueReminders is ordered by user, so group consecutive rows
	byUser := make(map[string][]models.DueReminder)
	order := make([]string, 0)
	for _, rem := range due {
		key := rem.UserEmail
		if _, seen := byUser[key]; !seen {
			order = append(order, key)
		}
		byUser[key] = append(byUser[key], rem)
	}

	for _, addr := range order {
		reminders := byUser[addr]
		if err := d.sendDigest(addr, reminders); err != nil {
			d.log.Errorf("Failed to send digest to %s: %v", addr, err)
			continue
		}
		d.log.Infof("Sent reminder digest to %s (%d reminders)", addr, len(reminders))
	}
	return nil
}

// sendDigest composes and sends a single digest email
func (d *Digest) sendDigest(to string, reminders []models.DueReminder) error {
	e := email.NewEmail()
	e.From = d.cfg.SenderEmail
	e.To = []string{to}
	e.Subject = fmt.Sprintf("You have %d reminder(s) due today", len(reminders))

	body := fmt.Sprintf("Dear %s,\n\nReminders due today:\n\n", reminders[0].UserName)
	for _, rem := range reminders {
		body += fmt.Sprintf("- %s\n", rem.Text)
	}
	body += "\nBest regards,\nZap Financeiro"
	e.Text = []byte(body)

	addr := fmt.Sprintf("%s:%s", d.cfg.SMTPHost, d.cfg.SMTPPort)
	auth := smtp.PlainAuth("", d.cfg.SMTPUsername, d.cfg.SMTPPassword, d.cfg.SMTPHost)
	if err := e.Send(addr, auth); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
