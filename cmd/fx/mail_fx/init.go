package mail_fx

import (
	"log"

	"go.uber.org/fx"

	"gymfit/internal/config"
	"gymfit/internal/services"
)

var Module = fx.Provide(provideMailService)

// A nil service is valid: password reset and contact replies then answer 503.
func provideMailService(cfg *config.Config) services.IMailService {
	if cfg.SMTP.Username == "" || cfg.SMTP.Password == "" {
		log.Println("SMTP credentials not set, outgoing mail disabled")
		return nil
	}

	mailService, err := services.NewSMTPMailService(services.SMTPConfigFrom(cfg))
	if err != nil {
		log.Printf("Failed to initialize SMTP mail service: %v", err)
		return nil
	}
	return mailService
}
