package email

import (
	"context"
	"crypto/tls"
	"fmt"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"gopkg.in/gomail.v2"

	"storemailer/config"
	"storemailer/internal/domain"
)

// NewMailer creates a mailer from config. Provider "smtp" relays through the
// configured SMTP server, "ses" uses AWS SES, "noop" or unknown logs and
// drops the message.
func NewMailer(cfg config.MailConfig) (domain.Mailer, error) {
	switch cfg.Provider {
	case "smtp":
		smtpCfg := cfg.SMTP
		if smtpCfg.Host == "" {
			return nil, fmt.Errorf("smtp mailer requires a host")
		}
		d := gomail.NewDialer(smtpCfg.Host, smtpCfg.Port, smtpCfg.User, smtpCfg.Password)
		d.SSL = smtpCfg.Port == 465
		if smtpCfg.InsecureSkipVerify {
			log.Printf("[MAILER] WARNING: TLS certificate verification is disabled for SMTP.")
			d.TLSConfig = &tls.Config{InsecureSkipVerify: true, ServerName: smtpCfg.Host}
		}
		return &smtpMailer{
			dialer:      d,
			fromAddress: smtpCfg.User,
		}, nil
	case "ses":
		sesCfg := cfg.SES
		awsCfg := aws.Config{
			Region: sesCfg.Region,
			Credentials: aws.NewCredentialsCache(
				credentials.NewStaticCredentialsProvider(
					sesCfg.AccessKeyID,
					sesCfg.SecretAccessKey,
					"",
				),
			),
		}
		return &sesMailer{
			client:      ses.NewFromConfig(awsCfg),
			fromAddress: cfg.OwnerEmail,
		}, nil
	case "noop":
		return &noopMailer{}, nil
	default:
		log.Printf("[MAILER] Unknown email provider %q, using noop", cfg.Provider)
		return &noopMailer{}, nil
	}
}

type smtpMailer struct {
	dialer      *gomail.Dialer
	fromAddress string
}

func (s *smtpMailer) Send(ctx context.Context, msg *domain.Message) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.fromAddress, msg.FromName)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	if msg.Text != "" {
		m.SetBody("text/plain", msg.Text)
		m.AddAlternative("text/html", msg.HTML)
	} else {
		m.SetBody("text/html", msg.HTML)
	}
	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email via SMTP: %w", err)
	}
	log.Printf("[MAILER] Email sent via SMTP to %s", msg.To)
	return nil
}

type sesMailer struct {
	client      *ses.Client
	fromAddress string
}

func (s *sesMailer) Send(ctx context.Context, msg *domain.Message) error {
	source := s.fromAddress
	if msg.FromName != "" {
		source = fmt.Sprintf("%s <%s>", msg.FromName, s.fromAddress)
	}
	input := &ses.SendEmailInput{
		Source: aws.String(source),
		Destination: &types.Destination{
			ToAddresses: []string{msg.To},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data:    aws.String(msg.Subject),
				Charset: aws.String("UTF-8"),
			},
			Body: &types.Body{},
		},
	}
	if msg.HTML != "" {
		input.Message.Body.Html = &types.Content{
			Data:    aws.String(msg.HTML),
			Charset: aws.String("UTF-8"),
		}
	}
	if msg.Text != "" {
		input.Message.Body.Text = &types.Content{
			Data:    aws.String(msg.Text),
			Charset: aws.String("UTF-8"),
		}
	}
	result, err := s.client.SendEmail(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to send email via SES: %w", err)
	}
	log.Printf("[MAILER] Email sent via SES. MessageID: %s", aws.ToString(result.MessageId))
	return nil
}

type noopMailer struct{}

func (n *noopMailer) Send(ctx context.Context, msg *domain.Message) error {
	log.Println("[MAILER] Email would be sent (noop)", "to", msg.To, "subject", msg.Subject)
	return nil
}
