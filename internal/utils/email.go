package utils

import (
	"fmt"
	"log"
	"os"

	"github.com/wneessen/go-mail"
)

// SendWelcomeEmail envoie l'e-mail de bienvenue après l'inscription.
// No-op si le SMTP n'est pas configuré dans .env.
func SendWelcomeEmail(to, username string) error {
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		return nil
	}

	msg := mail.NewMsg()
	if err := msg.From(os.Getenv("SMTP_FROM")); err != nil {
		return err
	}
	if err := msg.To(to); err != nil {
		return err
	}
	msg.Subject("Bienvenue chez Orvela")
	msg.SetBodyString(mail.TypeTextHTML, welcomeHTML(username))

	client, err := mail.NewClient(host,
		mail.WithPort(587),
		mail.WithSMTPAuth(mail.SMTPAuthLogin),
		mail.WithUsername(os.Getenv("SMTP_USERNAME")),
		mail.WithPassword(os.Getenv("SMTP_PASSWORD")),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return err
	}

	log.Println("📤 Envoi de l'e-mail de bienvenue à", to)
	return client.DialAndSend(msg)
}

func welcomeHTML(username string) string {
	return fmt.Sprintf(`
<!DOCTYPE html>
<html lang="fr">
<head><meta charset="UTF-8"><title>Bienvenue</title></head>
<body style="font-family: Arial, sans-serif; background-color: #f9f9f9; padding: 20px;">
	<div style="max-width: 600px; margin: auto; background-color: white; padding: 20px; border-radius: 10px;">
		<h2 style="color: #333;">Bienvenue %s !</h2>
		<p>Votre compte Orvela a bien été créé.</p>
		<p>Bonne visite sur la boutique.</p>
	</div>
</body>
</html>`, username)
}
