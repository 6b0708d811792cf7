package service

import (
	"errors"
	"fmt"

	"squawker/backend/internal/model"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// SendResetMail delivers the reset link to the user. Callers are expected
// to run this off the request goroutine, delivery is best-effort and must
// never hold up the HTTP response
func SendResetMail(user *model.User, token string) error {
	var s string
	if viper.GetBool("host.ssl.enabled") {
		s = "s"
	}

	resetLink := fmt.Sprintf("http%v://%v/reset?user_id=%v&token=%v",
		s, viper.GetString("host.domain"), user.ID, token)

	if !viper.GetBool("mail.enabled") {
		zap.L().Info("Mail disabled, logging reset link instead",
			zap.Uint("userID", user.ID),
			zap.String("link", resetLink))
		return nil
	}

	from := viper.GetString("mail.sender_address")
	if user.Email == from {
		return errors.New("invalid email address")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", user.Email)
	m.SetHeader("Subject", "Reset your Squawker password")
	m.SetBody("text/html", fmt.Sprintf("Click <a href='%v'>here</a> to reset your password.\n\nThis link will expire in %v", resetLink, viper.GetDuration("reset.token_ttl")))

	d := gomail.NewDialer(
		viper.GetString("mail.host"),
		viper.GetInt("mail.port"),
		from,
		viper.GetString("mail.password"),
	)

	if err := d.DialAndSend(m); err != nil {
		return err
	}

	return nil
}
