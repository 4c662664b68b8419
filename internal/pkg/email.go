package pkg

import (
	"crypto/tls"
	"fmt"

	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host     string
	Port     int
	Username string // 发件人邮箱
	Password string // 授权码/密码
	From     string // 显示的发件人，可与 Username 相同
}

func (cfg SMTPConfig) Enabled() bool {
	return cfg.Host != ""
}

func SendEmail(cfg SMTPConfig, to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", cfg.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	d.TLSConfig = &tls.Config{InsecureSkipVerify: false}
	return d.DialAndSend(m)
}

// SubmissionNotifyHTML 新投稿的站内通知邮件
func SubmissionNotifyHTML(name, author, category, projectURL string) string {
	return fmt.Sprintf(
		`<p>新投稿：<b>%s</b></p><p>作者：%s　分类：%s</p><p>项目地址：<a href="%s">%s</a></p>`,
		name, author, category, projectURL, projectURL,
	)
}
