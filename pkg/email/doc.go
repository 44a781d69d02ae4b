// Package email delivers transactional mail.
//
// EmailSender is the single contract. Three implementations are provided and
// selected by Config.Driver through NewFromConfig:
//
//   - smtp: github.com/wneessen/go-mail with opportunistic STARTTLS.
//   - postmark: the Postmark transactional API via github.com/mrz1836/postmark.
//   - dev: DevSender writes messages to a local directory.
//
// Every sender validates SendEmailParams before doing any I/O. Delivery is a
// single attempt; callers decide whether a failure matters.
//
// Bodies are rendered with the templ helpers in the templates subpackage.
package email
