// Package notice carries transient user-facing messages and how long they
// stay on screen.
package notice

import "time"

type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindInfo    Kind = "info"
)

const (
	ErrorTTL   = 5 * time.Second
	SuccessTTL = 3 * time.Second
)

type Notice struct {
	Kind Kind
	Text string
	TTL  time.Duration
}

func Error(text string) Notice {
	return Notice{Kind: KindError, Text: text, TTL: ErrorTTL}
}

func Success(text string) Notice {
	return Notice{Kind: KindSuccess, Text: text, TTL: SuccessTTL}
}

func Info(text string) Notice {
	return Notice{Kind: KindInfo, Text: text, TTL: SuccessTTL}
}

func (n Notice) IsZero() bool {
	return n.Text == ""
}
