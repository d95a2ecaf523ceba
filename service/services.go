package service

import (
	"github.com/traPtitech/identicon/service/identicon"
)

type Services struct {
	Identicon identicon.Manager
}
