package payload

import (
	"regexp"

	"github.com/jellydator/validation"
)

var (
	walletAddressRegex = regexp.MustCompile(`^(addr1|addr_test1)[a-z0-9]+$`)
	txHashRegex        = regexp.MustCompile(`^[a-f0-9]{64}$`)
)

type WalletSessionRequest struct {
	WalletAddress string `json:"walletAddress"`
}

func (ws WalletSessionRequest) Validate() error {
	return validation.ValidateStruct(&ws,
		validation.Field(&ws.WalletAddress, validation.Required, validation.Match(walletAddressRegex)),
	)
}
