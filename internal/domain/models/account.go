package models

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Account is a signer available on the selected network
type Account struct {
	Index   int            `json:"index"`
	Address common.Address `json:"address"`
	Balance *big.Int       `json:"balance,omitempty"`
}
