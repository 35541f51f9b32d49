package chain

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// Minimal ABI fragments for the two contracts the agent talks to. Only the
// functions the agent calls are declared; the deployed contracts carry more.
const loanContractABI = `[
	{"name":"getActiveLoan","type":"function","stateMutability":"view",
	 "inputs":[{"name":"borrower","type":"address"}],
	 "outputs":[
		{"name":"amount","type":"uint256"},
		{"name":"maxPaymentDate","type":"uint256"},
		{"name":"status","type":"uint8"},
		{"name":"createdAt","type":"uint256"},
		{"name":"isOverdue","type":"bool"}]},
	{"name":"hasActiveLoanStatus","type":"function","stateMutability":"view",
	 "inputs":[{"name":"borrower","type":"address"}],
	 "outputs":[{"name":"","type":"bool"}]},
	{"name":"getContractBalance","type":"function","stateMutability":"view",
	 "inputs":[],
	 "outputs":[{"name":"","type":"uint256"}]},
	{"name":"requestLoan","type":"function","stateMutability":"nonpayable",
	 "inputs":[{"name":"amount","type":"uint256"},{"name":"maxPaymentDate","type":"uint256"}],
	 "outputs":[]},
	{"name":"payBackLoan","type":"function","stateMutability":"nonpayable",
	 "inputs":[{"name":"amount","type":"uint256"}],
	 "outputs":[]}
]`

const erc20ABI = `[
	{"name":"balanceOf","type":"function","stateMutability":"view",
	 "inputs":[{"name":"account","type":"address"}],
	 "outputs":[{"name":"","type":"uint256"}]},
	{"name":"allowance","type":"function","stateMutability":"view",
	 "inputs":[{"name":"owner","type":"address"},{"name":"spender","type":"address"}],
	 "outputs":[{"name":"","type":"uint256"}]},
	{"name":"approve","type":"function","stateMutability":"nonpayable",
	 "inputs":[{"name":"spender","type":"address"},{"name":"amount","type":"uint256"}],
	 "outputs":[{"name":"","type":"bool"}]}
]`

var (
	loanABI  = mustParseABI(loanContractABI)
	tokenABI = mustParseABI(erc20ABI)
)

func mustParseABI(raw string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(raw))
	if err != nil {
		panic("chain: invalid ABI literal: " + err.Error())
	}
	return parsed
}
