package chain

// TxState is the provider-reported lifecycle state of a transaction.
type TxState string

const (
	TxStatePending   TxState = "PENDING"
	TxStateConfirmed TxState = "CONFIRMED"
	TxStateFailed    TxState = "FAILED"
)

// TxStatus is the result of a transaction-status lookup.
type TxStatus struct {
	State         TxState `json:"state"`
	BlockHeight   int64   `json:"blockHeight"`
	Confirmations int64   `json:"confirmations"`
}

type utxo struct {
	TxHash      string   `json:"tx_hash"`
	OutputIndex int      `json:"output_index"`
	Amount      []amount `json:"amount"`
}

type amount struct {
	Unit     string `json:"unit"`
	Quantity string `json:"quantity"`
}

type protocolParams struct {
	MinFeeA          int64  `json:"min_fee_a"`
	MinFeeB          int64  `json:"min_fee_b"`
	CoinsPerUTxOSize string `json:"coins_per_utxo_size"`
}

type txInfo struct {
	Hash        string `json:"hash"`
	Block       string `json:"block"`
	BlockHeight int64  `json:"block_height"`
	BlockTime   int64  `json:"block_time"`
}

type blockInfo struct {
	Hash   string `json:"hash"`
	Height int64  `json:"height"`
	Time   int64  `json:"time"`
}

type apiErrorBody struct {
	StatusCode int    `json:"status_code"`
	Error      string `json:"error"`
	Message    string `json:"message"`
}

type txInput struct {
	TxHash      string `json:"txHash"`
	OutputIndex int    `json:"outputIndex"`
	Lovelace    int64  `json:"lovelace"`
}

type txOutput struct {
	Address  string `json:"address"`
	Lovelace int64  `json:"lovelace"`
}

// txEnvelope is the unsigned self-payment handed to the wallet bridge
// for signing. The metadata map is keyed by the numeric label.
type txEnvelope struct {
	Inputs   []txInput      `json:"inputs"`
	Outputs  []txOutput     `json:"outputs"`
	Fee      int64          `json:"fee"`
	Metadata map[string]any `json:"metadata"`
}
