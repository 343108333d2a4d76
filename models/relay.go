package models

// RelayRequestType is the operation a relay context submits on behalf of an
// external origin.
type RelayRequestType string

const (
	RelayEnable        RelayRequestType = "enable"
	RelaySignAmino     RelayRequestType = "sign_amino"
	RelaySignDirect    RelayRequestType = "sign_direct"
	RelaySignArbitrary RelayRequestType = "sign_arbitrary"
)

// RelayRequest is the payload of an approval-gated relay operation.
type RelayRequest struct {
	Type      RelayRequestType `json:"type"`
	Origin    string           `json:"origin"`
	ChainID   string           `json:"chainId"`
	Signer    string           `json:"signer,omitempty"`
	AminoDoc  *StdSignDoc      `json:"aminoDoc,omitempty"`
	DirectDoc *DirectSignDoc   `json:"directDoc,omitempty"`
	Data      []byte           `json:"data,omitempty"`
}

// RelayStatus is the state of a submitted relay request.
type RelayStatus string

const (
	RelayPending  RelayStatus = "pending"
	RelayApproved RelayStatus = "approved"
	RelayRejected RelayStatus = "rejected"
)

// RelayResult is what a relay context receives when polling a request id.
type RelayResult struct {
	ID        string              `json:"id"`
	Status    RelayStatus         `json:"status"`
	Amino     *AminoSignResponse  `json:"amino,omitempty"`
	Direct    *DirectSignResponse `json:"direct,omitempty"`
	Signature *StdSignature       `json:"signature,omitempty"`
}
