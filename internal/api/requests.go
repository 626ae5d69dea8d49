package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"reflect"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/go-playground/validator/v10"
	"github.com/holiman/uint256"

	"github.com/kimberlabs/staking-ledger/internal/ledger"
	"github.com/kimberlabs/staking-ledger/internal/types"
)

// Amounts travel as base 10 strings, addresses as 0x prefixed hex.

type stakeRequest struct {
	OnBehalfOf string `json:"onBehalfOf" validate:"required,eth_addr"`
	Amount     string `json:"amount" validate:"required,uint256"`
}

type redeemRequest struct {
	To     string `json:"to" validate:"required,eth_addr"`
	Amount string `json:"amount" validate:"required,uint256"`
}

type claimRequest struct {
	To     string `json:"to" validate:"required,eth_addr"`
	Amount string `json:"amount" validate:"required,uint256"`
}

type transferRequest struct {
	To     string `json:"to" validate:"required,eth_addr"`
	Amount string `json:"amount" validate:"required,uint256"`
}

type transferFromRequest struct {
	From   string `json:"from" validate:"required,eth_addr"`
	To     string `json:"to" validate:"required,eth_addr"`
	Amount string `json:"amount" validate:"required,uint256"`
}

type approveRequest struct {
	Spender string `json:"spender" validate:"required,eth_addr"`
	Amount  string `json:"amount" validate:"required,uint256"`
}

type permitRequest struct {
	Owner     string `json:"owner" validate:"required,eth_addr"`
	Spender   string `json:"spender" validate:"required,eth_addr"`
	Value     string `json:"value" validate:"required,uint256"`
	Deadline  string `json:"deadline" validate:"required,uint256"`
	Signature string `json:"signature" validate:"required,hexadecimal"`
}

type assetConfigRequest struct {
	EmissionPerSecond string `json:"emissionPerSecond" validate:"required,uint256"`
	TotalStaked       string `json:"totalStaked" validate:"required,uint256"`
	UnderlyingAsset   string `json:"underlyingAsset" validate:"required,eth_addr"`
}

type configureAssetsRequest struct {
	Assets []assetConfigRequest `json:"assets" validate:"required,min=1,dive"`
}

func newValidator() *validator.Validate {
	v := validator.New()
	//nolint:errcheck
	v.RegisterValidation("uint256", func(fl validator.FieldLevel) bool {
		if fl.Field().Kind() != reflect.String {
			return false
		}
		_, err := uint256.FromDecimal(fl.Field().String())
		return err == nil
	})
	return v
}

// decode reads a json body into req and validates it.
func (h *Handler) decode(r *http.Request, req any) *types.Error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(req); err != nil {
		return types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, fmt.Sprintf("invalid request body: %v", err))
	}
	if err := h.validate.Struct(req); err != nil {
		return types.NewValidationFailedError(err)
	}
	return nil
}

// Fields below already passed validation.

func mustAmount(s string) uint256.Int {
	v := uint256.MustFromDecimal(s)
	return *v
}

func (r *permitRequest) toPermit() (ledger.PermitRequest, *types.Error) {
	sig, err := hexutil.Decode(r.Signature)
	if err != nil {
		return ledger.PermitRequest{}, types.NewValidationFailedError(fmt.Errorf("invalid signature: %w", err))
	}
	return ledger.PermitRequest{
		Owner:     common.HexToAddress(r.Owner),
		Spender:   common.HexToAddress(r.Spender),
		Value:     mustAmount(r.Value),
		Deadline:  mustAmount(r.Deadline),
		Signature: sig,
	}, nil
}

func (r *configureAssetsRequest) toInputs() []ledger.AssetConfigInput {
	inputs := make([]ledger.AssetConfigInput, 0, len(r.Assets))
	for _, a := range r.Assets {
		inputs = append(inputs, ledger.AssetConfigInput{
			EmissionPerSecond: mustAmount(a.EmissionPerSecond),
			TotalStaked:       mustAmount(a.TotalStaked),
			UnderlyingAsset:   common.HexToAddress(a.UnderlyingAsset),
		})
	}
	return inputs
}
