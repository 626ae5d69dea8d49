package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"github.com/kimberlabs/staking-ledger/internal/types"
	"github.com/kimberlabs/staking-ledger/pkg"
)

// CallerHeader carries the address the fronting gateway authenticated.
const CallerHeader = "X-Caller-Address"

type Handler struct {
	service  LedgerService
	validate *validator.Validate
}

func NewHandler(service LedgerService) *Handler {
	return &Handler{
		service:  service,
		validate: newValidator(),
	}
}

// handlerFunc returns the response body, nil for 204 No Content.
type handlerFunc func(r *http.Request) (any, *types.Error)

func (h *Handler) wrap(f handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := f(r)
		if err != nil {
			writeError(w, r, err)
			return
		}
		if body == nil {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		writeJSON(w, r, http.StatusOK, body)
	}
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Ctx(r.Context()).Error().Err(err).Msg("Failed to encode response")
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err *types.Error) {
	event := log.Ctx(r.Context()).Warn()
	if err.StatusCode >= http.StatusInternalServerError {
		event = log.Ctx(r.Context()).Error()
	}
	event.Err(err).
		Str("error_code", err.ErrorCode.String()).
		Int("status", err.StatusCode).
		Msg("Request failed")

	message := err.Error()
	if err.StatusCode >= http.StatusInternalServerError {
		message = "internal service error"
	}
	writeJSON(w, r, err.StatusCode, errorResponse{
		ErrorCode: err.ErrorCode.String(),
		Message:   message,
	})
}

func caller(r *http.Request) (common.Address, *types.Error) {
	addr, err := pkg.ParseAddress(r.Header.Get(CallerHeader))
	if err != nil {
		return common.Address{}, types.NewErrorWithMsg(http.StatusUnauthorized, types.Unauthorized, "missing or invalid "+CallerHeader+" header")
	}
	return addr, nil
}

func pathAddress(r *http.Request, name string) (common.Address, *types.Error) {
	addr, err := pkg.ParseAddress(chi.URLParam(r, name))
	if err != nil {
		return common.Address{}, types.NewValidationFailedError(fmt.Errorf("invalid %s: %w", name, err))
	}
	return addr, nil
}

func (h *Handler) Stake(r *http.Request) (any, *types.Error) {
	from, err := caller(r)
	if err != nil {
		return nil, err
	}
	var req stakeRequest
	if err := h.decode(r, &req); err != nil {
		return nil, err
	}
	return nil, h.service.Stake(r.Context(), from, common.HexToAddress(req.OnBehalfOf), mustAmount(req.Amount))
}

func (h *Handler) Redeem(r *http.Request) (any, *types.Error) {
	from, err := caller(r)
	if err != nil {
		return nil, err
	}
	var req redeemRequest
	if err := h.decode(r, &req); err != nil {
		return nil, err
	}
	redeemed, err := h.service.Redeem(r.Context(), from, common.HexToAddress(req.To), mustAmount(req.Amount))
	if err != nil {
		return nil, err
	}
	return amountResponse{Amount: redeemed.Dec()}, nil
}

func (h *Handler) Cooldown(r *http.Request) (any, *types.Error) {
	from, err := caller(r)
	if err != nil {
		return nil, err
	}
	return nil, h.service.Cooldown(r.Context(), from)
}

func (h *Handler) ClaimRewards(r *http.Request) (any, *types.Error) {
	from, err := caller(r)
	if err != nil {
		return nil, err
	}
	var req claimRequest
	if err := h.decode(r, &req); err != nil {
		return nil, err
	}
	claimed, err := h.service.ClaimRewards(r.Context(), from, common.HexToAddress(req.To), mustAmount(req.Amount))
	if err != nil {
		return nil, err
	}
	return amountResponse{Amount: claimed.Dec()}, nil
}

func (h *Handler) Transfer(r *http.Request) (any, *types.Error) {
	from, err := caller(r)
	if err != nil {
		return nil, err
	}
	var req transferRequest
	if err := h.decode(r, &req); err != nil {
		return nil, err
	}
	return nil, h.service.Transfer(r.Context(), from, common.HexToAddress(req.To), mustAmount(req.Amount))
}

func (h *Handler) TransferFrom(r *http.Request) (any, *types.Error) {
	spender, err := caller(r)
	if err != nil {
		return nil, err
	}
	var req transferFromRequest
	if err := h.decode(r, &req); err != nil {
		return nil, err
	}
	return nil, h.service.TransferFrom(
		r.Context(), spender, common.HexToAddress(req.From), common.HexToAddress(req.To), mustAmount(req.Amount),
	)
}

func (h *Handler) Approve(r *http.Request) (any, *types.Error) {
	owner, err := caller(r)
	if err != nil {
		return nil, err
	}
	var req approveRequest
	if err := h.decode(r, &req); err != nil {
		return nil, err
	}
	return nil, h.service.Approve(r.Context(), owner, common.HexToAddress(req.Spender), mustAmount(req.Amount))
}

// Permit needs no caller, the signature authorizes the change.
func (h *Handler) Permit(r *http.Request) (any, *types.Error) {
	var req permitRequest
	if err := h.decode(r, &req); err != nil {
		return nil, err
	}
	permit, err := req.toPermit()
	if err != nil {
		return nil, err
	}
	return nil, h.service.Permit(r.Context(), permit)
}

func (h *Handler) ConfigureAssets(r *http.Request) (any, *types.Error) {
	manager, err := caller(r)
	if err != nil {
		return nil, err
	}
	var req configureAssetsRequest
	if err := h.decode(r, &req); err != nil {
		return nil, err
	}
	return nil, h.service.ConfigureAssets(r.Context(), manager, req.toInputs())
}

func (h *Handler) GetLedger(r *http.Request) (any, *types.Error) {
	info, err := h.service.LedgerInfo()
	if err != nil {
		return nil, err
	}
	return newLedgerResponse(info), nil
}

func (h *Handler) GetAccount(r *http.Request) (any, *types.Error) {
	addr, err := pathAddress(r, "address")
	if err != nil {
		return nil, err
	}
	info, err := h.service.AccountInfo(addr)
	if err != nil {
		return nil, err
	}
	return newAccountResponse(info), nil
}

func (h *Handler) GetAllowance(r *http.Request) (any, *types.Error) {
	owner, err := pathAddress(r, "owner")
	if err != nil {
		return nil, err
	}
	spender, err := pathAddress(r, "spender")
	if err != nil {
		return nil, err
	}
	amount, err := h.service.Allowance(owner, spender)
	if err != nil {
		return nil, err
	}
	return newAllowanceResponse(owner, spender, amount), nil
}

func (h *Handler) GetEvents(r *http.Request) (any, *types.Error) {
	var (
		before uint64
		limit  int64
	)
	if v := r.URL.Query().Get("before"); v != "" {
		parsed, parseErr := strconv.ParseUint(v, 10, 64)
		if parseErr != nil {
			return nil, types.NewValidationFailedError(errors.New("before must be a sequence number"))
		}
		before = parsed
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		parsed, parseErr := strconv.ParseInt(v, 10, 64)
		if parseErr != nil || parsed <= 0 {
			return nil, types.NewValidationFailedError(errors.New("limit must be a positive number"))
		}
		limit = parsed
	}

	events, err := h.service.LedgerEvents(r.Context(), before, limit)
	if err != nil {
		return nil, err
	}
	return newEventResponses(events), nil
}

func (h *Handler) GetTokenBalance(r *http.Request) (any, *types.Error) {
	token, err := pathAddress(r, "token")
	if err != nil {
		return nil, err
	}
	holder, err := pathAddress(r, "holder")
	if err != nil {
		return nil, err
	}
	balance, err := h.service.TokenBalance(r.Context(), token, holder)
	if err != nil {
		return nil, err
	}
	return tokenBalanceResponse{
		Token:   token.Hex(),
		Holder:  holder.Hex(),
		Balance: balance.Dec(),
	}, nil
}

func (h *Handler) Healthcheck(r *http.Request) (any, *types.Error) {
	if err := h.service.Healthcheck(r.Context()); err != nil {
		return nil, err
	}
	return map[string]string{"status": "ok"}, nil
}
