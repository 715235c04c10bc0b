package adapter

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-dream-cipher/internal/config"
	"github.com/MKhiriev/go-dream-cipher/internal/confidential"
	"github.com/MKhiriev/go-dream-cipher/internal/logger"
	"github.com/MKhiriev/go-dream-cipher/internal/utils"
	"github.com/MKhiriev/go-dream-cipher/models"
)

type httpLedgerAdapter struct {
	client *utils.HTTPClient

	hashKey string

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPLedgerAdapter constructs the HTTP implementation of [Adapter].
// It normalises adapterCfg.HTTPAddress, applies the request timeout and
// initialises the HMAC hasher pool used for the request integrity header.
//
// Returns an error if adapterCfg.HTTPAddress is empty.
func NewHTTPLedgerAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (Adapter, error) {
	if strings.TrimSpace(adapterCfg.HTTPAddress) == "" {
		return nil, fmt.Errorf("invalid adapter http address: empty address")
	}

	utils.InitHasherPool(appCfg.HashKey)

	return &httpLedgerAdapter{
		client:  utils.NewHTTPClient(adapterCfg.HTTPAddress, adapterCfg.RequestTimeout),
		hashKey: appCfg.HashKey,
		logger:  logger,
	}, nil
}

// SetToken implements [LedgerAdapter].
func (h *httpLedgerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [LedgerAdapter].
func (h *httpLedgerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Login implements [LedgerAdapter]. It POSTs the signed login message to
// POST /api/auth/login and stores the bearer token from the Authorization
// response header.
func (h *httpLedgerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	var out models.LoginResponse

	resp, err := h.post(ctx, "/api/auth/login", req, &out, false)
	if err != nil {
		return models.LoginResponse{}, requestError("login", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login parse bearer token: %w", err)
	}

	h.SetToken(token)
	out.Token = token
	return out, nil
}

// Submit implements [LedgerAdapter]: POST /api/notes.
func (h *httpLedgerAdapter) Submit(ctx context.Context, req models.SubmitRequest) (models.Receipt, error) {
	var receipt models.Receipt

	resp, err := h.post(ctx, "/api/notes", req, &receipt, true)
	if err != nil {
		return models.Receipt{}, requestError("submit", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Receipt{}, err
	}

	return receipt, nil
}

// GetCount implements [LedgerAdapter]: GET /api/notes/count.
func (h *httpLedgerAdapter) GetCount(ctx context.Context) (uint64, error) {
	var out models.CountResponse
	if err := h.get(ctx, "get count", "/api/notes/count", &out); err != nil {
		return 0, err
	}
	return out.Count, nil
}

// GetCountByOwner implements [LedgerAdapter]: GET /api/notes/owner/{owner}/count.
func (h *httpLedgerAdapter) GetCountByOwner(ctx context.Context, owner common.Address) (uint64, error) {
	var out models.CountResponse
	if err := h.get(ctx, "get count by owner", "/api/notes/owner/"+owner.Hex()+"/count", &out); err != nil {
		return 0, err
	}
	return out.Count, nil
}

// GetIDsByOwner implements [LedgerAdapter]: GET /api/notes/owner/{owner}/ids.
func (h *httpLedgerAdapter) GetIDsByOwner(ctx context.Context, owner common.Address) ([]uint64, error) {
	var out models.IDsResponse
	if err := h.get(ctx, "get ids by owner", "/api/notes/owner/"+owner.Hex()+"/ids", &out); err != nil {
		return nil, err
	}
	return out.IDs, nil
}

// GetMeta implements [LedgerAdapter]: GET /api/notes/{id}/meta.
func (h *httpLedgerAdapter) GetMeta(ctx context.Context, id uint64) (models.NoteMeta, error) {
	var out models.NoteMeta
	if err := h.get(ctx, "get meta", notePath(id, "meta"), &out); err != nil {
		return models.NoteMeta{}, err
	}
	return out, nil
}

// GetData implements [LedgerAdapter]: GET /api/notes/{id}/data.
func (h *httpLedgerAdapter) GetData(ctx context.Context, id uint64) ([]byte, error) {
	var out models.DataResponse
	if err := h.get(ctx, "get data", notePath(id, "data"), &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// GetInterpretationCount implements [LedgerAdapter]:
// GET /api/notes/{id}/interpretations.
func (h *httpLedgerAdapter) GetInterpretationCount(ctx context.Context, id uint64) (common.Hash, error) {
	var out models.HandleResponse
	if err := h.get(ctx, "get interpretation count", notePath(id, "interpretations"), &out); err != nil {
		return common.Hash{}, err
	}
	return out.Handle, nil
}

// IncrementInterpretationCount implements [LedgerAdapter]:
// POST /api/notes/{id}/interpretations.
func (h *httpLedgerAdapter) IncrementInterpretationCount(ctx context.Context, id uint64, req models.IncrementRequest) (models.Receipt, error) {
	var receipt models.Receipt

	resp, err := h.post(ctx, notePath(id, "interpretations"), req, &receipt, true)
	if err != nil {
		return models.Receipt{}, requestError("increment interpretation count", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Receipt{}, err
	}

	return receipt, nil
}

// Events implements [LedgerAdapter]: GET /api/events?from={fromSeq}.
func (h *httpLedgerAdapter) Events(ctx context.Context, fromSeq uint64) ([]models.Event, error) {
	var out models.EventsResponse
	if err := h.get(ctx, "events", "/api/events?from="+strconv.FormatUint(fromSeq, 10), &out); err != nil {
		return nil, err
	}
	return out.Events, nil
}

// Metadata implements [RelayerAdapter]: GET /api/fhe/metadata.
func (h *httpLedgerAdapter) Metadata(ctx context.Context) (models.RuntimeMetadata, error) {
	var out models.RuntimeMetadata
	if err := h.get(ctx, "relayer metadata", "/api/fhe/metadata", &out); err != nil {
		return models.RuntimeMetadata{}, err
	}
	return out, nil
}

// EncryptInput implements [RelayerAdapter]: POST /api/fhe/input. The
// relayer answers with hex strings, so the raw values carry the string
// variant.
func (h *httpLedgerAdapter) EncryptInput(ctx context.Context, contract, user common.Address, values []uint32) (confidential.RawInput, error) {
	var out models.InputResponse

	req := models.InputRequest{Contract: contract.Hex(), User: user.Hex(), Values: values}
	resp, err := h.post(ctx, "/api/fhe/input", req, &out, true)
	if err != nil {
		return confidential.RawInput{}, requestError("encrypt input", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return confidential.RawInput{}, err
	}

	raw := confidential.RawInput{
		Handles:    make([]confidential.RawValue, len(out.Handles)),
		InputProof: confidential.StringValue(out.InputProof),
	}
	for i, handle := range out.Handles {
		raw.Handles[i] = confidential.StringValue(handle)
	}

	return raw, nil
}

// UserDecrypt implements [RelayerAdapter]: POST /api/fhe/decrypt.
func (h *httpLedgerAdapter) UserDecrypt(ctx context.Context, handle common.Hash, contract common.Address) (uint64, error) {
	var out models.DecryptResponse

	req := models.DecryptRequest{Handle: handle.Hex(), Contract: contract.Hex()}
	resp, err := h.post(ctx, "/api/fhe/decrypt", req, &out, true)
	if err != nil {
		return 0, requestError("user decrypt", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}

	return out.Value, nil
}

// get performs an unauthenticated GET and decodes the JSON body into out.
func (h *httpLedgerAdapter) get(ctx context.Context, op, path string, out any) error {
	resp, err := h.client.R().SetContext(ctx).Get(path)
	if err != nil {
		return requestError(op, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	if err = json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrMalformedResponse, op, err)
	}
	return nil
}

// post sends body as JSON with the integrity header. A 2xx body is decoded
// into out by resty.
func (h *httpLedgerAdapter) post(ctx context.Context, path string, body, out any, authed bool) (*resty.Response, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	req := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		SetResult(out)

	if h.hashKey != "" {
		req.SetHeader(utils.HashHeader, hex.EncodeToString(utils.Hash(payload)))
	}
	if token := h.Token(); authed && token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}

	return req.Post(path)
}

func notePath(id uint64, leaf string) string {
	return "/api/notes/" + strconv.FormatUint(id, 10) + "/" + leaf
}
