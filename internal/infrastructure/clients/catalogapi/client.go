package catalogapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ankorline/yachtcharterdiscovery/backend/internal/domain/entities"
	apperrors "github.com/ankorline/yachtcharterdiscovery/backend/pkg/errors"
)

// Client fetches the raw yacht batch from the remote catalog endpoint
type Client struct {
	url        string
	httpClient *http.Client
}

// NewClient creates a catalog client for the given endpoint URL
func NewClient(url string, timeout time.Duration) *Client {
	return &Client{
		url: url,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// legacyEnvelope mirrors the nested shape of the catalog's old export format
type legacyEnvelope struct {
	Data *struct {
		YachtsWithInfos *struct {
			Nodes []entities.RawYacht `json:"nodes"`
		} `json:"yachtsWithInfos"`
	} `json:"data"`
}

// FetchBatch requests the catalog and normalizes the payload to a flat batch.
// A transport failure or non-success status is an external error; an
// unrecognized payload shape degrades to an empty batch so the catalog can
// still render.
func (c *Client) FetchBatch(ctx context.Context) ([]entities.RawYacht, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build catalog request", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.NewExternalError("catalog request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, apperrors.NewExternalError(fmt.Sprintf("catalog responded with status %d", resp.StatusCode), nil)
	}

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.NewExternalError("failed to read catalog response", err)
	}

	return decodeBatch(payload), nil
}

// decodeBatch accepts either a bare array of records or the legacy envelope.
// Anything else yields an empty batch.
func decodeBatch(payload []byte) []entities.RawYacht {
	var batch []entities.RawYacht
	if err := json.Unmarshal(payload, &batch); err == nil {
		return batch
	}

	var legacy legacyEnvelope
	if err := json.Unmarshal(payload, &legacy); err == nil &&
		legacy.Data != nil &&
		legacy.Data.YachtsWithInfos != nil &&
		legacy.Data.YachtsWithInfos.Nodes != nil {
		return legacy.Data.YachtsWithInfos.Nodes
	}

	return []entities.RawYacht{}
}
