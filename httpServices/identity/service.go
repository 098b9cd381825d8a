package httpServices

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/Tawan151766/solva-travel-sub001/types"
)

// IdentityClient talks to the external token-issuance service. This backend
// never verifies credentials itself; it forwards them and trusts the signed
// token that comes back.
type IdentityClient struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient(baseURL string) *IdentityClient {
	return &IdentityClient{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL: baseURL,
	}
}

// RequestLogin forwards a credential check to the identity service.
func (c *IdentityClient) RequestLogin(req types.LoginRequest) (*types.AuthResponse, error) {
	return c.post("/identity/login/", req)
}

// RequestRegister forwards an account creation to the identity service.
func (c *IdentityClient) RequestRegister(req types.RegisterRequest) (*types.AuthResponse, error) {
	return c.post("/identity/register/", req)
}

func (c *IdentityClient) post(path string, payload interface{}) (*types.AuthResponse, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequest("POST", c.baseURL+path, bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}

	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, errors.New("identity API returned non-OK status: " + resp.Status)
	}

	var apiResp types.AuthResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, err
	}

	return &apiResp, nil
}
