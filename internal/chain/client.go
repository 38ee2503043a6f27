// Package chain talks to the contract gateway fronting the project registry
// smart contract. The contract itself is an external collaborator; this
// client only consumes the gateway's JSON surface.
package chain

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/UniChain-25-26J-287/uni-repo-backend/internal/projects/domain"
)

type Client struct {
	BaseURL  string
	Contract string
	HTTP     *http.Client
}

func NewClient(baseURL, contract string) *Client {
	return &Client{
		BaseURL:  baseURL,
		Contract: contract,
		HTTP:     &http.Client{Timeout: 30 * time.Second},
	}
}

type Institution struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Department struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// UserInfo mirrors the contract's getUserInfo tuple.
type UserInfo struct {
	IsRegistered  bool  `json:"is_registered"`
	IsStudent     bool  `json:"is_student"`
	IsAdmin       bool  `json:"is_admin"`
	DepartmentID  int64 `json:"department_id"`
	InstitutionID int64 `json:"institution_id"`
}

type registerProjectReq struct {
	Contract     string `json:"contract"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	IPFSHash     string `json:"ipfs_hash"`
	DepartmentID int64  `json:"department_id"`
	Year         int    `json:"year"`
	AccessLevel  int    `json:"access_level"`
	From         string `json:"from"`
}

type registerProjectResp struct {
	OK        bool   `json:"ok"`
	ProjectID int64  `json:"project_id"`
	TxHash    string `json:"tx_hash"`
	Error     string `json:"error,omitempty"`
}

// RegisterProject submits the registration transaction through the gateway
// and returns the on-chain project id from the ProjectRegistered event.
func (c *Client) RegisterProject(ctx context.Context, p domain.Project, from string) (int64, string, error) {
	req := registerProjectReq{
		Contract:     c.Contract,
		Title:        p.Title,
		Description:  p.Description,
		IPFSHash:     p.IPFSHash,
		DepartmentID: p.DepartmentID,
		Year:         p.Year,
		AccessLevel:  int(p.AccessLevel),
		From:         from,
	}

	var out registerProjectResp
	if err := c.post(ctx, "/v1/projects", req, &out); err != nil {
		return 0, "", err
	}
	if !out.OK {
		return 0, "", fmt.Errorf("chain register: %s", out.Error)
	}
	return out.ProjectID, out.TxHash, nil
}

// SetAccessLevel mirrors the contract's setProjectAccessLevel call.
func (c *Client) SetAccessLevel(ctx context.Context, projectID int64, level domain.AccessLevel, from string) error {
	body := map[string]any{
		"contract":     c.Contract,
		"access_level": int(level),
		"from":         from,
	}
	var out registerProjectResp
	if err := c.post(ctx, fmt.Sprintf("/v1/projects/%d/access-level", projectID), body, &out); err != nil {
		return err
	}
	if !out.OK {
		return fmt.Errorf("chain set access level: %s", out.Error)
	}
	return nil
}

type institutionsResp struct {
	OK           bool          `json:"ok"`
	Institutions []Institution `json:"institutions"`
}

func (c *Client) Institutions(ctx context.Context) ([]Institution, error) {
	var out institutionsResp
	if err := c.get(ctx, "/v1/institutions", &out); err != nil {
		return nil, err
	}
	return out.Institutions, nil
}

type departmentsResp struct {
	OK          bool         `json:"ok"`
	Departments []Department `json:"departments"`
}

func (c *Client) DepartmentsByInstitution(ctx context.Context, institutionID int64) ([]Department, error) {
	var out departmentsResp
	if err := c.get(ctx, fmt.Sprintf("/v1/institutions/%d/departments", institutionID), &out); err != nil {
		return nil, err
	}
	return out.Departments, nil
}

type userInfoResp struct {
	OK   bool     `json:"ok"`
	User UserInfo `json:"user"`
}

func (c *Client) GetUserInfo(ctx context.Context, address string) (*UserInfo, error) {
	var out userInfoResp
	if err := c.get(ctx, "/v1/users/"+url.PathEscape(address), &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}

type studentsResp struct {
	OK        bool     `json:"ok"`
	Addresses []string `json:"addresses"`
}

func (c *Client) StudentsByDepartment(ctx context.Context, departmentID int64) ([]string, error) {
	var out studentsResp
	if err := c.get(ctx, fmt.Sprintf("/v1/departments/%d/students", departmentID), &out); err != nil {
		return nil, err
	}
	return out.Addresses, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(httpReq, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	b, _ := json.Marshal(body)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(b))
	if err != nil {
		return err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	return c.do(httpReq, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("chain gateway: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("chain gateway: status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("chain gateway decode: %w", err)
	}
	return nil
}
