package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/kutbudev/listkeeper/internal/config"
	"github.com/kutbudev/listkeeper/pkg/models"
)

// Client talks to the listkeeper JSON API.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// APIError is returned for any response with status >= 400.
type APIError struct {
	StatusCode int
	Message    string
	Fields     map[string]string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("API request failed with status %d", e.StatusCode)
	}
	return fmt.Sprintf("API request failed with status %d: %s", e.StatusCode, e.Message)
}

// IsNotFound reports whether err is an APIError with status 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// NewClient creates a new API client for the configured server.
func NewClient() *Client {
	return NewClientWithURL(config.ResolveBaseURL())
}

// NewClientWithURL creates a client for an explicit base URL, e.g. http://host:8080/api/v1.
func NewClientWithURL(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// makeRequest makes an HTTP request and returns the response body
func (c *Client) makeRequest(method, endpoint string, body interface{}) ([]byte, error) {
	url := c.BaseURL + endpoint

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode >= 400 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var payload struct {
			Error  string            `json:"error"`
			Fields map[string]string `json:"fields"`
		}
		if json.Unmarshal(respBody, &payload) == nil {
			apiErr.Message = payload.Error
			apiErr.Fields = payload.Fields
		} else {
			apiErr.Message = string(respBody)
		}
		return nil, apiErr
	}

	return respBody, nil
}

// List API methods

func (c *Client) ListLists() ([]models.List, error) {
	respBody, err := c.makeRequest(http.MethodGet, "/lists", nil)
	if err != nil {
		return nil, err
	}

	var lists []models.List
	if err := json.Unmarshal(respBody, &lists); err != nil {
		return nil, fmt.Errorf("failed to unmarshal lists: %w", err)
	}
	return lists, nil
}

func (c *Client) GetList(id uint) (*models.List, error) {
	respBody, err := c.makeRequest(http.MethodGet, fmt.Sprintf("/lists/%d", id), nil)
	if err != nil {
		return nil, err
	}

	var list models.List
	if err := json.Unmarshal(respBody, &list); err != nil {
		return nil, fmt.Errorf("failed to unmarshal list: %w", err)
	}
	return &list, nil
}

func (c *Client) CreateList(name, description string) (*models.List, error) {
	reqBody := map[string]string{
		"name":        name,
		"description": description,
	}

	respBody, err := c.makeRequest(http.MethodPost, "/lists", reqBody)
	if err != nil {
		return nil, err
	}

	var list models.List
	if err := json.Unmarshal(respBody, &list); err != nil {
		return nil, fmt.Errorf("failed to unmarshal list: %w", err)
	}
	return &list, nil
}

func (c *Client) UpdateList(id uint, name, description string) (*models.List, error) {
	reqBody := map[string]string{
		"name":        name,
		"description": description,
	}

	respBody, err := c.makeRequest(http.MethodPut, fmt.Sprintf("/lists/%d", id), reqBody)
	if err != nil {
		return nil, err
	}

	var list models.List
	if err := json.Unmarshal(respBody, &list); err != nil {
		return nil, fmt.Errorf("failed to unmarshal list: %w", err)
	}
	return &list, nil
}

func (c *Client) DeleteList(id uint) error {
	_, err := c.makeRequest(http.MethodDelete, fmt.Sprintf("/lists/%d", id), nil)
	return err
}

// Item API methods

func (c *Client) AddItem(listID uint, text string) (*models.Item, error) {
	reqBody := map[string]string{"text": text}

	respBody, err := c.makeRequest(http.MethodPost, fmt.Sprintf("/lists/%d/items", listID), reqBody)
	if err != nil {
		return nil, err
	}

	var item models.Item
	if err := json.Unmarshal(respBody, &item); err != nil {
		return nil, fmt.Errorf("failed to unmarshal item: %w", err)
	}
	return &item, nil
}

func (c *Client) DeleteItem(listID, itemID uint) error {
	_, err := c.makeRequest(http.MethodDelete, fmt.Sprintf("/lists/%d/items/%d", listID, itemID), nil)
	return err
}
