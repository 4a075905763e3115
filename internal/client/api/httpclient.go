package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/cheikhtourad19/artshop-cli/internal/client/models"
	"github.com/cheikhtourad19/artshop-cli/internal/logging"
)

// HTTPClient is the concrete Client talking JSON (and multipart for uploads)
// to the backend REST API.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	log     logging.Logger
}

var _ Client = (*HTTPClient)(nil)

// New builds an HTTPClient for the given base URL (including the /api
// prefix). The token source is attached later with SetTokenSource, because
// the session manager that provides it needs the client first.
func New(baseURL string, timeout time.Duration, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// SetTokenSource attaches the provider of the current bearer token.
func (c *HTTPClient) SetTokenSource(ts TokenSource) {
	c.tokens = ts
}

// do performs one HTTP call and returns the raw response body. A bearer
// header is added when the token source yields a token; every request gets
// an X-Request-Id so calls can be correlated with backend logs. Non-2xx
// statuses come back as *Error.
func (c *HTTPClient) do(ctx context.Context, method, endpoint string, body io.Reader, contentType string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.tokens != nil {
		if t := c.tokens.Token(); t != "" {
			req.Header.Set("Authorization", "Bearer "+t)
		}
	}
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	c.log.Debug(ctx, "api call", "method", method, "endpoint", endpoint, "status", resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, newError(resp.StatusCode, data)
	}
	return data, nil
}

// requestJSON performs a call with an optional JSON body and decodes the
// JSON response into out (when out is non-nil).
func (c *HTTPClient) requestJSON(ctx context.Context, method, endpoint string, in, out any) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	data, err := c.do(ctx, method, endpoint, body, "application/json")
	if err != nil {
		return err
	}
	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// messageFromBody extracts the human-readable message from an error body.
// The backend uses "msg" on auth routes and "message" elsewhere.
func messageFromBody(body []byte) string {
	var e struct {
		Msg     string `json:"msg"`
		Message string `json:"message"`
	}
	_ = json.Unmarshal(body, &e)
	if e.Msg != "" {
		return e.Msg
	}
	return e.Message
}

// --- Auth ---

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	var out models.AuthResponse
	req := models.LoginRequest{Email: email, Password: password}
	if err := c.requestJSON(ctx, http.MethodPost, "/auth/login", req, &out); err != nil {
		return nil, err
	}
	if out.Token == "" {
		return nil, fmt.Errorf("login response missing token")
	}
	return &out, nil
}

func (c *HTTPClient) Register(ctx context.Context, req models.RegisterRequest) error {
	return c.requestJSON(ctx, http.MethodPost, "/auth/register", req, nil)
}

func (c *HTTPClient) RequestPasswordReset(ctx context.Context, email string) (string, error) {
	var out struct {
		Msg string `json:"msg"`
	}
	body := map[string]string{"email": email}
	if err := c.requestJSON(ctx, http.MethodPost, "/auth/reset-password", body, &out); err != nil {
		return "", err
	}
	return out.Msg, nil
}

func (c *HTTPClient) ConfirmPasswordReset(ctx context.Context, token, password string) (string, error) {
	var out struct {
		Msg string `json:"msg"`
	}
	body := map[string]string{"password": password}
	if err := c.requestJSON(ctx, http.MethodPost, "/auth/reset-password/"+token, body, &out); err != nil {
		return "", err
	}
	return out.Msg, nil
}

// --- Profile ---

func (c *HTTPClient) GetProfile(ctx context.Context) (*models.User, error) {
	var out struct {
		User *models.User `json:"user"`
	}
	if err := c.requestJSON(ctx, http.MethodGet, "/users/profile", nil, &out); err != nil {
		return nil, err
	}
	if out.User == nil {
		return nil, fmt.Errorf("profile: %w", ErrNotFound)
	}
	return out.User, nil
}

func (c *HTTPClient) UpdateProfile(ctx context.Context, upd models.ProfileUpdate) (*models.User, error) {
	var out struct {
		User *models.User `json:"user"`
	}
	if err := c.requestJSON(ctx, http.MethodPut, "/users/profile", upd, &out); err != nil {
		return nil, err
	}
	if out.User == nil {
		return nil, fmt.Errorf("profile: %w", ErrNotFound)
	}
	return out.User, nil
}

func (c *HTTPClient) UpdatePassword(ctx context.Context, current, next string) (string, error) {
	var out struct {
		Message string `json:"message"`
	}
	body := map[string]string{
		"currentPassword": current,
		"newPassword":     next,
	}
	if err := c.requestJSON(ctx, http.MethodPut, "/users/profile/password", body, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

// --- Products ---

func (c *HTTPClient) ListProducts(ctx context.Context) ([]models.Product, error) {
	var out struct {
		Products []models.Product `json:"products"`
	}
	if err := c.requestJSON(ctx, http.MethodGet, "/products/getproducts", nil, &out); err != nil {
		return nil, err
	}
	if out.Products == nil {
		return nil, fmt.Errorf("products: %w", ErrNotFound)
	}
	return out.Products, nil
}

func (c *HTTPClient) GetProduct(ctx context.Context, id string) (*models.ProductDetail, error) {
	var out struct {
		Success bool            `json:"success"`
		Product *models.Product `json:"product"`
		Artisan *models.Artisan `json:"artisan"`
	}
	if err := c.requestJSON(ctx, http.MethodGet, "/products/getproduct/"+id, nil, &out); err != nil {
		return nil, err
	}
	if !out.Success || out.Product == nil {
		return nil, fmt.Errorf("product %s: %w", id, ErrNotFound)
	}
	return &models.ProductDetail{Product: *out.Product, Artisan: out.Artisan}, nil
}

// AddProduct uploads the form fields and every image as a multipart body.
func (c *HTTPClient) AddProduct(ctx context.Context, p models.NewProduct) (string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	if err := w.WriteField("title", p.Title); err != nil {
		return "", fmt.Errorf("encode form: %w", err)
	}
	if err := w.WriteField("description", p.Description); err != nil {
		return "", fmt.Errorf("encode form: %w", err)
	}
	if err := w.WriteField("price", fmt.Sprintf("%g", float64(p.Price))); err != nil {
		return "", fmt.Errorf("encode form: %w", err)
	}
	for _, path := range p.ImagePaths {
		if err := appendFilePart(w, "images", path); err != nil {
			return "", err
		}
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("encode form: %w", err)
	}

	data, err := c.do(ctx, http.MethodPost, "/products/addproduct", &buf, w.FormDataContentType())
	if err != nil {
		return "", err
	}

	var out struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if !out.Success {
		msg := out.Message
		if msg == "" {
			msg = "failed to add product"
		}
		return "", fmt.Errorf("%s", msg)
	}
	return out.Message, nil
}

func (c *HTTPClient) EditProduct(ctx context.Context, id string, upd models.ProductUpdate) error {
	return c.requestJSON(ctx, http.MethodPut, "/products/editproduct/"+id, upd, nil)
}

func (c *HTTPClient) DeleteProduct(ctx context.Context, id string) error {
	return c.requestJSON(ctx, http.MethodDelete, "/products/deleteproduct/"+id, nil, nil)
}

// --- Admin ---

func (c *HTTPClient) AdminUsers(ctx context.Context) ([]models.User, error) {
	var out struct {
		Users []models.User `json:"users"`
	}
	if err := c.requestJSON(ctx, http.MethodGet, "/admin/users", nil, &out); err != nil {
		return nil, err
	}
	if out.Users == nil {
		return nil, fmt.Errorf("users: %w", ErrNotFound)
	}
	return out.Users, nil
}

func (c *HTTPClient) AdminDeleteUser(ctx context.Context, id string) error {
	return c.requestJSON(ctx, http.MethodDelete, "/admin/users/"+id, nil, nil)
}

func (c *HTTPClient) AdminStats(ctx context.Context) (*models.Stats, error) {
	var out models.Stats
	if err := c.requestJSON(ctx, http.MethodGet, "/admin/stat", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// --- AI helpers ---

func (c *HTTPClient) GenerateDescription(ctx context.Context, title string) (string, error) {
	var out struct {
		Description string `json:"description"`
	}
	body := map[string]string{"title": title}
	if err := c.requestJSON(ctx, http.MethodPost, "/ai/generate-description", body, &out); err != nil {
		return "", err
	}
	if out.Description == "" {
		return "", fmt.Errorf("empty description generated")
	}
	return out.Description, nil
}

// EnhanceImage uploads one image and returns the enhanced image bytes.
func (c *HTTPClient) EnhanceImage(ctx context.Context, path string) ([]byte, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if err := appendFilePart(w, "image", path); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("encode form: %w", err)
	}
	return c.do(ctx, http.MethodPost, "/ai/enhance-image", &buf, w.FormDataContentType())
}

func appendFilePart(w *multipart.Writer, field, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	part, err := w.CreateFormFile(field, filepath.Base(path))
	if err != nil {
		return fmt.Errorf("encode form: %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	return nil
}
