// Package services contains the application services of the artshop CLI:
// thin orchestration between the command handlers and the backend API, plus
// the client-side validation the original forms performed before any network
// call.
package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cheikhtourad19/artshop-cli/internal/client/api"
	"github.com/cheikhtourad19/artshop-cli/internal/client/models"
	"github.com/cheikhtourad19/artshop-cli/internal/logging"
)

// EnhanceProgress reports the state of the serial image-enhancement pipeline:
// index is 1-based, total the number of images, name the file being worked
// on, and err non-nil when that image keeps its original version.
type EnhanceProgress func(index, total int, name string, err error)

// ProductService covers the product catalogue: listing, search, detail,
// creation (with the optional AI helpers) and the admin mutations.
type ProductService interface {
	List(ctx context.Context) ([]models.Product, error)
	Get(ctx context.Context, id string) (*models.ProductDetail, error)
	Add(ctx context.Context, p models.NewProduct, enhance bool, progress EnhanceProgress) (string, error)
	Edit(ctx context.Context, id string, upd models.ProductUpdate) error
	Delete(ctx context.Context, id string) error
	GenerateDescription(ctx context.Context, title string) (string, error)
}

type productService struct {
	api api.Client
	log logging.Logger
}

// NewProductService constructs a ProductService bound to the given API client.
func NewProductService(client api.Client, log logging.Logger) ProductService {
	return &productService{api: client, log: log}
}

func (s *productService) List(ctx context.Context) ([]models.Product, error) {
	return s.api.ListProducts(ctx)
}

func (s *productService) Get(ctx context.Context, id string) (*models.ProductDetail, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("missing product id")
	}
	return s.api.GetProduct(ctx, id)
}

// Add validates the form fields, optionally runs every image through the
// enhancement endpoint, and uploads the product. Images are enhanced one at
// a time in index order so per-image progress can be reported; an image
// whose enhancement fails is uploaded in its original form.
func (s *productService) Add(ctx context.Context, p models.NewProduct, enhance bool, progress EnhanceProgress) (string, error) {
	p.Title = strings.TrimSpace(p.Title)
	p.Description = strings.TrimSpace(p.Description)

	if p.Title == "" || p.Description == "" {
		return "", fmt.Errorf("please fill in all required fields")
	}
	if p.Price <= 0 {
		return "", fmt.Errorf("price must be a valid positive number")
	}

	if enhance && len(p.ImagePaths) > 0 {
		enhanced, err := s.enhanceAll(ctx, p.ImagePaths, progress)
		if err != nil {
			return "", err
		}
		p.ImagePaths = enhanced
	}

	return s.api.AddProduct(ctx, p)
}

func (s *productService) enhanceAll(ctx context.Context, paths []string, progress EnhanceProgress) ([]string, error) {
	dir, err := os.MkdirTemp("", "artshop-enhanced-")
	if err != nil {
		return nil, fmt.Errorf("create temp dir: %w", err)
	}

	out := make([]string, 0, len(paths))
	for i, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		data, err := s.api.EnhanceImage(ctx, path)
		if err != nil {
			s.log.Warn(ctx, "image enhancement failed, keeping original", "image", path, "error", err)
			if progress != nil {
				progress(i+1, len(paths), filepath.Base(path), err)
			}
			out = append(out, path)
			continue
		}

		dst := filepath.Join(dir, filepath.Base(path))
		if err := os.WriteFile(dst, data, 0o600); err != nil {
			return nil, fmt.Errorf("write enhanced image: %w", err)
		}
		if progress != nil {
			progress(i+1, len(paths), filepath.Base(path), nil)
		}
		out = append(out, dst)
	}
	return out, nil
}

func (s *productService) Edit(ctx context.Context, id string, upd models.ProductUpdate) error {
	if strings.TrimSpace(upd.Title) == "" || strings.TrimSpace(upd.Description) == "" {
		return fmt.Errorf("please fill in all required fields")
	}
	if upd.Price <= 0 {
		return fmt.Errorf("price must be a valid positive number")
	}
	return s.api.EditProduct(ctx, id, upd)
}

func (s *productService) Delete(ctx context.Context, id string) error {
	return s.api.DeleteProduct(ctx, id)
}

func (s *productService) GenerateDescription(ctx context.Context, title string) (string, error) {
	if strings.TrimSpace(title) == "" {
		return "", fmt.Errorf("a title is required to generate a description")
	}
	return s.api.GenerateDescription(ctx, title)
}

// Filter returns the products whose title or description contains the query,
// case-insensitively. A blank query returns the input unchanged. Pure
// function, the catalogue search of the home page.
func Filter(products []models.Product, query string) []models.Product {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return products
	}

	matched := make([]models.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Title), query) ||
			strings.Contains(strings.ToLower(p.Description), query) {
			matched = append(matched, p)
		}
	}
	return matched
}
