package service

import (
	"fmt"
	"os"
	"strings"

	"github.com/maheshrc27/sheetcal/internal/models"
)

// BrandService is the immutable brand registry. Brands come from indexed
// BRAND_{i}_* env vars, scanned once at construction; nothing mutates the
// registry afterwards, so lookups need no synchronization.
type BrandService interface {
	List() []*models.Brand
	GetBySlug(slug string) (*models.Brand, bool)
	Default() (*models.Brand, bool)
}

type brandService struct {
	brands []*models.Brand
}

func NewBrandService() BrandService {
	return &brandService{brands: scanBrands()}
}

// scanBrands walks BRAND_1_NAME, BRAND_2_NAME, ... until the first gap.
func scanBrands() []*models.Brand {
	var brands []*models.Brand

	for i := 1; ; i++ {
		name := brandEnv(i, "NAME")
		if name == "" {
			break
		}

		slug := brandEnv(i, "SLUG")
		if slug == "" {
			slug = strings.Join(strings.Fields(strings.ToLower(name)), "-")
		}

		color := brandEnv(i, "COLOR")
		if color == "" {
			color = "#3B82F6"
		}

		categories := brandEnv(i, "CATEGORIES")
		if categories == "" {
			categories = "General"
		}

		brands = append(brands, &models.Brand{
			ID:         fmt.Sprintf("brand-%d", i),
			Name:       name,
			Slug:       slug,
			Color:      color,
			SheetID:    brandEnv(i, "SHEET_ID"),
			Instagram:  brandEnv(i, "INSTAGRAM"),
			LogoURL:    brandEnv(i, "LOGO_URL"),
			Categories: splitTrim(categories),
		})
	}
	return brands
}

func brandEnv(index int, key string) string {
	return os.Getenv(fmt.Sprintf("BRAND_%d_%s", index, key))
}

func splitTrim(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func (s *brandService) List() []*models.Brand {
	return s.brands
}

func (s *brandService) GetBySlug(slug string) (*models.Brand, bool) {
	for _, b := range s.brands {
		if b.Slug == slug {
			return b, true
		}
	}
	return nil, false
}

func (s *brandService) Default() (*models.Brand, bool) {
	if len(s.brands) == 0 {
		return nil, false
	}
	return s.brands[0], true
}
