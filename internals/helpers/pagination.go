package helper

import (
	"math"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const DefaultPage = 1

type PaginationOptions struct {
	DefaultPerPage int
	MaxPerPage     int
}

var (
	DefaultOpts = PaginationOptions{DefaultPerPage: 25, MaxPerPage: 200}
	AdminOpts   = PaginationOptions{DefaultPerPage: 50, MaxPerPage: 500}
)

type PaginationParams struct {
	Page    int
	PerPage int
}

// ParsePagination membaca ?page= & ?per_page= (alias limit) dengan clamp.
func ParsePagination(c *fiber.Ctx, opt PaginationOptions) PaginationParams {
	page := AtoiOr(DefaultPage, c.Query("page"))
	if page < 1 {
		page = DefaultPage
	}

	perRaw := strings.TrimSpace(c.Query("per_page"))
	if perRaw == "" {
		perRaw = strings.TrimSpace(c.Query("limit"))
	}
	per := AtoiOr(opt.DefaultPerPage, perRaw)
	if per < 1 {
		per = opt.DefaultPerPage
	}
	if per > opt.MaxPerPage {
		per = opt.MaxPerPage
	}

	return PaginationParams{Page: page, PerPage: per}
}

func (p PaginationParams) Offset() int { return (p.Page - 1) * p.PerPage }

// Meta membungkus hasil + info halaman untuk response list.
func (p PaginationParams) Meta(total int64) fiber.Map {
	totalPages := int(math.Ceil(float64(total) / float64(p.PerPage)))
	if totalPages < 1 {
		totalPages = 1
	}
	return fiber.Map{
		"page":        p.Page,
		"per_page":    p.PerPage,
		"total":       total,
		"total_pages": totalPages,
	}
}

// AtoiOr parse int dengan fallback default.
func AtoiOr(def int, raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}
