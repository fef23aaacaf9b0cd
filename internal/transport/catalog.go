package transport

import (
	"net/http"
	"strconv"

	"loja-be/internal/product"
	"loja-be/internal/utils"

	"github.com/shopspring/decimal"
)

type createCategoryRequest struct {
	Name string `json:"name"`
}

type createProductRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	CategoryID  uint            `json:"category_id"`
	Stock       int             `json:"stock"`
	Available   bool            `json:"available"`
	ImageURL    *string         `json:"image_url"`
}

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Categories.List(r.Context())
	if err != nil {
		respondError(r, w, err)
		return
	}

	respond(w, http.StatusOK, categories)
}

func (h *Handler) createCategory(w http.ResponseWriter, r *http.Request) {
	var req createCategoryRequest
	if err := decodeJSON(r, &req); err != nil {
		respondMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	c, err := h.Categories.Create(r.Context(), req.Name)
	if err != nil {
		respondError(r, w, err)
		return
	}

	respond(w, http.StatusCreated, c)
}

func (h *Handler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ToUint(r.URL.Query().Get(":id"))
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "invalid category id")
		return
	}

	if err := h.Categories.Delete(r.Context(), id); err != nil {
		respondError(r, w, err)
		return
	}

	respond(w, http.StatusNoContent, nil)
}

// listProducts reads filters from the query string: category slug,
// free-text search, availability, limit and page.
func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	opts := product.ListOptions{
		OnlyAvailable: q.Get("available") != "false",
	}
	if v := q.Get("category"); v != "" {
		opts.CategorySlug = &v
	}
	if v := q.Get("q"); v != "" {
		opts.Search = &v
	}
	if v := q.Get("limit"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 32); err == nil {
			limit := int32(n)
			opts.Limit = &limit
		}
	}
	if v := q.Get("page"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 32); err == nil {
			page := int32(n)
			opts.Page = &page
		}
	}

	products, err := h.Products.List(r.Context(), opts)
	if err != nil {
		respondError(r, w, err)
		return
	}

	respond(w, http.StatusOK, products)
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	slug := r.URL.Query().Get(":slug")

	p, err := h.Products.GetBySlug(r.Context(), slug)
	if err != nil {
		respondError(r, w, err)
		return
	}

	respond(w, http.StatusOK, p)
}

func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	var req createProductRequest
	if err := decodeJSON(r, &req); err != nil {
		respondMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	p, err := h.Products.Create(r.Context(), product.NewProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		CategoryID:  req.CategoryID,
		Stock:       req.Stock,
		Available:   req.Available,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		respondError(r, w, err)
		return
	}

	respond(w, http.StatusCreated, p)
}

func (h *Handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ToUint(r.URL.Query().Get(":id"))
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "invalid product id")
		return
	}

	if err := h.Products.Delete(r.Context(), id); err != nil {
		respondError(r, w, err)
		return
	}

	respond(w, http.StatusNoContent, nil)
}
