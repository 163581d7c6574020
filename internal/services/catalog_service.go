package services

import (
	"github.com/google/uuid"

	"shoply/internal/apperr"
	"shoply/internal/domain"
	"shoply/internal/repos"
)

type CatalogService struct {
	Prods *repos.ProductRepo
}

func NewCatalogService(prods *repos.ProductRepo) *CatalogService {
	return &CatalogService{Prods: prods}
}

type ProductInput struct {
	Name        string
	Category    string
	Price       float64
	Stock       int
	Unit        string
	Description string
}

// ProductPatch carries a partial update; nil fields keep their current value.
type ProductPatch struct {
	Name        *string
	Category    *string
	Price       *float64
	Stock       *int
	Unit        *string
	Description *string
}

func (s *CatalogService) ListProducts(p repos.ListParams) (Page[domain.Product], error) {
	return listPage(s.Prods.Count, s.Prods.List, p)
}

func (s *CatalogService) GetProduct(id string) (*domain.Product, error) {
	p, err := s.Prods.Get(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperr.New(apperr.Unprocessable, "Unknown product")
	}
	return p, nil
}

func (s *CatalogService) CreateProduct(in ProductInput) (*domain.Product, error) {
	if err := s.ensureNameFree(in.Name, ""); err != nil {
		return nil, err
	}
	p := domain.Product{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Category:    in.Category,
		Price:       in.Price,
		Stock:       in.Stock,
		Unit:        in.Unit,
		Description: in.Description,
	}
	if err := s.Prods.Create(p); err != nil {
		return nil, apperr.New(apperr.Unprocessable, "Failed to input product")
	}
	return &p, nil
}

func (s *CatalogService) UpdateProduct(id string, patch ProductPatch) (*domain.Product, error) {
	cur, err := s.GetProduct(id)
	if err != nil {
		return nil, err
	}
	if patch.Name != nil {
		if err := s.ensureNameFree(*patch.Name, id); err != nil {
			return nil, err
		}
		cur.Name = *patch.Name
	}
	if patch.Category != nil {
		cur.Category = *patch.Category
	}
	if patch.Price != nil {
		cur.Price = *patch.Price
	}
	if patch.Stock != nil {
		cur.Stock = *patch.Stock
	}
	if patch.Unit != nil {
		cur.Unit = *patch.Unit
	}
	if patch.Description != nil {
		cur.Description = *patch.Description
	}
	if err := s.Prods.Update(*cur); err != nil {
		return nil, apperr.New(apperr.Unprocessable, "Failed to update product")
	}
	return cur, nil
}

func (s *CatalogService) DeleteProduct(id string) error {
	ok, err := s.Prods.Delete(id)
	if err != nil || !ok {
		return apperr.New(apperr.Unprocessable, "Failed to delete product")
	}
	return nil
}

// ensureNameFree enforces product name uniqueness. selfID excludes the record
// being updated, so renaming a product to a variant of its own name succeeds.
func (s *CatalogService) ensureNameFree(name, selfID string) error {
	existing, err := s.Prods.GetByName(name)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != selfID {
		return apperr.New(apperr.NameTaken, "Name is already registered")
	}
	return nil
}
