package actions

import (
	"context"

	"github.com/medicart/medicart-client/internal/models"
)

func (c *Catalog) GetAllMedicines(ctx context.Context) ([]models.Medicine, error) {
	return c.list(ctx, "")
}

func (c *Catalog) GetMedicinesByCategory(ctx context.Context, category string) ([]models.Medicine, error) {
	return c.list(ctx, category)
}

func (c *Catalog) list(ctx context.Context, category string) ([]models.Medicine, error) {

	medicines, err := c.client.ListMedicines(ctx, category)
	if err != nil {
		return nil, err
	}

	for i := range medicines {
		medicines[i].Description = c.sanitizer.Sanitize(medicines[i].Description)
	}

	return medicines, nil
}

// GetMedicine sanitizes the seller-supplied description before it reaches
// any display surface.
func (c *Catalog) GetMedicine(ctx context.Context, id string) (*models.Medicine, error) {

	medicine, err := c.client.GetMedicine(ctx, id)
	if err != nil {
		return nil, err
	}

	medicine.Description = c.sanitizer.Sanitize(medicine.Description)

	return medicine, nil
}

func (c *Catalog) CreateMedicine(ctx context.Context, req *models.CreateMedicineRequest) (*models.Medicine, error) {

	if err := c.requireRole(models.RoleSeller); err != nil {
		return nil, err
	}

	if err := c.check(req); err != nil {
		return nil, err
	}

	return c.client.CreateMedicine(ctx, req)
}

func (c *Catalog) UpdateMedicine(ctx context.Context, id string, req *models.UpdateMedicineRequest) (*models.Medicine, error) {

	if err := c.requireRole(models.RoleSeller); err != nil {
		return nil, err
	}

	if err := c.check(req); err != nil {
		return nil, err
	}

	return c.client.UpdateMedicine(ctx, id, req)
}

func (c *Catalog) DeleteMedicine(ctx context.Context, id string) error {

	if err := c.requireRole(models.RoleSeller); err != nil {
		return err
	}

	return c.client.DeleteMedicine(ctx, id)
}
