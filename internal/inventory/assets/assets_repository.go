package assets

import (
	"errors"
	"fmt"

	"github.com/Somansh-Bodapati/Asset-Manager/internal/repository"
	custom_error "github.com/Somansh-Bodapati/Asset-Manager/pkg/errors"
	"github.com/Somansh-Bodapati/Asset-Manager/pkg/metadata"
	"github.com/Somansh-Bodapati/Asset-Manager/pkg/models"

	"github.com/doug-martin/goqu/v9"
	"github.com/lib/pq"
)

var ErrAssetNotFound = errors.New("asset not found")

type AssetsRepository interface {
	GetAsset(id int) (*models.Asset, error)
	GetAssetList() ([]models.Asset, error)
	InsertAsset(tx *goqu.TxDatabase, asset models.Asset) (int, error)
	UpdateAsset(id int, asset models.Asset) error
	UpdateAssetStatus(tx *goqu.TxDatabase, assetID int, status metadata.Status) error
}

type assetsRepository struct {
	repository *repository.Repository
}

func NewRepository(r *repository.Repository) AssetsRepository {
	return &assetsRepository{repository: r}
}

func (r *assetsRepository) GetAsset(id int) (*models.Asset, error) {
	var asset models.Asset
	query := r.repository.GoquDBWrapper.
		Select("id", "name", "type", "serial_number", "status", "purchase_date", "purchase_price").
		From("assets").
		Where(goqu.Ex{"id": id})

	found, err := query.Executor().ScanStruct(&asset)
	if err != nil {
		return nil, fmt.Errorf("unable to select asset from database: %w", err)
	}
	if !found {
		return nil, ErrAssetNotFound
	}

	return &asset, nil
}

func (r *assetsRepository) GetAssetList() ([]models.Asset, error) {
	var assets []models.Asset
	query := r.repository.GoquDBWrapper.
		Select("id", "name", "type", "serial_number", "status", "purchase_date", "purchase_price").
		From("assets").
		Order(goqu.I("id").Asc())

	if err := query.Executor().ScanStructs(&assets); err != nil {
		return nil, fmt.Errorf("unable to select assets from database: %w", err)
	}

	return assets, nil
}

func (r *assetsRepository) InsertAsset(tx *goqu.TxDatabase, asset models.Asset) (int, error) {
	record := goqu.Record{
		"name":           asset.Name,
		"type":           asset.Type,
		"serial_number":  asset.Serial,
		"status":         asset.Status,
		"purchase_date":  asset.PurchaseDate,
		"purchase_price": asset.PurchasePrice,
	}

	var insert *goqu.InsertDataset
	if tx != nil {
		insert = tx.Insert("assets")
	} else {
		insert = r.repository.GoquDBWrapper.Insert("assets")
	}

	var assetID int
	query := insert.Rows(record).Returning("id")
	if _, err := query.Executor().ScanVal(&assetID); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return 0, custom_error.WrapDBError("Asset insert rejected by constraint", string(pqErr.Code))
		}
		return 0, fmt.Errorf("failed to insert asset record: %w", err)
	}

	return assetID, nil
}

func (r *assetsRepository) UpdateAsset(id int, asset models.Asset) error {
	record := goqu.Record{
		"name":           asset.Name,
		"type":           asset.Type,
		"serial_number":  asset.Serial,
		"status":         asset.Status,
		"purchase_date":  asset.PurchaseDate,
		"purchase_price": asset.PurchasePrice,
	}

	result, err := r.repository.GoquDBWrapper.
		Update("assets").
		Set(record).
		Where(goqu.Ex{"id": id}).
		Executor().
		Exec()

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return custom_error.WrapDBError("Asset update rejected by constraint", string(pqErr.Code))
		}
		return fmt.Errorf("failed to update asset: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrAssetNotFound
	}

	return nil
}

func (r *assetsRepository) UpdateAssetStatus(tx *goqu.TxDatabase, assetID int, status metadata.Status) error {
	if tx == nil {
		return fmt.Errorf("transaction is required for UpdateAssetStatus")
	}

	result, err := tx.Update("assets").
		Set(goqu.Record{"status": string(status)}).
		Where(goqu.Ex{"id": assetID}).
		Executor().
		Exec()

	if err != nil {
		return fmt.Errorf("failed to update asset status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrAssetNotFound
	}

	return nil
}
