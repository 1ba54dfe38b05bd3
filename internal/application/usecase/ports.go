package usecase

import (
	"context"

	"github.com/postventa/garantias-api/internal/domain/entity"
	"github.com/postventa/garantias-api/internal/domain/repository"
)

// TxRunner ejecuta un callback con repositorios atados a una misma
// transacción (alta de garantía: re-lectura del bien + inserción atómicas).
// La implementación vive en infrastructure/postgres.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		garantias repository.GarantiaRepository,
		inventario repository.InventarioRepository,
	) error) error
}

// CertificadoPDFGenerator genera la representación en PDF del certificado de
// una garantía aprobada. Producto o pieza puede venir nil según la referencia
// del bien; fabricante puede venir nil si la garantía no tiene fabricante.
type CertificadoPDFGenerator interface {
	GenerarCertificado(
		ctx context.Context,
		garantia *entity.Garantia,
		item *entity.InventarioItem,
		producto *entity.Producto,
		pieza *entity.Pieza,
		fabricante *entity.Fabricante,
	) ([]byte, error)
}
