package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/topaz-jewels/backoffice_app/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		PostRepo:         newPgxPostRepository(dbPool),
		ProductRepo:      newPgxProductRepository(dbPool),
		ManufacturerRepo: newPgxManufacturerRepository(dbPool),
		WorkerRepo:       newPgxWorkerRepository(dbPool),
		BuyerRepo:        newPgxBuyerRepository(dbPool),
		SaleRepo:         newPgxSaleRepository(dbPool),
		SalaryRepo:       newPgxSalaryRepository(dbPool),
	}
}
