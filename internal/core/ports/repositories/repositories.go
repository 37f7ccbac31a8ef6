package repositories

// RepositoryProvider bundles every repository facade for dependency injection
// at wiring time.
type RepositoryProvider struct {
	PostRepo         PostRepositoryFacade
	ProductRepo      ProductRepositoryFacade
	ManufacturerRepo ManufacturerRepositoryFacade
	WorkerRepo       WorkerRepositoryFacade
	BuyerRepo        BuyerRepositoryFacade
	SaleRepo         SaleRepositoryFacade
	SalaryRepo       SalaryRepositoryFacade
}
