package services

import (
	portsrepo "github.com/topaz-jewels/backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/topaz-jewels/backoffice_app/internal/core/ports/services"
)

// ServicesProvider bundles every service facade for dependency injection at
// wiring time.
type ServicesProvider struct {
	PostSvc         portssvc.PostSvcFacade
	ProductSvc      portssvc.ProductSvcFacade
	ManufacturerSvc portssvc.ManufacturerSvcFacade
	WorkerSvc       portssvc.WorkerSvcFacade
	BuyerSvc        portssvc.BuyerSvcFacade
	SaleSvc         portssvc.SaleSvcFacade
	PayrollSvc      portssvc.PayrollSvcFacade
}

// NewServicesProvider wires every service against the given repositories.
func NewServicesProvider(repos *portsrepo.RepositoryProvider) *ServicesProvider {
	return &ServicesProvider{
		PostSvc:         NewPostService(repos.PostRepo),
		ProductSvc:      NewProductService(repos.ProductRepo, repos.ManufacturerRepo),
		ManufacturerSvc: NewManufacturerService(repos.ManufacturerRepo),
		WorkerSvc:       NewWorkerService(repos.WorkerRepo, repos.PostRepo),
		BuyerSvc:        NewBuyerService(repos.BuyerRepo),
		SaleSvc:         NewSaleService(repos.SaleRepo, repos.WorkerRepo),
		PayrollSvc:      NewPayrollService(repos.SalaryRepo, repos.WorkerRepo, repos.PostRepo, repos.SaleRepo),
	}
}
